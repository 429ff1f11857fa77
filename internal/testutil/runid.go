package testutil

import (
	"fmt"
	"sync"
)

// FixedRunIDGenerator returns the same run ID every time.
//
// Commands tag their JSON output and log events with a run ID. Tests that
// compare output byte for byte (golden files) need that ID to be stable.
//
// Thread-safety: FixedRunIDGenerator is stateless and safe for concurrent use.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a fixed run ID generator.
// If id is empty, Generate() returns "test-run-default".
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run ID.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}

// SequentialRunIDGenerator returns "test-run-0001", "test-run-0002", ...
//
// Unlike FixedRunIDGenerator, it distinguishes runs within one test while
// staying deterministic. It can be reset for test reuse.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequentialRunIDGenerator struct {
	mu  sync.Mutex
	seq int
}

// NewSequentialRunIDGenerator creates a generator whose first ID ends in 0001.
func NewSequentialRunIDGenerator() *SequentialRunIDGenerator {
	return &SequentialRunIDGenerator{}
}

// Generate returns the next run ID.
func (g *SequentialRunIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("test-run-%04d", g.seq)
}

// Reset restarts the sequence. The next Generate() ends in 0001.
func (g *SequentialRunIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
