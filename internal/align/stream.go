package align

import (
	"bufio"
	"fmt"
	"io"

	"github.com/roach88/sigcmp/internal/signal"
)

// maxLineSize bounds a single log line.
const maxLineSize = 4 * 1024 * 1024

// newScanner returns a line scanner that tolerates long lines.
func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return s
}

// ReadLines materializes every line of r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	s := newScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}

// scanResult is the outcome of pulling the next signal from a cursor.
// ok is false when the stream was exhausted first.
type scanResult struct {
	record signal.Record
	ok     bool
}

// cursor is a forward-only position over a materialized stream.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(lines []string) *cursor {
	return &cursor{lines: lines}
}

// next consumes lines until one parses as a signal or the stream ends.
// Every line it looks at is consumed, signal or not.
func (c *cursor) next() scanResult {
	for c.pos < len(c.lines) {
		line := c.lines[c.pos]
		c.pos++
		if rec, ok := signal.Parse(line, c.pos); ok {
			return scanResult{record: rec, ok: true}
		}
	}
	return scanResult{}
}

