package align

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/sigcmp/internal/signal"
)

// Mode selects the key used to decide whether two records match.
type Mode int

const (
	// ModeExact compares the full trimmed line.
	ModeExact Mode = iota
	// ModeIgnoreTime compares direction and payload only.
	ModeIgnoreTime
	// ModeDeviation accepts equal direction and payload whose timestamps are
	// within a tolerance, and otherwise compares the full trimmed line.
	ModeDeviation
)

// String returns the mode name used in output.
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeIgnoreTime:
		return "ignore_time"
	case ModeDeviation:
		return "time_deviation"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Policy is the comparison policy for a run.
type Policy struct {
	// IgnoreTime takes precedence over any deviation.
	IgnoreTime bool

	// Deviation is the timestamp tolerance, in the units of the time field.
	// Only used when UseDeviation is set.
	Deviation    float64
	UseDeviation bool
}

// ExactPolicy compares full lines.
func ExactPolicy() Policy {
	return Policy{}
}

// IgnoreTimePolicy compares direction and payload only.
func IgnoreTimePolicy() Policy {
	return Policy{IgnoreTime: true}
}

// DeviationPolicy tolerates timestamp differences up to d.
func DeviationPolicy(d float64) Policy {
	return Policy{Deviation: d, UseDeviation: true}
}

// Mode returns the effective comparison mode.
func (p Policy) Mode() Mode {
	switch {
	case p.IgnoreTime:
		return ModeIgnoreTime
	case p.UseDeviation:
		return ModeDeviation
	default:
		return ModeExact
	}
}

// Validate rejects tolerances that cannot be compared against.
func (p Policy) Validate() error {
	if p.Mode() != ModeDeviation {
		return nil
	}
	if math.IsNaN(p.Deviation) || math.IsInf(p.Deviation, 0) {
		return fmt.Errorf("time deviation must be a finite number, got %v", p.Deviation)
	}
	if p.Deviation < 0 {
		return fmt.Errorf("time deviation must be non-negative, got %v", p.Deviation)
	}
	return nil
}

// String describes the policy, e.g. "time_deviation=0.1".
func (p Policy) String() string {
	if p.Mode() == ModeDeviation {
		return fmt.Sprintf("%s=%s", ModeDeviation, strconv.FormatFloat(p.Deviation, 'g', -1, 64))
	}
	return p.Mode().String()
}

// MarshalJSON renders the policy as {"mode": ..., "time_deviation": ...}.
func (p Policy) MarshalJSON() ([]byte, error) {
	out := struct {
		Mode      Mode     `json:"mode"`
		Deviation *float64 `json:"time_deviation,omitempty"`
	}{Mode: p.Mode()}
	if p.Mode() == ModeDeviation {
		d := p.Deviation
		out.Deviation = &d
	}
	return json.Marshal(out)
}

// Match reports whether a and b are equivalent under the policy.
func (p Policy) Match(a, b signal.Record) bool {
	switch p.Mode() {
	case ModeIgnoreTime:
		return a.SameSignal(b)
	case ModeDeviation:
		if a.SameSignal(b) && withinDeviation(a, b, p.Deviation) {
			return true
		}
		return a.Raw == b.Raw
	default:
		return a.Raw == b.Raw
	}
}

// decimalCtx holds enough digits for any realistic time token.
var decimalCtx = apd.BaseContext.WithPrecision(64)

// withinDeviation reports whether |a.Timestamp - b.Timestamp| <= d.
//
// The difference is taken on the decimal time tokens, so "1.05" against
// "1.00" with d=0.05 is within tolerance.
func withinDeviation(a, b signal.Record, d float64) bool {
	ta, _, errA := apd.NewFromString(a.TimeText)
	tb, _, errB := apd.NewFromString(b.TimeText)
	limit, errD := new(apd.Decimal).SetFloat64(d)
	if errA != nil || errB != nil || errD != nil {
		return math.Abs(a.Timestamp-b.Timestamp) <= d
	}

	var diff apd.Decimal
	if _, err := decimalCtx.Sub(&diff, ta, tb); err != nil {
		return math.Abs(a.Timestamp-b.Timestamp) <= d
	}
	return diff.Abs(&diff).Cmp(limit) <= 0
}
