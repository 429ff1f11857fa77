package signal

import "fmt"

// Direction is the bus direction of a signal.
type Direction int

const (
	// Outgoing is written as '>' in a log.
	Outgoing Direction = iota
	// Incoming is written as '<' in a log.
	Incoming
)

// String returns the log marker for the direction.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return ">"
	case Incoming:
		return "<"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Record is one parsed signal line.
//
// Payload is the verbatim "name,id,value" substring and Raw is the trimmed
// source line, so equality checks on either are byte-faithful to the log.
type Record struct {
	Direction Direction
	Timestamp float64
	// TimeText is the time token exactly as written, e.g. "1.050".
	TimeText string
	Payload  string
	Raw      string
	// Line is the 1-based line number in the originating input.
	Line int
}

// Name returns the signal name portion of the payload.
func (r Record) Name() string {
	for i := 0; i < len(r.Payload); i++ {
		if r.Payload[i] == ',' {
			return r.Payload[:i]
		}
	}
	return r.Payload
}

// SameSignal reports whether two records carry the same direction and payload,
// ignoring their timestamps.
func (r Record) SameSignal(other Record) bool {
	return r.Direction == other.Direction && r.Payload == other.Payload
}
