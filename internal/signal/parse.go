package signal

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder stands in for a signal number that could not be resolved.
const Placeholder = "[SIGNUM]"

// linePattern captures direction, time and payload of a signal line.
var linePattern = regexp.MustCompile(`^([<>]) (\d+(?:\.\d*)?|\.\d+),([\w.]+,(?:\d+|` +
	regexp.QuoteMeta(Placeholder) + `),[\w'"]+)$`)

// Parse extracts a Record from line. The line is trimmed before matching.
// It returns false when the line is not a signal line.
func Parse(line string, lineNo int) (Record, bool) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Record{}, false
	}

	m := linePattern.FindStringSubmatch(raw)
	if m == nil {
		return Record{}, false
	}

	ts, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Record{}, false
	}

	dir := Outgoing
	if m[1] == "<" {
		dir = Incoming
	}

	return Record{
		Direction: dir,
		Timestamp: ts,
		TimeText:  m[2],
		Payload:   m[3],
		Raw:       raw,
		Line:      lineNo,
	}, true
}
