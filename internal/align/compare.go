package align

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/sigcmp/internal/signal"
)

// Input is one side of a comparison.
type Input struct {
	// Name labels entries from this input, normally the file path.
	Name   string
	Reader io.Reader
}

// Entry locates one line in one input.
type Entry struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
	Text   string `json:"text"`
}

// String renders the entry as "source:line: text".
func (e Entry) String() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Text)
}

// Report is one divergence between the inputs.
//
// Entries holds the left entry then the right entry when both inputs had a
// signal at the aligned position, or a single entry when only one did.
type Report struct {
	Signal  int     `json:"signal"`
	Entries []Entry `json:"entries"`
}

// Result is the outcome of a comparison.
type Result struct {
	// Reports are in discovery order.
	Reports []Report `json:"reports"`
	// Matched counts aligned pairs that compared equal.
	Matched int `json:"matched"`
	// Signals is the last ordinal assigned.
	Signals int `json:"signals"`
}

// Mismatches returns the number of reports.
func (r *Result) Mismatches() int {
	return len(r.Reports)
}

// Clean reports whether the inputs did not diverge.
func (r *Result) Clean() bool {
	return len(r.Reports) == 0
}

// Aligner holds the state of one comparison: the right-hand cursor and the
// ordinal counter. Left lines are fed one at a time with Feed; Finish drains
// what is left of the right input.
type Aligner struct {
	policy    Policy
	leftName  string
	rightName string
	right     *cursor
	result    Result
	finished  bool
}

// NewAligner prepares a comparison against a materialized right input.
func NewAligner(policy Policy, leftName, rightName string, rightLines []string) (*Aligner, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Aligner{
		policy:    policy,
		leftName:  leftName,
		rightName: rightName,
		right:     newCursor(rightLines),
		result:    Result{Reports: []Report{}},
	}, nil
}

// Feed processes the left line at lineNo (1-based). Lines fed after
// Finish are ignored.
func (a *Aligner) Feed(line string, lineNo int) {
	if a.finished {
		return
	}
	left, ok := signal.Parse(line, lineNo)
	if !ok {
		return
	}
	a.result.Signals++

	scan := a.right.next()
	if !scan.ok {
		a.report(a.entry(a.leftName, left))
		return
	}

	if a.policy.Match(left, scan.record) {
		a.result.Matched++
		return
	}
	a.report(a.entry(a.leftName, left), a.entry(a.rightName, scan.record))
}

// Finish reports every signal left in the right input and returns the
// result. Later calls return the same result.
func (a *Aligner) Finish() *Result {
	if !a.finished {
		for scan := a.right.next(); scan.ok; scan = a.right.next() {
			a.result.Signals++
			a.report(a.entry(a.rightName, scan.record))
		}
		a.finished = true
	}
	return &a.result
}

func (a *Aligner) entry(source string, rec signal.Record) Entry {
	return Entry{Source: source, Line: rec.Line, Text: rec.Raw}
}

func (a *Aligner) report(entries ...Entry) {
	a.result.Reports = append(a.result.Reports, Report{
		Signal:  a.result.Signals,
		Entries: entries,
	})
}

// Compare aligns left against right under policy.
//
// The right input is read completely before the left one is scanned; the
// left input is consumed line by line and never retained.
func Compare(left, right Input, policy Policy) (*Result, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	rightLines, err := ReadLines(right.Reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", right.Name, err)
	}

	a, err := NewAligner(policy, left.Name, right.Name, rightLines)
	if err != nil {
		return nil, err
	}

	s := newScanner(left.Reader)
	lineNo := 0
	for s.Scan() {
		lineNo++
		a.Feed(s.Text(), lineNo)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: reading lines: %w", left.Name, err)
	}

	return a.Finish(), nil
}

// CompareStrings is Compare over in-memory logs, one line per element.
func CompareStrings(leftName string, left []string, rightName string, right []string, policy Policy) (*Result, error) {
	return Compare(
		Input{Name: leftName, Reader: strings.NewReader(joinLines(left))},
		Input{Name: rightName, Reader: strings.NewReader(joinLines(right))},
		policy,
	)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
