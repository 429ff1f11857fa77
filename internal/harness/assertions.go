package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/sigcmp/internal/align"
)

// ExpectationError describes one failed expectation.
type ExpectationError struct {
	Field    string // Expectation field, e.g. "reports" or "blocks[1]"
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *ExpectationError) Error() string {
	return fmt.Sprintf("expect.%s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// EvaluateExpectations checks result against expect and returns one
// message per failed check, in a stable order.
func EvaluateExpectations(result *Result, expect Expectation) []string {
	var errs []string
	add := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	cmp := result.Comparison
	add(checkCount("reports", expect.Reports, cmp.Mismatches()))
	add(checkCount("matched", expect.Matched, cmp.Matched))
	add(checkCount("signals", expect.Signals, cmp.Signals))
	if expect.Blocks != nil {
		for _, err := range checkBlocks(expect.Blocks, cmp.Reports) {
			add(err)
		}
	}
	if expect.Output != nil {
		add(checkOutput(*expect.Output, result.Output))
	}

	return errs
}

func checkCount(field string, want *int, got int) error {
	if want == nil || *want == got {
		return nil
	}
	return &ExpectationError{Field: field, Expected: fmt.Sprint(*want), Actual: fmt.Sprint(got)}
}

// checkBlocks compares expected blocks with reports, position by position.
func checkBlocks(want []ExpectBlock, got []align.Report) []error {
	var errs []error

	if len(want) != len(got) {
		errs = append(errs, &ExpectationError{
			Field:    "blocks",
			Expected: fmt.Sprintf("%d block(s)", len(want)),
			Actual:   fmt.Sprintf("%d block(s)", len(got)),
		})
	}

	n := min(len(want), len(got))
	for i := 0; i < n; i++ {
		field := fmt.Sprintf("blocks[%d]", i)
		if want[i].Signal != got[i].Signal {
			errs = append(errs, &ExpectationError{
				Field:    field + ".signal",
				Expected: fmt.Sprint(want[i].Signal),
				Actual:   fmt.Sprint(got[i].Signal),
			})
		}

		gotLines := make([]string, len(got[i].Entries))
		for j, e := range got[i].Entries {
			gotLines[j] = e.String()
		}
		if strings.Join(want[i].Lines, "\n") != strings.Join(gotLines, "\n") {
			errs = append(errs, &ExpectationError{
				Field:    field + ".lines",
				Expected: fmt.Sprintf("%q", want[i].Lines),
				Actual:   fmt.Sprintf("%q", gotLines),
			})
		}
	}

	return errs
}

func checkOutput(want, got string) error {
	if want == got {
		return nil
	}
	return &ExpectationError{Field: "output", Expected: fmt.Sprintf("%q", want), Actual: fmt.Sprintf("%q", got)}
}
