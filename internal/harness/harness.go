package harness

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/roach88/sigcmp/internal/align"
	"github.com/roach88/sigcmp/internal/report"
	"github.com/roach88/sigcmp/internal/source"
)

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Open both logs (inline lines or files)
// 2. Compare them under the scenario policy
// 3. Render the text output
// 4. Evaluate expectations
//
// An error is returned only when the run itself cannot happen, such as an
// unreadable log file. Failed expectations are reported through Result.
func Run(scenario *Scenario) (*Result, error) {
	comparison, err := compareLogs(scenario)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := report.NewTextWriter(&out).WriteAll(comparison.Reports); err != nil {
		return nil, fmt.Errorf("failed to render output: %w", err)
	}

	result := NewResult()
	result.Comparison = comparison
	result.Output = out.String()

	for _, msg := range EvaluateExpectations(result, scenario.Expect) {
		result.AddError(msg)
	}

	return result, nil
}

// compareLogs runs the aligner over the scenario logs.
func compareLogs(s *Scenario) (*align.Result, error) {
	policy := s.Policy.Policy()

	if s.Left.File == "" && s.Right.File == "" {
		return align.CompareStrings(s.Left.Name, s.Left.Lines, s.Right.Name, s.Right.Lines, policy)
	}

	var result *align.Result
	err := withInput(s.Left, func(left align.Input) error {
		return withInput(s.Right, func(right align.Input) error {
			var err error
			result, err = align.Compare(left, right, policy)
			return err
		})
	})
	return result, err
}

// withInput hands fn an Input for l, opening and closing its file if needed.
func withInput(l LogSpec, fn func(align.Input) error) error {
	if l.File == "" {
		return fn(align.Input{Name: l.Name, Reader: strings.NewReader(joinLines(l.Lines))})
	}
	return source.With(l.File, func(f *source.File) error {
		return fn(align.Input{Name: l.Name, Reader: f})
	})
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
