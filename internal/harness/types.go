package harness

import "github.com/roach88/sigcmp/internal/align"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if all expectations match.
	Pass bool `json:"pass"`

	// Output is the rendered text output of the comparison.
	// Used for output expectations and golden comparison.
	Output string `json:"output"`

	// Comparison is the raw aligner result.
	Comparison *align.Result `json:"comparison"`

	// Errors contains expectation failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
