// Package report renders comparison results for the console.
package report

import (
	"fmt"
	"io"

	"github.com/roach88/sigcmp/internal/align"
)

// TextWriter prints reports in the block format
//
//	Signal <n>
//	<source>:<line>: <text>
//
// with a blank line between blocks. The writer owns the separator state, so
// one writer should be used per output stream.
type TextWriter struct {
	w       io.Writer
	printed bool
}

// NewTextWriter returns a TextWriter on w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// Write prints one report block.
func (t *TextWriter) Write(r align.Report) error {
	if t.printed {
		if _, err := fmt.Fprintln(t.w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(t.w, "Signal %d\n", r.Signal); err != nil {
		return err
	}
	for _, e := range r.Entries {
		if _, err := fmt.Fprintln(t.w, e.String()); err != nil {
			return err
		}
	}
	t.printed = true
	return nil
}

// WriteAll prints every report in order.
func (t *TextWriter) WriteAll(reports []align.Report) error {
	for _, r := range reports {
		if err := t.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Summary formats the one-line run summary.
func Summary(result *align.Result) string {
	return fmt.Sprintf("%d %s, %d matched, %d %s",
		result.Signals, Plural(result.Signals, "signal", "signals"),
		result.Matched,
		result.Mismatches(), Plural(result.Mismatches(), "mismatch", "mismatches"))
}

// WriteSummary prints the summary line, preceded by a blank line if any
// block was printed.
func (t *TextWriter) WriteSummary(result *align.Result) error {
	if t.printed {
		if _, err := fmt.Fprintln(t.w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(t.w, Summary(result))
	return err
}

// Plural picks the singular or plural noun for n.
func Plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
