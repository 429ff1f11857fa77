package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sigcmp/internal/align"
	"github.com/roach88/sigcmp/internal/report"
	"github.com/roach88/sigcmp/internal/source"
)

// CompareOptions holds flags for the compare command. The values reach the
// comparison through the resolved config, not these fields.
type CompareOptions struct {
	*RootOptions
	IgnoreTime    bool
	TimeDeviation float64
	FailOnDiff    bool
	Summary       bool
}

// CompareData is the JSON payload of a comparison.
type CompareData struct {
	Left       string         `json:"left"`
	Right      string         `json:"right"`
	Policy     align.Policy   `json:"policy"`
	Signals    int            `json:"signals"`
	Matched    int            `json:"matched"`
	Mismatches int            `json:"mismatches"`
	Reports    []align.Report `json:"reports"`
}

func runCompare(opts *CompareOptions, leftPath, rightPath string, cmd *cobra.Command) error {
	cfg := opts.Config
	policy := cfg.Policy()
	log := opts.Logger

	var result *align.Result
	err := source.WithPair(leftPath, rightPath, func(left, right *source.File) error {
		log.Debug().Str("left", left.Path()).Str("right", right.Path()).Msg("inputs opened")

		var err error
		result, err = align.Compare(
			align.Input{Name: leftPath, Reader: left},
			align.Input{Name: rightPath, Reader: right},
			policy,
		)
		return err
	})
	if err != nil {
		return inputFailure(opts.RootOptions, cmd, err)
	}

	log.Info().
		Int("signals", result.Signals).
		Int("matched", result.Matched).
		Int("mismatches", result.Mismatches()).
		Str("policy", policy.String()).
		Msg("comparison finished")

	if opts.Format == "json" {
		err = outputCompareJSON(opts.RootOptions, cmd, CompareData{
			Left:       leftPath,
			Right:      rightPath,
			Policy:     policy,
			Signals:    result.Signals,
			Matched:    result.Matched,
			Mismatches: result.Mismatches(),
			Reports:    result.Reports,
		})
	} else {
		err = outputCompareText(cmd, result, cfg.Summary)
	}
	if err != nil {
		return err
	}

	if cfg.FailOnDiff && !result.Clean() {
		return NewExitError(ExitDifferences, mismatchMessage(result.Mismatches()))
	}
	return nil
}

func outputCompareText(cmd *cobra.Command, result *align.Result, summary bool) error {
	w := report.NewTextWriter(cmd.OutOrStdout())
	if err := w.WriteAll(result.Reports); err != nil {
		return err
	}
	if summary {
		return w.WriteSummary(result)
	}
	return nil
}

func outputCompareJSON(opts *RootOptions, cmd *cobra.Command, data CompareData) error {
	f := opts.formatter(cmd)
	if data.Mismatches == 0 {
		return f.Success(data)
	}
	return f.Failure(CodeDifferences, mismatchMessage(data.Mismatches), data)
}

func mismatchMessage(n int) string {
	return fmt.Sprintf("%d %s", n, report.Plural(n, "mismatch", "mismatches"))
}

// inputFailure maps an input error to its JSON code and the command-error
// exit code.
func inputFailure(opts *RootOptions, cmd *cobra.Command, err error) error {
	code := CodeInputUnreadable
	if source.IsNotFound(err) {
		code = CodeInputNotFound
	}

	var details map[string]string
	var ie *source.InputError
	if errors.As(err, &ie) {
		details = map[string]string{"path": ie.Path}
	}

	opts.Logger.Debug().Err(err).Str("code", code).Msg("input failure")

	if opts.Format == "json" {
		if werr := opts.formatter(cmd).Error(code, err.Error(), details); werr != nil {
			return werr
		}
	}
	return WrapExitError(ExitCommandError, "comparison failed", err)
}
