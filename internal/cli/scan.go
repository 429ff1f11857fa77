package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sigcmp/internal/align"
	"github.com/roach88/sigcmp/internal/report"
	"github.com/roach88/sigcmp/internal/signal"
	"github.com/roach88/sigcmp/internal/source"
)

// ScanRecord is one recognised signal line.
type ScanRecord struct {
	Line      int    `json:"line"`
	Direction string `json:"direction"`
	Time      string `json:"time"`
	Name      string `json:"name"`
	Payload   string `json:"payload"`
}

// ScanResult holds the outcome of scanning one log.
type ScanResult struct {
	File    string       `json:"file"`
	Lines   int          `json:"lines"`
	Signals int          `json:"signals"`
	Skipped int          `json:"skipped"`
	Records []ScanRecord `json:"records"`
}

// String formats the summary line, e.g. "5 lines, 3 signals, 2 skipped".
func (r ScanResult) String() string {
	return fmt.Sprintf("%d %s, %d %s, %d skipped",
		r.Lines, report.Plural(r.Lines, "line", "lines"),
		r.Signals, report.Plural(r.Signals, "signal", "signals"),
		r.Skipped)
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan LOG_FILE",
		Short: "Show which lines of a log are signals",
		Long: `Run the signal parser over one log without comparing it.

Prints how many lines were read and how many were recognised as signals.
With --verbose every signal is listed as "<line>: <dir> <time> <payload>".

Examples:
  sigcmp scan capture.log
  sigcmp scan capture.log --verbose
  sigcmp scan capture.log --format json`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootOpts, args[0], cmd)
		},
	}
}

func runScan(opts *RootOptions, path string, cmd *cobra.Command) error {
	var result ScanResult
	err := source.With(path, func(f *source.File) error {
		lines, err := align.ReadLines(f)
		if err != nil {
			return err
		}
		result = scanLines(f.Path(), lines)
		return nil
	})
	if err != nil {
		return inputFailure(opts, cmd, err)
	}

	opts.Logger.Info().
		Str("file", result.File).
		Int("lines", result.Lines).
		Int("signals", result.Signals).
		Msg("scan finished")

	if opts.Format != "json" && opts.Verbose {
		w := cmd.OutOrStdout()
		for _, r := range result.Records {
			if _, err := fmt.Fprintf(w, "%d: %s %s %s\n", r.Line, r.Direction, r.Time, r.Payload); err != nil {
				return err
			}
		}
	}

	return opts.formatter(cmd).Success(result)
}

func scanLines(file string, lines []string) ScanResult {
	result := ScanResult{
		File:    file,
		Lines:   len(lines),
		Records: []ScanRecord{},
	}
	for i, line := range lines {
		rec, ok := signal.Parse(line, i+1)
		if !ok {
			result.Skipped++
			continue
		}
		result.Signals++
		result.Records = append(result.Records, ScanRecord{
			Line:      rec.Line,
			Direction: rec.Direction.String(),
			Time:      rec.TimeText,
			Name:      rec.Name(),
			Payload:   rec.Payload,
		})
	}
	return result
}
