// Package logging builds the diagnostic logger for sigcmp.
//
// Diagnostics go to stderr so that report output on stdout stays exactly
// in the documented format.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level, or an unknown one, is configured.
const DefaultLevel = zerolog.WarnLevel

// ValidLevels returns the accepted level names.
func ValidLevels() []string {
	return []string{"debug", "info", "warn", "error", "disabled"}
}

// ParseLevel maps a level name to a zerolog level, falling back to
// DefaultLevel for empty or unknown names.
func ParseLevel(level string) zerolog.Level {
	if strings.TrimSpace(level) == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// IsValidLevel reports whether level is one of ValidLevels.
func IsValidLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	for _, l := range ValidLevels() {
		if l == level {
			return true
		}
	}
	return false
}

// New returns a timestamped JSON logger on w at the given level.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(ParseLevel(level))
}

// NewConsole returns a human-readable logger on w, for interactive use.
func NewConsole(w io.Writer, level string) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05.000"}
	return zerolog.New(cw).With().Timestamp().Logger().Level(ParseLevel(level))
}

// WithRun tags every event from logger with the run ID.
func WithRun(logger zerolog.Logger, runID string) zerolog.Logger {
	return logger.With().Str("run_id", runID).Logger()
}
