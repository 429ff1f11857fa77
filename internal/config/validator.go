package config

import (
	"fmt"
	"strings"

	"github.com/roach88/sigcmp/internal/logging"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate returns every invalid setting in c.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if !IsValidFormat(c.Format) {
		errs = append(errs, ValidationError{
			Field:   KeyFormat,
			Value:   c.Format,
			Message: fmt.Sprintf("must be one of %v", ValidFormats()),
		})
	}

	if c.LogLevel != "" && !logging.IsValidLevel(c.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   KeyLogLevel,
			Value:   c.LogLevel,
			Message: fmt.Sprintf("must be one of %v", logging.ValidLevels()),
		})
	}

	if err := c.Policy().Validate(); err != nil {
		errs = append(errs, ValidationError{
			Field:   KeyTimeDeviation,
			Value:   c.TimeDeviation,
			Message: "must be a finite, non-negative number",
		})
	}

	return errs
}
