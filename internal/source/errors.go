package source

import (
	"errors"
	"fmt"
)

// InputErrorCode categorizes input failures.
type InputErrorCode string

const (
	// ErrCodeNotFound indicates the input path does not exist.
	ErrCodeNotFound InputErrorCode = "INPUT_NOT_FOUND"

	// ErrCodeUnreadable indicates the input exists but cannot be read.
	ErrCodeUnreadable InputErrorCode = "INPUT_UNREADABLE"
)

// InputError is a fatal failure opening or reading an input log.
type InputError struct {
	Code InputErrorCode
	Path string
	Err  error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	switch e.Code {
	case ErrCodeNotFound:
		return fmt.Sprintf("%s: log file not found", e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: cannot read log file: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("%s: cannot read log file", e.Path)
	}
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if err is an input-not-found error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Code == ErrCodeNotFound
	}
	return false
}

// IsUnreadable returns true if err is an input-unreadable error.
func IsUnreadable(err error) bool {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Code == ErrCodeUnreadable
	}
	return false
}

func notFound(path string, err error) *InputError {
	return &InputError{Code: ErrCodeNotFound, Path: path, Err: err}
}

func unreadable(path string, err error) *InputError {
	return &InputError{Code: ErrCodeUnreadable, Path: path, Err: err}
}
