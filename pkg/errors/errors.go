// Package errors carries coded errors through the visualization pipeline.
//
// Every failure the pipeline can surface to a user gets a [Code], so the
// CLI and tests can branch on the kind of failure without matching
// message text:
//
//	err := errors.New(errors.ErrCodeInvalidRange, "median score %.2f outside [0, %d]", m, n)
//	if errors.Is(err, errors.ErrCodeInvalidRange) {
//		// skip the year instead of aborting
//	}
//
// Wrap attaches a code and context to an underlying error:
//
//	errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a failure category.
type Code string

const (
	// ErrCodeInvalidInput marks malformed user input, such as a bad URL.
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeInvalidRange marks a summary statistic or year interval
	// outside its documented bounds. The transform never clamps; it
	// raises this instead.
	ErrCodeInvalidRange Code = "INVALID_RANGE"

	// ErrCodeInvalidDataset marks an unknown or unsafe dataset name.
	ErrCodeInvalidDataset Code = "INVALID_DATASET"

	// ErrCodeInvalidStyle marks an unregistered style name.
	ErrCodeInvalidStyle Code = "INVALID_STYLE"

	// ErrCodeInvalidRecord marks a source row the parser cannot use.
	ErrCodeInvalidRecord Code = "INVALID_RECORD"

	// ErrCodeInvalidPath marks a local path that fails validation.
	ErrCodeInvalidPath Code = "INVALID_PATH"

	// ErrCodeInternal marks unexpected failures: encoding, font loading.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error pairs a code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to the stdlib errors helpers.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds a coded error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap builds a coded error around an existing cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether any error in err's chain carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in the chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
