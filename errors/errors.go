package errors

import (
	"errors"
	"fmt"
)

// Error is a structured error carrying an error code and the context an
// operator needs to fix their input: the failed operation, the offending
// path or value, and the underlying cause when one exists.
type Error struct {
	// Code classifies the failure for exit-code mapping.
	Code ErrorCode

	// Op is the operation that failed (e.g., "list", "write", "smash").
	Op string

	// Path is the filesystem path or offending value (if applicable).
	Path string

	// Message is a human-readable description of the failure.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Path != "" && e.Err != nil && e.Message != "":
		return fmt.Sprintf("tsvify.%s %s: %s: %v", e.Op, e.Path, e.Message, e.Err)
	case e.Path != "":
		return fmt.Sprintf("tsvify.%s %s: %s", e.Op, e.Path, msg)
	default:
		return fmt.Sprintf("tsvify.%s: %s", e.Op, msg)
	}
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithPath adds path context to an existing error.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithMessage sets a human-readable message on an existing error.
func (e *Error) WithMessage(message string) *Error {
	e.Message = message
	return e
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// New creates a new Error with the given operation and code.
func New(op string, code ErrorCode) *Error {
	return &Error{
		Op:   op,
		Code: code,
	}
}

// CodeOf extracts the ErrorCode from an error chain. It returns CodeUnknown
// when no *Error is found, and an empty code for a nil error.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode reports whether any error in the chain carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// As is a passthrough to the standard library, so callers do not need to
// import both error packages.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is a passthrough to the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
