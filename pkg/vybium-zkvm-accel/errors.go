package vybiumzkvmaccel

import (
	"errors"
	"fmt"

	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/core"
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/jets"
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/noun"
)

// ErrorCode represents an acceleration-layer error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrOutOfRange represents a field element outside [0, P)
	ErrOutOfRange

	// ErrArityMismatch represents a word list with the wrong element count
	ErrArityMismatch

	// ErrShapeMismatch represents a noun with the wrong shape (an atom
	// where a cell was expected, or vice versa)
	ErrShapeMismatch
)

// AccelError represents an acceleration-layer error
type AccelError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *AccelError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-zkvm-accel error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-zkvm-accel error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *AccelError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *AccelError) Is(target error) bool {
	t, ok := target.(*AccelError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// wrapError classifies an internal error into an AccelError.
func wrapError(message string, err error) error {
	if err == nil {
		return nil
	}
	code := ErrUnknown
	switch {
	case errors.Is(err, core.ErrOutOfRange), errors.Is(err, noun.ErrNegativeAtom):
		code = ErrOutOfRange
	case errors.Is(err, jets.ErrArityMismatch):
		code = ErrArityMismatch
	case errors.Is(err, jets.ErrShapeMismatch), errors.Is(err, noun.ErrAxis):
		code = ErrShapeMismatch
	}
	return &AccelError{Code: code, Message: message, Cause: err}
}
