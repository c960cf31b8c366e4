package pilflow

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrValidation indicates a context's fields violate its invariants.
	ErrValidation = errors.New("context validation failed")

	// ErrUnknownOperation indicates dispatch on an unregistered operation name.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrNotFound indicates an input file path did not resolve.
	ErrNotFound = errors.New("file not found")

	// ErrDecode indicates input bytes are not a recognizable image.
	ErrDecode = errors.New("image decode failed")

	// ErrInvalidEncoding indicates malformed base64 input.
	ErrInvalidEncoding = errors.New("invalid base64 encoding")

	// ErrMissingContext indicates an operation requires a context absent
	// from the pack. Raising it is per-operation policy; diagnostics report
	// missing contexts without raising.
	ErrMissingContext = errors.New("missing context")
)

// ValidationError reports which context field violated which invariant.
type ValidationError struct {
	Context string // Canonical context name
	Field   string // Field that failed validation
	Reason  string // Human-readable constraint description
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validate %s context: %s: %s", e.Context, e.Field, e.Reason)
	}
	return fmt.Sprintf("validate %s context: %s", e.Context, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UnknownOperationError carries the operation name that failed to resolve.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Name)
}

func (e *UnknownOperationError) Unwrap() error {
	return ErrUnknownOperation
}

// MissingContextError reports a context an operation required but the pack
// does not carry.
type MissingContextError struct {
	Operation string
	Context   string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("operation %q requires missing context %q", e.Operation, e.Context)
}

func (e *MissingContextError) Unwrap() error {
	return ErrMissingContext
}
