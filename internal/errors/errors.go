// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// input validation, derivation invariants, serialization) and for carrying
// the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() or Is() methods needed to support
// errors.Is() and errors.As().
package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the generator.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess        = 0   // Indicates successful execution.
	ExitErrorGeneric   = 1   // Indicates a generic error (I/O, rendering).
	ExitErrorInvariant = 3   // Indicates a derivation invariant was violated.
	ExitErrorConfig    = 4   // Indicates a configuration or input error.
	ExitErrorCanceled  = 130 // Indicates the run was canceled (e.g., SIGINT).
)

var (
	// ErrInvariantViolation is matched by every InvariantError through errors.Is.
	ErrInvariantViolation = errors.New("derivation invariant violation")
	// ErrEmptyTable is matched by every EmptyTableError through errors.Is.
	ErrEmptyTable = errors.New("empty root table")
)

// Names of the checks performed on a derivation. They appear in InvariantError
// and in the diagnostics printed on failure.
const (
	CheckClosure         = "closure"
	CheckNonDegenerate   = "non-degeneracy"
	CheckInverseClosure  = "inverse-closure"
	CheckIdentity        = "identity"
	CheckReverseSymmetry = "reverse-symmetry"
	CheckLength          = "length"
)

// InvariantError reports that one of the mathematical checks on a derivation
// failed. It is fatal: the supplied modulus, generator and orders do not form
// a valid subgroup chain and only correcting the inputs can fix it.
type InvariantError struct {
	// Check names the failed invariant (one of the Check* constants).
	Check string
	// Index is the sequence position at which the check failed, or -1.
	Index int
	// Detail gives the offending values.
	Detail string
}

// Error returns a message naming the failed check and, when known, its position.
func (e InvariantError) Error() string {
	msg := fmt.Sprintf("%s: %s check failed", ErrInvariantViolation, e.Check)
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at index %d", e.Index)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is ErrInvariantViolation.
func (e InvariantError) Is(target error) bool { return target == ErrInvariantViolation }

// NewInvariantError creates an InvariantError with a formatted detail message.
// Pass index -1 when the check is not tied to a sequence position.
func NewInvariantError(check string, index int, format string, a ...any) error {
	return InvariantError{Check: check, Index: index, Detail: fmt.Sprintf(format, a...)}
}

// EmptyTableError is returned when a zero-length root sequence reaches the
// serializer.
type EmptyTableError struct{}

func (EmptyTableError) Error() string { return ErrEmptyTable.Error() + ": no roots to serialize" }

// Is reports whether target is ErrEmptyTable.
func (EmptyTableError) Is(target error) bool { return target == ErrEmptyTable }

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an error due to invalid input validation.
// It is used for derivation parameters and serializer input.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message describes why validation failed.
	Message string
	// Value is the invalid value (optional, may be nil).
	Value any
}

// Error returns the error message for a ValidationError.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new ValidationError.
//
// Parameters:
//   - field: The name of the field that failed validation.
//   - message: A description of why validation failed.
//   - value: The invalid value (optional).
//
// Returns:
//   - error: A new ValidationError instance.
func NewValidationError(field, message string, value any) error {
	return ValidationError{Field: field, Message: message, Value: value}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsInvariantError reports whether err carries a derivation invariant violation.
func IsInvariantError(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}
