// Package apperrors provides tests for application error types.
package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvariantError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "With index and detail",
			err:      NewInvariantError(CheckNonDegenerate, 12, "inverse root equals 1"),
			expected: "derivation invariant violation: non-degeneracy check failed at index 12: inverse root equals 1",
		},
		{
			name:     "Without index",
			err:      NewInvariantError(CheckIdentity, -1, "roots[0]=2"),
			expected: "derivation invariant violation: identity check failed: roots[0]=2",
		},
		{
			name:     "Without detail",
			err:      InvariantError{Check: CheckClosure, Index: -1},
			expected: "derivation invariant violation: closure check failed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, ErrInvariantViolation) {
				t.Error("errors.Is should match ErrInvariantViolation")
			}
			if !IsInvariantError(fmt.Errorf("context: %w", tt.err)) {
				t.Error("IsInvariantError should see through wrapping")
			}
			var inv InvariantError
			if !errors.As(tt.err, &inv) {
				t.Error("expected error to be InvariantError type")
			}
		})
	}
}

func TestInvariantErrorIsNotEmptyTable(t *testing.T) {
	t.Parallel()
	err := NewInvariantError(CheckClosure, 0, "")
	if errors.Is(err, ErrEmptyTable) {
		t.Error("InvariantError must not match ErrEmptyTable")
	}
	if IsInvariantError(errors.New("other")) {
		t.Error("plain errors are not invariant errors")
	}
}

func TestEmptyTableError(t *testing.T) {
	t.Parallel()
	err := WrapError(EmptyTableError{}, "encode")
	if !errors.Is(err, ErrEmptyTable) {
		t.Error("errors.Is should match ErrEmptyTable through wrapping")
	}
	if errors.Is(err, ErrInvariantViolation) {
		t.Error("EmptyTableError must not match ErrInvariantViolation")
	}
	if got := err.Error(); got != "encode: empty root table: no roots to serialize" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("invalid value %d for flag %s", 42, "--format")
	if err.Error() != "invalid value 42 for flag --format" {
		t.Errorf("unexpected message %q", err.Error())
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		field       string
		message     string
		value       any
		expectedMsg string
	}{
		{
			name:        "Error with field",
			field:       "modulus",
			message:     "must be odd",
			value:       4,
			expectedMsg: "validation error for 'modulus': must be odd",
		},
		{
			name:        "Error without field",
			message:     "invalid input",
			expectedMsg: "validation error: invalid input",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := NewValidationError(tt.field, tt.message, tt.value)
			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}
			var valErr ValidationError
			if !errors.As(err, &valErr) {
				t.Fatal("expected error to be ValidationError type")
			}
			if valErr.Field != tt.field || valErr.Value != tt.value {
				t.Errorf("unexpected validation error: %+v", valErr)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "ctx") != nil {
		t.Error("WrapError(nil) should return nil")
	}
	base := errors.New("root cause")
	wrapped := WrapError(base, "stage %s", "render")
	if wrapped.Error() != "stage render: root cause" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the cause")
	}
}
