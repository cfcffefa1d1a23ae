package apperrors

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
)

type MockColorProvider struct{}

func (m MockColorProvider) Warning(a ...any) string { return "[YELLOW]" + fmt.Sprint(a...) + "[RESET]" }
func (m MockColorProvider) Error(a ...any) string   { return "[RED]" + fmt.Sprint(a...) + "[RESET]" }

func TestHandleGenerationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		err          error
		colors       ColorProvider
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "No Error",
			err:          nil,
			expectedCode: ExitSuccess,
			expectedMsg:  "",
		},
		{
			name:         "Invariant Error",
			err:          NewInvariantError(CheckClosure, 4095, "got 7"),
			colors:       MockColorProvider{},
			expectedCode: ExitErrorInvariant,
			expectedMsg:  `[RED]Status: Aborted.[RESET] Invariant [YELLOW]"closure"[RESET] does not hold; no artifact was written.`,
		},
		{
			name:         "Wrapped Invariant Error",
			err:          WrapError(NewInvariantError(CheckReverseSymmetry, 3, ""), "derive"),
			expectedCode: ExitErrorInvariant,
			expectedMsg:  `Invariant "reverse-symmetry" does not hold`,
		},
		{
			name:         "Validation Error",
			err:          NewValidationError("modulus", "must be odd", 4),
			expectedCode: ExitErrorConfig,
			expectedMsg:  "Status: Rejected. Invalid input: validation error for 'modulus': must be odd",
		},
		{
			name:         "Config Error",
			err:          NewConfigError("unknown format %q", "rust"),
			expectedCode: ExitErrorConfig,
			expectedMsg:  `Invalid input: unknown format "rust"`,
		},
		{
			name:         "Empty Table",
			err:          WrapError(EmptyTableError{}, "serialize"),
			expectedCode: ExitErrorGeneric,
			expectedMsg:  "empty root table",
		},
		{
			name:         "Canceled",
			err:          WrapError(context.Canceled, "deriving roots"),
			colors:       MockColorProvider{},
			expectedCode: ExitErrorCanceled,
			expectedMsg:  "[YELLOW]Status: Canceled.[RESET] No artifact was written.",
		},
		{
			name:         "Generic Error",
			err:          fmt.Errorf("disk full"),
			expectedCode: ExitErrorGeneric,
			expectedMsg:  "Status: Failure. An unexpected error occurred: disk full",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := new(bytes.Buffer)
			code := HandleGenerationError(tt.err, out, tt.colors)

			if code != tt.expectedCode {
				t.Errorf("HandleGenerationError() code = %v, want %v", code, tt.expectedCode)
			}

			if tt.expectedMsg != "" && !strings.Contains(out.String(), tt.expectedMsg) {
				t.Errorf("HandleGenerationError() output = %q, want %q", out.String(), tt.expectedMsg)
			}
			if tt.err == nil && out.Len() != 0 {
				t.Errorf("expected no output for nil error, got %q", out.String())
			}
		})
	}
}

func TestDefaultColorProvider(t *testing.T) {
	t.Parallel()
	p := DefaultColorProvider{}
	if p.Warning("a", 1) != "a1" || p.Error("b") != "b" {
		t.Error("DefaultColorProvider should return the plain text")
	}
}
