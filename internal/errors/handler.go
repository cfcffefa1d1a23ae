package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ColorProvider colorizes diagnostic fragments.
// This abstraction breaks the import cycle with ui.
type ColorProvider interface {
	Warning(a ...any) string
	Error(a ...any) string
}

// DefaultColorProvider leaves text uncolored (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Warning(a ...any) string { return fmt.Sprint(a...) }
func (d DefaultColorProvider) Error(a ...any) string   { return fmt.Sprint(a...) }

// HandleGenerationError formats and prints the diagnostic for a failed
// generation run and maps the error class to an exit code. No artifact is
// written when this is reached, so the message says so.
//
// Parameters:
//   - err: The error that occurred.
//   - out: The io.Writer to which the diagnostic will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleGenerationError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	var inv InvariantError
	if errors.As(err, &inv) {
		fmt.Fprintf(out, "%s Invariant %s does not hold; no artifact was written.\n",
			colors.Error("Status: Aborted."), colors.Warning(strconv.Quote(inv.Check)))
		fmt.Fprintf(out, "Cause: %v\n", err)
		return ExitErrorInvariant
	}

	var valErr ValidationError
	var cfgErr ConfigError
	if errors.As(err, &valErr) || errors.As(err, &cfgErr) {
		fmt.Fprintf(out, "%s Invalid input: %v\n", colors.Error("Status: Rejected."), err)
		return ExitErrorConfig
	}

	if errors.Is(err, ErrEmptyTable) {
		fmt.Fprintf(out, "%s %v\n", colors.Error("Status: Aborted."), err)
		return ExitErrorGeneric
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "%s No artifact was written.\n", colors.Warning("Status: Canceled."))
		return ExitErrorCanceled
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
