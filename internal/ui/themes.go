// Package ui provides theme and color support for the generator's terminal
// output. Colors are rendered with fatih/color; the active theme decides
// whether escape sequences are emitted at all, so the decision follows the
// writer the status lines go to rather than stdout.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Theme defines a color scheme for UI output.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary *color.Color
	// Secondary is used for less prominent elements.
	Secondary *color.Color
	// Success indicates positive outcomes.
	Success *color.Color
	// Warning is used for caution messages.
	Warning *color.Color
	// Error indicates failures.
	Error *color.Color
}

func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func disabled() *color.Color {
	c := color.New()
	c.DisableColor()
	return c
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   enabled(color.FgHiBlue, color.Bold),
		Secondary: enabled(color.FgHiBlack),
		Success:   enabled(color.FgGreen, color.Bold),
		Warning:   enabled(color.FgYellow, color.Bold),
		Error:     enabled(color.FgRed, color.Bold),
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   enabled(color.FgBlue, color.Bold),
		Secondary: enabled(color.FgBlack),
		Success:   enabled(color.FgGreen),
		Warning:   enabled(color.FgMagenta),
		Error:     enabled(color.FgRed),
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{
		Name:      "none",
		Primary:   disabled(),
		Secondary: disabled(),
		Success:   disabled(),
		Warning:   disabled(),
		Error:     disabled(),
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Themes lists the names accepted by SetTheme.
func Themes() []string {
	return []string{DarkTheme.Name, LightTheme.Name, NoColorTheme.Name}
}

// GetCurrentTheme returns the currently active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme. Tests use it to restore
// state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name. Unknown names select the dark
// theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case LightTheme.Name:
		currentTheme = LightTheme
	case NoColorTheme.Name:
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme selects the theme for output written to w. Colors are disabled
// when noColor is set, when NO_COLOR is present in the environment
// (https://no-color.org/), or when w is not a terminal.
func InitTheme(noColor bool, name string, w io.Writer) {
	_, envNoColor := os.LookupEnv("NO_COLOR")
	if noColor || envNoColor || !IsTerminal(w) {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}

// IsTerminal reports whether w is a terminal that understands escape codes.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Colors adapts the current theme to apperrors.ColorProvider.
type Colors struct{}

// Warning renders a in the warning color.
func (Colors) Warning(a ...any) string { return GetCurrentTheme().Warning.Sprint(a...) }

// Error renders a in the error color.
func (Colors) Error(a ...any) string { return GetCurrentTheme().Error.Sprint(a...) }

// PrintStatus writes a "Status: Success." line followed by the formatted
// detail.
func PrintStatus(w io.Writer, format string, a ...any) {
	th := GetCurrentTheme()
	fmt.Fprintf(w, "%s %s\n", th.Success.Sprint("Status: Success."), fmt.Sprintf(format, a...))
}

// PrintDetail writes an indented "label: value" line with the label in the
// secondary color.
func PrintDetail(w io.Writer, label string, value any) {
	th := GetCurrentTheme()
	fmt.Fprintf(w, "  %s %s\n", th.Secondary.Sprint(label+":"), th.Primary.Sprint(value))
}
