// Package config provides the configuration management for the gen-params
// tool. It defines the configuration structure, parses command-line
// arguments and validates the result.
//
// Only output placement and presentation are configurable. The field, the
// generator and the subgroup orders are compiled into the roots package.
package config

import (
	"errors"
	"flag"
	"fmt"
	"go/token"
	"io"
	"slices"
	"strings"

	apperrors "github.com/agbru/nttparams/internal/errors"
	"github.com/agbru/nttparams/internal/logging"
)

// EnvPrefix is the prefix for all environment variables read by gen-params.
const EnvPrefix = "NTTPARAMS_"

// Default configuration values.
const (
	// DefaultFormat is the artifact format.
	DefaultFormat = "go"
	// DefaultPackage is the package (and C include guard stem) of the artifact.
	DefaultPackage = "params"
	// DefaultBackend is the arithmetic backend.
	DefaultBackend = "big"
	// DefaultLogLevel is the zerolog level name.
	DefaultLogLevel = "info"
	// DefaultTheme is the color theme.
	DefaultTheme = "dark"
)

// AppConfig aggregates the tool's configuration parameters.
type AppConfig struct {
	// OutputFile is where the artifact is written. Empty means stdout.
	OutputFile string
	// Format selects the artifact renderer ("go" or "c").
	Format string
	// Package names the generated Go package.
	Package string
	// Backend selects the modular arithmetic backend.
	Backend string
	// MetricsFile, if set, receives a Prometheus textfile after the run.
	MetricsFile string
	// LogLevel is the minimum level of diagnostic log lines.
	LogLevel string
	// Theme is the color theme of status lines.
	Theme string
	// NoColor disables colored output. NO_COLOR is also respected.
	NoColor bool
	// Quiet suppresses status lines and raises the log level to warn.
	Quiet bool
	// Version prints build information and exits.
	Version bool
}

// EffectiveLogLevel returns the level the logger should use, taking Quiet
// into account.
func (c AppConfig) EffectiveLogLevel() string {
	if c.Quiet && (c.LogLevel == "debug" || c.LogLevel == "info") {
		return "warn"
	}
	return c.LogLevel
}

// Validate checks the configuration against the available renderers,
// backends and color themes.
//
// Returns:
//   - error: A ConfigError describing the first problem found, nil otherwise.
func (c AppConfig) Validate(formats, backends, themes []string) error {
	if !slices.Contains(formats, c.Format) {
		return apperrors.NewConfigError("unrecognized format: '%s'. Valid formats are: [%s]", c.Format, strings.Join(formats, ", "))
	}
	if !slices.Contains(backends, c.Backend) {
		return apperrors.NewConfigError("unrecognized backend: '%s'. Valid backends are: [%s]", c.Backend, strings.Join(backends, ", "))
	}
	if !slices.Contains(themes, c.Theme) {
		return apperrors.NewConfigError("unrecognized theme: '%s'. Valid themes are: [%s]", c.Theme, strings.Join(themes, ", "))
	}
	if !token.IsIdentifier(c.Package) {
		return apperrors.NewConfigError("package name %q is not a valid identifier", c.Package)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return apperrors.NewConfigError("unrecognized log level: '%s'", c.LogLevel)
	}
	if c.OutputFile != "" && c.OutputFile == c.MetricsFile {
		return apperrors.NewConfigError("output file and metrics file must differ: %s", c.OutputFile)
	}
	return nil
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// NTTPARAMS_* environment overrides for flags that were not set, and
// validates the result.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage are printed.
//   - formats: The registered artifact formats.
//   - backends: The registered arithmetic backends.
//   - themes: The available color themes.
//
// Returns:
//   - AppConfig: The populated configuration.
//   - error: flag.ErrHelp for -h, a ConfigError for invalid values, or the
//     flag parsing error.
func ParseConfig(programName string, args []string, errorWriter io.Writer, formats, backends, themes []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.OutputFile, "out", "", "Output file path for the artifact (default: stdout).")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.StringVar(&config.Format, "format", DefaultFormat, fmt.Sprintf("Artifact format, one of [%s].", strings.Join(formats, ", ")))
	fs.StringVar(&config.Package, "package", DefaultPackage, "Package name of the generated Go file.")
	fs.StringVar(&config.Backend, "backend", DefaultBackend, fmt.Sprintf("Arithmetic backend, one of [%s].", strings.Join(backends, ", ")))
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn or error.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, fmt.Sprintf("Color theme, one of [%s].", strings.Join(themes, ", ")))
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - only errors are reported.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Version, "version", false, "Print version information and exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Format = strings.ToLower(config.Format)
	config.Backend = strings.ToLower(config.Backend)
	config.LogLevel = strings.ToLower(config.LogLevel)
	config.Theme = strings.ToLower(config.Theme)
	if err := config.Validate(formats, backends, themes); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// IsHelp reports whether err is the result of -h or -help.
func IsHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\n", fs.Name())
		fmt.Fprintln(out, "Generates the packed table of roots of unity for the NTT.")
		fmt.Fprintln(out, "\nFlags:")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEvery flag can also be set through %s<FLAG> (e.g. %sFORMAT=c).\n", EnvPrefix, EnvPrefix)
	}
}
