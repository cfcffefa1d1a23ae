package config

import (
	"flag"
	"os"
	"strings"
)

// getEnvString returns the value of EnvPrefix+key, or defaultVal if unset.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvBool returns EnvPrefix+key parsed as a bool, or defaultVal if unset
// or unparseable. Accepts "true", "1", "yes" and "false", "0", "no".
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// isFlagSet reports whether any of names was given on the command line.
func isFlagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// applyEnvOverrides fills in configuration values from the environment for
// flags that were not set explicitly (CLI > environment > defaults).
//
// Supported environment variables:
//   - NTTPARAMS_OUT: artifact path
//   - NTTPARAMS_FORMAT: artifact format
//   - NTTPARAMS_PACKAGE: generated package name
//   - NTTPARAMS_BACKEND: arithmetic backend
//   - NTTPARAMS_METRICS_FILE: Prometheus textfile path
//   - NTTPARAMS_LOG_LEVEL: log level
//   - NTTPARAMS_THEME: color theme
//   - NTTPARAMS_NO_COLOR: disable colors (bool)
//   - NTTPARAMS_QUIET: quiet mode (bool)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	strs := []struct {
		flags []string
		env   string
		dst   *string
	}{
		{[]string{"out", "o"}, "OUT", &config.OutputFile},
		{[]string{"format"}, "FORMAT", &config.Format},
		{[]string{"package"}, "PACKAGE", &config.Package},
		{[]string{"backend"}, "BACKEND", &config.Backend},
		{[]string{"metrics-file"}, "METRICS_FILE", &config.MetricsFile},
		{[]string{"log-level"}, "LOG_LEVEL", &config.LogLevel},
		{[]string{"theme"}, "THEME", &config.Theme},
	}
	for _, o := range strs {
		if !isFlagSet(fs, o.flags...) {
			*o.dst = getEnvString(o.env, *o.dst)
		}
	}

	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
	if !isFlagSet(fs, "quiet", "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
}
