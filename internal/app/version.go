// Package app wires the gen-params pipeline together: configuration, root
// derivation, table serialization, rendering and output.
package app

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/nttparams/internal/artifact"
	"github.com/agbru/nttparams/internal/roots"
)

// Build-time variables set via -ldflags, for example:
//
//	go build -ldflags="-X github.com/agbru/nttparams/internal/app.Version=v1.2.3 -X github.com/agbru/nttparams/internal/app.Commit=abc123" ./cmd/gen-params
var (
	// Version is the semantic version of the tool.
	Version = "dev"
	// Commit is the short Git commit hash.
	Commit = "unknown"
	// BuildDate is the ISO 8601 timestamp of the build.
	BuildDate = "unknown"
)

// HasVersionFlag reports whether any argument asks for the version, so that
// --version works even alongside otherwise invalid flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes build information, the compiled-in field parameters
// and the available backends and formats.
func PrintVersion(out io.Writer) {
	p := roots.DefaultParams()
	fmt.Fprintf(out, "%s %s\n", ProgramName, Version)
	fmt.Fprintf(out, "  Commit:     %s\n", Commit)
	fmt.Fprintf(out, "  Built:      %s\n", BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  Modulus:    %s\n", p.Modulus.Text(16))
	fmt.Fprintf(out, "  Orders:     2^%d -> 2^%d\n", p.SourceOrder, p.TargetOrder)
	fmt.Fprintf(out, "  Backends:   %s\n", strings.Join(roots.Backends(), ", "))
	fmt.Fprintf(out, "  Formats:    %s\n", strings.Join(artifact.Formats(), ", "))
}
