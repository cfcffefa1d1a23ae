// Package artifact renders a derived roots table as a source file that a
// downstream program embeds as constant data.
//
// Two formats are registered: "go" emits a gofmt-clean Go file whose Roots
// constant is a single string (read-only data, no pointers), and "c" emits a
// header whose Roots array is spelled out character by character, because
// some C compilers reject very long string literals.
//
// Rendering is deterministic: the same Artifact always produces the same
// bytes, so generated files can be checked in and reviewed.
package artifact

import (
	"fmt"
	"io"
	"math/big"
	"sort"

	apperrors "github.com/agbru/nttparams/internal/errors"
	"github.com/agbru/nttparams/internal/table"
)

// DefaultPackage is the Go package name used when Artifact.Package is empty.
const DefaultPackage = "params"

// DefaultFormat is the format used when none is configured.
const DefaultFormat = "go"

// Artifact is everything a rendered file carries.
type Artifact struct {
	// Modulus is the prime modulus p.
	Modulus *big.Int
	// Generator generates the subgroup of order 2^Order.
	Generator *big.Int
	// Order is log2 of the number of roots.
	Order uint
	// Table holds the packed roots.
	Table *table.Table
	// Package is the Go package (or C include-guard stem) of the output.
	Package string
	// Source names the generator in the "do not edit" banner.
	Source string
}

// Validate checks the artifact is complete and its table has 2^Order records.
func (a Artifact) Validate() error {
	if a.Modulus == nil {
		return apperrors.NewValidationError("modulus", "is required", nil)
	}
	if a.Generator == nil {
		return apperrors.NewValidationError("generator", "is required", nil)
	}
	if a.Table == nil {
		return apperrors.EmptyTableError{}
	}
	if want := 1 << a.Order; a.Table.Len() != want {
		return apperrors.NewValidationError("table",
			fmt.Sprintf("has %d records, want 2^%d = %d", a.Table.Len(), a.Order, want), a.Table.Len())
	}
	return nil
}

func (a Artifact) pkg() string {
	if a.Package == "" {
		return DefaultPackage
	}
	return a.Package
}

func (a Artifact) source() string {
	if a.Source == "" {
		return "gen-params"
	}
	return a.Source
}

// Renderer writes an artifact in one output format.
type Renderer interface {
	// Name returns the format name.
	Name() string
	// Render writes the artifact to w. Nothing is written if rendering fails.
	Render(w io.Writer, a Artifact) error
}

var renderers = map[string]Renderer{
	"go": GoRenderer{},
	"c":  CHeaderRenderer{},
}

// Lookup returns the renderer registered for format.
func Lookup(format string) (Renderer, error) {
	r, ok := renderers[format]
	if !ok {
		return nil, apperrors.NewConfigError("unknown output format %q (available: %v)", format, Formats())
	}
	return r, nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
