package artifact

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"
)

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by {{.Source}}. DO NOT EDIT.

// Package {{.Package}} holds the roots of unity of order 2^{{.Order}} over
// the prime field Z_p, packed for direct offset access.
package {{.Package}}

// Modulus is the prime modulus p in hexadecimal.
const Modulus = "{{.Modulus}}"

// Generator generates the subgroup of order 2^Generator2Order in Z*_p.
const Generator = "{{.Generator}}"

// Generator2Order is log2 of the order of the subgroup generated by Generator.
const Generator2Order = {{.Order}}

// RootWidth is the number of hex digits in each entry of Roots.
const RootWidth = {{.Width}}

// RootStride is the distance in bytes between consecutive entries of Roots.
const RootStride = RootWidth + 1

// Roots holds Generator^i mod p for i in [0, 2^Generator2Order) as
// zero-padded hex records, each terminated by a NUL byte. Entry i starts at
// byte i*RootStride. The inverse root of index i > 0 is entry
// 2^Generator2Order - i.
const Roots = ""{{range .Records}} +
	"{{.}}\x00"{{end}}
`))

type goView struct {
	Source    string
	Package   string
	Modulus   string
	Generator string
	Order     uint
	Width     int
	Records   []string
}

// GoRenderer renders an artifact as a Go source file.
type GoRenderer struct{}

// Name returns "go".
func (GoRenderer) Name() string { return "go" }

// Render writes a gofmt-formatted Go file declaring Modulus, Generator,
// Generator2Order, RootWidth, RootStride and Roots.
func (GoRenderer) Render(w io.Writer, a Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	view := goView{
		Source:    a.source(),
		Package:   a.pkg(),
		Modulus:   a.Modulus.Text(16),
		Generator: a.Generator.Text(16),
		Order:     a.Order,
		Width:     a.Table.Width,
		Records:   make([]string, a.Table.Len()),
	}
	for i := range view.Records {
		view.Records[i] = string(a.Table.Record(i))
	}

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, view); err != nil {
		return fmt.Errorf("executing go template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated go source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
