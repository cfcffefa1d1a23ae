package artifact

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
)

var cTemplate = template.Must(template.New("c").Parse(`/****
 * NOTE: This file was auto-generated by {{.Source}}.
 * Do not edit this file. Instead, edit the generator.
 */

#ifndef {{.Guard}}
#define {{.Guard}}

// A prime modulus p.
static const char Modulus[] = "{{.Modulus}}";

// A generator g of a subgroup of Z*_p.
// static const char Generator[] = "{{.Generator}}";

// The generator g generates a subgroup of
// order 2^Generator2Order in Z*_p.
static const int Generator2Order = {{.Order}};

// Width of entries in Roots, excluding the NUL terminator.
static const unsigned int RootWidth = {{.Width}};
// Distance in bytes between consecutive entries of Roots.
static const unsigned int RootStride = {{.Width}} + 1;

// clang-format off
static const char Roots[] = {
    {{.Entries}}
};
// clang-format on

#endif /* {{.Guard}} */
`))

type cView struct {
	Source    string
	Guard     string
	Modulus   string
	Generator string
	Order     uint
	Width     int
	Entries   string
}

// CHeaderRenderer renders an artifact as a C header.
type CHeaderRenderer struct{}

// Name returns "c".
func (CHeaderRenderer) Name() string { return "c" }

// Render writes a C header declaring Modulus, Generator2Order, RootWidth,
// RootStride and the Roots character array. The derived generator is kept
// as a comment.
func (CHeaderRenderer) Render(w io.Writer, a Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	entries := make([]string, a.Table.Len())
	for i := range entries {
		entries[i] = cEntry(a.Table.Record(i))
	}
	view := cView{
		Source:    a.source(),
		Guard:     "__" + strings.ToUpper(a.pkg()) + "_H__",
		Modulus:   a.Modulus.Text(16),
		Generator: a.Generator.Text(16),
		Order:     a.Order,
		Width:     a.Table.Width,
		Entries:   strings.Join(entries, ",\n    "),
	}

	var buf bytes.Buffer
	if err := cTemplate.Execute(&buf, view); err != nil {
		return fmt.Errorf("executing c template: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// cEntry spells one record as character literals followed by '\0', with the
// record itself in a leading comment.
func cEntry(rec []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, `/* "%s" */ `, rec)
	for _, c := range rec {
		fmt.Fprintf(&b, "'%c', ", c)
	}
	b.WriteString(`'\0'`)
	return b.String()
}
