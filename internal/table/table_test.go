package table

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/agbru/nttparams/internal/errors"
)

func ints(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestEncode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    []*big.Int
		width int
		data  string
	}{
		{"single digit", ints(1, 2, 4, 3), 1, "1\x002\x004\x003\x00"},
		{"padded", ints(1, 0xab, 0x1ff), 3, "001\x000ab\x001ff\x00"},
		{"zero", ints(0, 16), 2, "00\x0010\x00"},
		{"lowercase", ints(0xABCDEF), 6, "abcdef\x00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tbl, err := Encode(tt.in)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if tbl.Width != tt.width {
				t.Errorf("width = %d, want %d", tbl.Width, tt.width)
			}
			if string(tbl.Data) != tt.data {
				t.Errorf("data = %q, want %q", tbl.Data, tt.data)
			}
			if tbl.Len() != len(tt.in) {
				t.Errorf("Len() = %d, want %d", tbl.Len(), len(tt.in))
			}
		})
	}
}

func TestEncodeRejectsEmpty(t *testing.T) {
	t.Parallel()
	for _, in := range [][]*big.Int{nil, {}} {
		_, err := Encode(in)
		if !errors.Is(err, apperrors.ErrEmptyTable) {
			t.Errorf("Encode(%v) = %v, want ErrEmptyTable", in, err)
		}
	}
}

func TestEncodeRejectsNegativeAndNil(t *testing.T) {
	t.Parallel()
	for _, in := range [][]*big.Int{ints(1, -2), {big.NewInt(1), nil}} {
		_, err := Encode(in)
		var valErr apperrors.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("Encode(%v) = %v, want ValidationError", in, err)
		}
	}
}

func TestRecordAndRoot(t *testing.T) {
	t.Parallel()
	in := ints(1, 0x5569, 0, 0xfff)
	tbl, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(tbl.Record(1)); got != "5569" {
		t.Errorf("Record(1) = %q", got)
	}
	if got := string(tbl.Record(2)); got != "0000" {
		t.Errorf("Record(2) = %q", got)
	}
	for i, want := range in {
		got, err := tbl.Root(i)
		if err != nil {
			t.Fatalf("Root(%d) failed: %v", i, err)
		}
		if got.Cmp(want) != 0 {
			t.Errorf("Root(%d) = %v, want %v", i, got, want)
		}
	}
	if _, err := tbl.Root(4); err == nil {
		t.Error("Root out of range should fail")
	}
	if _, err := tbl.Root(-1); err == nil {
		t.Error("negative index should fail")
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()
	tbl, err := Encode(ints(7, 0x100, 0x2a))
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(tbl.Width, tbl.Data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	roots, err := back.Roots()
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 3 || roots[0].Int64() != 7 || roots[1].Int64() != 0x100 || roots[2].Int64() != 0x2a {
		t.Errorf("Roots() = %v", roots)
	}

	tests := []struct {
		name  string
		width int
		data  []byte
	}{
		{"zero width", 0, []byte("\x00")},
		{"empty", 3, nil},
		{"ragged", 3, []byte("001\x0002")},
		{"missing sentinel", 3, []byte("001\x00002;")},
		{"bad digit", 2, []byte("zz\x00")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := Decode(tt.width, tt.data)
			if err == nil {
				_, err = d.Roots()
			}
			if err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	t.Parallel()
	in := ints(1, 2, 3, 0xdeadbeef)
	a, _ := Encode(in)
	b, _ := Encode(in)
	if !bytes.Equal(a.Data, b.Data) || a.Width != b.Width {
		t.Error("Encode is not deterministic")
	}
}
