// Package table packs a sequence of field elements into one flat,
// fixed-stride byte region.
//
// Every element is rendered as lowercase hexadecimal, left-padded with '0' to
// the width of the widest element, and followed by a single NUL sentinel.
// Record i therefore starts at byte i*(width+1) and can be sliced out
// directly. The region holds no pointers, so once embedded as a constant it
// needs no relocation and can be shared read-only between processes.
package table

import (
	"bytes"
	"fmt"
	"math/big"

	apperrors "github.com/agbru/nttparams/internal/errors"
)

// Sentinel terminates every record.
const Sentinel byte = 0x00

// Table is a packed, fixed-stride table of hexadecimal records.
type Table struct {
	// Width is the number of hex digits per record, excluding the sentinel.
	Width int
	// Data holds Len() records of Stride() bytes each.
	Data []byte
}

// Encode renders values into a packed table.
//
// Returns EmptyTableError for an empty input and a ValidationError for a nil
// or negative entry.
func Encode(values []*big.Int) (*Table, error) {
	if len(values) == 0 {
		return nil, apperrors.EmptyTableError{}
	}

	digits := make([]string, len(values))
	width := 0
	for i, v := range values {
		if v == nil || v.Sign() < 0 {
			return nil, apperrors.NewValidationError("roots",
				fmt.Sprintf("entry %d must be a non-negative integer", i), v)
		}
		digits[i] = v.Text(16)
		if len(digits[i]) > width {
			width = len(digits[i])
		}
	}

	stride := width + 1
	data := make([]byte, 0, len(values)*stride)
	for _, d := range digits {
		for pad := len(d); pad < width; pad++ {
			data = append(data, '0')
		}
		data = append(data, d...)
		data = append(data, Sentinel)
	}
	return &Table{Width: width, Data: data}, nil
}

// Decode wraps an already packed region, such as a generated Roots constant.
// It checks the length is a whole number of records and that every record
// ends in the sentinel.
func Decode(width int, data []byte) (*Table, error) {
	if width <= 0 {
		return nil, apperrors.NewValidationError("width", "must be positive", width)
	}
	if len(data) == 0 {
		return nil, apperrors.EmptyTableError{}
	}
	stride := width + 1
	if len(data)%stride != 0 {
		return nil, apperrors.NewValidationError("data",
			fmt.Sprintf("length %d is not a multiple of the stride %d", len(data), stride), len(data))
	}
	for off := width; off < len(data); off += stride {
		if data[off] != Sentinel {
			return nil, apperrors.NewValidationError("data",
				fmt.Sprintf("record %d is not terminated", off/stride), nil)
		}
	}
	return &Table{Width: width, Data: data}, nil
}

// Stride returns the size of one record in bytes.
func (t *Table) Stride() int { return t.Width + 1 }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Data) / t.Stride() }

// Record returns the hex digits of record i without the sentinel. The slice
// aliases the table's data.
func (t *Table) Record(i int) []byte {
	off := i * t.Stride()
	return t.Data[off : off+t.Width]
}

// Root parses record i as a hexadecimal integer.
func (t *Table) Root(i int) (*big.Int, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("record %d out of range [0, %d)", i, t.Len())
	}
	rec := t.Record(i)
	digits := bytes.TrimLeft(rec, "0")
	if len(digits) == 0 {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(string(digits), 16)
	if !ok {
		return nil, fmt.Errorf("record %d is not hexadecimal: %q", i, rec)
	}
	return v, nil
}

// Roots parses every record.
func (t *Table) Roots() ([]*big.Int, error) {
	out := make([]*big.Int, t.Len())
	for i := range out {
		v, err := t.Root(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
