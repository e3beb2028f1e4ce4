// SPDX-License-Identifier: MIT
// Package grid: Codes is the output grid of per-pixel texture codes.
//
// Codes separates two widths that are easy to conflate:
//   - bits:  how many bits each code actually uses (the sample count p),
//   - width: the storage width the codes are meant to live in (8, 16 or 32).
//
// Invariant: 1 ≤ bits ≤ width and every cell < 2^bits.

package grid

import (
	"strconv"
	"strings"
)

// Supported storage widths for Codes.
const (
	Width8  = 8
	Width16 = 16
	Width32 = 32
)

// ValidWidth reports whether w is a supported storage width.
func ValidWidth(w int) bool {
	return w == Width8 || w == Width16 || w == Width32
}

// Codes is a row-major grid of unsigned texture codes.
type Codes struct {
	r, c  int
	bits  int
	width int
	data  []uint32
}

// NewCodes creates an r×c code grid whose cells hold bits-bit codes stored at
// the given width. All cells start at zero.
// Stage 1 (Validate): shape > 0, width supported, 1 ≤ bits ≤ width.
// Stage 2 (Prepare): allocate flat backing slice.
// Returns ErrBadShape or ErrBadWidth.
// Complexity: O(r*c).
func NewCodes(rows, cols, bits, width int) (*Codes, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if !ValidWidth(width) || bits < 1 || bits > width {
		return nil, ErrBadWidth
	}

	return &Codes{r: rows, c: cols, bits: bits, width: width, data: make([]uint32, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Codes) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Codes) Cols() int { return m.c }

// Bits returns the number of significant bits per code.
func (m *Codes) Bits() int { return m.bits }

// Width returns the storage width in bits.
func (m *Codes) Width() int { return m.width }

// MaxCode returns 2^bits - 1, the largest code a cell may hold.
func (m *Codes) MaxCode() uint32 {
	return uint32((uint64(1) << uint(m.bits)) - 1)
}

func (m *Codes) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, gridErrorf("Codes."+method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the code at (row, col).
// Complexity: O(1).
func (m *Codes) At(row, col int) (uint32, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns code v at (row, col).
// Returns ErrOutOfRange for bad indices and ErrValueOverflow when v ≥ 2^bits;
// the cell is left untouched on error.
// Complexity: O(1).
func (m *Codes) Set(row, col int, v uint32) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v > m.MaxCode() {
		return gridErrorf("Codes.Set", row, col, ErrValueOverflow)
	}
	m.data[idx] = v

	return nil
}

// RowView returns the backing slice for row i without copying.
// Each row may be written by exactly one goroutine at a time; distinct rows
// share no memory, so disjoint row writers need no locking.
func (m *Codes) RowView(i int) []uint32 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Values returns a copy of the flat row-major storage.
func (m *Codes) Values() []uint32 {
	out := make([]uint32, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows returns the codes as a freshly allocated [][]uint32.
func (m *Codes) ToRows() [][]uint32 {
	out := make([][]uint32, m.r)
	for i := range out {
		out[i] = make([]uint32, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether m and o have the same shape, bit count, width and contents.
func (m *Codes) Equal(o *Codes) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c || m.bits != o.bits || m.width != o.width {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (m *Codes) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatUint(uint64(m.data[i*m.c+j]), 10))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// FromValues wraps a copy of a flat buffer as a code grid, validating every cell.
// Used by decoders that rebuild grids from external storage.
// Returns ErrBadShape, ErrBadWidth or a wrapped ErrValueOverflow.
// Complexity: O(r*c).
func FromValues(rows, cols, bits, width int, values []uint32) (*Codes, error) {
	m, err := NewCodes(rows, cols, bits, width)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, ErrBadShape
	}
	limit := m.MaxCode()
	for i, v := range values {
		if v > limit {
			return nil, gridErrorf("FromValues", i/cols, i%cols, ErrValueOverflow)
		}
	}
	copy(m.data, values)

	return m, nil
}
