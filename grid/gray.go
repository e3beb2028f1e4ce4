// SPDX-License-Identifier: MIT
// Package grid: Gray is the single-channel 8-bit intensity grid.
// Storage is row-major in a flat slice; rows*cols elements exactly.

package grid

import (
	"strconv"
	"strings"
)

// Gray is a row-major grid of unsigned 8-bit intensities.
// r is rows, c is columns, and pix holds r*c elements in row-major order.
type Gray struct {
	r, c int     // number of rows and columns
	pix  []uint8 // flat backing storage, length == r*c
}

// NewGray creates an r×c Gray grid initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewGray(rows, cols int) (*Gray, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Gray{r: rows, c: cols, pix: make([]uint8, rows*cols)}, nil
}

// FromRows builds a Gray grid from a non-empty, rectangular 2D slice.
// The input is deep-copied; later changes to values do not affect the grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(r*c) time and memory.
func FromRows(values [][]uint8) (*Gray, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Gray{r: h, c: w, pix: make([]uint8, h*w)}
	for i, row := range values {
		copy(g.pix[i*w:(i+1)*w], row)
	}

	return g, nil
}

// FromPix wraps a copy of a flat row-major buffer as a rows×cols grid.
// Returns ErrBadShape when the dimensions are non-positive or len(pix) != rows*cols.
// Complexity: O(r*c).
func FromPix(rows, cols int, pix []uint8) (*Gray, error) {
	if rows <= 0 || cols <= 0 || len(pix) != rows*cols {
		return nil, ErrBadShape
	}
	data := make([]uint8, len(pix))
	copy(data, pix)

	return &Gray{r: rows, c: cols, pix: data}, nil
}

// Rows returns the number of rows in the grid.
func (g *Gray) Rows() int { return g.r }

// Cols returns the number of columns in the grid.
func (g *Gray) Cols() int { return g.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Gray) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, gridErrorf("Gray."+method, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// At retrieves the intensity at (row, col).
// Complexity: O(1).
func (g *Gray) At(row, col int) (uint8, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return g.pix[idx], nil
}

// Set assigns intensity v at (row, col).
// Complexity: O(1).
func (g *Gray) Set(row, col int, v uint8) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.pix[idx] = v

	return nil
}

// at is the unchecked accessor used by hot loops after validation.
func (g *Gray) at(row, col int) uint8 {
	return g.pix[row*g.c+col]
}

// RowView returns the backing slice for row i without copying.
// The caller must treat it as read-only. Panics if i is out of range;
// intended for kernels that have already validated their indices.
func (g *Gray) RowView(i int) []uint8 {
	return g.pix[i*g.c : (i+1)*g.c : (i+1)*g.c]
}

// Pix returns a copy of the flat row-major storage.
// Complexity: O(r*c).
func (g *Gray) Pix() []uint8 {
	out := make([]uint8, len(g.pix))
	copy(out, g.pix)

	return out
}

// ToRows returns the grid as a freshly allocated [][]uint8.
// Complexity: O(r*c).
func (g *Gray) ToRows() [][]uint8 {
	out := make([][]uint8, g.r)
	for i := range out {
		out[i] = make([]uint8, g.c)
		copy(out[i], g.pix[i*g.c:(i+1)*g.c])
	}

	return out
}

// Clone returns a deep copy of the grid.
// Complexity: O(r*c).
func (g *Gray) Clone() *Gray {
	return &Gray{r: g.r, c: g.c, pix: g.Pix()}
}

// Equal reports whether g and o have the same shape and contents.
// Two nil grids are equal.
func (g *Gray) Equal(o *Gray) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.r != o.r || g.c != o.c {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != o.pix[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (g *Gray) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < g.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(int(g.pix[i*g.c+j])))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// ValidateGray ensures g is non-nil and has a positive shape.
// Returns a wrapped ErrNilGrid or ErrEmptyGrid.
// Complexity: O(1).
func ValidateGray(g *Gray) error {
	if g == nil {
		return validatorErrorf("ValidateGray", ErrNilGrid)
	}
	if g.r <= 0 || g.c <= 0 || len(g.pix) != g.r*g.c {
		return validatorErrorf("ValidateGray", ErrEmptyGrid)
	}

	return nil
}
