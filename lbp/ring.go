// SPDX-License-Identifier: MIT
// Package lbp: neighborhood ring extraction.

package lbp

import (
	"github.com/katalvlaran/lbp/grid"
)

// ExtractRing returns the boundary ring of the (2r+1)×(2r+1) window centered
// at original pixel (i, j), read from a grid already padded by r.
//
// Traversal is clockwise from the top-left corner, as four edges:
//  1. top, left→right, all 2r+1 cells;
//  2. right, top→bottom, without the top-right corner (2r cells);
//  3. bottom, right→left; RingDuplicateCorner starts at the bottom-right
//     corner again (2r+1 cells), RingDistinctCorners skips it (2r cells);
//  4. left, bottom→top, without either corner (2r-1 cells).
//
// Example (r=1, pixel (0,0) of [[1,2,3],[4,5,6],[7,8,9]] padded by 1):
//
//	0 0 0
//	0 1 2   ->  [0 0 0 | 2 5 | 5 4 0 | 0]
//	0 4 5
//
// Errors:
//   - ErrInvalidGrid:     nil or empty padded grid.
//   - ErrInvalidRadius:   r < 1.
//   - ErrInvalidRingMode: unknown mode.
//   - ErrOutOfRange:      window does not fit inside the padded grid.
//
// Complexity: O(r) time, one allocation of RingLength(r, mode) bytes.
func ExtractRing(padded *grid.Gray, i, j, r int, mode RingMode) ([]uint8, error) {
	// Stage 1 (Validate)
	if err := grid.ValidateGray(padded); err != nil {
		return nil, lbpErrorf(opExtractRing, ErrInvalidGrid)
	}
	if r < 1 {
		return nil, lbpErrorf(opExtractRing, ErrInvalidRadius)
	}
	if !mode.valid() {
		return nil, lbpErrorf(opExtractRing, ErrInvalidRingMode)
	}
	if i < 0 || j < 0 || i+2*r >= padded.Rows() || j+2*r >= padded.Cols() {
		return nil, lbpErrorf(opExtractRing, ErrOutOfRange)
	}

	// Stage 2 (Execute)
	return appendRing(make([]uint8, 0, RingLength(r, mode)), padded, i, j, r, mode), nil
}

// appendRing appends the ring of original pixel (i, j) to dst and returns it.
// No validation: callers guarantee the window lies inside padded.
func appendRing(dst []uint8, padded *grid.Gray, i, j, r int, mode RingMode) []uint8 {
	side := 2 * r
	top, bottom := i, i+side
	left, right := j, j+side

	// 1. top edge, left→right
	dst = append(dst, padded.RowView(top)[left:right+1]...)

	// 2. right edge, top→bottom, skip the top-right corner
	for y := top + 1; y <= bottom; y++ {
		dst = append(dst, padded.RowView(y)[right])
	}

	// 3. bottom edge, right→left
	row := padded.RowView(bottom)
	start := right
	if mode == RingDistinctCorners {
		start-- // bottom-right already emitted by the right edge
	}
	for x := start; x >= left; x-- {
		dst = append(dst, row[x])
	}

	// 4. left edge, bottom→top, skip both corners
	for y := bottom - 1; y > top; y-- {
		dst = append(dst, padded.RowView(y)[left])
	}

	return dst
}
