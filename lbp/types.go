// SPDX-License-Identifier: MIT
// Package lbp: ring traversal modes.

package lbp

// RingMode selects how the four edges of the square ring are joined.
//
//   - RingDuplicateCorner: the historical traversal: the bottom edge starts
//     at the bottom-right corner although the right edge already ended there,
//     so that value appears twice in a row. Length 8r+1.
//
//   - RingDistinctCorners: every boundary cell exactly once. Length 8r.
//
// The default is RingDuplicateCorner so codes stay compatible with existing
// descriptors computed by the reference traversal.
type RingMode int

const (
	// RingDuplicateCorner repeats the bottom-right corner (length 8r+1).
	RingDuplicateCorner RingMode = iota

	// RingDistinctCorners visits each boundary cell once (length 8r).
	RingDistinctCorners
)

// String returns a stable lower-case name for the mode.
func (m RingMode) String() string {
	switch m {
	case RingDuplicateCorner:
		return "duplicate-corner"
	case RingDistinctCorners:
		return "distinct-corners"
	default:
		return "unknown"
	}
}

// ParseRingMode is the inverse of RingMode.String.
func ParseRingMode(s string) (RingMode, error) {
	switch s {
	case "duplicate-corner", "":
		return RingDuplicateCorner, nil
	case "distinct-corners":
		return RingDistinctCorners, nil
	default:
		return 0, ErrInvalidRingMode
	}
}

func (m RingMode) valid() bool {
	return m == RingDuplicateCorner || m == RingDistinctCorners
}

// RingLength returns the number of values ExtractRing yields for radius r.
// Returns 0 for r < 1 or an unknown mode.
// Complexity: O(1).
func RingLength(r int, mode RingMode) int {
	if r < 1 || !mode.valid() {
		return 0
	}
	if mode == RingDistinctCorners {
		return 8 * r
	}

	return 8*r + 1
}
