// SPDX-License-Identifier: MIT
// Package lbp: fractional-window pattern sampler.
//
// A ring of length L is reduced to exactly p values. Window j spans
// [start_j, start_j + L/p + 1] in 1-based ring positions, consecutive windows
// share their boundary position, and the sample is the ring value at the
// window midpoint. When the midpoint falls between two positions the two
// neighbors are averaged with floor division.
//
// All positions are multiples of 1/(2p), so the arithmetic is done on
// integers scaled by 2p:
//
//	mid_j = (2·j·L + L + p) / (2p)
//
// which keeps the result exact for every (L, p).

package lbp

// Sample reduces ring to exactly p values.
//
// Errors:
//   - ErrInvalidSampleCount: p < 1 or p > len(ring).
//
// Complexity: O(p) time, one allocation of p bytes.
func Sample(ring []uint8, p int) ([]uint8, error) {
	if p < 1 || p > len(ring) {
		return nil, lbpErrorf(opSample, ErrInvalidSampleCount)
	}

	return sampleInto(make([]uint8, 0, p), ring, p), nil
}

// sampleInto appends the p samples of ring to dst.
// Requires 1 ≤ p ≤ len(ring); both midpoint neighbors then stay within [1, L].
func sampleInto(dst, ring []uint8, p int) []uint8 {
	l := len(ring)
	den := 2 * p
	for j := 0; j < p; j++ {
		num := 2*j*l + l + p
		lower := num / den // floor(mid), 1-based
		if num%den == 0 {
			dst = append(dst, ring[lower-1])
			continue
		}
		upper := lower + 1 // ceil(mid)
		avg := (uint16(ring[upper-1]) + uint16(ring[lower-1])) / 2
		dst = append(dst, uint8(avg))
	}

	return dst
}
