// SPDX-License-Identifier: MIT
// Package lbp: thresholding and bit packing.
//
// Bit convention: a sample contributes 1 when the CENTER is greater than or
// equal to it (center >= sample). This is the reverse of the textbook
// "neighbor >= center" rule and is kept for compatibility with existing codes.
//
// Packing reads the bits as a big-endian binary number: the first sample in
// traversal order becomes the most significant bit.

package lbp

import (
	"github.com/katalvlaran/lbp/grid"
)

// Threshold returns one bit (0 or 1) per sample: 1 iff center >= sample.
// Complexity: O(len(samples)).
func Threshold(samples []uint8, center uint8) []uint8 {
	bits := make([]uint8, len(samples))
	for k, s := range samples {
		bits[k] = bit(center, s)
	}

	return bits
}

// Encode thresholds samples against center and packs the bits MSB-first.
//
// Errors:
//   - ErrInvalidStorageWidth: width not 8, 16 or 32.
//   - ErrInvalidSampleCount:  no samples.
//   - ErrEncodingOverflow:    len(samples) > width.
//
// Complexity: O(len(samples)).
func Encode(samples []uint8, center uint8, width int) (uint32, error) {
	if !grid.ValidWidth(width) {
		return 0, lbpErrorf(opEncode, ErrInvalidStorageWidth)
	}
	if len(samples) == 0 {
		return 0, lbpErrorf(opEncode, ErrInvalidSampleCount)
	}
	if len(samples) > width {
		return 0, lbpErrorf(opEncode, ErrEncodingOverflow)
	}

	return packBits(samples, center), nil
}

// packBits folds the threshold bits of samples into a code.
// Requires len(samples) ≤ 32.
func packBits(samples []uint8, center uint8) uint32 {
	return fold(samples, uint32(0), func(code uint32, s uint8) uint32 {
		return code<<1 | uint32(bit(center, s))
	})
}

// bit is the per-sample threshold.
func bit(center, sample uint8) uint8 {
	if center >= sample {
		return 1
	}

	return 0
}

// fold is a left fold of xs starting from acc.
func fold[T, A any](xs []T, acc A, f func(A, T) A) A {
	for _, x := range xs {
		acc = f(acc, x)
	}

	return acc
}
