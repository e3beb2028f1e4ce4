// SPDX-License-Identifier: MIT
// Package lbp: sentinel error set.
// Every public entry point validates its inputs before any per-pixel work and
// returns one of these sentinels, wrapped with the operation name. Callers and
// tests match them with errors.Is.

package lbp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRadius is returned when the ring radius r is ≤ 0.
	ErrInvalidRadius = errors.New("lbp: ring radius must be >= 1")

	// ErrInvalidSampleCount is returned when p ≤ 0, p exceeds the storage
	// width, or p exceeds the ring length (fewer ring positions than samples).
	ErrInvalidSampleCount = errors.New("lbp: invalid sample count")

	// ErrInvalidGrid is returned for a nil or empty input grid.
	ErrInvalidGrid = errors.New("lbp: invalid grid")

	// ErrInvalidStorageWidth is returned when the code storage width is not 8, 16 or 32.
	ErrInvalidStorageWidth = errors.New("lbp: storage width must be 8, 16 or 32")

	// ErrEncodingOverflow is returned when more bits are packed than the
	// destination width can hold. Codes are never silently truncated.
	ErrEncodingOverflow = errors.New("lbp: packed code exceeds storage width")

	// ErrInvalidRingMode is returned for an unknown RingMode value.
	ErrInvalidRingMode = errors.New("lbp: unknown ring mode")

	// ErrOutOfRange is returned when a pixel coordinate lies outside the padded grid.
	ErrOutOfRange = errors.New("lbp: pixel coordinate out of range")
)

// Operation names used for error wrapping.
const (
	opExtractRing = "ExtractRing"
	opSample      = "Sample"
	opEncode      = "Encode"
	opTransform   = "Transform"
)

// lbpErrorf wraps err with the operation tag; errors.Is still matches the sentinel.
func lbpErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
