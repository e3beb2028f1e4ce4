// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with method context); tests match them via errors.Is. Nothing in this
// package panics on user-triggered conditions.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0)
	// or when a flat buffer does not hold exactly rows*cols values.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNilGrid indicates that a nil *Gray or *Codes was used.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrBadWidth indicates an unsupported code storage width or a bit count
	// that does not fit into it.
	ErrBadWidth = errors.New("grid: unsupported code width")

	// ErrValueOverflow indicates a code that does not fit into the grid's bit count.
	ErrValueOverflow = errors.New("grid: code exceeds bit count")

	// ErrBadPadWidth indicates a negative padding margin.
	ErrBadPadWidth = errors.New("grid: pad width must be >= 0")
)

// gridErrorf wraps an underlying error with method and coordinate context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}

// validatorErrorf tags a sentinel with the validator that raised it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
