// SPDX-License-Identifier: MIT

package histogram

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCodes indicates a nil code grid.
	ErrNilCodes = errors.New("histogram: nil code grid")

	// ErrTooManyBins indicates codes wider than MaxBits.
	ErrTooManyBins = errors.New("histogram: code bit count exceeds MaxBits")

	// ErrBadCells indicates a cell layout that is empty or finer than the grid.
	ErrBadCells = errors.New("histogram: invalid cell layout")

	// ErrNilHistogram indicates a nil histogram argument.
	ErrNilHistogram = errors.New("histogram: nil histogram")

	// ErrLayoutMismatch indicates histograms with different bins or cells.
	ErrLayoutMismatch = errors.New("histogram: layout mismatch")

	// ErrEmpty indicates a histogram with no counts where some are required.
	ErrEmpty = errors.New("histogram: empty histogram")
)

const (
	opSpatial      = "Spatial"
	opChiSquare    = "ChiSquare"
	opIntersection = "Intersection"
	opPlot         = "Plot"
)

func histErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
