// SPDX-License-Identifier: MIT
// Package histogram: LBP code histograms and the distances used to compare them.
//
// Exposed API:
//   - Compute(codes)                  -> global histogram, 2^bits bins
//   - Spatial(codes, cellRows, cellCols) -> concatenated per-cell histograms
//   - (*Histogram).Normalize          -> L1-normalized copy (per cell)
//   - ChiSquare(a, b), Intersection(a, b)
//   - (*Histogram).Entropy, (*Histogram).MeanStdDev
//
// Determinism & Performance:
//   - Fixed row-major traversal; counts are exact integers stored as float64.
//   - Reductions go through gonum/floats and gonum/stat.

package histogram

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lbp/grid"
)

// MaxBits is the largest code width a histogram accepts (2^16 bins).
const MaxBits = 16

// Histogram holds Cells consecutive blocks of Bins counts each.
// A global histogram has Cells == 1.
type Histogram struct {
	Bins   int       // bins per cell, 2^bits
	Cells  int       // number of spatial cells
	Counts []float64 // len == Bins*Cells
}

// Compute counts how often each code occurs in codes.
// Returns ErrNilCodes or ErrTooManyBins.
// Complexity: O(W·H + 2^bits).
func Compute(codes *grid.Codes) (*Histogram, error) {
	return Spatial(codes, 1, 1)
}

// Spatial divides codes into cellRows×cellCols nearly equal rectangles and
// concatenates their histograms in row-major cell order.
// Cell (a, b) covers rows [a·R/cellRows, (a+1)·R/cellRows) and the matching
// column range, so every pixel belongs to exactly one cell.
// Returns ErrNilCodes, ErrTooManyBins or ErrBadCells.
// Complexity: O(W·H + cells·2^bits).
func Spatial(codes *grid.Codes, cellRows, cellCols int) (*Histogram, error) {
	// Stage 1 (Validate)
	if codes == nil {
		return nil, histErrorf(opSpatial, ErrNilCodes)
	}
	if codes.Bits() > MaxBits {
		return nil, histErrorf(opSpatial, ErrTooManyBins)
	}
	rows, cols := codes.Rows(), codes.Cols()
	if cellRows < 1 || cellCols < 1 || cellRows > rows || cellCols > cols {
		return nil, histErrorf(opSpatial, ErrBadCells)
	}

	// Stage 2 (Prepare)
	bins := 1 << uint(codes.Bits())
	h := &Histogram{Bins: bins, Cells: cellRows * cellCols, Counts: make([]float64, bins*cellRows*cellCols)}

	// Stage 3 (Execute)
	for a := 0; a < cellRows; a++ {
		r0, r1 := a*rows/cellRows, (a+1)*rows/cellRows
		for b := 0; b < cellCols; b++ {
			c0, c1 := b*cols/cellCols, (b+1)*cols/cellCols
			block := h.Counts[(a*cellCols+b)*bins : (a*cellCols+b+1)*bins]
			for i := r0; i < r1; i++ {
				row := codes.RowView(i)
				for _, v := range row[c0:c1] {
					block[v]++
				}
			}
		}
	}

	return h, nil
}

// Cell returns the counts of cell k without copying.
func (h *Histogram) Cell(k int) []float64 {
	return h.Counts[k*h.Bins : (k+1)*h.Bins]
}

// Total returns the sum of all counts.
func (h *Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}

// Normalize returns a copy in which every cell sums to 1.
// Empty cells stay all-zero.
// Complexity: O(len(Counts)).
func (h *Histogram) Normalize() *Histogram {
	out := &Histogram{Bins: h.Bins, Cells: h.Cells, Counts: make([]float64, len(h.Counts))}
	copy(out.Counts, h.Counts)
	for k := 0; k < h.Cells; k++ {
		cell := out.Cell(k)
		if s := floats.Sum(cell); s > 0 {
			floats.Scale(1/s, cell)
		}
	}

	return out
}

// Entropy returns the Shannon entropy, in bits, of the whole histogram
// treated as one distribution. Zero for an empty histogram.
func (h *Histogram) Entropy() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	p := make([]float64, len(h.Counts))
	floats.ScaleTo(p, 1/total, h.Counts)

	return stat.Entropy(p) / math.Ln2
}

// MeanStdDev returns the weighted mean and standard deviation of the codes,
// using bin indices as values and counts as weights. Spatial histograms are
// folded onto a single cell first.
// Returns (NaN, NaN) for an empty histogram.
func (h *Histogram) MeanStdDev() (mean, std float64) {
	weights := make([]float64, h.Bins)
	for k := 0; k < h.Cells; k++ {
		floats.Add(weights, h.Cell(k))
	}
	if floats.Sum(weights) == 0 {
		return math.NaN(), math.NaN()
	}
	values := make([]float64, h.Bins)
	for v := range values {
		values[v] = float64(v)
	}

	return stat.MeanStdDev(values, weights)
}

// ChiSquare returns Σ (a−b)² / (a+b) over bins where a+b > 0.
// Histograms must have the same layout; pass normalized histograms to compare
// images of different sizes.
// Returns ErrLayoutMismatch.
func ChiSquare(a, b *Histogram) (float64, error) {
	if err := sameLayout(a, b); err != nil {
		return 0, histErrorf(opChiSquare, err)
	}
	var d float64
	for k, x := range a.Counts {
		y := b.Counts[k]
		if s := x + y; s > 0 {
			d += (x - y) * (x - y) / s
		}
	}

	return d, nil
}

// Intersection returns Σ min(a, b), the histogram intersection similarity.
// Returns ErrLayoutMismatch.
func Intersection(a, b *Histogram) (float64, error) {
	if err := sameLayout(a, b); err != nil {
		return 0, histErrorf(opIntersection, err)
	}
	var s float64
	for k, x := range a.Counts {
		s += math.Min(x, b.Counts[k])
	}

	return s, nil
}

func sameLayout(a, b *Histogram) error {
	if a == nil || b == nil {
		return ErrNilHistogram
	}
	if a.Bins != b.Bins || a.Cells != b.Cells || len(a.Counts) != len(b.Counts) {
		return ErrLayoutMismatch
	}

	return nil
}
