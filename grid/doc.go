// Package grid provides the two-dimensional containers used by the lbp
// texture pipeline.
//
// What:
//
//   - Gray wraps a rectangular, single-channel uint8 intensity grid
//     (row-major, flat storage, deep-copied on construction).
//   - Codes holds per-pixel texture codes with an explicit bit count and
//     storage width (8, 16 or 32), rejecting values that do not fit.
//   - Pad / ZeroPadder produce zero-bordered copies so neighborhood kernels
//     never need bounds checks; PadCache memoizes them by xxhash fingerprint.
//
// Complexity:
//
//   - Construction, Clone, Pix, ToRows: O(W×H) time and memory.
//   - At / Set:                         O(1).
//   - Pad:                              O((W+2w)×(H+2w)).
//   - PadCache.Pad:                     O(W×H) on a hit, plus Pad on a miss.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadShape:       non-positive dimensions or wrong buffer length.
//   - ErrOutOfRange:     index outside the grid.
//   - ErrBadWidth:       unsupported storage width or bits > width.
//   - ErrValueOverflow:  code ≥ 2^bits.
//   - ErrNilGrid:        nil grid passed to a validator.
//   - ErrBadPadWidth:    negative pad width.
package grid
