// Package lbp computes Local Binary Pattern (LBP) texture codes for
// single-channel 8-bit images.
//
// What is LBP?
//
//	For every pixel, the intensities on a square ring of radius r around it
//	are reduced to p samples, each sample is compared with the center, and
//	the p comparison bits are packed into an integer. Uniform areas map to
//	all-ones codes; edges, spots and corners map to characteristic patterns.
//	Histograms of these codes are classic texture descriptors
//	(Ojala, Pietikäinen, Mäenpää, TPAMI 24(7), 2002).
//
// Pipeline (one pixel):
//
//	ExtractRing : clockwise boundary of the (2r+1)×(2r+1) window, from the
//	              top-left corner; 8r+1 values (bottom-right corner twice)
//	              or 8r with RingDistinctCorners.
//	Sample      : fractional windows of width L/p+1; the midpoint value,
//	              or the floor-average of its two neighbors.
//	Threshold   : bit 1 iff center >= sample.
//	Encode      : bits packed MSB-first.
//
// Transform runs the pipeline over a zero-padded copy of the image, in
// parallel row bands by default.
//
// Usage:
//
//	img, _ := grid.FromRows(rows)
//	codes, err := lbp.Transform(img, 1, 8)                  // r=1, p=8, uint8 codes
//	codes, err = lbp.Transform(img, 2, 12,
//		lbp.WithStorageWidth(16), lbp.WithDistinctCorners()) // wider codes
//
// Parameters:
//
//   - r ≥ 1
//   - 1 ≤ p ≤ storage width (8 by default), and p ≤ ring length
//
// Complexity:
//
//   - Transform: O(W·H·(r+p)) time, O((W+2r)·(H+2r)) memory.
package lbp
