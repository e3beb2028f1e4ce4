// Package lbp is a Local Binary Pattern toolkit: texture codes for grayscale
// images, their histograms, and the plumbing to move both in and out of files.
//
// What is LBP?
//
//	Every pixel is compared with samples taken on the square ring of radius r
//	around it. Each comparison yields one bit (1 when the center is at least
//	the sample), and the p bits packed MSB-first form the pixel's code.
//	Histograms of codes over an image, or over a grid of cells, are compact
//	texture descriptors that are invariant to monotonic intensity changes.
//
// Packages:
//
//	grid/      : Gray pixel grids, Codes grids with a fixed storage width,
//	             zero padding and an xxhash-keyed padding cache
//	lbp/       : ring extraction, sampling, encoding and the parallel Transform
//	histogram/ : global and spatial histograms, chi-square, intersection,
//	             entropy and bar-chart plots (gonum)
//	imageio/   : load/save any common image format as a Gray grid
//	codec/     : "LBPC" binary container, zstd-compressed and checksummed
//	cmd/lbp    : command line front end (transform, histogram, compare)
//
// Quick example:
//
//	img, _ := imageio.Load("bark.jpg")
//	codes, _ := lbp.Transform(img, 1, 8)
//	h, _ := histogram.Spatial(codes, 4, 4)
//	d, _ := histogram.ChiSquare(h.Normalize(), other.Normalize())
//
// The library packages never log and never panic on user input; failures
// are sentinel errors wrapped with the failing operation's name.
//
//	go get github.com/katalvlaran/lbp
package lbp
