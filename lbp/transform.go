// SPDX-License-Identifier: MIT
// Package lbp: the full per-pixel pipeline.

package lbp

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lbp/grid"
)

// Transform computes the LBP code of every pixel of g with ring radius r and
// p sample bits. It is TransformContext with context.Background().
func Transform(g *grid.Gray, r, p int, opts ...Option) (*grid.Codes, error) {
	return TransformContext(context.Background(), g, r, p, opts...)
}

// TransformContext computes the LBP code grid of g.
//
// Implementation:
//   - Stage 1: validate grid, radius, storage width, ring mode and sample
//     count; nothing is allocated on failure.
//   - Stage 2: pad g by r with the configured padder.
//   - Stage 3: split rows into contiguous bands and run them on a bounded
//     errgroup. Each band owns its ring/sample scratch buffers and writes only
//     its own output rows; the padded grid is shared read-only.
//
// Behavior highlights:
//   - Results do not depend on the worker count.
//   - ctx is checked before every row; on cancellation the error from ctx
//     is returned (wrapped) together with a nil grid.
//
// Errors:
//   - ErrInvalidGrid, ErrInvalidRadius, ErrInvalidStorageWidth,
//     ErrInvalidRingMode, ErrInvalidSampleCount (all wrapped with "Transform").
//   - Padder errors, wrapped.
//   - ctx.Err() on cancellation.
//
// Complexity: O(W·H·(r + p)) time, O((W+2r)·(H+2r)) extra memory for padding.
func TransformContext(ctx context.Context, g *grid.Gray, r, p int, opts ...Option) (*grid.Codes, error) {
	o := gatherOptions(opts...)

	// Stage 1 (Validate)
	if err := validateParams(g, r, p, o); err != nil {
		return nil, err
	}

	// Stage 2 (Prepare)
	padded, err := o.padder.Pad(g, r)
	if err != nil {
		return nil, lbpErrorf(opTransform, err)
	}
	if padded.Rows() != g.Rows()+2*r || padded.Cols() != g.Cols()+2*r {
		return nil, lbpErrorf(opTransform, grid.ErrBadShape)
	}
	out, err := grid.NewCodes(g.Rows(), g.Cols(), p, o.storageWidth)
	if err != nil {
		return nil, lbpErrorf(opTransform, err)
	}

	// Stage 3 (Execute)
	k := kernel{src: g, padded: padded, out: out, r: r, p: p, mode: o.ringMode}
	rows := g.Rows()
	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, rows)

	if workers == 1 {
		if err := k.rows(ctx, 0, rows); err != nil {
			return nil, lbpErrorf(opTransform, err)
		}

		return out, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	band := (rows + workers - 1) / workers
	for lo := 0; lo < rows; lo += band {
		lo := lo // per-iteration copy; go.mod targets go1.21 loop semantics
		hi := min(lo+band, rows)
		eg.Go(func() error {
			return k.rows(egCtx, lo, hi)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, lbpErrorf(opTransform, err)
	}

	return out, nil
}

// kernel bundles the read-only inputs and the output of one Transform call.
type kernel struct {
	src    *grid.Gray
	padded *grid.Gray
	out    *grid.Codes
	r, p   int
	mode   RingMode
}

// rows computes output rows [lo, hi).
func (k kernel) rows(ctx context.Context, lo, hi int) error {
	ring := make([]uint8, 0, RingLength(k.r, k.mode))
	samples := make([]uint8, 0, k.p)
	cols := k.src.Cols()

	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		centers := k.src.RowView(i)
		dst := k.out.RowView(i)
		for j := 0; j < cols; j++ {
			ring = appendRing(ring[:0], k.padded, i, j, k.r, k.mode)
			samples = sampleInto(samples[:0], ring, k.p)
			dst[j] = packBits(samples, centers[j])
		}
	}

	return nil
}

// validateParams runs every Transform precondition in a fixed order:
// grid → radius → storage width → ring mode → sample count.
func validateParams(g *grid.Gray, r, p int, o Options) error {
	if err := grid.ValidateGray(g); err != nil {
		return lbpErrorf(opTransform, ErrInvalidGrid)
	}
	if r < 1 {
		return lbpErrorf(opTransform, ErrInvalidRadius)
	}
	if !grid.ValidWidth(o.storageWidth) {
		return lbpErrorf(opTransform, ErrInvalidStorageWidth)
	}
	if !o.ringMode.valid() {
		return lbpErrorf(opTransform, ErrInvalidRingMode)
	}
	if p < 1 || p > o.storageWidth || p > RingLength(r, o.ringMode) {
		return lbpErrorf(opTransform, ErrInvalidSampleCount)
	}

	return nil
}
