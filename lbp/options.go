// SPDX-License-Identifier: MIT
// Package lbp: functional configuration for Transform.
//
// Design goals:
//   - Deterministic behavior: options never change results except through
//     the parameters they name (workers only affect scheduling).
//   - Single source of truth for defaults (Default* constants below).
//   - Values that can come from user input (storage width, ring mode) are
//     validated by Transform and reported as errors; only nonsensical
//     programmer input (negative worker count, nil padder) panics here.

package lbp

import (
	"github.com/katalvlaran/lbp/grid"
)

// Defaults.
const (
	// DefaultStorageWidth is the code storage width in bits. With 8 bits,
	// p may be at most 8, matching uint8 texture images.
	DefaultStorageWidth = grid.Width8

	// DefaultRingMode keeps the duplicated bottom-right corner.
	DefaultRingMode = RingDuplicateCorner

	// DefaultWorkers of 0 means runtime.GOMAXPROCS(0) row bands in parallel.
	DefaultWorkers = 0
)

const (
	panicWorkersNegative = "lbp: WithWorkers: n must be >= 0"
	panicPadderNil       = "lbp: WithPadder: padder must be non-nil"
)

// Option mutates internal options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	storageWidth int         // DefaultStorageWidth
	ringMode     RingMode    // DefaultRingMode
	workers      int         // DefaultWorkers; 0 => GOMAXPROCS
	padder       grid.Padder // grid.ZeroPadder{} unless overridden
}

// WithStorageWidth sets the code storage width (8, 16 or 32 bits).
// Unsupported widths are reported by Transform as ErrInvalidStorageWidth.
func WithStorageWidth(bits int) Option {
	return func(o *Options) { o.storageWidth = bits }
}

// WithRingMode selects the ring traversal (see RingMode).
// Unknown modes are reported by Transform as ErrInvalidRingMode.
func WithRingMode(m RingMode) Option {
	return func(o *Options) { o.ringMode = m }
}

// WithDistinctCorners is shorthand for WithRingMode(RingDistinctCorners).
func WithDistinctCorners() Option {
	return WithRingMode(RingDistinctCorners)
}

// WithWorkers bounds the number of row bands processed concurrently.
// n == 0 uses runtime.GOMAXPROCS(0); n == 1 runs sequentially on the caller's goroutine.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

// WithSequential is shorthand for WithWorkers(1).
func WithSequential() Option {
	return WithWorkers(1)
}

// WithPadder replaces the zero padder, e.g. with a shared *grid.PadCache.
// The padder must produce a zero border for results to match the default.
// Panics if p is nil.
func WithPadder(p grid.Padder) Option {
	if p == nil {
		panic(panicPadderNil)
	}

	return func(o *Options) { o.padder = p }
}

// WithPadCache reuses padded grids from pc across calls.
func WithPadCache(pc *grid.PadCache) Option {
	return WithPadder(pc)
}

// gatherOptions applies user setters on top of the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		storageWidth: DefaultStorageWidth,
		ringMode:     DefaultRingMode,
		workers:      DefaultWorkers,
		padder:       grid.ZeroPadder{},
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
