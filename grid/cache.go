// SPDX-License-Identifier: MIT
// Package grid: PadCache memoizes padded grids across calls that share an input.
//
// Keys are (xxhash64 of the pixels, rows, cols, pad width). A hit is confirmed
// by comparing the cached interior with the caller's grid; a mismatch is
// treated as a miss. Eviction is FIFO once the entry count exceeds the capacity.

package grid

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultPadCacheCapacity is the entry limit used when NewPadCache gets capacity ≤ 0.
const DefaultPadCacheCapacity = 16

type padKey struct {
	sum        uint64
	rows, cols int
	width      int
}

// PadCache is a Padder that reuses zero-padded grids. Safe for concurrent use.
// Cached grids are shared between callers and must be treated as read-only.
type PadCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[padKey]*Gray
	order    []padKey // insertion order, oldest first
	hits     uint64
	misses   uint64
}

var _ Padder = (*PadCache)(nil)

// NewPadCache returns an empty cache holding at most capacity padded grids.
func NewPadCache(capacity int) *PadCache {
	if capacity <= 0 {
		capacity = DefaultPadCacheCapacity
	}

	return &PadCache{
		capacity: capacity,
		entries:  make(map[padKey]*Gray, capacity),
	}
}

// Fingerprint returns the xxhash64 digest of g's shape and pixels.
// Complexity: O(r*c).
func Fingerprint(g *Gray) uint64 {
	var hdr [16]byte
	binary.LittleEndian.PutUint64(hdr[0:8], uint64(g.r))
	binary.LittleEndian.PutUint64(hdr[8:16], uint64(g.c))

	d := xxhash.New()
	_, _ = d.Write(hdr[:]) // xxhash.Digest.Write never fails
	_, _ = d.Write(g.pix)

	return d.Sum64()
}

// Pad returns a padded grid for (g, width), building and storing it on a miss.
// Stage 1 (Validate): same checks as Pad.
// Stage 2 (Lookup): hash g, confirm the interior on a hit.
// Stage 3 (Fill): pad outside the lock, then insert with FIFO eviction.
// Complexity: O(r*c) for hashing plus O((r+2w)*(c+2w)) on a miss.
func (pc *PadCache) Pad(g *Gray, width int) (*Gray, error) {
	if err := ValidateGray(g); err != nil {
		return nil, err
	}
	if width < 0 {
		return nil, ErrBadPadWidth
	}

	key := padKey{sum: Fingerprint(g), rows: g.r, cols: g.c, width: width}

	pc.mu.Lock()
	if cached, ok := pc.entries[key]; ok && interiorEqual(cached, g, width) {
		pc.hits++
		pc.mu.Unlock()

		return cached, nil
	}
	pc.misses++
	pc.mu.Unlock()

	padded, err := Pad(g, width)
	if err != nil {
		return nil, err
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	if _, ok := pc.entries[key]; !ok {
		pc.order = append(pc.order, key)
	}
	pc.entries[key] = padded
	for len(pc.order) > pc.capacity {
		oldest := pc.order[0]
		pc.order = pc.order[1:]
		delete(pc.entries, oldest)
	}

	return padded, nil
}

// Len returns the number of cached grids.
func (pc *PadCache) Len() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	return len(pc.entries)
}

// Stats returns the hit and miss counters.
func (pc *PadCache) Stats() (hits, misses uint64) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	return pc.hits, pc.misses
}

// Reset drops every entry and zeroes the counters.
func (pc *PadCache) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.entries = make(map[padKey]*Gray, pc.capacity)
	pc.order = nil
	pc.hits, pc.misses = 0, 0
}

// interiorEqual reports whether the interior of padded (margin w) equals g.
func interiorEqual(padded, g *Gray, w int) bool {
	if padded.r != g.r+2*w || padded.c != g.c+2*w {
		return false
	}
	for i := 0; i < g.r; i++ {
		src := g.pix[i*g.c : (i+1)*g.c]
		off := (i+w)*padded.c + w
		dst := padded.pix[off : off+g.c]
		for j := range src {
			if src[j] != dst[j] {
				return false
			}
		}
	}

	return true
}
