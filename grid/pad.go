// SPDX-License-Identifier: MIT
// Package grid: border padding.
//
// Neighborhood kernels read a (2r+1)×(2r+1) window around every pixel. Padding
// the grid once with an r-wide zero border lets them index freely without
// bounds checks at the edges.

package grid

// Padder produces a copy of g with a border of the given width on every side.
// The interior of the result must equal g. Implementations are interchangeable.
type Padder interface {
	Pad(g *Gray, width int) (*Gray, error)
}

// ZeroPadder fills the border with zeros.
type ZeroPadder struct{}

var _ Padder = ZeroPadder{}

// Pad implements Padder with a zero border.
func (ZeroPadder) Pad(g *Gray, width int) (*Gray, error) {
	return Pad(g, width)
}

// Pad returns a (rows+2w)×(cols+2w) copy of g whose interior equals g and whose
// border is zero.
// Stage 1 (Validate): g non-nil and non-empty, width ≥ 0.
// Stage 2 (Execute): copy each source row into its shifted position.
// Returns ErrNilGrid/ErrEmptyGrid (wrapped) or ErrBadPadWidth.
// Complexity: O((r+2w)*(c+2w)) time and memory.
func Pad(g *Gray, width int) (*Gray, error) {
	if err := ValidateGray(g); err != nil {
		return nil, err
	}
	if width < 0 {
		return nil, ErrBadPadWidth
	}

	pr, pc := g.r+2*width, g.c+2*width
	out := &Gray{r: pr, c: pc, pix: make([]uint8, pr*pc)} // zero border for free
	for i := 0; i < g.r; i++ {
		dst := (i+width)*pc + width
		copy(out.pix[dst:dst+g.c], g.pix[i*g.c:(i+1)*g.c])
	}

	return out, nil
}
