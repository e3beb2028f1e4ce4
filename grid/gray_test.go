package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lbp/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]uint8
		err  error
	}{
		{"Nil", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]uint8{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]uint8{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]uint8{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromRows_DeepCopy ensures later mutation of the input does not leak in.
func TestFromRows_DeepCopy(t *testing.T) {
	src := [][]uint8{{1, 2}, {3, 4}}
	g, err := grid.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 99
	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v, "grid must own its storage")
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
}

// TestNewGray_BadShape checks non-positive dimensions.
func TestNewGray_BadShape(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := grid.NewGray(dims[0], dims[1])
		assert.ErrorIs(t, err, grid.ErrBadShape, "dims=%v", dims)
	}
}

// TestFromPix checks length validation and copying.
func TestFromPix(t *testing.T) {
	_, err := grid.FromPix(2, 2, []uint8{1, 2, 3})
	assert.ErrorIs(t, err, grid.ErrBadShape)

	pix := []uint8{1, 2, 3, 4, 5, 6}
	g, err := grid.FromPix(2, 3, pix)
	require.NoError(t, err)
	pix[0] = 0
	if diff := cmp.Diff([][]uint8{{1, 2, 3}, {4, 5, 6}}, g.ToRows()); diff != "" {
		t.Errorf("ToRows mismatch (-want +got):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestGray_AtSetBounds verifies bounds errors on both accessors.
func TestGray_AtSetBounds(t *testing.T) {
	g, err := grid.NewGray(2, 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 2, 7))
	v, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), v)

	invalid := [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}}
	for _, rc := range invalid {
		_, err := g.At(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
		assert.ErrorIs(t, g.Set(rc[0], rc[1], 1), grid.ErrOutOfRange, "Set(%d,%d)", rc[0], rc[1])
	}
}

// TestGray_CloneEqual checks that Clone is deep and Equal compares contents.
func TestGray_CloneEqual(t *testing.T) {
	g, err := grid.FromRows([][]uint8{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := g.Clone()
	assert.True(t, g.Equal(c))
	require.NoError(t, c.Set(0, 0, 9))
	assert.False(t, g.Equal(c), "clone mutation must not affect original")

	var nilGray *grid.Gray
	assert.True(t, nilGray.Equal(nil))
	assert.False(t, g.Equal(nil))
}

// TestGray_String pins the debug format.
func TestGray_String(t *testing.T) {
	g, err := grid.FromRows([][]uint8{{1, 2}, {30, 255}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[30, 255]\n", g.String())
}

// TestGray_RowView exposes rows without copying.
func TestGray_RowView(t *testing.T) {
	g, err := grid.FromRows([][]uint8{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []uint8{3, 4}, g.RowView(1))
	assert.Equal(t, 2, cap(g.RowView(0)), "row view must not expose following rows")
}

// TestValidateGray covers nil and zero-value grids.
func TestValidateGray(t *testing.T) {
	assert.ErrorIs(t, grid.ValidateGray(nil), grid.ErrNilGrid)
	assert.ErrorIs(t, grid.ValidateGray(&grid.Gray{}), grid.ErrEmptyGrid)

	g, err := grid.NewGray(1, 1)
	require.NoError(t, err)
	assert.NoError(t, grid.ValidateGray(g))
}
