package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lbp/grid"
	"github.com/katalvlaran/lbp/imageio"
	"github.com/katalvlaran/lbp/lbp"
)

func gradient(t *testing.T) *grid.Gray {
	t.Helper()
	g, err := grid.FromRows([][]uint8{
		{0, 10, 20, 30, 40},
		{50, 60, 70, 80, 90},
		{100, 110, 120, 130, 255},
	})
	require.NoError(t, err)

	return g
}

func TestSaveLoad_PNGRoundTrip(t *testing.T) {
	g := gradient(t)
	img, err := imageio.ToImage(g)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds())

	path := filepath.Join(t.TempDir(), "gradient.png")
	require.NoError(t, imageio.Save(path, img))

	back, err := imageio.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(g.ToRows(), back.ToRows()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoad_BMPAndTIFF(t *testing.T) {
	g := gradient(t)
	img, err := imageio.ToImage(g)
	require.NoError(t, err)

	for _, ext := range []string{".bmp", ".tif"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "g"+ext)
			require.NoError(t, imageio.Save(path, img))
			back, err := imageio.Load(path)
			require.NoError(t, err)
			assert.True(t, g.Equal(back))
		})
	}
}

func TestDecode_Reader(t *testing.T) {
	img, err := imageio.ToImage(gradient(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	g, err := imageio.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, gradient(t).Equal(g))

	_, err = imageio.Decode(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestFromImage_ColorIsLuminance(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(2, 0, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	g, err := imageio.FromImage(img)
	require.NoError(t, err)

	red, _ := g.At(0, 0)
	green, _ := g.At(0, 1)
	gray, _ := g.At(0, 2)
	assert.InDelta(t, 76, int(red), 1)
	assert.InDelta(t, 150, int(green), 1)
	assert.Equal(t, uint8(200), gray)
}

// Sub-images keep their parent's Pix; only the visible window is copied.
func TestFromImage_GraySubImage(t *testing.T) {
	parent, err := imageio.ToImage(gradient(t))
	require.NoError(t, err)
	sub := parent.SubImage(image.Rect(1, 1, 4, 3))

	g, err := imageio.FromImage(sub)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{60, 70, 80}, {110, 120, 130}}, g.ToRows())
}

func TestFromImage_Errors(t *testing.T) {
	_, err := imageio.FromImage(nil)
	assert.ErrorIs(t, err, imageio.ErrNilImage)

	_, err = imageio.FromImage(image.NewGray(image.Rect(0, 0, 0, 4)))
	assert.ErrorIs(t, err, imageio.ErrEmptyImage)

	_, err = imageio.ToImage(nil)
	assert.ErrorIs(t, err, grid.ErrNilGrid)

	_, err = imageio.CodesToImage(nil)
	assert.ErrorIs(t, err, imageio.ErrNilImage)
}

func TestCodesToImage_Scaling(t *testing.T) {
	c, err := grid.FromValues(1, 4, 2, grid.Width8, []uint32{0, 1, 2, 3})
	require.NoError(t, err)

	img, err := imageio.CodesToImage(c)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 85, 170, 255}, img.Pix)

	wide, err := grid.FromValues(1, 3, 12, grid.Width16, []uint32{0, 2048, 4095})
	require.NoError(t, err)
	img, err = imageio.CodesToImage(wide)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 128, 255}, img.Pix)
}

func TestSaveCodes(t *testing.T) {
	codes, err := lbp.Transform(gradient(t), 1, 8)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "codes.png")
	require.NoError(t, imageio.SaveCodes(path, codes))

	back, err := imageio.Load(path)
	require.NoError(t, err)
	for i := 0; i < codes.Rows(); i++ {
		for j := 0; j < codes.Cols(); j++ {
			want, _ := codes.At(i, j)
			got, _ := back.At(i, j)
			assert.Equal(t, uint8(want), got, "pixel (%d,%d)", i, j)
		}
	}
}

func TestSave_Errors(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, imageio.Save(filepath.Join(dir, "a.png"), nil), imageio.ErrNilImage)

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	assert.Error(t, imageio.Save(filepath.Join(dir, "a.unknown"), img))
}
