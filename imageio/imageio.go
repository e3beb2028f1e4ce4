// SPDX-License-Identifier: MIT
// Package imageio moves pixels between files, image.Image values and the
// grid types consumed by the lbp transform.
//
// Decoding goes through github.com/disintegration/imaging, so every format
// registered with the image package is accepted: JPEG, PNG and GIF from the
// standard library plus BMP, TIFF and WebP from golang.org/x/image. EXIF
// orientation is applied on load. Color images are reduced to luminance with
// imaging.Grayscale (Rec. 601 weights).
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/katalvlaran/lbp/grid"
)

var (
	// ErrNilImage indicates a nil image or grid argument.
	ErrNilImage = errors.New("imageio: nil image")

	// ErrEmptyImage indicates an image with zero width or height.
	ErrEmptyImage = errors.New("imageio: empty image")
)

// Load opens the image at path and converts it to a grayscale grid.
func Load(path string) (*grid.Gray, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("Load %q: %w", path, err)
	}

	return FromImage(img)
}

// Decode reads an encoded image from r and converts it to a grayscale grid.
func Decode(r io.Reader) (*grid.Gray, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return FromImage(img)
}

// FromImage converts img to a grid. *image.Gray is copied as is; any other
// image is reduced with imaging.Grayscale first.
func FromImage(img image.Image) (*grid.Gray, error) {
	if img == nil {
		return nil, fmt.Errorf("FromImage: %w", ErrNilImage)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("FromImage: %w", ErrEmptyImage)
	}

	pix := make([]uint8, w*h)
	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			off := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w:(y+1)*w], gray.Pix[off:off+w])
		}
	} else {
		// Grayscale returns NRGBA with R == G == B, origin at (0, 0).
		n := imaging.Grayscale(img)
		for y := 0; y < h; y++ {
			row := n.Pix[y*n.Stride : y*n.Stride+4*w]
			for x := 0; x < w; x++ {
				pix[y*w+x] = row[4*x]
			}
		}
	}

	return grid.FromPix(h, w, pix)
}

// ToImage returns g as an *image.Gray with origin (0, 0).
func ToImage(g *grid.Gray) (*image.Gray, error) {
	if err := grid.ValidateGray(g); err != nil {
		return nil, fmt.Errorf("ToImage: %w", err)
	}
	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for i := 0; i < g.Rows(); i++ {
		copy(img.Pix[i*img.Stride:], g.RowView(i))
	}

	return img, nil
}

// CodesToImage renders a code grid as an *image.Gray. 8-bit codes map
// directly to intensities; other bit counts are scaled linearly so that
// MaxCode becomes 255, rounding to nearest.
func CodesToImage(c *grid.Codes) (*image.Gray, error) {
	if c == nil {
		return nil, fmt.Errorf("CodesToImage: %w", ErrNilImage)
	}
	img := image.NewGray(image.Rect(0, 0, c.Cols(), c.Rows()))
	top := uint64(c.MaxCode())
	for i := 0; i < c.Rows(); i++ {
		dst := img.Pix[i*img.Stride : i*img.Stride+c.Cols()]
		for j, v := range c.RowView(i) {
			if c.Bits() == 8 {
				dst[j] = uint8(v)
				continue
			}
			dst[j] = uint8((uint64(v)*255 + top/2) / top)
		}
	}

	return img, nil
}

// Save encodes img to path; the format follows the file extension.
func Save(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("Save %q: %w", path, ErrNilImage)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("Save %q: %w", path, err)
	}

	return nil
}

// SaveCodes renders c with CodesToImage and saves it to path.
func SaveCodes(path string, c *grid.Codes) error {
	img, err := CodesToImage(c)
	if err != nil {
		return err
	}

	return Save(path, img)
}
