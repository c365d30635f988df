// SPDX-License-Identifier: MIT
// Package: imageload
//
// decoder.go — reference Loader: decode, downscale, luma.
//
// Implementation:
//   - Stage 1: image.Decode through the registered formats (ErrDecode).
//   - Stage 2: scale = min(1, maxSize / max(w, h)); resize with the
//     configured imaging filter when scale < 1, else normalize to NRGBA.
//   - Stage 3: luma per pixel, alpha ignored.

package imageload

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/convlab/grid"
)

// Luma weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Loader decodes a raster image into a grayscale grid whose larger side is
// at most maxSize.
type Loader interface {
	Load(r io.Reader, maxSize int) (*grid.Grid, error)
}

// Decoder is the reference Loader.
type Decoder struct {
	filter imaging.ResampleFilter
}

var _ Loader = (*Decoder)(nil)

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithFilter sets the resampling filter used when downscaling.
// The default is imaging.Linear.
func WithFilter(f imaging.ResampleFilter) DecoderOption {
	return func(d *Decoder) { d.filter = f }
}

// NewDecoder returns a Decoder with the given options applied.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{filter: imaging.Linear}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Load decodes r and converts it.
// Errors: ErrBadMaxSize, ErrDecode (wrapping the codec error), ErrEmptyImage.
func (d *Decoder) Load(r io.Reader, maxSize int) (*grid.Grid, error) {
	if maxSize < 1 {
		return nil, fmt.Errorf("Decoder.Load(%d): %w", maxSize, ErrBadMaxSize)
	}
	if r == nil {
		return nil, fmt.Errorf("Decoder.Load: nil reader: %w", ErrDecode)
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("Decoder.Load: %w: %w", ErrDecode, err)
	}
	g, err := d.FromImage(img, maxSize)
	if err != nil {
		return nil, fmt.Errorf("Decoder.Load(%s): %w", format, err)
	}

	return g, nil
}

// FromImage converts an already decoded image.
// Errors: ErrBadMaxSize, ErrEmptyImage.
func (d *Decoder) FromImage(img image.Image, maxSize int) (*grid.Grid, error) {
	if maxSize < 1 {
		return nil, fmt.Errorf("Decoder.FromImage(%d): %w", maxSize, ErrBadMaxSize)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("Decoder.FromImage: %w", ErrEmptyImage)
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	tw, th := TargetSize(w, h, maxSize)

	var nrgba *image.NRGBA
	if tw == w && th == h {
		nrgba = imaging.Clone(img)
	} else {
		nrgba = imaging.Resize(img, tw, th, d.filter)
	}

	return lumaGrid(nrgba)
}

// FromImage converts img with a default Decoder.
func FromImage(img image.Image, maxSize int) (*grid.Grid, error) {
	return NewDecoder().FromImage(img, maxSize)
}

// TargetSize returns the downscaled width and height for a w×h source so the
// larger side is at most maxSize. Sources already within bounds are kept.
// Each side is at least 1.
func TargetSize(w, h, maxSize int) (tw, th int) {
	longest := max(w, h)
	if longest <= maxSize {
		return w, h
	}
	scale := float64(maxSize) / float64(longest)
	tw = max(1, int(math.Round(float64(w)*scale)))
	th = max(1, int(math.Round(float64(h)*scale)))

	return min(tw, maxSize), min(th, maxSize)
}

// Luma maps one 8-bit RGB triple to its rounded luma.
func Luma(r, g, b uint8) int {
	return int(math.Round(lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)))
}

func lumaGrid(img *image.NRGBA) (*grid.Grid, error) {
	b := img.Bounds()
	g, err := grid.Build(b.Dy(), b.Dx(), func(r, c int) int {
		i := img.PixOffset(b.Min.X+c, b.Min.Y+r)
		p := img.Pix[i : i+3 : i+3]

		return Luma(p[0], p[1], p[2])
	})
	if err != nil {
		return nil, fmt.Errorf("lumaGrid: %w", err)
	}

	return g, nil
}
