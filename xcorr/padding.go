// SPDX-License-Identifier: MIT
// Package: xcorr
//
// padding.go — symmetric zero padding for SAME mode.
//
// Contract:
//   - Top = Bottom = floor(kh/2), Left = Right = floor(kw/2).
//   - Padded shape = (inRows + 2*Top, inCols + 2*Left).
//   - Padded cell (r,c) maps to image (r-Top, c-Left) when inside, else 0.
//
// Even kernels keep the floor convention: a 2×2 kernel pads one row/col on
// every side, and the last padded row/col is never read by a SAME window.

package xcorr

import (
	"fmt"

	"github.com/katalvlaran/convlab/grid"
)

// Padding holds the number of zero rows/cols added on each side.
type Padding struct {
	Top, Bottom int
	Left, Right int
}

// PaddingFor derives the symmetric padding for a kh×kw kernel.
// Non-positive dimensions yield zero padding on that axis.
// Complexity: O(1).
func PaddingFor(kh, kw int) Padding {
	if kh < 0 {
		kh = 0
	}
	if kw < 0 {
		kw = 0
	}
	pr, pc := kh/2, kw/2 // integer division == floor for non-negative values

	return Padding{Top: pr, Bottom: pr, Left: pc, Right: pc}
}

// PaddingOf is PaddingFor applied to a kernel grid.
func PaddingOf(kernel *grid.Grid) Padding {
	return PaddingFor(kernel.Shape())
}

// Shape returns the padded dimensions for an inRows×inCols image.
func (p Padding) Shape(inRows, inCols int) (rows, cols int) {
	return inRows + p.Top + p.Bottom, inCols + p.Left + p.Right
}

// Inside reports whether padded coordinate (r, c) maps into the original
// inRows×inCols image.
func (p Padding) Inside(inRows, inCols, r, c int) bool {
	ir, ic := r-p.Top, c-p.Left

	return ir >= 0 && ir < inRows && ic >= 0 && ic < inCols
}

// At reads padded coordinate (r, c) of img: the image value when the cell
// maps inside the original image, 0 otherwise. Any (r, c) is accepted.
// Complexity: O(1).
func (p Padding) At(img *grid.Grid, r, c int) int {
	rows, cols := img.Shape()
	if !p.Inside(rows, cols, r, c) {
		return 0
	}

	return img.Value(r-p.Top, c-p.Left)
}

// Pad materializes the zero-padded image for the given kernel.
// SAME-mode exports use it so the copied "image" is the padded grid.
//
// Errors: ErrNilInput when img or kernel is nil.
// Complexity: O(paddedRows*paddedCols).
func Pad(img, kernel *grid.Grid) (*grid.Grid, error) {
	if img == nil || kernel == nil {
		return nil, fmt.Errorf("Pad: %w", ErrNilInput)
	}
	p := PaddingOf(kernel)
	rows, cols := p.Shape(img.Shape())

	return grid.Build(rows, cols, func(r, c int) int { return p.At(img, r, c) })
}
