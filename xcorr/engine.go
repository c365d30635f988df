// SPDX-License-Identifier: MIT
// Package: xcorr
//
// engine.go — single-channel cross-correlation (VALID and SAME).
//
// Contract:
//   - NewEngine validates inputs once; afterwards every method is total.
//   - CorrelateAt clamps (row, col) into the output range before summing.
//   - Full iterates row-major and calls the same summation as CorrelateAt,
//     so Full()[r][c] == CorrelateAt(r, c) for every valid (r, c).
//   - Inputs are never mutated; the engine keeps its own clones.

package xcorr

import (
	"fmt"

	"github.com/katalvlaran/convlab/grid"
)

// Correlator is the surface shared by single-channel and RGB engines.
// Sessions drive it through a stepping cursor.
type Correlator interface {
	// OutputShape returns the output grid dimensions (both ≥ 1).
	OutputShape() (rows, cols int)

	// CorrelateAt returns the window sum at top-left (row, col), clamped.
	CorrelateAt(row, col int) int

	// Full returns the entire output grid, computed row-major.
	Full() *grid.Grid

	// Window returns the highlighted input region for top-left (row, col), clamped.
	Window(row, col int) Window
}

// Window is the rectangle a window at some top-left covers, expressed in the
// coordinate system of the grid the window slides over (padded for SAME).
type Window struct {
	Row, Col   int  // top-left
	Rows, Cols int  // kernel height and width
	Padded     bool // true when the grid is the zero-padded image
	GridRows   int  // rows of the grid the window lives in
	GridCols   int  // cols of the grid the window lives in
}

// ValidShape returns the VALID output dimensions max(0, in-k+1) per axis.
// Complexity: O(1).
func ValidShape(inRows, inCols, kh, kw int) (rows, cols int) {
	return max(0, inRows-kh+1), max(0, inCols-kw+1)
}

// Engine correlates one image with one kernel under a fixed Mode.
type Engine struct {
	image, kernel    *grid.Grid
	mode             Mode
	pad              Padding // zero for Valid
	outRows, outCols int
}

// Compile-time assertion.
var _ Correlator = (*Engine)(nil)

// NewEngine builds an engine for image ⋆ kernel in the given mode.
//
// Implementation:
//   - Stage 1: reject nil inputs (ErrNilInput) and unknown modes (ErrUnknownMode).
//   - Stage 2: VALID requires kh ≤ rows and kw ≤ cols (ErrKernelTooLarge);
//     SAME accepts any kernel because floor(k/2) padding always fits the window.
//   - Stage 3: clone inputs and cache padding and output shape.
//
// Complexity: O(r*c + kh*kw) for the clones.
func NewEngine(image, kernel *grid.Grid, mode Mode) (*Engine, error) {
	if image == nil || kernel == nil {
		return nil, fmt.Errorf("NewEngine: %w", ErrNilInput)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("NewEngine(%v): %w", mode, ErrUnknownMode)
	}

	inRows, inCols := image.Shape()
	kh, kw := kernel.Shape()
	e := &Engine{image: image.Clone(), kernel: kernel.Clone(), mode: mode}

	switch mode {
	case Valid:
		if err := grid.ValidateFits(image, kh, kw); err != nil {
			return nil, fmt.Errorf("NewEngine: %w: %w", ErrKernelTooLarge, err)
		}
		e.outRows, e.outCols = ValidShape(inRows, inCols, kh, kw)
	case Same:
		e.pad = PaddingFor(kh, kw)
		e.outRows, e.outCols = inRows, inCols
	}

	return e, nil
}

// Mode returns the padding mode.
func (e *Engine) Mode() Mode { return e.mode }

// Padding returns the padding applied in SAME mode (zero for VALID).
func (e *Engine) Padding() Padding { return e.pad }

// Image returns a copy of the input image.
func (e *Engine) Image() *grid.Grid { return e.image.Clone() }

// Kernel returns a copy of the kernel.
func (e *Engine) Kernel() *grid.Grid { return e.kernel.Clone() }

// OutputShape returns the output grid dimensions.
func (e *Engine) OutputShape() (rows, cols int) { return e.outRows, e.outCols }

// Clamp maps (row, col) into [0,outRows)×[0,outCols).
func (e *Engine) Clamp(row, col int) (int, int) {
	return clampWindow(row, col, e.outRows, e.outCols)
}

// CorrelateAt returns Σ_{i,j} in(row+i, col+j) * kernel[i][j], where in is
// the image (VALID) or the zero-padded image (SAME).
// Complexity: O(kh*kw).
func (e *Engine) CorrelateAt(row, col int) int {
	row, col = e.Clamp(row, col)
	if e.mode == Same {
		return e.sameAt(row, col)
	}

	return validAt(e.image, e.kernel, row, col)
}

// sameAt sums over the padded coordinate system without materializing it.
func (e *Engine) sameAt(row, col int) int {
	kh, kw := e.kernel.Shape()
	sum := 0
	var i, j int
	for i = 0; i < kh; i++ {
		for j = 0; j < kw; j++ {
			sum += e.pad.At(e.image, row+i, col+j) * e.kernel.Value(i, j)
		}
	}

	return sum
}

// Full returns the whole output grid, row-major.
// Complexity: O(outRows*outCols*kh*kw).
func (e *Engine) Full() *grid.Grid {
	// Shape is ≥ 1×1 by construction, so Build cannot fail.
	out, _ := grid.Build(e.outRows, e.outCols, e.CorrelateAt)

	return out
}

// Window returns the highlighted rectangle for top-left (row, col), clamped.
func (e *Engine) Window(row, col int) Window {
	row, col = e.Clamp(row, col)
	kh, kw := e.kernel.Shape()
	gr, gc := e.image.Shape()
	if e.mode == Same {
		gr, gc = e.pad.Shape(gr, gc)
	}

	return Window{Row: row, Col: col, Rows: kh, Cols: kw, Padded: e.mode == Same, GridRows: gr, GridCols: gc}
}

// validAt is the VALID-mode window sum shared with RGBEngine.
// Callers guarantee the window lies inside img.
func validAt(img, kernel *grid.Grid, row, col int) int {
	kh, kw := kernel.Shape()
	sum := 0
	var i, j int
	for i = 0; i < kh; i++ {
		for j = 0; j < kw; j++ {
			sum += img.Value(row+i, col+j) * kernel.Value(i, j)
		}
	}

	return sum
}

// clampWindow clamps (row, col) into [0,rows)×[0,cols).
func clampWindow(row, col, rows, cols int) (int, int) {
	return clamp(row, 0, rows-1), clamp(col, 0, cols-1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
