// SPDX-License-Identifier: MIT
// Package: pattern
//
// shapes.go — deterministic per-family constructors.
//
// Each constructor validates its parameters against the grid size n and
// fills the grid row-major. Distances are measured from the geometric
// center (n-1)/2, i.e. 13.5 on the 28×28 reference grid.

package pattern

import (
	"fmt"
	"math"

	"github.com/katalvlaran/convlab/grid"
)

const (
	methodRing        = "Ring"
	methodVerticalBar = "VerticalBar"
	methodDiagonal    = "Diagonal"
	methodPlus        = "Plus"

	// On is the intensity of binary pattern cells.
	On = 255
)

// RingParams describes an annulus. Thickness must be in [1, Outer).
type RingParams struct {
	Outer     int // outer radius
	Thickness int // band width; inner radius = Outer - Thickness
}

// BarParams describes a vertical band of width 2*HalfWidth+1.
type BarParams struct {
	Center    int // column index of the band center
	HalfWidth int
}

// DiagonalParams describes a line along the main (Anti=false) or anti diagonal.
type DiagonalParams struct {
	Anti      bool
	Thickness int // cells with |offset| < Thickness are on
}

// PlusParams describes a horizontal and a vertical arm crossing at (Row, Col).
type PlusParams struct {
	Row, Col   int
	HalfLength int // arm reach from the center, inclusive
	Thickness  int // arm half-thickness, exclusive
}

// Ring renders an annulus with a linear falloff from the band's mid-radius:
// value = round(clamp(1 - |d - midR| / halfWidth, 0, 1) * 255).
func Ring(n int, p RingParams) (*grid.Grid, error) {
	if p.Outer < 1 || p.Thickness < 1 || p.Thickness >= p.Outer {
		return nil, patternErrorf(methodRing, fmt.Sprintf("outer=%d thickness=%d", p.Outer, p.Thickness), ErrBadParams)
	}
	center := float64(n-1) / 2
	inner := float64(p.Outer - p.Thickness)
	midR := (float64(p.Outer) + inner) / 2
	halfWidth := float64(p.Thickness) / 2

	g, err := grid.Build(n, n, func(r, c int) int {
		d := math.Hypot(float64(r)-center, float64(c)-center)
		t := 1 - math.Abs(d-midR)/halfWidth

		return int(math.Round(math.Max(0, math.Min(1, t)) * On))
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRing, err)
	}

	return g, nil
}

// VerticalBar renders a full-height band: |c - Center| <= HalfWidth is on.
func VerticalBar(n int, p BarParams) (*grid.Grid, error) {
	if p.HalfWidth < 0 || p.Center < 0 || p.Center >= n {
		return nil, patternErrorf(methodVerticalBar, fmt.Sprintf("center=%d halfWidth=%d", p.Center, p.HalfWidth), ErrBadParams)
	}
	g, err := grid.Build(n, n, func(_, c int) int {
		return binary(abs(c-p.Center) <= p.HalfWidth)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodVerticalBar, err)
	}

	return g, nil
}

// Diagonal renders |r - c| < Thickness (main) or |r + c - (n-1)| < Thickness (anti).
func Diagonal(n int, p DiagonalParams) (*grid.Grid, error) {
	if p.Thickness < 1 {
		return nil, patternErrorf(methodDiagonal, fmt.Sprintf("thickness=%d", p.Thickness), ErrBadParams)
	}
	g, err := grid.Build(n, n, func(r, c int) int {
		if p.Anti {
			return binary(abs(r+c-(n-1)) < p.Thickness)
		}

		return binary(abs(r-c) < p.Thickness)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDiagonal, err)
	}

	return g, nil
}

// Plus renders two crossing arms:
// horizontal |r-Row| < Thickness && |c-Col| <= HalfLength,
// vertical   |c-Col| < Thickness && |r-Row| <= HalfLength.
func Plus(n int, p PlusParams) (*grid.Grid, error) {
	if p.Thickness < 1 || p.HalfLength < 0 || p.Row < 0 || p.Row >= n || p.Col < 0 || p.Col >= n {
		return nil, patternErrorf(methodPlus,
			fmt.Sprintf("center=(%d,%d) halfLength=%d thickness=%d", p.Row, p.Col, p.HalfLength, p.Thickness), ErrBadParams)
	}
	g, err := grid.Build(n, n, func(r, c int) int {
		dr, dc := abs(r-p.Row), abs(c-p.Col)
		horizontal := dr < p.Thickness && dc <= p.HalfLength
		vertical := dc < p.Thickness && dr <= p.HalfLength

		return binary(horizontal || vertical)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPlus, err)
	}

	return g, nil
}

func binary(on bool) int {
	if on {
		return On
	}

	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
