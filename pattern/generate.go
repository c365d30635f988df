// SPDX-License-Identifier: MIT
// Package: pattern
//
// generate.go — random parameter draws and the Generate entry point.
//
// Reference ranges (28×28, scaled proportionally for other sizes):
//   - Ring:        outer 8..11, thickness 2..4 (kept below outer)
//   - VerticalBar: center column 8..20, halfWidth ∈ {1,2,3}
//   - Diagonal:    main or anti 50/50, thickness 1..2
//   - Plus:        center in [10,18]², halfLength 6..10, thickness 1..2

package pattern

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/convlab/grid"
)

const methodGenerate = "Generate"

// Generate draws a family uniformly, then its parameters, and renders it.
// Errors: ErrNeedRandSource when no RNG was configured.
func Generate(opts ...Option) (*grid.Grid, Kind, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, 0, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	return generate(cfg.rng, cfg.size)
}

// Render builds a pattern of the given kind with freshly drawn parameters.
func Render(kind Kind, opts ...Option) (*grid.Grid, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Render(%s): %w", kind, ErrNeedRandSource)
	}

	return render(cfg.rng, cfg.size, kind)
}

func generate(rng *rand.Rand, n int) (*grid.Grid, Kind, error) {
	kind := Kind(rng.Intn(numKinds))
	g, err := render(rng, n, kind)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return g, kind, nil
}

func render(rng *rand.Rand, n int, kind Kind) (*grid.Grid, error) {
	switch kind {
	case KindRing:
		return Ring(n, drawRing(rng, n))
	case KindVerticalBar:
		return VerticalBar(n, drawBar(rng, n))
	case KindDiagonal:
		return Diagonal(n, drawDiagonal(rng))
	case KindPlus:
		return Plus(n, drawPlus(rng, n))
	default:
		return nil, fmt.Errorf("render(%s): %w", kind, ErrUnknownKind)
	}
}

func drawRing(rng *rand.Rand, n int) RingParams {
	outer := randIn(rng, scaled(8, n), scaled(11, n))
	thickness := randIn(rng, 2, min(4, outer-1))

	return RingParams{Outer: outer, Thickness: thickness}
}

func drawBar(rng *rand.Rand, n int) BarParams {
	halfWidth := randIn(rng, 1, 3)
	center := randIn(rng, scaled(8, n), scaled(20, n))

	return BarParams{Center: center, HalfWidth: halfWidth}
}

func drawDiagonal(rng *rand.Rand) DiagonalParams {
	anti := rng.Intn(2) == 1
	thickness := randIn(rng, 1, 2)

	return DiagonalParams{Anti: anti, Thickness: thickness}
}

func drawPlus(rng *rand.Rand, n int) PlusParams {
	lo, hi := scaled(10, n), scaled(18, n)

	return PlusParams{
		Row:        randIn(rng, lo, hi),
		Col:        randIn(rng, lo, hi),
		HalfLength: randIn(rng, scaled(6, n), scaled(10, n)),
		Thickness:  randIn(rng, 1, 2),
	}
}
