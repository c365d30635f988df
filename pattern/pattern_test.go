package pattern_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/convlab/grid"
	"github.com/katalvlaran/convlab/pattern"
)

func countOn(g *grid.Grid) int {
	n := 0
	for _, row := range g.ToRows() {
		for _, v := range row {
			if v == pattern.On {
				n++
			}
		}
	}
	return n
}

// TestGenerate_NeedsRand checks every stochastic entry point refuses to run
// without an injected source.
func TestGenerate_NeedsRand(t *testing.T) {
	_, _, err := pattern.Generate()
	require.ErrorIs(t, err, pattern.ErrNeedRandSource)
	_, err = pattern.Render(pattern.KindRing)
	require.ErrorIs(t, err, pattern.ErrNeedRandSource)
	_, err = pattern.RandomKernel()
	require.ErrorIs(t, err, pattern.ErrNeedRandSource)
	_, err = pattern.Draw(pattern.WithSize(20))
	require.ErrorIs(t, err, pattern.ErrNeedRandSource)
}

// TestGenerate_ReproducibleBySeed draws twice per seed and compares.
func TestGenerate_ReproducibleBySeed(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 40; seed++ {
		a, ka, err := pattern.Generate(pattern.WithSeed(seed))
		require.NoError(t, err)
		b, kb, err := pattern.Generate(pattern.WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, ka, kb, "seed %d", seed)
		require.True(t, a.Equal(b), "seed %d", seed)

		sa, err := pattern.Draw(pattern.WithSeed(seed))
		require.NoError(t, err)
		sb, err := pattern.Draw(pattern.WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, sa.Kernel.ID, sb.Kernel.ID)
		require.True(t, sa.Image.Equal(sb.Image))
	}
}

// TestGenerate_RangesAndKinds checks shape, value range and that every family
// shows up over a modest number of draws from one stream.
func TestGenerate_RangesAndKinds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	seen := map[pattern.Kind]bool{}
	for i := 0; i < 200; i++ {
		g, kind, err := pattern.Generate(pattern.WithRand(rng))
		require.NoError(t, err)
		seen[kind] = true

		rows, cols := g.Shape()
		require.Equal(t, pattern.DefaultSize, rows)
		require.Equal(t, pattern.DefaultSize, cols)

		lo, hi := grid.MinMax(g)
		require.GreaterOrEqual(t, lo, 0)
		require.LessOrEqual(t, hi, pattern.On)
		require.Greater(t, hi, 0, "pattern %s is blank", kind)

		if kind != pattern.KindRing {
			for _, row := range g.ToRows() {
				for _, v := range row {
					require.Contains(t, []int{0, pattern.On}, v)
				}
			}
		}
	}
	require.Len(t, seen, len(pattern.Kinds()))
}

func TestGenerate_WithSize(t *testing.T) {
	for _, n := range []int{pattern.MinSize, 20, 40} {
		for _, kind := range pattern.Kinds() {
			g, err := pattern.Render(kind, pattern.WithSeed(3), pattern.WithSize(n))
			require.NoError(t, err, "kind %s size %d", kind, n)
			require.Equal(t, n, g.Rows())
			require.Equal(t, n, g.Cols())
		}
	}
	require.Panics(t, func() { pattern.WithSize(pattern.MinSize - 1) })
	require.Panics(t, func() { pattern.WithRand(nil) })
}

func TestRing_Falloff(t *testing.T) {
	g, err := pattern.Ring(28, pattern.RingParams{Outer: 10, Thickness: 4})
	require.NoError(t, err)

	assert.Equal(t, 0, g.Value(13, 13), "center lies inside the hole")
	assert.Equal(t, 0, g.Value(0, 0), "corner lies outside the ring")
	// d = hypot(8.5, 0.5) ≈ 8.515, midR = 8, halfWidth = 2.
	assert.Equal(t, 189, g.Value(5, 13))
	// symmetric about the center 13.5
	assert.Equal(t, g.Value(5, 13), g.Value(22, 14))

	_, err = pattern.Ring(28, pattern.RingParams{Outer: 3, Thickness: 3})
	require.ErrorIs(t, err, pattern.ErrBadParams)
}

func TestBinaryShapes(t *testing.T) {
	bar, err := pattern.VerticalBar(28, pattern.BarParams{Center: 10, HalfWidth: 2})
	require.NoError(t, err)
	require.Equal(t, 5*28, countOn(bar))
	for r := 0; r < 28; r++ {
		require.Equal(t, pattern.On, bar.Value(r, 8))
		require.Equal(t, pattern.On, bar.Value(r, 12))
		require.Equal(t, 0, bar.Value(r, 13))
	}

	mainDiag, err := pattern.Diagonal(28, pattern.DiagonalParams{Thickness: 1})
	require.NoError(t, err)
	require.Equal(t, 28, countOn(mainDiag))
	require.Equal(t, pattern.On, mainDiag.Value(27, 27))

	anti, err := pattern.Diagonal(28, pattern.DiagonalParams{Anti: true, Thickness: 2})
	require.NoError(t, err)
	require.Equal(t, 27+28+27, countOn(anti))
	require.Equal(t, pattern.On, anti.Value(0, 27))

	plus, err := pattern.Plus(28, pattern.PlusParams{Row: 14, Col: 14, HalfLength: 6, Thickness: 1})
	require.NoError(t, err)
	require.Equal(t, 13+13-1, countOn(plus))
	require.Equal(t, pattern.On, plus.Value(14, 20))
	require.Equal(t, 0, plus.Value(14, 21))
}

func TestShapes_BadParams(t *testing.T) {
	cases := []struct {
		name string
		fn   func() error
	}{
		{"bar center off grid", func() error {
			_, err := pattern.VerticalBar(28, pattern.BarParams{Center: 28, HalfWidth: 1})
			return err
		}},
		{"diagonal zero thickness", func() error {
			_, err := pattern.Diagonal(28, pattern.DiagonalParams{})
			return err
		}},
		{"plus negative center", func() error {
			_, err := pattern.Plus(28, pattern.PlusParams{Row: -1, Col: 3, HalfLength: 2, Thickness: 1})
			return err
		}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.fn(), pattern.ErrBadParams)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ring", pattern.KindRing.String())
	assert.Equal(t, "plus", pattern.KindPlus.String())
	assert.Equal(t, "Kind(9)", pattern.Kind(9).String())
}
