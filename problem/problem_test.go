package problem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/convlab/grid"
	"github.com/katalvlaran/convlab/pattern"
	"github.com/katalvlaran/convlab/problem"
	"github.com/katalvlaran/convlab/xcorr"
)

// TestDemo_Shapes pins the documented dimensions of the demonstration set.
func TestDemo_Shapes(t *testing.T) {
	cases := []struct {
		id                 string
		rows, cols, kh, kw int
		validRows, validC  int
		firstValid         int
	}{
		{"p1", 7, 7, 3, 3, 5, 5, 8},
		{"p2", 6, 6, 2, 2, 5, 5, 2},
		{"p3", 5, 7, 3, 3, 3, 5, 4},
	}
	demo := problem.Demo()
	require.Len(t, demo, len(cases))
	require.Equal(t, len(cases), problem.Len())

	for i, tc := range cases {
		tc := tc
		p := demo[i]
		t.Run(tc.id, func(t *testing.T) {
			require.Equal(t, tc.id, p.ID)
			require.NoError(t, p.Validate())
			require.False(t, p.IsRGB())

			r, c := p.Image.Shape()
			require.Equal(t, [2]int{tc.rows, tc.cols}, [2]int{r, c})
			r, c = p.Kernel.Shape()
			require.Equal(t, [2]int{tc.kh, tc.kw}, [2]int{r, c})

			valid, err := p.Engine(xcorr.Valid)
			require.NoError(t, err)
			r, c = valid.OutputShape()
			require.Equal(t, [2]int{tc.validRows, tc.validC}, [2]int{r, c})
			require.Equal(t, tc.firstValid, valid.CorrelateAt(0, 0))

			same, err := p.Engine(xcorr.Same)
			require.NoError(t, err)
			r, c = same.OutputShape()
			require.Equal(t, [2]int{tc.rows, tc.cols}, [2]int{r, c})
		})
	}
}

func TestDemo_EvenKernelSame(t *testing.T) {
	p, err := problem.ByIndex(1)
	require.NoError(t, err)
	e, err := p.Engine(xcorr.Same)
	require.NoError(t, err)

	// floor(2/2) = 1 padding on every side; the window at (r,c) covers
	// image rows r-1..r and cols c-1..c.
	assert.Equal(t, 0, e.CorrelateAt(0, 0))
	assert.Equal(t, 2, e.CorrelateAt(5, 5))
	assert.Equal(t, 2+3+3+5, e.CorrelateAt(2, 2))
}

func TestByIndexAndID(t *testing.T) {
	for _, i := range []int{-1, problem.Len()} {
		_, err := problem.ByIndex(i)
		require.ErrorIs(t, err, problem.ErrUnknownProblem)
	}
	p, err := problem.ByID(" P3 ")
	require.NoError(t, err)
	require.Equal(t, "p3", p.ID)

	p, err = problem.ByID(problem.RGBDemoID)
	require.NoError(t, err)
	require.True(t, p.IsRGB())

	_, err = problem.ByID("p9")
	require.ErrorIs(t, err, problem.ErrUnknownProblem)
}

func TestDemo_FreshCopies(t *testing.T) {
	a, err := problem.ByIndex(0)
	require.NoError(t, err)
	require.NoError(t, a.Image.Set(0, 0, 42))

	b, err := problem.ByIndex(0)
	require.NoError(t, err)
	require.Equal(t, 0, b.Image.Value(0, 0))

	c := b.Clone()
	require.NoError(t, c.Kernel.Set(0, 0, 42))
	require.Equal(t, -1, b.Kernel.Value(0, 0))
}

// TestRGBDemo_SumOfChannels checks the summed response at the origin:
// R Sobel X = 8, G Laplacian = 4, B Sobel Y = -8.
func TestRGBDemo_SumOfChannels(t *testing.T) {
	p := problem.RGBDemo()
	require.NoError(t, p.Validate())

	e, err := p.RGBEngine()
	require.NoError(t, err)
	rows, cols := e.OutputShape()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)

	assert.Equal(t, 8, e.ChannelAt(xcorr.Red, 0, 0))
	assert.Equal(t, 4, e.ChannelAt(xcorr.Green, 0, 0))
	assert.Equal(t, -8, e.ChannelAt(xcorr.Blue, 0, 0))
	assert.Equal(t, 4, e.CorrelateAt(0, 0))

	_, err = p.Engine(xcorr.Valid)
	require.ErrorIs(t, err, problem.ErrInvalidProblem)

	gray, err := problem.ByIndex(0)
	require.NoError(t, err)
	_, err = gray.RGBEngine()
	require.ErrorIs(t, err, problem.ErrInvalidProblem)

	clone := p.Clone()
	require.NoError(t, clone.RGB[xcorr.Red].Image.Set(0, 0, 9))
	require.Equal(t, 1, p.RGB[xcorr.Red].Image.Value(0, 0))
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, problem.Problem{ID: "x"}.Validate(), problem.ErrInvalidProblem)

	bad := problem.RGBDemo()
	bad.Image = grid.MustFromRows([][]int{{1}})
	require.ErrorIs(t, bad.Validate(), problem.ErrInvalidProblem)

	mismatched := problem.RGBDemo()
	mismatched.RGB[xcorr.Blue].Image = grid.MustFromRows([][]int{{1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4}})
	require.ErrorIs(t, mismatched.Validate(), grid.ErrDimensionMismatch)
}

func TestStats(t *testing.T) {
	p, err := problem.ByIndex(0)
	require.NoError(t, err)
	require.Equal(t, grid.Stats{ImageMin: 0, ImageMax: 6, KernelMaxAbs: 2}, p.Stats())

	s := problem.RGBDemo().Stats()
	require.Equal(t, 1, s.ImageMin)
	require.Equal(t, 5, s.ImageMax)

	_, ok := p.ChannelStats()
	require.False(t, ok)
}

// TestChannelStats gives every RGB plane its own heatmap scale.
func TestChannelStats(t *testing.T) {
	p := problem.RGBDemo()
	stats, ok := p.ChannelStats()
	require.True(t, ok)
	require.Equal(t, p.Stats(), stats[xcorr.Red])

	for _, ch := range xcorr.ChannelOrder {
		want := grid.StatsOf(p.RGB[ch].Image, p.RGB[ch].Kernel)
		assert.Equal(t, want, stats[ch], "channel %v", ch)
	}
	assert.Equal(t, 4, stats[xcorr.Green].KernelMaxAbs, "laplacian centre")
}

func TestPractice(t *testing.T) {
	_, err := problem.Practice()
	require.ErrorIs(t, err, pattern.ErrNeedRandSource)

	a, err := problem.Practice(pattern.WithSeed(11))
	require.NoError(t, err)
	b, err := problem.Practice(pattern.WithSeed(11))
	require.NoError(t, err)

	require.Equal(t, problem.PracticeID, a.ID)
	require.Equal(t, a.Name, b.Name)
	require.True(t, a.Image.Equal(b.Image))
	require.True(t, a.Kernel.Equal(b.Kernel))
	require.Contains(t, a.Name, "28×28")

	e, err := a.Engine(xcorr.Valid)
	require.NoError(t, err)
	rows, cols := e.OutputShape()
	require.Equal(t, 26, rows)
	require.Equal(t, 26, cols)
}
