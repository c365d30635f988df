package xcorr_test

import (
	"testing"

	"github.com/katalvlaran/convlab/grid"
	"github.com/katalvlaran/convlab/xcorr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toDense copies a grid into a gonum dense matrix.
func toDense(g *grid.Grid) *mat.Dense {
	rows, cols := g.Shape()
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, float64(g.Value(i, j)))
		}
	}
	return d
}

// oracle computes a window sum independently: element-wise product of the
// window slice and the kernel, then a full sum.
func oracle(in, kernel *grid.Grid, row, col int) int {
	kh, kw := kernel.Shape()
	window := toDense(in).Slice(row, row+kh, col, col+kw)
	var prod mat.Dense
	prod.MulElem(window, toDense(kernel))
	return int(mat.Sum(&prod))
}

var (
	ramp3   = [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}
	diag2   = [][]int{{1, 0}, {0, 1}}
	sobelX  = [][]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	pyramid = [][]int{
		{0, 1, 2, 3, 2, 1, 0},
		{1, 2, 3, 4, 3, 2, 1},
		{2, 3, 4, 5, 4, 3, 2},
		{3, 4, 5, 6, 5, 4, 3},
		{2, 3, 4, 5, 4, 3, 2},
		{1, 2, 3, 4, 3, 2, 1},
		{0, 1, 2, 3, 2, 1, 0},
	}
)

// TestValid_WorkedExample checks the documented 3×3 / 2×2 example.
func TestValid_WorkedExample(t *testing.T) {
	e, err := xcorr.NewEngine(grid.MustFromRows(ramp3), grid.MustFromRows(diag2), xcorr.Valid)
	require.NoError(t, err)

	require.Equal(t, 2, e.CorrelateAt(0, 0)) // 0*1 + 1*0 + 1*0 + 2*1
	require.Equal(t, [][]int{{2, 4}, {4, 6}}, e.Full().ToRows())
}

// TestSame_WorkedExample checks the same input in SAME mode against the
// explicit padded grid: pad = 1 on every side for a 2×2 kernel.
func TestSame_WorkedExample(t *testing.T) {
	img, ker := grid.MustFromRows(ramp3), grid.MustFromRows(diag2)
	e, err := xcorr.NewEngine(img, ker, xcorr.Same)
	require.NoError(t, err)

	out := e.Full()
	rows, cols := out.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	// (0,0): padded[0][0]*1 + padded[1][1]*1 = 0 + 0.
	require.Equal(t, [][]int{{0, 1, 2}, {1, 2, 4}, {2, 4, 6}}, out.ToRows())

	padded, err := xcorr.Pad(img, ker)
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assert.Equal(t, oracle(padded, ker, r, c), out.Value(r, c), "cell (%d,%d)", r, c)
		}
	}
}

// TestValid_FullMatchesCorrelateAt covers the batch/single equivalence and shape.
func TestValid_FullMatchesCorrelateAt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		img    [][]int
		kernel [][]int
	}{
		{"7x7 sobel-x", pyramid, sobelX},
		{"3x3 diag", ramp3, diag2},
		{"kernel equals image", ramp3, sobelX},
		{"1x3 row kernel", pyramid, [][]int{{1, -2, 1}}},
		{"3x1 col kernel", pyramid, [][]int{{1}, {0}, {-1}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			img, ker := grid.MustFromRows(tc.img), grid.MustFromRows(tc.kernel)
			e, err := xcorr.NewEngine(img, ker, xcorr.Valid)
			require.NoError(t, err)

			out := e.Full()
			wantR := img.Rows() - ker.Rows() + 1
			wantC := img.Cols() - ker.Cols() + 1
			gotR, gotC := out.Shape()
			require.Equal(t, wantR, gotR)
			require.Equal(t, wantC, gotC)

			for r := 0; r < wantR; r++ {
				for c := 0; c < wantC; c++ {
					require.Equal(t, e.CorrelateAt(r, c), out.Value(r, c))
					require.Equal(t, oracle(img, ker, r, c), out.Value(r, c))
				}
			}
		})
	}
}

// TestSame_ShapeAnyKernel verifies SAME output always matches the input shape.
func TestSame_ShapeAnyKernel(t *testing.T) {
	t.Parallel()

	img := grid.MustFromRows([][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})
	for kh := 1; kh <= 5; kh++ {
		for kw := 1; kw <= 5; kw++ {
			ker, err := grid.Build(kh, kw, func(r, c int) int { return r - c })
			require.NoError(t, err)

			e, err := xcorr.NewEngine(img, ker, xcorr.Same)
			require.NoError(t, err)
			rows, cols := e.Full().Shape()
			require.Equal(t, 3, rows, "kernel %dx%d", kh, kw)
			require.Equal(t, 4, cols, "kernel %dx%d", kh, kw)

			padded, err := xcorr.Pad(img, ker)
			require.NoError(t, err)
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					require.Equal(t, oracle(padded, ker, r, c), e.CorrelateAt(r, c))
				}
			}
		}
	}
}

// TestSame_OddKernelSumsImage checks a 3×3 box over a 2×2 image: every
// window covers the whole image.
func TestSame_OddKernelSumsImage(t *testing.T) {
	img := grid.MustFromRows([][]int{{1, 2}, {3, 4}})
	box := grid.MustFromRows([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	e, err := xcorr.NewEngine(img, box, xcorr.Same)
	require.NoError(t, err)
	require.Equal(t, [][]int{{10, 10}, {10, 10}}, e.Full().ToRows())
}

// TestCorrelateAt_Clamps verifies out-of-range positions are clamped, not rejected.
func TestCorrelateAt_Clamps(t *testing.T) {
	e, err := xcorr.NewEngine(grid.MustFromRows(ramp3), grid.MustFromRows(diag2), xcorr.Valid)
	require.NoError(t, err)

	assert.Equal(t, e.CorrelateAt(0, 0), e.CorrelateAt(-5, -1))
	assert.Equal(t, e.CorrelateAt(1, 1), e.CorrelateAt(9, 9))
	assert.Equal(t, e.CorrelateAt(1, 0), e.CorrelateAt(7, -2))

	w := e.Window(5, 5)
	assert.Equal(t, xcorr.Window{Row: 1, Col: 1, Rows: 2, Cols: 2, GridRows: 3, GridCols: 3}, w)
}

// TestNewEngine_Errors covers construction failures.
func TestNewEngine_Errors(t *testing.T) {
	t.Parallel()

	img := grid.MustFromRows(ramp3)
	big := grid.MustFromRows([][]int{{1, 1, 1, 1}})

	_, err := xcorr.NewEngine(nil, img, xcorr.Valid)
	require.ErrorIs(t, err, xcorr.ErrNilInput)

	_, err = xcorr.NewEngine(img, nil, xcorr.Same)
	require.ErrorIs(t, err, xcorr.ErrNilInput)

	_, err = xcorr.NewEngine(img, img, xcorr.Mode(7))
	require.ErrorIs(t, err, xcorr.ErrUnknownMode)

	_, err = xcorr.NewEngine(img, big, xcorr.Valid)
	require.ErrorIs(t, err, xcorr.ErrKernelTooLarge)
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)

	// SAME accepts any kernel size.
	e, err := xcorr.NewEngine(img, big, xcorr.Same)
	require.NoError(t, err)
	rows, cols := e.OutputShape()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
}

// TestEngine_InputsAreCloned ensures later mutation of inputs has no effect.
func TestEngine_InputsAreCloned(t *testing.T) {
	img := grid.MustFromRows(ramp3)
	e, err := xcorr.NewEngine(img, grid.MustFromRows(diag2), xcorr.Valid)
	require.NoError(t, err)

	require.NoError(t, img.Set(0, 0, 100))
	require.Equal(t, 2, e.CorrelateAt(0, 0))
	require.Equal(t, 0, e.Image().Value(0, 0))
}

func TestValidShape(t *testing.T) {
	r, c := xcorr.ValidShape(7, 7, 3, 3)
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, c)

	r, c = xcorr.ValidShape(2, 5, 3, 3)
	assert.Equal(t, 0, r)
	assert.Equal(t, 3, c)
}

func TestParseMode(t *testing.T) {
	m, err := xcorr.ParseMode(" Same ")
	require.NoError(t, err)
	require.Equal(t, xcorr.Same, m)
	require.Equal(t, "same", m.String())

	m, err = xcorr.ParseMode("VALID")
	require.NoError(t, err)
	require.Equal(t, xcorr.Valid, m)

	_, err = xcorr.ParseMode("full")
	require.ErrorIs(t, err, xcorr.ErrUnknownMode)
	require.Equal(t, "Mode(9)", xcorr.Mode(9).String())
}
