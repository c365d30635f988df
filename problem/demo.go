// SPDX-License-Identifier: MIT
// Package: problem
//
// demo.go — the fixed demonstration set.
//
//   p1: 7×7 pyramid, 3×3 Sobel X (VALID 5×5)
//   p2: 6×6 blob,    2×2 box     (VALID 5×5; SAME exercises even padding)
//   p3: 5×7 ridge,   3×3 Sobel Y (VALID 3×5)
//   rgb1: 5×5 ×3 channels, 3×3 ×3 kernels (VALID 3×3)

package problem

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/convlab/grid"
	"github.com/katalvlaran/convlab/pattern"
	"github.com/katalvlaran/convlab/xcorr"
)

type demoSpec struct {
	id, name      string
	image, kernel [][]int
}

var demos = []demoSpec{
	{
		id:   "p1",
		name: "P1: 7×7 image, 3×3 Sobel X",
		image: [][]int{
			{0, 1, 2, 3, 2, 1, 0},
			{1, 2, 3, 4, 3, 2, 1},
			{2, 3, 4, 5, 4, 3, 2},
			{3, 4, 5, 6, 5, 4, 3},
			{2, 3, 4, 5, 4, 3, 2},
			{1, 2, 3, 4, 3, 2, 1},
			{0, 1, 2, 3, 2, 1, 0},
		},
		kernel: pattern.MustKernel(pattern.SobelX).ToRows(),
	},
	{
		id:   "p2",
		name: "P2: 6×6 image, 2×2 box",
		image: [][]int{
			{0, 0, 1, 1, 0, 0},
			{0, 2, 3, 3, 2, 0},
			{1, 3, 5, 5, 3, 1},
			{1, 3, 5, 5, 3, 1},
			{0, 2, 3, 3, 2, 0},
			{0, 0, 1, 1, 0, 0},
		},
		kernel: [][]int{{1, 1}, {1, 1}},
	},
	{
		id:   "p3",
		name: "P3: 5×7 image, 3×3 Sobel Y",
		image: [][]int{
			{1, 1, 1, 1, 1, 1, 1},
			{1, 2, 2, 2, 2, 2, 1},
			{1, 2, 3, 3, 3, 2, 1},
			{1, 2, 2, 2, 2, 2, 1},
			{1, 1, 1, 1, 1, 1, 1},
		},
		kernel: pattern.MustKernel(pattern.SobelY).ToRows(),
	},
}

// RGBDemoID identifies the multi-channel demonstration problem.
const RGBDemoID = "rgb1"

var rgbDemo = [xcorr.NumChannels]struct {
	image  [][]int
	kernel string
}{
	xcorr.Red: {
		image: [][]int{
			{1, 2, 3, 2, 1},
			{2, 3, 4, 3, 2},
			{3, 4, 5, 4, 3},
			{2, 3, 4, 3, 2},
			{1, 2, 3, 2, 1},
		},
		kernel: pattern.SobelX,
	},
	xcorr.Green: {
		image: [][]int{
			{0, 1, 0, 1, 0},
			{1, 0, 1, 0, 1},
			{0, 1, 0, 1, 0},
			{1, 0, 1, 0, 1},
			{0, 1, 0, 1, 0},
		},
		kernel: pattern.Laplacian,
	},
	xcorr.Blue: {
		image: [][]int{
			{4, 4, 4, 4, 4},
			{3, 3, 3, 3, 3},
			{2, 2, 2, 2, 2},
			{1, 1, 1, 1, 1},
			{0, 0, 0, 0, 0},
		},
		kernel: pattern.SobelY,
	},
}

func (d demoSpec) problem() Problem {
	return Problem{
		ID:     d.id,
		Name:   d.name,
		Image:  grid.MustFromRows(d.image),
		Kernel: grid.MustFromRows(d.kernel),
	}
}

// Demo returns fresh copies of the grayscale demonstration set, in order.
func Demo() []Problem {
	out := make([]Problem, len(demos))
	for i, d := range demos {
		out[i] = d.problem()
	}

	return out
}

// Len returns the size of the grayscale demonstration set.
func Len() int { return len(demos) }

// ByIndex returns demonstration problem i (0-based).
// Errors: ErrUnknownProblem.
func ByIndex(i int) (Problem, error) {
	if i < 0 || i >= len(demos) {
		return Problem{}, fmt.Errorf("ByIndex(%d): %w", i, ErrUnknownProblem)
	}

	return demos[i].problem(), nil
}

// ByID looks up a demonstration problem, including RGBDemoID, case-insensitively.
// Errors: ErrUnknownProblem.
func ByID(id string) (Problem, error) {
	key := strings.TrimSpace(id)
	if strings.EqualFold(key, RGBDemoID) {
		return RGBDemo(), nil
	}
	for _, d := range demos {
		if strings.EqualFold(key, d.id) {
			return d.problem(), nil
		}
	}

	return Problem{}, fmt.Errorf("ByID(%q): %w", id, ErrUnknownProblem)
}

// RGBDemo returns the multi-channel demonstration problem.
func RGBDemo() Problem {
	var ch xcorr.Channels
	for _, c := range xcorr.ChannelOrder {
		ch[c] = xcorr.Pair{
			Image:  grid.MustFromRows(rgbDemo[c].image),
			Kernel: pattern.MustKernel(rgbDemo[c].kernel),
		}
	}

	return Problem{ID: RGBDemoID, Name: "RGB: 5×5×3 image, 3×3×3 kernel", RGB: &ch}
}
