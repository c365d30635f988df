// SPDX-License-Identifier: MIT
// Package: xcorr
//
// rgb.go — three-channel correlation producing a single feature map.
//
// Contract:
//   - All three images share one shape; all three kernels share one shape.
//   - Window geometry is VALID.
//   - CorrelateAt(r,c) = Σ_ch Σ_{i,j} kernel_ch[i][j] * image_ch[r+i][c+j],
//     accumulated in the fixed channel order Red, Green, Blue.

package xcorr

import (
	"fmt"

	"github.com/katalvlaran/convlab/grid"
)

// Channel tags one plane of an RGB input.
type Channel int

const (
	// Red is accumulated first.
	Red Channel = iota
	// Green is accumulated second.
	Green
	// Blue is accumulated last.
	Blue
)

// NumChannels is the number of planes in a Channels set.
const NumChannels = 3

// ChannelOrder is the accumulation order used by RGBEngine.
var ChannelOrder = [NumChannels]Channel{Red, Green, Blue}

// String returns "R", "G" or "B".
func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Pair is one channel's image and kernel.
type Pair struct {
	Image  *grid.Grid
	Kernel *grid.Grid
}

// Channels is an RGB input indexed by Channel.
type Channels [NumChannels]Pair

// Validate checks the channel set: no nil grids, equal image shapes,
// equal kernel shapes, and a kernel that fits the image (VALID geometry).
func (cs Channels) Validate() error {
	for _, ch := range ChannelOrder {
		if cs[ch].Image == nil || cs[ch].Kernel == nil {
			return fmt.Errorf("Channels.Validate(%v): %w", ch, ErrNilInput)
		}
	}
	for _, ch := range ChannelOrder[1:] {
		if err := grid.ValidateSameShape(cs[Red].Image, cs[ch].Image); err != nil {
			return fmt.Errorf("Channels.Validate(%v image): %w", ch, err)
		}
		if err := grid.ValidateSameShape(cs[Red].Kernel, cs[ch].Kernel); err != nil {
			return fmt.Errorf("Channels.Validate(%v kernel): %w", ch, err)
		}
	}
	kh, kw := cs[Red].Kernel.Shape()
	if err := grid.ValidateFits(cs[Red].Image, kh, kw); err != nil {
		return fmt.Errorf("Channels.Validate: %w: %w", ErrKernelTooLarge, err)
	}

	return nil
}

// Clone deep-copies every grid in the set.
func (cs Channels) Clone() Channels {
	var out Channels
	for _, ch := range ChannelOrder {
		out[ch] = Pair{Image: cs[ch].Image.Clone(), Kernel: cs[ch].Kernel.Clone()}
	}

	return out
}

// RGBEngine correlates a three-channel input into one output grid.
type RGBEngine struct {
	ch               Channels
	outRows, outCols int
}

var _ Correlator = (*RGBEngine)(nil)

// NewRGBEngine validates and clones the channel set.
// Errors: ErrNilInput, grid.ErrDimensionMismatch, ErrKernelTooLarge (wrapped).
func NewRGBEngine(ch Channels) (*RGBEngine, error) {
	if err := ch.Validate(); err != nil {
		return nil, fmt.Errorf("NewRGBEngine: %w", err)
	}
	inRows, inCols := ch[Red].Image.Shape()
	kh, kw := ch[Red].Kernel.Shape()
	e := &RGBEngine{ch: ch.Clone()}
	e.outRows, e.outCols = ValidShape(inRows, inCols, kh, kw)

	return e, nil
}

// Channels returns a deep copy of the channel set.
func (e *RGBEngine) Channels() Channels { return e.ch.Clone() }

// OutputShape returns the VALID output dimensions shared by all channels.
func (e *RGBEngine) OutputShape() (rows, cols int) { return e.outRows, e.outCols }

// ChannelAt returns one channel's contribution at top-left (row, col), clamped.
// Unknown channels contribute 0.
func (e *RGBEngine) ChannelAt(ch Channel, row, col int) int {
	if ch < Red || ch > Blue {
		return 0
	}
	row, col = clampWindow(row, col, e.outRows, e.outCols)

	return validAt(e.ch[ch].Image, e.ch[ch].Kernel, row, col)
}

// CorrelateAt sums the three channel contributions in R, G, B order.
// Complexity: O(3*kh*kw).
func (e *RGBEngine) CorrelateAt(row, col int) int {
	row, col = clampWindow(row, col, e.outRows, e.outCols)
	sum := 0
	for _, ch := range ChannelOrder {
		sum += validAt(e.ch[ch].Image, e.ch[ch].Kernel, row, col)
	}

	return sum
}

// Full returns the whole output grid, row-major.
func (e *RGBEngine) Full() *grid.Grid {
	out, _ := grid.Build(e.outRows, e.outCols, e.CorrelateAt)

	return out
}

// Window returns the highlighted rectangle (identical in every channel).
func (e *RGBEngine) Window(row, col int) Window {
	row, col = clampWindow(row, col, e.outRows, e.outCols)
	kh, kw := e.ch[Red].Kernel.Shape()
	gr, gc := e.ch[Red].Image.Shape()

	return Window{Row: row, Col: col, Rows: kh, Cols: kw, GridRows: gr, GridCols: gc}
}
