// SPDX-License-Identifier: MIT

package explorer

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/convlab/export"
	"github.com/katalvlaran/convlab/xcorr"
)

// Export renders a mode's inputs as a NumPy script. Same mode exports the
// zero-padded image; RGB exports image_r..image_b and kernel_r..kernel_b.
func (e *Explorer) Export(mode Mode) (string, error) {
	p, err := e.Inputs(mode)
	if err != nil {
		return "", fmt.Errorf("Export: %w", err)
	}

	switch mode {
	case ModeSame:
		padded, err := xcorr.Pad(p.Image, p.Kernel)
		if err != nil {
			return "", fmt.Errorf("Export(%v): %w", mode, err)
		}
		return export.Script(
			export.Block{Name: "image", Comment: export.PaddedComment, Grid: padded},
			export.Block{Name: "kernel", Grid: p.Kernel},
		), nil
	case ModeRGB:
		blocks := make([]export.Block, 0, 2*xcorr.NumChannels)
		for _, ch := range xcorr.ChannelOrder {
			blocks = append(blocks, export.Block{Name: "image_" + strings.ToLower(ch.String()), Grid: p.RGB[ch].Image})
		}
		for _, ch := range xcorr.ChannelOrder {
			blocks = append(blocks, export.Block{Name: "kernel_" + strings.ToLower(ch.String()), Grid: p.RGB[ch].Kernel})
		}
		return export.Script(blocks...), nil
	default:
		return export.Script(
			export.Block{Name: "image", Grid: p.Image},
			export.Block{Name: "kernel", Grid: p.Kernel},
		), nil
	}
}
