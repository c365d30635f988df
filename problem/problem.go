// SPDX-License-Identifier: MIT
// Package: problem
//
// problem.go — the Problem bundle and its derived engines.

package problem

import (
	"fmt"

	"github.com/katalvlaran/convlab/grid"
	"github.com/katalvlaran/convlab/xcorr"
)

// Problem is a named exercise. Exactly one of (Image, Kernel) or RGB is set.
type Problem struct {
	ID   string // stable key, e.g. "p1"
	Name string // display label for a selection list

	Image  *grid.Grid
	Kernel *grid.Grid

	RGB *xcorr.Channels
}

// IsRGB reports whether the problem carries a channel set.
func (p Problem) IsRGB() bool { return p.RGB != nil }

// Validate checks that the bundle is usable for its kind.
// Errors: ErrInvalidProblem, or the channel-set error from xcorr.
func (p Problem) Validate() error {
	if p.IsRGB() {
		if p.Image != nil || p.Kernel != nil {
			return fmt.Errorf("Problem(%s).Validate: grayscale and RGB inputs both set: %w", p.ID, ErrInvalidProblem)
		}
		if err := p.RGB.Validate(); err != nil {
			return fmt.Errorf("Problem(%s).Validate: %w", p.ID, err)
		}

		return nil
	}
	if p.Image == nil || p.Kernel == nil {
		return fmt.Errorf("Problem(%s).Validate: missing image or kernel: %w", p.ID, ErrInvalidProblem)
	}

	return nil
}

// Clone deep-copies every grid.
func (p Problem) Clone() Problem {
	out := Problem{ID: p.ID, Name: p.Name, Image: p.Image.Clone(), Kernel: p.Kernel.Clone()}
	if p.RGB != nil {
		ch := p.RGB.Clone()
		out.RGB = &ch
	}

	return out
}

// Stats returns the heatmap scaling statistics of the grayscale pair. For RGB
// problems it returns the red channel's; use ChannelStats for all three.
func (p Problem) Stats() grid.Stats {
	if p.IsRGB() {
		return grid.StatsOf(p.RGB[xcorr.Red].Image, p.RGB[xcorr.Red].Kernel)
	}

	return grid.StatsOf(p.Image, p.Kernel)
}

// ChannelStats returns per-channel heatmap statistics indexed by xcorr.Channel.
// ok is false for grayscale problems.
func (p Problem) ChannelStats() (stats [xcorr.NumChannels]grid.Stats, ok bool) {
	if !p.IsRGB() {
		return stats, false
	}
	for _, ch := range xcorr.ChannelOrder {
		stats[ch] = grid.StatsOf(p.RGB[ch].Image, p.RGB[ch].Kernel)
	}

	return stats, true
}

// Engine builds a grayscale engine for the given padding mode.
// Errors: ErrInvalidProblem for RGB problems; xcorr construction errors.
func (p Problem) Engine(mode xcorr.Mode) (*xcorr.Engine, error) {
	if p.IsRGB() {
		return nil, fmt.Errorf("Problem(%s).Engine(%v): RGB problem: %w", p.ID, mode, ErrInvalidProblem)
	}
	e, err := xcorr.NewEngine(p.Image, p.Kernel, mode)
	if err != nil {
		return nil, fmt.Errorf("Problem(%s).Engine(%v): %w", p.ID, mode, err)
	}

	return e, nil
}

// RGBEngine builds the multi-channel engine.
// Errors: ErrInvalidProblem for grayscale problems; xcorr construction errors.
func (p Problem) RGBEngine() (*xcorr.RGBEngine, error) {
	if !p.IsRGB() {
		return nil, fmt.Errorf("Problem(%s).RGBEngine: grayscale problem: %w", p.ID, ErrInvalidProblem)
	}
	e, err := xcorr.NewRGBEngine(*p.RGB)
	if err != nil {
		return nil, fmt.Errorf("Problem(%s).RGBEngine: %w", p.ID, err)
	}

	return e, nil
}
