// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"

	"github.com/katalvlaran/convlab/grid"
)

// Sample is one practice draw: a pattern image and a library kernel.
type Sample struct {
	Image  *grid.Grid
	Kind   Kind
	Kernel NamedKernel
}

// Draw generates a pattern and then a kernel from the same RNG stream, so a
// seed fixes both.
// Errors: ErrNeedRandSource.
func Draw(opts ...Option) (Sample, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return Sample{}, fmt.Errorf("Draw: %w", ErrNeedRandSource)
	}
	img, kind, err := generate(cfg.rng, cfg.size)
	if err != nil {
		return Sample{}, fmt.Errorf("Draw: %w", err)
	}

	return Sample{Image: img, Kind: kind, Kernel: drawKernel(cfg.rng)}, nil
}
