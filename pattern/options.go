// SPDX-License-Identifier: MIT
// Package: pattern
//
// options.go — functional options and resolved configuration.
//
// Defaults:
//   - size = DefaultSize (28)
//   - rng  = nil (stochastic calls fail with ErrNeedRandSource)

package pattern

import "math/rand"

const (
	// DefaultSize is the side length of generated practice images.
	DefaultSize = 28
	// MinSize is the smallest side length the parameter ranges still fit.
	MinSize = 16
)

// Option customizes generation by mutating a config before drawing.
type Option func(*config)

type config struct {
	size int
	rng  *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{size: DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand shares an explicit RNG stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pattern: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG so draws are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSize sets the side length of generated images. Parameter ranges scale
// proportionally from the 28×28 reference. Panics if n < MinSize.
func WithSize(n int) Option {
	if n < MinSize {
		panic("pattern: WithSize(n<MinSize)")
	}
	return func(c *config) { c.size = n }
}

// randIn returns a uniform integer in [lo, hi].
func randIn(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rng.Intn(hi-lo+1)
}

// scaled maps a bound defined for DefaultSize onto an n-sized grid.
func scaled(v, n int) int { return v * n / DefaultSize }
