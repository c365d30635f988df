// SPDX-License-Identifier: MIT
// Package: explorer
//
// options.go — functional options.
//
// Defaults:
//   - logger   = zerolog.Nop()
//   - rng      = seeded from the wall clock (use WithSeed for reproducibility)
//   - maxSize  = pattern.DefaultSize (28) for uploads
//   - loader   = imageload.NewDecoder()
//   - problems = problem.Demo(); rgb = problem.RGBDemo()

package explorer

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/convlab/imageload"
	"github.com/katalvlaran/convlab/pattern"
	"github.com/katalvlaran/convlab/problem"
)

// Option customizes an Explorer.
type Option func(*config)

type config struct {
	log      zerolog.Logger
	rng      *rand.Rand
	maxSize  int
	loader   imageload.Loader
	problems []problem.Problem
	rgb      *problem.Problem
}

func newConfig(opts ...Option) config {
	cfg := config{
		log:     zerolog.Nop(),
		maxSize: pattern.DefaultSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.loader == nil {
		cfg.loader = imageload.NewDecoder()
	}
	if cfg.problems == nil {
		cfg.problems = problem.Demo()
	}
	if cfg.rgb == nil {
		p := problem.RGBDemo()
		cfg.rgb = &p
	}

	return cfg
}

// WithLogger attaches a zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithSeed makes practice generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares an RNG stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("explorer: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithMaxUploadSize bounds the larger side of uploaded images. Panics if n < 1.
func WithMaxUploadSize(n int) Option {
	if n < 1 {
		panic("explorer: WithMaxUploadSize(n<1)")
	}
	return func(c *config) { c.maxSize = n }
}

// WithLoader replaces the image loader. Panics on nil.
func WithLoader(l imageload.Loader) Option {
	if l == nil {
		panic("explorer: WithLoader(nil)")
	}
	return func(c *config) { c.loader = l }
}

// WithProblems replaces the grayscale problem list. Panics when empty.
// Problems are validated by New.
func WithProblems(ps ...problem.Problem) Option {
	if len(ps) == 0 {
		panic("explorer: WithProblems()")
	}
	return func(c *config) {
		c.problems = make([]problem.Problem, len(ps))
		for i, p := range ps {
			c.problems[i] = p.Clone()
		}
	}
}

// WithRGBProblem replaces the multi-channel problem. Panics unless p.IsRGB().
func WithRGBProblem(p problem.Problem) Option {
	if !p.IsRGB() {
		panic("explorer: WithRGBProblem(grayscale)")
	}
	return func(c *config) {
		cp := p.Clone()
		c.rgb = &cp
	}
}
