// SPDX-License-Identifier: MIT
// Package: explorer
//
// explorer.go — construction, problem selection and per-mode stepping.

package explorer

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/convlab/grid"
	"github.com/katalvlaran/convlab/pattern"
	"github.com/katalvlaran/convlab/problem"
	"github.com/katalvlaran/convlab/stepper"
	"github.com/katalvlaran/convlab/xcorr"
)

// UploadID identifies the problem built from an uploaded image.
const UploadID = "upload"

// Explorer owns the selected problem and one session per mode.
type Explorer struct {
	cfg config
	log zerolog.Logger

	selected int
	current  problem.Problem
	practice problem.Problem
	upload   *problem.Problem // nil until an image loads

	sessions [numModes]*stepper.Session
}

// New builds an explorer on the first problem, the RGB problem and a freshly
// drawn practice problem. Upload mode stays empty until LoadUpload succeeds.
// Errors: problem.ErrInvalidProblem and engine construction errors.
func New(opts ...Option) (*Explorer, error) {
	cfg := newConfig(opts...)
	for _, p := range cfg.problems {
		if p.IsRGB() {
			return nil, fmt.Errorf("New(%s): RGB problem in grayscale list: %w", p.ID, problem.ErrInvalidProblem)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}

	e := &Explorer{cfg: cfg, log: cfg.log.With().Str("component", "explorer").Logger()}

	rgb, err := cfg.rgb.RGBEngine()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if e.sessions[ModeRGB], err = e.newSession(ModeRGB, rgb); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err = e.SelectProblem(0); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if _, err = e.NewPractice(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

func (e *Explorer) newSession(mode Mode, engine xcorr.Correlator) (*stepper.Session, error) {
	return stepper.NewSession(engine, stepper.WithName(mode.String()), stepper.WithLogger(e.cfg.log))
}

// Problems returns copies of the selectable grayscale problems.
func (e *Explorer) Problems() []problem.Problem {
	out := make([]problem.Problem, len(e.cfg.problems))
	for i, p := range e.cfg.problems {
		out[i] = p.Clone()
	}

	return out
}

// Selected returns the index of the selected problem.
func (e *Explorer) Selected() int { return e.selected }

// SelectProblem switches the Valid and Same modes to problem i and resets
// every mode's output and cursor.
// Errors: problem.ErrUnknownProblem; engine errors leave the state unchanged.
func (e *Explorer) SelectProblem(i int) error {
	if i < 0 || i >= len(e.cfg.problems) {
		return fmt.Errorf("SelectProblem(%d): %w", i, problem.ErrUnknownProblem)
	}
	p := e.cfg.problems[i].Clone()

	var fresh [2]*stepper.Session
	for j, mode := range []Mode{ModeValid, ModeSame} {
		engine, err := p.Engine(padding(mode))
		if err != nil {
			return fmt.Errorf("SelectProblem(%d): %w", i, err)
		}
		if fresh[j], err = e.newSession(mode, engine); err != nil {
			return fmt.Errorf("SelectProblem(%d): %w", i, err)
		}
	}

	e.selected, e.current = i, p
	e.sessions[ModeValid], e.sessions[ModeSame] = fresh[0], fresh[1]
	for _, mode := range []Mode{ModeRGB, ModePractice, ModeUpload} {
		if s := e.sessions[mode]; s != nil {
			s.Reset()
		}
	}
	e.log.Info().Int("index", i).Str("problem", p.ID).Msg("problem selected")

	return nil
}

// NewPractice draws a new practice problem and replaces the practice session.
func (e *Explorer) NewPractice() (problem.Problem, error) {
	p, err := problem.Practice(pattern.WithRand(e.cfg.rng))
	if err != nil {
		return problem.Problem{}, fmt.Errorf("NewPractice: %w", err)
	}
	engine, err := p.Engine(xcorr.Valid)
	if err != nil {
		return problem.Problem{}, fmt.Errorf("NewPractice: %w", err)
	}
	s, err := e.newSession(ModePractice, engine)
	if err != nil {
		return problem.Problem{}, fmt.Errorf("NewPractice: %w", err)
	}

	e.practice, e.sessions[ModePractice] = p, s
	e.log.Info().Str("problem", p.Name).Msg("practice generated")

	return p.Clone(), nil
}

// Inputs returns a copy of the problem a mode correlates.
// Errors: ErrUnknownMode, ErrNoImage.
func (e *Explorer) Inputs(mode Mode) (problem.Problem, error) {
	switch mode {
	case ModeValid, ModeSame:
		return e.current.Clone(), nil
	case ModeRGB:
		return e.cfg.rgb.Clone(), nil
	case ModePractice:
		return e.practice.Clone(), nil
	case ModeUpload:
		if e.upload == nil {
			return problem.Problem{}, fmt.Errorf("Inputs(%v): %w", mode, ErrNoImage)
		}
		return e.upload.Clone(), nil
	default:
		return problem.Problem{}, fmt.Errorf("Inputs(%v): %w", mode, ErrUnknownMode)
	}
}

// Stats returns heatmap scaling statistics for a mode's inputs.
func (e *Explorer) Stats(mode Mode) (grid.Stats, error) {
	p, err := e.Inputs(mode)
	if err != nil {
		return grid.Stats{}, fmt.Errorf("Stats: %w", err)
	}

	return p.Stats(), nil
}

// ChannelStats returns per-channel heatmap statistics for ModeRGB.
// Errors: ErrUnknownMode for any other mode.
func (e *Explorer) ChannelStats(mode Mode) ([xcorr.NumChannels]grid.Stats, error) {
	p, err := e.Inputs(mode)
	if err != nil {
		return [xcorr.NumChannels]grid.Stats{}, fmt.Errorf("ChannelStats: %w", err)
	}
	stats, ok := p.ChannelStats()
	if !ok {
		return stats, fmt.Errorf("ChannelStats(%v): grayscale inputs: %w", mode, ErrUnknownMode)
	}

	return stats, nil
}

func (e *Explorer) session(method string, mode Mode) (*stepper.Session, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%s(%v): %w", method, mode, ErrUnknownMode)
	}
	s := e.sessions[mode]
	if s == nil {
		return nil, fmt.Errorf("%s(%v): %w", method, mode, ErrNoImage)
	}

	return s, nil
}

// Step computes the next single cell of a mode.
func (e *Explorer) Step(mode Mode) (stepper.StepResult, error) {
	s, err := e.session("Step", mode)
	if err != nil {
		return stepper.StepResult{}, err
	}

	return s.Step(), nil
}

// ShowAll computes a mode's full output; its next Step restarts at (0,0).
func (e *Explorer) ShowAll(mode Mode) (*stepper.Output, error) {
	s, err := e.session("ShowAll", mode)
	if err != nil {
		return nil, err
	}

	return s.ShowAll(), nil
}

// Output returns a snapshot of a mode's output.
func (e *Explorer) Output(mode Mode) (*stepper.Output, error) {
	s, err := e.session("Output", mode)
	if err != nil {
		return nil, err
	}

	return s.Output(), nil
}

// Window returns the overlay rectangle of a mode.
func (e *Explorer) Window(mode Mode) (xcorr.Window, error) {
	s, err := e.session("Window", mode)
	if err != nil {
		return xcorr.Window{}, err
	}

	return s.Window(), nil
}

// Cursor reports a mode's cursor position and resume-fresh flag.
func (e *Explorer) Cursor(mode Mode) (row, col int, resumeFresh bool, err error) {
	s, err := e.session("Cursor", mode)
	if err != nil {
		return 0, 0, false, err
	}
	row, col, resumeFresh = s.Cursor()

	return row, col, resumeFresh, nil
}

func padding(mode Mode) xcorr.Mode {
	if mode == ModeSame {
		return xcorr.Same
	}

	return xcorr.Valid
}
