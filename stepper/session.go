// SPDX-License-Identifier: MIT
// Package: stepper
//
// session.go — per-mode state: engine (immutable inputs), cursor and output.
//
// Contract:
//   - Step: clear the output (one generation at a time), compute the cell
//     at the cursor, store it, advance the cursor.
//   - ShowAll: replace the output with engine.Full(), rewind the cursor.
//   - Restore: accept a complete grid of the output shape; anything else
//     leaves the session untouched.

package stepper

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/convlab/grid"
	"github.com/katalvlaran/convlab/xcorr"
)

const defaultSessionName = "session"

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	name string
	log  zerolog.Logger
}

// WithName sets the component name attached to log events.
// Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("stepper: WithName(\"\")")
	}
	return func(c *sessionConfig) { c.name = name }
}

// WithLogger attaches a zerolog logger. The default discards events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *sessionConfig) { c.log = l }
}

// StepResult describes one Step.
type StepResult struct {
	Row, Col int          // window top-left that was computed
	Value    int          // correlation sum at (Row, Col)
	Window   xcorr.Window // overlay rectangle for the renderer
	Output   *Output      // snapshot holding only this cell
}

// Session pairs one engine with its cursor and display model.
type Session struct {
	name   string
	engine xcorr.Correlator
	cursor *Cursor
	out    *Output
	// overlay position: the last computed window, (0,0) after ShowAll.
	winRow, winCol int
	log            zerolog.Logger
}

// NewSession creates a session over engine's output range.
// Errors: ErrNilEngine (also for typed-nil engines); ErrEmptyRange if the
// engine reports an empty output.
func NewSession(engine xcorr.Correlator, opts ...Option) (*Session, error) {
	if isNilEngine(engine) {
		return nil, fmt.Errorf("NewSession: %w", ErrNilEngine)
	}
	cfg := sessionConfig{name: defaultSessionName, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows, cols := engine.OutputShape()
	cur, err := NewCursor(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewSession: %w", err)
	}

	return &Session{
		name:   cfg.name,
		engine: engine,
		cursor: cur,
		out:    newOutput(rows, cols),
		log:    cfg.log.With().Str("component", cfg.name).Logger(),
	}, nil
}

// isNilEngine catches a nil interface and nil pointers to the xcorr engines.
func isNilEngine(engine xcorr.Correlator) bool {
	switch e := engine.(type) {
	case nil:
		return true
	case *xcorr.Engine:
		return e == nil
	case *xcorr.RGBEngine:
		return e == nil
	}

	return false
}

// Name returns the session's component name.
func (s *Session) Name() string { return s.name }

// Engine returns the underlying correlator.
func (s *Session) Engine() xcorr.Correlator { return s.engine }

// OutputShape returns the output dimensions.
func (s *Session) OutputShape() (rows, cols int) { return s.out.Shape() }

// Step computes the next single cell.
// Complexity: O(kh*kw) for the sum plus O(rows*cols) to clear the output.
func (s *Session) Step() StepResult {
	row, col := s.cursor.Next()
	s.out.clear()
	v := s.engine.CorrelateAt(row, col)
	s.out.put(row, col, v)
	s.winRow, s.winCol = row, col

	s.log.Debug().Int("row", row).Int("col", col).Int("value", v).Msg("step")

	return StepResult{
		Row:    row,
		Col:    col,
		Value:  v,
		Window: s.engine.Window(row, col),
		Output: s.out.clone(),
	}
}

// ShowAll computes the full output and rewinds the cursor so the next Step
// starts from (0,0).
// Complexity: O(rows*cols*kh*kw).
func (s *Session) ShowAll() *Output {
	full := s.engine.Full()
	s.out.clear()
	s.out.fill(full)
	s.cursor.Rewind()
	s.winRow, s.winCol = 0, 0

	rows, cols := s.out.Shape()
	s.log.Debug().Int("rows", rows).Int("cols", cols).Msg("show all")

	return s.out.clone()
}

// Output returns a snapshot of the display model.
func (s *Session) Output() *Output { return s.out.clone() }

// Cursor reports the cursor position and its resumeFresh flag.
func (s *Session) Cursor() (row, col int, resumeFresh bool) {
	row, col = s.cursor.Position()

	return row, col, s.cursor.ResumeFresh()
}

// Window returns the overlay rectangle for the last computed position.
func (s *Session) Window() xcorr.Window { return s.engine.Window(s.winRow, s.winCol) }

// Reset clears the output and returns the cursor to its initial state.
func (s *Session) Reset() {
	s.out.clear()
	s.cursor.Restart()
	s.winRow, s.winCol = 0, 0
}

// Restore replaces the output with g, e.g. an accepted pasted answer.
// Errors: grid.ErrNilGrid, ErrShapeMismatch (wrapping grid.ErrDimensionMismatch).
// On error the session is unchanged.
func (s *Session) Restore(g *grid.Grid) error {
	rows, cols := s.out.Shape()
	if err := grid.ValidateNotNil(g); err != nil {
		return fmt.Errorf("Session.Restore: %w", err)
	}
	if err := grid.ValidateShape(g, rows, cols); err != nil {
		return fmt.Errorf("Session.Restore: %w: %w", ErrShapeMismatch, err)
	}
	s.out.clear()
	s.out.fill(g)
	s.log.Info().Msg("output restored")

	return nil
}
