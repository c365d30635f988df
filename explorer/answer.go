// SPDX-License-Identifier: MIT

package explorer

import (
	"fmt"

	"github.com/katalvlaran/convlab/export"
)

// Position is an output cell coordinate.
type Position struct{ Row, Col int }

// Verdict grades a pasted answer against the full correlation.
type Verdict struct {
	Correct    bool
	Mismatches []Position // row-major
}

// Paste parses text as an answer for mode. A correctly shaped answer replaces
// the mode's output and is graded; any parse or shape error leaves the
// output untouched.
// Errors: export.ErrEmptyText, ErrNonNumeric, ErrRaggedRows, ErrShapeMismatch.
func (e *Explorer) Paste(mode Mode, text string) (Verdict, error) {
	s, err := e.session("Paste", mode)
	if err != nil {
		return Verdict{}, err
	}
	rows, cols := s.OutputShape()
	answer, err := export.ParseShape(text, rows, cols)
	if err != nil {
		e.log.Info().Str("mode", mode.String()).Err(err).Msg("answer rejected")
		return Verdict{}, fmt.Errorf("Paste(%v): %w", mode, err)
	}

	want := s.Engine().Full()
	var v Verdict
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if answer.Value(r, c) != want.Value(r, c) {
				v.Mismatches = append(v.Mismatches, Position{Row: r, Col: c})
			}
		}
	}
	v.Correct = len(v.Mismatches) == 0

	if err = s.Restore(answer); err != nil {
		return Verdict{}, fmt.Errorf("Paste(%v): %w", mode, err)
	}
	e.log.Info().Str("mode", mode.String()).Bool("correct", v.Correct).
		Int("mismatches", len(v.Mismatches)).Msg("answer graded")

	return v, nil
}
