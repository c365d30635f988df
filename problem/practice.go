// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"

	"github.com/katalvlaran/convlab/pattern"
)

// PracticeID identifies generated practice problems.
const PracticeID = "practice"

// Practice draws a synthetic pattern and a library kernel into a problem.
// Options are forwarded to pattern.Draw; a seed fixes the whole problem.
// Errors: pattern.ErrNeedRandSource.
func Practice(opts ...pattern.Option) (Problem, error) {
	s, err := pattern.Draw(opts...)
	if err != nil {
		return Problem{}, fmt.Errorf("Practice: %w", err)
	}
	rows, cols := s.Image.Shape()

	return Problem{
		ID:     PracticeID,
		Name:   fmt.Sprintf("Practice: %d×%d %s, %s", rows, cols, s.Kind, s.Kernel.Name),
		Image:  s.Image,
		Kernel: s.Kernel.Weights,
	}, nil
}
