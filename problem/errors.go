// SPDX-License-Identifier: MIT

package problem

import "errors"

var (
	// ErrUnknownProblem indicates an index or ID outside the demonstration set.
	ErrUnknownProblem = errors.New("problem: unknown problem")

	// ErrInvalidProblem indicates a bundle without usable inputs
	// (nil grids, or both a grayscale pair and a channel set).
	ErrInvalidProblem = errors.New("problem: invalid problem")
)
