// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All constructors and validators return these sentinels (optionally wrapped
// with call-site context via %w). Callers branch with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates two grids were required to share a shape
	// (e.g., RGB channel images) and did not.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNilGrid indicates that a nil *Grid was used.
	ErrNilGrid = errors.New("grid: nil grid")
)

// gridErrorf wraps an underlying error with Grid method context and coordinates.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
