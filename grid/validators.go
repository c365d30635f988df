// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Single source of truth for shape checks shared by engines and loaders.
//  - Return sentinels wrapped with a validator tag so call sites can branch
//    with errors.Is and still read which check failed.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing beyond the error value.

package grid

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the grid reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(g *Grid) error {
	if g == nil {
		return validatorErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Inputs: two non-nil grids (nil is reported as ErrNilGrid).
// Complexity: O(1).
func ValidateSameShape(a, b *Grid) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilGrid)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateShape ensures g has exactly rows×cols dimensions.
// Complexity: O(1).
func ValidateShape(g *Grid, rows, cols int) error {
	if g == nil {
		return validatorErrorf("ValidateShape", ErrNilGrid)
	}
	if g.r != rows || g.c != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: got %dx%d, want %dx%d", g.r, g.c, rows, cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateFits ensures a window of size kh×kw fits inside g (kh ≤ rows, kw ≤ cols).
// Used by VALID-mode engines so the output always has at least one cell.
func ValidateFits(g *Grid, kh, kw int) error {
	if g == nil {
		return validatorErrorf("ValidateFits", ErrNilGrid)
	}
	if kh > g.r || kw > g.c {
		return validatorErrorf(
			fmt.Sprintf("ValidateFits: window %dx%d exceeds %dx%d", kh, kw, g.r, g.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}
