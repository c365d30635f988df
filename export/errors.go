// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrEmptyText indicates the pasted text holds no numbers.
	ErrEmptyText = errors.New("export: no numbers found")

	// ErrNonNumeric indicates a token that is not an integer.
	ErrNonNumeric = errors.New("export: non-numeric value")

	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("export: rows have different lengths")

	// ErrShapeMismatch indicates a well-formed grid of the wrong shape.
	ErrShapeMismatch = errors.New("export: unexpected shape")
)
