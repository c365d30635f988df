// SPDX-License-Identifier: MIT
// Package stepper: sentinel errors.

package stepper

import "errors"

var (
	// ErrEmptyRange indicates a cursor was requested over zero positions.
	ErrEmptyRange = errors.New("stepper: cursor range must be at least 1x1")

	// ErrNilEngine indicates a session was created without an engine.
	ErrNilEngine = errors.New("stepper: nil engine")

	// ErrShapeMismatch indicates a restored grid does not match the output shape.
	ErrShapeMismatch = errors.New("stepper: grid shape does not match output")
)
