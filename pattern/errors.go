// SPDX-License-Identifier: MIT
// Package: pattern
//
// errors.go — sentinel errors for pattern generation.
//
// Error policy:
//   - Callers branch with errors.Is.
//   - Constructors wrap with method context via patternErrorf.
//   - Option constructors panic on nonsense; generators never panic.

package pattern

import (
	"errors"
	"fmt"
)

// ErrNeedRandSource indicates a stochastic call without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("pattern: rng is required")

// ErrBadParams indicates pattern parameters outside their valid ranges
// (e.g. ring thickness not below the outer radius, center off the grid).
var ErrBadParams = errors.New("pattern: invalid parameters")

// ErrUnknownKernel indicates a kernel name missing from the library.
var ErrUnknownKernel = errors.New("pattern: unknown kernel")

// ErrUnknownKind indicates an unsupported pattern kind.
var ErrUnknownKind = errors.New("pattern: unknown kind")

// patternErrorf returns "<method>: <detail>: <err>" keeping err matchable.
func patternErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
