// SPDX-License-Identifier: MIT
// Package xcorr: sentinel errors. Engine construction is the only place
// errors surface; once built, engines clamp and never fail.

package xcorr

import "errors"

var (
	// ErrNilInput indicates a nil image or kernel was supplied.
	ErrNilInput = errors.New("xcorr: nil image or kernel")

	// ErrKernelTooLarge indicates a VALID-mode kernel does not fit the image,
	// which would leave the output grid empty.
	ErrKernelTooLarge = errors.New("xcorr: kernel larger than image")

	// ErrUnknownMode indicates an unsupported padding mode.
	ErrUnknownMode = errors.New("xcorr: unknown padding mode")
)
