// SPDX-License-Identifier: MIT

package explorer

import "errors"

var (
	// ErrNoImage indicates the upload mode has no successfully loaded image.
	ErrNoImage = errors.New("explorer: no image loaded")

	// ErrUnknownMode indicates an unsupported mode value.
	ErrUnknownMode = errors.New("explorer: unknown mode")
)
