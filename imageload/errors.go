// SPDX-License-Identifier: MIT

package imageload

import "errors"

var (
	// ErrDecode indicates the source could not be decoded as an image.
	ErrDecode = errors.New("imageload: cannot decode image")

	// ErrBadMaxSize indicates a non-positive size bound.
	ErrBadMaxSize = errors.New("imageload: maxSize must be positive")

	// ErrEmptyImage indicates a decoded image with no pixels.
	ErrEmptyImage = errors.New("imageload: empty image")
)
