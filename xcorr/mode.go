// SPDX-License-Identifier: MIT

package xcorr

import (
	"fmt"
	"strings"
)

// Mode selects how the window treats the image border.
//
//   - Valid — windows stay fully inside the image; output shrinks by k-1 per axis.
//   - Same  — the image is zero-padded by floor(k/2) on every side so the
//     output keeps the image's row and column counts.
type Mode int

const (
	// Valid restricts windows to fully-inside positions.
	Valid Mode = iota

	// Same pads with zeros so the output matches the input size.
	Same
)

// String returns the conventional lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Valid:
		return "valid"
	case Same:
		return "same"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "valid"/"same" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "valid":
		return Valid, nil
	case "same":
		return Same, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// valid reports whether m is a known mode.
func (m Mode) valid() bool { return m == Valid || m == Same }
