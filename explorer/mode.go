// SPDX-License-Identifier: MIT

package explorer

import "fmt"

// Mode selects one of the explorer's sessions.
type Mode int

const (
	ModeValid Mode = iota
	ModeSame
	ModeRGB
	ModePractice
	ModeUpload

	numModes = 5
)

// String returns a lower-case label, e.g. "same".
func (m Mode) String() string {
	switch m {
	case ModeValid:
		return "valid"
	case ModeSame:
		return "same"
	case ModeRGB:
		return "rgb"
	case ModePractice:
		return "practice"
	case ModeUpload:
		return "upload"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Modes lists every mode.
func Modes() []Mode { return []Mode{ModeValid, ModeSame, ModeRGB, ModePractice, ModeUpload} }

func (m Mode) valid() bool { return m >= 0 && m < numModes }
