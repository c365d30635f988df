// SPDX-License-Identifier: MIT

package pattern

import "fmt"

// Kind names a pattern family.
type Kind int

const (
	KindRing Kind = iota
	KindVerticalBar
	KindDiagonal
	KindPlus

	numKinds = 4
)

// String returns a short lower-case label, e.g. "ring".
func (k Kind) String() string {
	switch k {
	case KindRing:
		return "ring"
	case KindVerticalBar:
		return "vertical-bar"
	case KindDiagonal:
		return "diagonal"
	case KindPlus:
		return "plus"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds lists every family in draw order.
func Kinds() []Kind { return []Kind{KindRing, KindVerticalBar, KindDiagonal, KindPlus} }
