// SPDX-License-Identifier: MIT
// Package: export
//
// numpy.go — NumPy array literals and multi-array scripts.

package export

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/convlab/grid"
)

const (
	scriptHeader = "import numpy as np\n\n"
	arrayOpen    = "np.array([\n"
	arrayClose   = "\n], dtype=np.int32)"
	rowIndent    = "  "
)

// PaddedComment annotates the zero-padded image of SAME-mode exports.
const PaddedComment = "Padded image (zeros)"

// Block is one named array in a script.
type Block struct {
	Name    string     // Python identifier, e.g. "image"
	Comment string     // optional; rendered as "# Comment" above the assignment
	Grid    *grid.Grid // nil renders as an empty array
}

// NumPy renders g as a NumPy int32 array literal, one row per line.
// Complexity: O(r*c).
func NumPy(g *grid.Grid) string {
	var sb strings.Builder
	writeArray(&sb, g)

	return sb.String()
}

// Script renders "import numpy as np" followed by one assignment per block,
// blocks separated by a blank line and the text ending in a newline.
func Script(blocks ...Block) string {
	var sb strings.Builder
	sb.WriteString(scriptHeader)
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		if b.Comment != "" {
			sb.WriteString("# ")
			sb.WriteString(b.Comment)
			sb.WriteString("\n")
		}
		sb.WriteString(b.Name)
		sb.WriteString(" = ")
		writeArray(&sb, b.Grid)
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeArray(sb *strings.Builder, g *grid.Grid) {
	if g == nil {
		sb.WriteString("np.array([], dtype=np.int32)")
		return
	}
	sb.WriteString(arrayOpen)
	rows, cols := g.Shape()
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(rowIndent)
		sb.WriteByte('[')
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(g.Value(r, c)))
		}
		sb.WriteByte(']')
	}
	sb.WriteString(arrayClose)
}
