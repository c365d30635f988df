// SPDX-License-Identifier: MIT

// Package grid - row-major integer storage & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed i→j loop orders everywhere).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; FromRows: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package grid

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Grid is a rectangular, non-empty matrix of int values.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Grid struct {
	r, c int   // row and column counts
	data []int // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Grid)(nil)

// New creates an r×c zero grid.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrEmptyGrid.
//   - Stage 2: allocate the zero-filled buffer.
//
// Complexity: Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrEmptyGrid)
	}

	return &Grid{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of values does not leak in.
//
// Errors:
//   - ErrEmptyGrid if values has no rows or the first row is empty.
//   - ErrNonRectangular if any row length differs from the first.
//
// Complexity: O(r*c) time and memory.
func FromRows(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrEmptyGrid)
	}
	h, w := len(values), len(values[0])
	for i, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), w, ErrNonRectangular)
		}
	}

	g := &Grid{r: h, c: w, data: make([]int, h*w)}
	for i := 0; i < h; i++ {
		copy(g.data[i*w:(i+1)*w], values[i]) // one row at a time, row-major
	}

	return g, nil
}

// Build creates a rows×cols grid whose cell (r, c) holds fn(r, c).
// fn is invoked exactly once per cell in row-major order, so stateful
// callbacks (e.g., counters, RNG draws) observe a deterministic sequence.
//
// Errors: ErrEmptyGrid for non-positive dimensions.
// Complexity: O(r*c) calls to fn.
func Build(rows, cols int, fn func(r, c int) int) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		base := i * cols
		for j = 0; j < cols; j++ {
			g.data[base+j] = fn(i, j)
		}
	}

	return g, nil
}

// MustFromRows is FromRows for package-level literals known to be valid.
// It panics on invalid input and must not be used with user data.
func MustFromRows(values [][]int) *Grid {
	g, err := FromRows(values)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.r }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid) Shape() (rows, cols int) { return g.r, g.c }

// Contains reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.r && col >= 0 && col < g.c
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (g *Grid) indexOf(row, col int) (int, error) {
	if !g.Contains(row, col) {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*g.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) At(row, col int) (int, error) {
	idx, err := g.indexOf(row, col)
	if err != nil {
		return 0, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[idx], nil
}

// Set assigns v at (row, col) or returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) Set(row, col int, v int) error {
	idx, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[idx] = v

	return nil
}

// Value reads (row, col) without bounds checking.
// Callers must guarantee Contains(row, col); engines use it after clamping
// their loop bounds, so the check would only repeat work.
func (g *Grid) Value(row, col int) int {
	return g.data[row*g.c+col]
}

// Clone returns a deep copy of the grid. Clone of nil is nil.
// Complexity: O(r*c).
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	buf := make([]int, len(g.data))
	copy(buf, g.data)

	return &Grid{r: g.r, c: g.c, data: buf}
}

// ToRows returns a freshly allocated [][]int copy of the grid.
// Complexity: O(r*c).
func (g *Grid) ToRows() [][]int {
	out := make([][]int, g.r)
	for i := 0; i < g.r; i++ {
		row := make([]int, g.c)
		copy(row, g.data[i*g.c:(i+1)*g.c])
		out[i] = row
	}

	return out
}

// Row returns a copy of row i, or nil if i is out of range.
func (g *Grid) Row(i int) []int {
	if i < 0 || i >= g.r {
		return nil
	}
	row := make([]int, g.c)
	copy(row, g.data[i*g.c:(i+1)*g.c])

	return row
}

// Equal reports whether g and other have the same shape and values.
// Two nil grids are equal; a nil and a non-nil grid are not.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.r != other.r || g.c != other.c {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(r*c).
func (g *Grid) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < g.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < g.c; j++ {
			fmt.Fprintf(&sb, "%d", g.data[i*g.c+j])
			if j < g.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
