// SPDX-License-Identifier: MIT

package stepper

import "github.com/katalvlaran/convlab/grid"

// Cell is one output cell as a renderer sees it.
type Cell struct {
	Value int  // meaningful only when Set
	Set   bool // false renders as an empty cell
}

// Output is the display model of one session: a rows×cols grid whose cells
// are empty until computed.
type Output struct {
	rows, cols int
	values     []int
	set        []bool
}

func newOutput(rows, cols int) *Output {
	return &Output{
		rows:   rows,
		cols:   cols,
		values: make([]int, rows*cols),
		set:    make([]bool, rows*cols),
	}
}

// Shape returns the output dimensions.
func (o *Output) Shape() (rows, cols int) { return o.rows, o.cols }

// At returns the value at (row, col) and whether the cell has been computed.
// Out-of-range coordinates report (0, false).
func (o *Output) At(row, col int) (int, bool) {
	if row < 0 || row >= o.rows || col < 0 || col >= o.cols {
		return 0, false
	}
	idx := row*o.cols + col

	return o.values[idx], o.set[idx]
}

// Count returns the number of computed cells.
func (o *Output) Count() int {
	n := 0
	for _, ok := range o.set {
		if ok {
			n++
		}
	}

	return n
}

// Complete reports whether every cell has been computed.
func (o *Output) Complete() bool { return o.Count() == len(o.set) }

// Cells returns the output row by row for rendering.
func (o *Output) Cells() [][]Cell {
	out := make([][]Cell, o.rows)
	for i := 0; i < o.rows; i++ {
		row := make([]Cell, o.cols)
		for j := 0; j < o.cols; j++ {
			idx := i*o.cols + j
			row[j] = Cell{Value: o.values[idx], Set: o.set[idx]}
		}
		out[i] = row
	}

	return out
}

// Grid returns the output as a grid when every cell is computed.
func (o *Output) Grid() (*grid.Grid, bool) {
	if !o.Complete() {
		return nil, false
	}
	g, err := grid.Build(o.rows, o.cols, func(r, c int) int { return o.values[r*o.cols+c] })
	if err != nil {
		return nil, false
	}

	return g, true
}

func (o *Output) clear() {
	for i := range o.set {
		o.values[i] = 0
		o.set[i] = false
	}
}

func (o *Output) put(row, col, v int) {
	idx := row*o.cols + col
	o.values[idx] = v
	o.set[idx] = true
}

func (o *Output) fill(g *grid.Grid) {
	for i := 0; i < o.rows; i++ {
		for j := 0; j < o.cols; j++ {
			o.put(i, j, g.Value(i, j))
		}
	}
}

func (o *Output) clone() *Output {
	c := newOutput(o.rows, o.cols)
	copy(c.values, o.values)
	copy(c.set, o.set)

	return c
}
