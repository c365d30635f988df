// SPDX-License-Identifier: MIT
// Package: stepper
//
// cursor.go — row-major ring counter with a "resume fresh" flag.
//
// States: (row, col) ∈ [0,rows)×[0,cols) plus resumeFresh.
// Transitions:
//   - Next: if resumeFresh, jump to (0,0) and clear it; emit (row, col);
//     advance col, carry into row, wrap row to 0. Never fails.
//   - Rewind: (0,0) and resumeFresh = true (used after a full-grid pass).
//   - Restart: (0,0) and resumeFresh = false (initial state).

package stepper

import "fmt"

// Cursor tracks the next window top-left to visit.
type Cursor struct {
	row, col    int
	rows, cols  int
	resumeFresh bool
}

// NewCursor returns a cursor at (0,0) over a rows×cols range.
// Errors: ErrEmptyRange if rows < 1 or cols < 1.
func NewCursor(rows, cols int) (*Cursor, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewCursor(%d,%d): %w", rows, cols, ErrEmptyRange)
	}

	return &Cursor{rows: rows, cols: cols}, nil
}

// Position returns the position the next call to Next would emit,
// ignoring a pending resumeFresh.
func (c *Cursor) Position() (row, col int) { return c.row, c.col }

// ResumeFresh reports whether the next Next restarts from (0,0).
func (c *Cursor) ResumeFresh() bool { return c.resumeFresh }

// Len returns the number of positions in one full cycle.
func (c *Cursor) Len() int { return c.rows * c.cols }

// Next emits the current position and advances row-major with wraparound.
// Complexity: O(1).
func (c *Cursor) Next() (row, col int) {
	if c.resumeFresh {
		c.row, c.col = 0, 0
		c.resumeFresh = false
	}
	row, col = c.row, c.col

	c.col++
	if c.col >= c.cols {
		c.col = 0
		c.row++
		if c.row >= c.rows {
			c.row = 0
		}
	}

	return row, col
}

// Rewind moves to (0,0) and arms resumeFresh.
func (c *Cursor) Rewind() {
	c.row, c.col = 0, 0
	c.resumeFresh = true
}

// Restart returns the cursor to its initial state.
func (c *Cursor) Restart() {
	c.row, c.col = 0, 0
	c.resumeFresh = false
}
