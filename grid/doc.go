// Package grid provides the rectangular integer matrix used for images,
// kernels and correlation outputs.
//
// What:
//
//   - Grid is a row-major, non-empty, rectangular buffer of int values.
//   - FromRows deep-copies a [][]int and rejects empty or ragged input.
//   - At/Set are bounds-checked and return ErrOutOfRange instead of panicking.
//   - MinMax and MaxAbs provide the scaling statistics renderers need for
//     heatmaps (sequential ramp for images, diverging ramp for kernels).
//
// Why:
//
//   - Images, kernels and outputs are tiny (≤ 28×28), so a flat []int with the
//     explicit offset formula r*cols + c keeps every loop deterministic and
//     allocation-free after construction.
//
// Complexity:
//
//   - New, FromRows, Clone, ToRows: O(r*c). At, Set, Shape: O(1).
//   - MinMax, MaxAbs, Equal: O(r*c).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfRange: index outside the grid.
//   - ErrDimensionMismatch: two grids were required to share a shape.
//   - ErrNilGrid: a nil *Grid was passed where a value is required.
package grid
