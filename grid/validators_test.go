// SPDX-License-Identifier: MIT
// Package grid_test contains unit tests for the grid validators.
package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/convlab/grid"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *grid.Grid {
		g, err := grid.New(r, c)
		require.NoError(t, err)
		return g
	}

	tests := []struct {
		name    string
		a, b    *grid.Grid
		wantErr error
	}{
		{"both nil", nil, nil, grid.ErrNilGrid},
		{"first nil", nil, zeros(2, 2), grid.ErrNilGrid},
		{"second nil", zeros(2, 2), nil, grid.ErrNilGrid},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), grid.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), grid.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := grid.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateShapeAndFits covers the exact-shape and window-fit checks.
func TestValidateShapeAndFits(t *testing.T) {
	t.Parallel()

	g := grid.MustFromRows([][]int{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, grid.ValidateShape(g, 2, 3))
	require.ErrorIs(t, grid.ValidateShape(g, 3, 2), grid.ErrDimensionMismatch)
	require.ErrorIs(t, grid.ValidateShape(nil, 1, 1), grid.ErrNilGrid)

	require.NoError(t, grid.ValidateFits(g, 2, 3))
	require.NoError(t, grid.ValidateFits(g, 1, 1))
	require.ErrorIs(t, grid.ValidateFits(g, 3, 1), grid.ErrDimensionMismatch)
	require.ErrorIs(t, grid.ValidateFits(g, 1, 4), grid.ErrDimensionMismatch)
	require.ErrorIs(t, grid.ValidateFits(nil, 1, 1), grid.ErrNilGrid)

	require.NoError(t, grid.ValidateNotNil(g))
	require.ErrorIs(t, grid.ValidateNotNil(nil), grid.ErrNilGrid)
}
