// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerics/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 4},
		{6, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j), "element [%d,%d] must be 0", i, j)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.rows, tc.cols)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFromRows(t, rows)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	// The input must not be retained.
	rows[0][0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	MustSet(t, m, 1, 0, 7.5)
	require.Equal(t, 7.5, MustAt(t, m, 1, 0))
}

func TestDense_CloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	MustSet(t, cp, 0, 0, 9)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0), "clone must not share storage")
	require.Equal(t, 9.0, MustAt(t, cp, 0, 0))
}

func TestDense_RowViewAndSwap(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	row, err := m.RowView(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	require.Equal(t, 2, cap(row), "row view must be capped at the row width")

	row[0] = 30 // views share storage
	require.Equal(t, 30.0, MustAt(t, m, 1, 0))

	require.NoError(t, m.SwapRows(0, 2))
	require.Equal(t, [][]float64{{5, 6}, {30, 4}, {1, 2}}, m.ToRows())
	require.NoError(t, m.SwapRows(1, 1))
	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)

	_, err = m.RowView(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
