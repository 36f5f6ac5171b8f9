// SPDX-License-Identifier: MIT
package interp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerics/interp"
)

func TestInterpolate_Reference(t *testing.T) {
	t.Parallel()

	res, err := interp.Interpolate(sampleX, sampleY, 1.1, 4)
	require.NoError(t, err)
	require.True(t, cmp.Equal(sampleX, res.Selected.X))
	assert.InDelta(t, 0.1761984, res.Lagrange, 1e-12)
	assert.InDelta(t, 0.1761984, res.Newton, 1e-12)
	assert.Less(t, res.Difference, 1e-10)
	assert.True(t, res.Agree)
	assert.Equal(t, 4, res.Degree)
	assert.Equal(t, 1.1, res.Target)
	assert.Nil(t, res.Terms)
	assert.Nil(t, res.Table)
}

func TestInterpolate_LowerDegree(t *testing.T) {
	t.Parallel()

	res, err := interp.Interpolate(sampleX, sampleY, 1.1, 2, interp.WithVerbose())
	require.NoError(t, err)
	require.True(t, cmp.Equal([]float64{0.75, 1.25, 1.5}, res.Selected.X))
	assert.InDelta(t, 0.1616, res.Lagrange, 1e-12)
	assert.InDelta(t, res.Lagrange, res.Newton, 1e-12)

	require.Len(t, res.Terms, 3)
	require.NotNil(t, res.Table)
	require.Equal(t, 3, res.Table.Size())
}

func TestInterpolate_Validation(t *testing.T) {
	t.Parallel()

	_, err := interp.Interpolate(sampleX, sampleY, 1.1, 5)
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)
	var dim *interp.DimensionError
	require.True(t, errors.As(err, &dim))
	require.Equal(t, "points", dim.Name)
	require.Equal(t, 6, dim.Want)

	// The largest int degree must not wrap when counting required points.
	_, err = interp.Interpolate([]float64{0, 1, 2}, []float64{0, 1, 4}, 0.5, math.MaxInt)
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)
	require.True(t, errors.As(err, &dim))
	require.Equal(t, math.MaxInt, dim.Want)

	_, err = interp.Interpolate(sampleX, sampleY, 1.1, -1)
	require.ErrorIs(t, err, interp.ErrInvalidDegree)
	_, err = interp.Interpolate(sampleX, sampleY[:3], 1.1, 2)
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)
	_, err = interp.Interpolate(nil, nil, 1.1, 0)
	require.ErrorIs(t, err, interp.ErrEmptyPointSet)
	_, err = interp.Interpolate([]float64{1, 1}, []float64{1, 2}, 0, 1)
	require.ErrorIs(t, err, interp.ErrDuplicateAbscissa)
}

func TestInterpolate_AgreementTolerance(t *testing.T) {
	t.Parallel()

	// A threshold below the rounding gap decides Agree strictly.
	res, err := interp.Interpolate(sampleX, sampleY, 1.1, 4, interp.WithAgreementTolerance(1e-30))
	require.NoError(t, err)
	assert.Equal(t, res.Difference < 1e-30, res.Agree)

	require.Panics(t, func() { interp.WithAgreementTolerance(0) })
	require.Panics(t, func() { interp.WithAgreementTolerance(-1) })
}
