// SPDX-License-Identifier: MIT
package quadrature_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerics/quadrature"
)

// River-bed depths measured every 2 m across the channel.
var riverDepths = []float64{0, 1.8, 2.0, 4.0, 4.0, 6.0, 4.0, 3.6, 3.4, 2.8, 0}

func riverDistances() []float64 {
	d := make([]float64, len(riverDepths))
	for i := range d {
		d[i] = 2 * float64(i)
	}

	return d
}

func TestCrossSection_River(t *testing.T) {
	t.Parallel()

	bySpacing, err := quadrature.CrossSection(riverDepths, quadrature.WithSpacing(2))
	require.NoError(t, err)
	assert.InDelta(t, 63.2, bySpacing.Trapezoid, 1e-9)
	assert.InDelta(t, 66.4, bySpacing.Simpson, 1e-9)
	assert.InDelta(t, 3.2, bySpacing.Difference, 1e-9)
	assert.InDelta(t, 3.2/66.4*100, bySpacing.PercentDifference, 1e-9)
	assert.False(t, bySpacing.Fallback)
	assert.Empty(t, bySpacing.Warning)
	assert.Equal(t, 2.0, bySpacing.Spacing)
	require.True(t, cmp.Equal(riverDistances(), bySpacing.Distances))

	byDistances, err := quadrature.CrossSection(riverDepths, quadrature.WithDistances(riverDistances()))
	require.NoError(t, err)
	if diff := cmp.Diff(bySpacing, byDistances); diff != "" {
		t.Fatalf("spacing vs distances (-spacing +distances):\n%s", diff)
	}

	// With both, the explicit spacing wins; distances are only checked for uniformity.
	both, err := quadrature.CrossSection(riverDepths,
		quadrature.WithSpacing(1), quadrature.WithDistances(riverDistances()))
	require.NoError(t, err)
	assert.Equal(t, 1.0, both.Spacing)
	assert.InDelta(t, 33.2, both.Simpson, 1e-9)
	require.True(t, cmp.Equal(riverDistances(), both.Distances))
}

func TestCrossSection_EvenFallback(t *testing.T) {
	t.Parallel()

	res, err := quadrature.CrossSection(riverDepths[:10], quadrature.WithSpacing(2))
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.NotEmpty(t, res.Warning)
}

func TestCrossSection_Errors(t *testing.T) {
	t.Parallel()

	_, err := quadrature.CrossSection([]float64{1})
	require.ErrorIs(t, err, quadrature.ErrTooFewSamples)

	_, err = quadrature.CrossSection(riverDepths)
	require.ErrorIs(t, err, quadrature.ErrInvalidSpacing, "spacing or distances are required")

	_, err = quadrature.CrossSection(riverDepths, quadrature.WithSpacing(0))
	require.ErrorIs(t, err, quadrature.ErrInvalidSpacing)
	_, err = quadrature.CrossSection(riverDepths, quadrature.WithSpacing(-2))
	require.ErrorIs(t, err, quadrature.ErrInvalidSpacing)

	_, err = quadrature.CrossSection(riverDepths, quadrature.WithDistances([]float64{0, 2, 4}))
	require.ErrorIs(t, err, quadrature.ErrDimensionMismatch)

	_, err = quadrature.CrossSection(riverDepths,
		quadrature.WithSpacing(2), quadrature.WithDistances([]float64{0, 2, 4, 6, 8, 10, 13, 14, 16, 18, 20}))
	require.ErrorIs(t, err, quadrature.ErrNonUniformSpacing)

	_, err = quadrature.CrossSection([]float64{0, math.NaN(), 1}, quadrature.WithSpacing(1))
	require.ErrorIs(t, err, quadrature.ErrNaNInf)
}

func TestInferSpacing(t *testing.T) {
	t.Parallel()

	h, err := quadrature.InferSpacing(riverDistances())
	require.NoError(t, err)
	assert.Equal(t, 2.0, h)

	// Measurement noise within rtol·h + atol is accepted.
	h, err = quadrature.InferSpacing([]float64{0, 2, 4.001, 6.0005})
	require.NoError(t, err)
	assert.Equal(t, 2.0, h)

	_, err = quadrature.InferSpacing([]float64{0, 2, 4, 6.5, 8})
	require.ErrorIs(t, err, quadrature.ErrNonUniformSpacing)
	var se *quadrature.SpacingError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Index)
	assert.Equal(t, 2.5, se.Got)
	assert.Equal(t, 2.0, se.Want)

	// A looser tolerance accepts the same distances.
	_, err = quadrature.InferSpacing([]float64{0, 2, 4, 6.5, 8}, quadrature.WithSpacingTolerance(0.5, 0))
	require.NoError(t, err)

	_, err = quadrature.InferSpacing([]float64{1})
	require.ErrorIs(t, err, quadrature.ErrTooFewSamples)
	_, err = quadrature.InferSpacing([]float64{2, 2, 2})
	require.ErrorIs(t, err, quadrature.ErrInvalidSpacing)
	_, err = quadrature.InferSpacing([]float64{4, 2, 0})
	require.ErrorIs(t, err, quadrature.ErrInvalidSpacing)

	require.Panics(t, func() { quadrature.WithSpacingTolerance(-1, 0) })
	require.Panics(t, func() { quadrature.WithSpacingTolerance(0, math.Inf(1)) })
}
