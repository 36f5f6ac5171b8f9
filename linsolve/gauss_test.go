// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numerics/linsolve"
	"github.com/katalvlaran/numerics/matrix"
)

// approx compares float slices within an absolute/relative margin.
var approx = cmpopts.EquateApprox(1e-12, 1e-12)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// gonumSolve is an independent oracle built on gonum's LU-based SolveVec.
func gonumSolve(t *testing.T, rows [][]float64, b []float64) []float64 {
	t.Helper()
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, r := range rows {
		data = append(data, r...)
	}
	var x mat.VecDense
	require.NoError(t, x.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, b)))

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out
}

// TestGauss_MatchesGonum checks the round-trip A·x ≈ b and agreement with gonum.
func TestGauss_MatchesGonum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    [][]float64
		b    []float64
	}{
		{"2x2", [][]float64{{4, 1}, {2, 3}}, []float64{1, 2}},
		{"3x3-dense", [][]float64{{2, -1, 1}, {3, 3, 9}, {3, 3, 5}}, []float64{2, -1, 4}},
		{"4x4-dominant", [][]float64{{10, -1, 2, 0}, {-1, 11, -1, 3}, {2, -1, 10, -1}, {0, 3, -1, 8}}, []float64{6, 25, -11, 15}},
		{"circuit", [][]float64{
			{11.5, -2.5, 0, -4, 0},
			{-2.5, 7, 0, 0, -3},
			{0, 0, 8, 0, 0},
			{-4, 0, 0, 9, -3},
			{0, -3, 0, -3, 6},
		}, []float64{12, -16, 14, -12, 30}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := mustDense(t, tc.a)
			res, err := linsolve.Gauss(a, tc.b)
			require.NoError(t, err)

			want := gonumSolve(t, tc.a, tc.b)
			if diff := cmp.Diff(want, res.X, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("solution mismatch vs gonum (-want +got):\n%s", diff)
			}

			r, err := matrix.Residual(a, res.X, tc.b)
			require.NoError(t, err)
			assert.LessOrEqual(t, matrix.MaxAbs(r), 1e-9*(1+matrix.MaxAbs(tc.b)))
		})
	}
}

// TestGauss_TwoByTwo pins the exact artifacts of a small system.
func TestGauss_TwoByTwo(t *testing.T) {
	t.Parallel()

	res, err := linsolve.Gauss(mustDense(t, [][]float64{{4, 1}, {2, 3}}), []float64{1, 2})
	require.NoError(t, err)
	require.True(t, cmp.Equal([]float64{0.1, 0.6}, res.X, approx), "x = %v", res.X)
	require.True(t, cmp.Equal([][]float64{{4, 1, 1}, {0, 2.5, 1.5}}, res.Upper.ToRows(), approx))
	require.Empty(t, res.Swaps)
	require.Nil(t, res.Trace, "trace is collected only in verbose mode")
}

// TestGauss_PivotingNecessity: a zero at A[0][0] must be swapped away.
func TestGauss_PivotingNecessity(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}})
	b := []float64{3, 3, 3}

	res, err := linsolve.Gauss(a, b)
	require.NoError(t, err)
	require.True(t, cmp.Equal([]float64{1, 1, 1}, res.X, approx), "x = %v", res.X)
	require.Equal(t, []linsolve.RowSwap{
		{Column: 0, From: 2, To: 0},
		{Column: 1, From: 2, To: 1},
	}, res.Swaps)

	// The naive variant leaves column 0 alone and then fails on that pivot.
	_, err = linsolve.Gauss(a, b, linsolve.WithoutPivoting())
	require.ErrorIs(t, err, linsolve.ErrSingularSystem)
	var pe *linsolve.PivotError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 0, pe.Row)
	require.Equal(t, 0.0, pe.Pivot)
}

// TestGauss_Singular reports the row of the vanished pivot.
func TestGauss_Singular(t *testing.T) {
	t.Parallel()

	_, err := linsolve.Gauss(mustDense(t, [][]float64{{1, 2}, {2, 4}}), []float64{3, 6})
	require.Error(t, err)
	require.True(t, errors.Is(err, linsolve.ErrSingularSystem))

	var pe *linsolve.PivotError
	require.True(t, errors.As(err, &pe), "error must carry *PivotError")
	require.Equal(t, 1, pe.Row)
	require.Equal(t, 0.0, pe.Pivot)
}

// TestGauss_PivotEpsilon: a tiny pivot is accepted in strict mode and rejected in epsilon mode.
func TestGauss_PivotEpsilon(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{1, 2}, {1, 2 + 1e-13}})
	b := []float64{3, 3}

	res, err := linsolve.Gauss(a, b)
	require.NoError(t, err)
	require.True(t, cmp.Equal([]float64{3, 0}, res.X, cmpopts.EquateApprox(0, 1e-9)), "x = %v", res.X)

	_, err = linsolve.Gauss(a, b, linsolve.WithPivotEpsilon(1e-9))
	require.ErrorIs(t, err, linsolve.ErrSingularSystem)

	// Last writer wins: strict again.
	_, err = linsolve.Gauss(a, b, linsolve.WithPivotEpsilon(1e-9), linsolve.WithStrictPivot())
	require.NoError(t, err)
}

// TestGauss_Validation covers shape errors.
func TestGauss_Validation(t *testing.T) {
	t.Parallel()

	_, err := linsolve.Gauss(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = linsolve.Gauss(typedNil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = linsolve.GaussAugmented(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = linsolve.Gauss(mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = linsolve.Gauss(mustDense(t, [][]float64{{1, 2}, {3, 4}}), []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = linsolve.GaussAugmented(mustDense(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestGauss_DoesNotMutateInputs verifies copy-on-entry.
func TestGauss_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}
	a := mustDense(t, rows)
	b := []float64{3, 3, 3}
	ab, err := matrix.Augment(a, b)
	require.NoError(t, err)
	before := ab.ToRows()

	_, err = linsolve.Gauss(a, b)
	require.NoError(t, err)
	_, err = linsolve.GaussAugmented(ab)
	require.NoError(t, err)

	require.Equal(t, rows, a.ToRows())
	require.Equal(t, []float64{3, 3, 3}, b)
	require.Equal(t, before, ab.ToRows())
}

// TestGauss_MiningScenario reproduces the blend problem A = compositionᵀ / 100.
func TestGauss_MiningScenario(t *testing.T) {
	t.Parallel()

	ab := mustDense(t, [][]float64{
		{0.55, 0.25, 0.25, 4800},
		{0.30, 0.45, 0.20, 5800},
		{0.15, 0.30, 0.55, 5700},
	})
	res, err := linsolve.GaussAugmented(ab)
	require.NoError(t, err)

	want := []float64{2416.666666666666, 9193.333333333334, 4690.0}
	if diff := cmp.Diff(want, res.X, cmpopts.EquateApprox(1e-12, 1e-9)); diff != "" {
		t.Fatalf("mining quantities (-want +got):\n%s", diff)
	}
	require.Empty(t, res.Swaps, "0.55 already dominates column 0")

	wantUpper := [][]float64{
		{0.55, 0.25, 0.25, 4800},
		{0, 0.3136363636363636, 0.06363636363636363, 3181.818181818182},
		{0, 0, 0.43478260869565216, 2039.1304347826087},
	}
	if diff := cmp.Diff(wantUpper, res.Upper.ToRows(), cmpopts.EquateApprox(1e-12, 1e-9)); diff != "" {
		t.Fatalf("upper matrix (-want +got):\n%s", diff)
	}

	a, b, err := matrix.SplitAugmented(ab)
	require.NoError(t, err)
	r, err := matrix.Residual(a, res.X, b)
	require.NoError(t, err)
	assert.LessOrEqual(t, matrix.MaxAbs(r), 1e-6)
}

// TestGauss_VerboseTrace checks the shape and content of the collected artifacts.
func TestGauss_VerboseTrace(t *testing.T) {
	t.Parallel()

	res, err := linsolve.Gauss(
		mustDense(t, [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}),
		[]float64{3, 3, 3},
		linsolve.WithVerbose(),
	)
	require.NoError(t, err)
	tr := res.Trace
	require.NotNil(t, tr)

	require.Equal(t, [][]float64{{0, 2, 1, 3}, {1, 1, 1, 3}, {2, 1, 0, 3}}, tr.Initial.ToRows())
	require.Len(t, tr.Snapshots, 2, "one snapshot per elimination column")
	require.Equal(t, res.Upper.ToRows(), tr.Snapshots[1].ToRows())

	require.Equal(t, []linsolve.Elimination{
		{Column: 0, Row: 1, Factor: 0.5},
		{Column: 0, Row: 2, Factor: 0},
		{Column: 1, Row: 2, Factor: 0.25},
	}, tr.Eliminations)

	require.Len(t, tr.Substitution, 3)
	require.Equal(t, 2, tr.Substitution[0].Row)
	require.Equal(t, 0, tr.Substitution[2].Row)
	for _, s := range tr.Substitution {
		assert.InDelta(t, (s.RHS-s.Sum)/s.Pivot, s.X, 1e-15)
	}
}
