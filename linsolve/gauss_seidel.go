// SPDX-License-Identifier: MIT

package linsolve

import (
	"context"
	"math"

	"github.com/katalvlaran/numerics/matrix"
)

// IterativeResult is the outcome of GaussSeidel.
type IterativeResult struct {
	X          []float64 // last iterate
	Iterations int       // sweeps performed
	Change     float64   // relative change of the last sweep
	History    []float64 // relative change per sweep; nil unless WithVerbose()
}

// GaussSeidel solves A·x = b by repeated sweeps until the relative change
// max|x₁ − x| / max|x₁| is at most the tolerance.
// MAIN DESCRIPTION:
//   - Start vector x[i] = b[i] / A[i][i].
//   - Each sweep computes x₁[i] = (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i].
//   - The default sweep is simultaneous (Jacobi); see WithSweep.
//
// Implementation:
//   - Stage 1: validate shapes and build a private (A | b) copy.
//   - Stage 2: check the diagonal; compute the start vector.
//   - Stage 3: sweep until converged, the cap is hit or ctx is done.
//
// Behavior highlights:
//   - If every component of x₁ is zero the absolute change max|x₁ − x| is used.
//   - A non-finite relative change stops early with ErrDidNotConverge.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
//   - ErrDivisionByZero (*DiagonalError), ErrDidNotConverge (*ConvergenceError).
//   - ctx.Err() when the context is cancelled between sweeps.
//
// Complexity:
//   - Time O(n²) per sweep, Space O(n²) for the private copy.
//
// AI-Hints:
//   - Convergence is guaranteed for strictly diagonally dominant A; reorder
//     rows to make the diagonal dominant before calling when possible.
func GaussSeidel(ctx context.Context, a matrix.Matrix, b []float64, opts ...Option) (*IterativeResult, error) {
	ab, err := matrix.Augment(a, b)
	if err != nil {
		return nil, solveErrorf(opGaussSeidel, err)
	}
	res, err := iterate(ctx, ab, gatherOptions(opts...))
	if err != nil {
		return nil, solveErrorf(opGaussSeidel, err)
	}

	return res, nil
}

// GaussSeidelAugmented is GaussSeidel over an n×(n+1) extended matrix (A | b).
func GaussSeidelAugmented(ctx context.Context, ab matrix.Matrix, opts ...Option) (*IterativeResult, error) {
	if err := matrix.ValidateAugmented(ab); err != nil {
		return nil, solveErrorf(opGaussSeidelAugment, err)
	}
	work, err := matrix.DenseCopy(ab)
	if err != nil {
		return nil, solveErrorf(opGaussSeidelAugment, err)
	}
	res, err := iterate(ctx, work, gatherOptions(opts...))
	if err != nil {
		return nil, solveErrorf(opGaussSeidelAugment, err)
	}

	return res, nil
}

// iterate runs the sweep loop over a private augmented copy.
func iterate(ctx context.Context, ab *matrix.Dense, o Options) (*IterativeResult, error) {
	n := ab.Rows()
	rows := make([][]float64, n)
	var err error
	var i, j int
	for i = 0; i < n; i++ {
		if rows[i], err = ab.RowView(i); err != nil {
			return nil, err
		}
		if o.isZero(rows[i][i]) {
			return nil, &DiagonalError{Row: i, Value: rows[i][i]}
		}
	}

	k := make([]float64, n)
	for i = 0; i < n; i++ {
		k[i] = rows[i][n] / rows[i][i]
	}
	k1 := make([]float64, n)

	res := &IterativeResult{}
	var sum, maxDiff, maxAbs, change, xj float64
	for it := 1; it <= o.maxIter; it++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		for i = 0; i < n; i++ {
			sum = matrix.ZeroSum
			for j = 0; j < n; j++ {
				if j == i {
					continue
				}
				xj = k[j]
				if o.sweep == InPlaceSweep && j < i {
					xj = k1[j]
				}
				sum += rows[i][j] * xj
			}
			k1[i] = (rows[i][n] - sum) / rows[i][i]
		}

		maxDiff, maxAbs = 0, 0
		for i = 0; i < n; i++ {
			maxDiff = math.Max(maxDiff, math.Abs(k1[i]-k[i]))
			maxAbs = math.Max(maxAbs, math.Abs(k1[i]))
		}
		if maxAbs == 0 {
			change = maxDiff
		} else {
			change = maxDiff / maxAbs
		}

		k, k1 = k1, k
		res.Iterations, res.Change = it, change
		if o.verbose {
			res.History = append(res.History, change)
		}

		if isNonFinite(change) {
			return nil, &ConvergenceError{Iterations: it, Change: change, Tolerance: o.tol}
		}
		if change <= o.tol {
			res.X = k

			return res, nil
		}
	}

	return nil, &ConvergenceError{Iterations: res.Iterations, Change: res.Change, Tolerance: o.tol}
}
