// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix-vector product, transpose, scalar scaling, residuals and the
// augmented-system helpers used by the solvers. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat slice and an
//     At/Set-based fallback for foreign Matrix implementations.
//   - Inputs are never mutated; results are freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opAugment   = "Augment"
	opSplit     = "SplitAugmented"
	opResidual  = "Residual"
	opDenseCopy = "DenseCopy"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DenseCopy returns an independent *Dense with the contents of m.
// MAIN DESCRIPTION:
//   - Solvers call this before mutating so caller storage is never aliased.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: *Dense → flat copy; otherwise element-wise At/Set.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DenseCopy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDenseCopy, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDenseCopy, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opDenseCopy, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opDenseCopy, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Fast-path multiplies a *Dense backing slice in a single flat loop.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := range dm.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Augment builds the n×(n+1) augmented matrix (A | b).
// MAIN DESCRIPTION:
//   - The result is a fresh *Dense owned by the caller; a and b are untouched.
//
// Implementation:
//   - Stage 1: ValidateSquare(a), ValidateVecLen(b, n), ValidateFiniteVec(b).
//   - Stage 2: copy A row by row and append b[i] as the last column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Augment(a Matrix, b []float64) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateFiniteVec(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	ab, err := NewDense(n, n+1)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	var i, j int
	if ad, ok := a.(*Dense); ok {
		for i = 0; i < n; i++ {
			copy(ab.data[i*(n+1):i*(n+1)+n], ad.data[i*n:(i+1)*n])
			ab.data[i*(n+1)+n] = b[i]
		}

		return ab, nil
	}

	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAugment, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = ab.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opAugment, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
		ab.data[i*(n+1)+n] = b[i]
	}

	return ab, nil
}

// SplitAugmented separates an n×(n+1) augmented matrix into A (n×n) and b (len n).
// Both results are fresh copies.
// Complexity: Time O(n^2), Space O(n^2).
func SplitAugmented(m Matrix) (*Dense, []float64, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	n := m.Rows()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	b := make([]float64, n)

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j <= n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opSplit, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if j == n {
				b[i] = v
				continue
			}
			a.data[i*n+j] = v
		}
	}

	return a, b, nil
}

// Residual returns r = A·x − b, the per-row error of a candidate solution.
// Complexity: Time O(n^2), Space O(n).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}

// MaxAbs returns max_i |v[i]|, or 0 for an empty vector.
// NaN entries propagate (the result is NaN).
// Complexity: O(n).
func MaxAbs(v []float64) float64 {
	best := ZeroSum
	for _, x := range v {
		a := math.Abs(x)
		if math.IsNaN(a) {
			return a
		}
		if a > best {
			best = a
		}
	}

	return best
}
