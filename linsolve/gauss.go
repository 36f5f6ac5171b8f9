// SPDX-License-Identifier: MIT

package linsolve

import (
	"math"

	"github.com/katalvlaran/numerics/matrix"
)

// RowSwap records one partial-pivoting exchange: at elimination column
// Column, row From was swapped into position To (To == Column).
type RowSwap struct {
	Column int
	From   int
	To     int
}

// Elimination records one row operation row_Row ← row_Row − Factor·row_Column.
type Elimination struct {
	Column int
	Row    int
	Factor float64
}

// SubstitutionStep records the computation of one unknown during back substitution:
// X = (RHS − Sum) / Pivot.
type SubstitutionStep struct {
	Row   int
	RHS   float64
	Sum   float64
	Pivot float64
	X     float64
}

// Trace holds the intermediate artifacts of Gauss, collected only with WithVerbose().
type Trace struct {
	Initial      *matrix.Dense      // augmented matrix before elimination
	Eliminations []Elimination      // in execution order
	Snapshots    []*matrix.Dense    // augmented matrix after each elimination column
	Substitution []SubstitutionStep // from the last row up to row 0
}

// DirectResult is the outcome of Gauss.
type DirectResult struct {
	X     []float64     // solution vector
	Upper *matrix.Dense // triangularized augmented matrix (A' | b')
	Swaps []RowSwap     // partial-pivoting exchanges in order
	Trace *Trace        // nil unless WithVerbose()
}

// Gauss solves A·x = b by Gaussian elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Builds a private augmented copy (A | b), triangularizes it and solves by
//     back substitution. a and b are never mutated.
//
// Implementation:
//   - Stage 1: validate A square, len(b) == n; build (A | b) via matrix.Augment.
//   - Stage 2: delegate to the shared elimination kernel.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
//   - ErrSingularSystem (*PivotError) when a zero pivot is met in back substitution.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Gauss(a matrix.Matrix, b []float64, opts ...Option) (*DirectResult, error) {
	ab, err := matrix.Augment(a, b)
	if err != nil {
		return nil, solveErrorf(opGauss, err)
	}
	res, err := eliminate(ab, gatherOptions(opts...))
	if err != nil {
		return nil, solveErrorf(opGauss, err)
	}

	return res, nil
}

// GaussAugmented solves the system given as an n×(n+1) extended matrix (A | b).
// The input is copied; see Gauss for semantics.
func GaussAugmented(ab matrix.Matrix, opts ...Option) (*DirectResult, error) {
	if err := matrix.ValidateAugmented(ab); err != nil {
		return nil, solveErrorf(opGaussAugmented, err)
	}
	work, err := matrix.DenseCopy(ab)
	if err != nil {
		return nil, solveErrorf(opGaussAugmented, err)
	}
	res, err := eliminate(work, gatherOptions(opts...))
	if err != nil {
		return nil, solveErrorf(opGaussAugmented, err)
	}

	return res, nil
}

// eliminate runs forward elimination and back substitution in place on ab,
// which must be a private n×(n+1) working copy.
//
// Implementation:
//   - Stage 1 (pivot): for column k, pick the first row in k..n-1 with the
//     strictly largest |ab[i][k]| and swap it into row k.
//   - Stage 2 (eliminate): for rows below k, subtract f·row_k with
//     f = ab[i][k]/ab[k][k]; a zero pivot leaves the column untouched.
//   - Stage 3 (substitute): x[i] = (ab[i][n] − Σ_{j>i} ab[i][j]·x[j]) / ab[i][i],
//     failing with *PivotError on a zero pivot.
//
// Determinism:
//   - Fixed loop orders; ties in pivot magnitude keep the topmost row.
func eliminate(ab *matrix.Dense, o Options) (*DirectResult, error) {
	n := ab.Rows()
	rows := make([][]float64, n)
	var err error
	var i, j, k int
	for i = 0; i < n; i++ {
		if rows[i], err = ab.RowView(i); err != nil {
			return nil, err
		}
	}

	res := &DirectResult{}
	var tr *Trace
	if o.verbose {
		tr = &Trace{Initial: snapshot(ab)}
		res.Trace = tr
	}

	// Forward elimination.
	var p int
	var best, f, pivot float64
	for k = 0; k < n-1; k++ {
		if o.pivoting {
			p, best = k, math.Abs(rows[k][k])
			for i = k + 1; i < n; i++ {
				if v := math.Abs(rows[i][k]); v > best {
					p, best = i, v
				}
			}
			if p != k {
				if err = ab.SwapRows(k, p); err != nil {
					return nil, err
				}
				res.Swaps = append(res.Swaps, RowSwap{Column: k, From: p, To: k})
			}
		}

		pivot = rows[k][k]
		if !o.isZero(pivot) {
			for i = k + 1; i < n; i++ {
				f = rows[i][k] / pivot
				for j = k; j <= n; j++ {
					rows[i][j] -= f * rows[k][j]
				}
				if tr != nil {
					tr.Eliminations = append(tr.Eliminations, Elimination{Column: k, Row: i, Factor: f})
				}
			}
		}
		if tr != nil {
			tr.Snapshots = append(tr.Snapshots, snapshot(ab))
		}
	}

	// Back substitution.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		for j = i + 1; j < n; j++ {
			sum += rows[i][j] * x[j]
		}
		pivot = rows[i][i]
		if o.isZero(pivot) {
			return nil, &PivotError{Row: i, Pivot: pivot}
		}
		x[i] = (rows[i][n] - sum) / pivot
		if tr != nil {
			tr.Substitution = append(tr.Substitution, SubstitutionStep{
				Row: i, RHS: rows[i][n], Sum: sum, Pivot: pivot, X: x[i],
			})
		}
	}

	res.X = x
	res.Upper = ab

	return res, nil
}

// snapshot deep-copies the working matrix for the Trace.
func snapshot(m *matrix.Dense) *matrix.Dense {
	return m.Clone().(*matrix.Dense)
}
