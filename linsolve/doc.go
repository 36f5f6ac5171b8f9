// Package linsolve solves square linear systems A·x = b, either directly by
// Gaussian elimination or iteratively by repeated sweeps.
//
// The solvers offered are:
//
//   - Gauss
//
//   - Method: forward elimination with partial pivoting, then back substitution.
//
//   - Time:   O(n³) elimination, O(n²) substitution.
//
//   - Memory: O(n²) for the private augmented copy.
//
//   - Returns the solution, the triangularized augmented matrix and the row swaps.
//
//   - GaussSeidel
//
//   - Method: fixed-point sweeps x ← D⁻¹(b − (L+U)·x) until the relative change
//     max|Δx| / max|x| drops to the tolerance.
//
//   - Time:   O(n²) per sweep, at most MaxIterations sweeps.
//
//   - Memory: O(n) beyond the private copy.
//
//   - Converges for strictly diagonally dominant systems.
//
// # Sweep semantics
//
// Despite the name, the default GaussSeidel sweep is simultaneous: every
// component of the new vector is computed from the previous vector only, which
// is the Jacobi method. The name and the numbers it produces are kept as-is.
// WithSweep(InPlaceSweep) switches to a true Gauss-Seidel sweep that reuses the
// components already updated in the current sweep.
//
// # Pivot policy
//
// By default pivots and diagonal elements are compared against exactly zero.
// WithPivotEpsilon(eps) treats |v| ≤ eps as zero instead. During elimination a
// zero pivot leaves its column untouched; the singularity is then reported by
// back substitution as ErrSingularSystem with a *PivotError.
//
// # Errors
//
//	matrix.ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch - bad shapes.
//	ErrSingularSystem  - zero pivot during back substitution (*PivotError).
//	ErrDivisionByZero  - zero diagonal in the iterative solver (*DiagonalError).
//	ErrDidNotConverge  - iteration cap reached (*ConvergenceError).
//	context.Canceled / DeadlineExceeded - from the ctx of GaussSeidel.
//
// Inputs are never mutated. Intermediate artifacts (the per-column snapshots
// of elimination, the substitution steps and the per-sweep change history) are
// returned as values when WithVerbose() is set; nothing is printed.
package linsolve
