// Package matrix provides the shared numeric array types used by the solvers.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional float64 storage with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation backed by a flat slice, with a
//     finite-only numeric policy on Set.
//   - Augmented systems: Augment builds (A | b), SplitAugmented recovers A and b.
//   - Kernels used by solver callers: MatVec, Transpose, Scale, Residual.
//
// Vectors are plain []float64 values owned by the caller.
//
// See the examples in this package and in linsolve for usage patterns.
package matrix
