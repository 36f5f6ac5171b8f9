// Package numerics is a small toolkit of classical numerical methods, each a
// pure function of caller-supplied float64 data.
//
// What is inside?
//
//	Linear systems: Gaussian elimination with partial pivoting and a
//	  Gauss-Seidel iteration (simultaneous sweep by default)
//	Interpolation: Lagrange and Newton forms over centered sample selection
//	Quadrature: composite Trapezoidal and Simpson rules with an even-count
//	  fallback
//
// Packages:
//
//	matrix/       flat row-major Dense storage, validators and the few
//	              kernels the solvers need (MatVec, Transpose, Augment, Residual)
//	linsolve/     Gauss, GaussAugmented, GaussSeidel, GaussSeidelAugmented
//	interp/       SelectCentered, Lagrange, DividedDifferences, Newton, Interpolate
//	quadrature/   Trapezoid, Simpson, InferSpacing, CrossSection
//	problems/     the mining, circuit, current and river datasets with
//	              thin facades over the solvers
//	cmd/numerics  command-line runner with structured logging
//
// No routine logs, spawns goroutines or performs I/O. Intermediate artifacts
// (row swaps, elimination traces, iteration history, divided-difference
// tables, fallback warnings) are returned as values so callers decide how to
// present them.
//
//	go install github.com/katalvlaran/numerics/cmd/numerics@latest
package numerics
