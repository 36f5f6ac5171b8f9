// SPDX-License-Identifier: MIT

// Package linsolve: functional configuration for the direct and iterative
// solvers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options are shared by Gauss and GaussSeidel. Knobs that do not apply to a
//     solver are ignored by it (tolerance and sweep mode by Gauss, pivoting by
//     GaussSeidel).
package linsolve

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the stopping threshold for the relative change
	// max|Δx| / max|x| of the iterative solver.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps the number of sweeps of the iterative solver.
	DefaultMaxIterations = 1000

	// DefaultPivotEpsilon of 0 selects the strict policy: only an exact zero is a zero pivot.
	DefaultPivotEpsilon = 0.0

	// DefaultPivoting enables partial pivoting in Gauss.
	DefaultPivoting = true

	// DefaultVerbose disables collection of intermediate artifacts.
	DefaultVerbose = false
)

// ZeroPivot is the value a pivot is compared against in strict mode.
const ZeroPivot = 0.0

// Sweep selects how the iterative solver updates components within one sweep.
type Sweep int

const (
	// SimultaneousSweep computes every component from the previous vector (Jacobi).
	SimultaneousSweep Sweep = iota
	// InPlaceSweep reuses components already updated in the current sweep (Gauss-Seidel).
	InPlaceSweep
)

// DefaultSweep is the update mode used unless WithSweep is given.
const DefaultSweep = SimultaneousSweep

// String returns the sweep name.
func (s Sweep) String() string {
	switch s {
	case SimultaneousSweep:
		return "simultaneous"
	case InPlaceSweep:
		return "in-place"
	default:
		return "unknown"
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "linsolve: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "linsolve: WithMaxIterations: n must be >= 1"
	panicEpsilonInvalid   = "linsolve: WithPivotEpsilon: eps must be finite and >= 0"
	panicSweepInvalid     = "linsolve: WithSweep: unknown sweep mode"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol      float64 // > 0; DefaultTolerance
	maxIter  int     // >= 1; DefaultMaxIterations
	pivotEps float64 // >= 0; DefaultPivotEpsilon (0 = strict)
	pivoting bool    // DefaultPivoting
	sweep    Sweep   // DefaultSweep
	verbose  bool    // DefaultVerbose
}

// WithTolerance sets the stopping threshold of the iterative solver.
// Panics unless tol is finite and strictly positive.
//
// AI-Hints:
//   - 1e-4 reproduces the usual textbook runs; 1e-8..1e-10 approaches the
//     direct solution for well-conditioned dominant systems.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the number of sweeps. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithPivotEpsilon treats any pivot or diagonal element with |v| ≤ eps as zero.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter writing eps into Options.
//
// Notes:
//   - eps = 0 is the strict policy, identical to WithStrictPivot().
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.pivotEps = eps }
}

// WithStrictPivot restores exact-zero pivot checks.
func WithStrictPivot() Option {
	return func(o *Options) { o.pivotEps = DefaultPivotEpsilon }
}

// WithoutPivoting disables row exchanges in Gauss (naive elimination).
// Zero pivots are still detected and never divided by.
func WithoutPivoting() Option {
	return func(o *Options) { o.pivoting = false }
}

// WithSweep selects the update mode of the iterative solver.
// Panics on an unknown mode.
func WithSweep(s Sweep) Option {
	if s != SimultaneousSweep && s != InPlaceSweep {
		panic(panicSweepInvalid)
	}

	return func(o *Options) { o.sweep = s }
}

// WithVerbose collects intermediate artifacts: the elimination Trace for
// Gauss and the per-sweep change History for GaussSeidel.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// gatherOptions applies user setters over the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:      DefaultTolerance,
		maxIter:  DefaultMaxIterations,
		pivotEps: DefaultPivotEpsilon,
		pivoting: DefaultPivoting,
		sweep:    DefaultSweep,
		verbose:  DefaultVerbose,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isZero reports whether v counts as zero under the pivot policy.
func (o Options) isZero(v float64) bool {
	if o.pivotEps == DefaultPivotEpsilon {
		return v == ZeroPivot
	}

	return math.Abs(v) <= o.pivotEps
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
