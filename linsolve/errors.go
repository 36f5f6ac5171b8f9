// SPDX-License-Identifier: MIT

// Package linsolve: sentinel errors and the typed errors that carry the
// offending row, value or iteration state. Every typed error unwraps to its
// sentinel, so callers test the kind with errors.Is and read details with
// errors.As.
package linsolve

import (
	"errors"
	"fmt"
)

// Sentinel errors for the linsolve package.
var (
	// ErrSingularSystem indicates a zero pivot met during back substitution.
	ErrSingularSystem = errors.New("linsolve: singular system")

	// ErrDivisionByZero indicates a zero diagonal element in the iterative solver.
	ErrDivisionByZero = errors.New("linsolve: zero diagonal element")

	// ErrDidNotConverge indicates that the iteration cap was reached, or the
	// relative change became non-finite, before the tolerance was met.
	ErrDidNotConverge = errors.New("linsolve: iteration did not converge")
)

// PivotError reports the row whose pivot was zero under the active policy.
type PivotError struct {
	Row   int     // row of the triangular system (after swaps)
	Pivot float64 // value found on the diagonal
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("linsolve: zero pivot %g at row %d: singular system", e.Pivot, e.Row)
}

// Unwrap exposes ErrSingularSystem to errors.Is.
func (e *PivotError) Unwrap() error { return ErrSingularSystem }

// DiagonalError reports a zero diagonal element A[Row][Row].
type DiagonalError struct {
	Row   int
	Value float64
}

func (e *DiagonalError) Error() string {
	return fmt.Sprintf("linsolve: diagonal element %g at row %d: division by zero", e.Value, e.Row)
}

// Unwrap exposes ErrDivisionByZero to errors.Is.
func (e *DiagonalError) Unwrap() error { return ErrDivisionByZero }

// ConvergenceError carries the state of the last completed sweep.
type ConvergenceError struct {
	Iterations int     // sweeps performed
	Change     float64 // relative change of the last sweep
	Tolerance  float64 // requested tolerance
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("linsolve: relative change %g after %d iterations exceeds tolerance %g: did not converge",
		e.Change, e.Iterations, e.Tolerance)
}

// Unwrap exposes ErrDidNotConverge to errors.Is.
func (e *ConvergenceError) Unwrap() error { return ErrDidNotConverge }

// Operation tags for error wrapping.
const (
	opGauss              = "Gauss"
	opGaussAugmented     = "GaussAugmented"
	opGaussSeidel        = "GaussSeidel"
	opGaussSeidelAugment = "GaussSeidelAugmented"
)

// solveErrorf wraps a non-nil err with an operation tag, preserving it for errors.Is/As.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
