// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the interp package.
var (
	// ErrDimensionMismatch indicates unequal x/y lengths or too few points for the degree.
	ErrDimensionMismatch = errors.New("interp: dimension mismatch")

	// ErrEmptyPointSet indicates an empty sample set.
	ErrEmptyPointSet = errors.New("interp: empty point set")

	// ErrInvalidDegree indicates a negative polynomial degree.
	ErrInvalidDegree = errors.New("interp: invalid degree")

	// ErrDuplicateAbscissa indicates two samples sharing the same x.
	ErrDuplicateAbscissa = errors.New("interp: duplicate abscissa")

	// ErrNaNInf indicates a NaN or ±Inf sample or target.
	ErrNaNInf = errors.New("interp: NaN or Inf encountered")

	// ErrOutOfRange indicates a divided-difference index outside the table triangle.
	ErrOutOfRange = errors.New("interp: index out of range")
)

// DimensionError reports a length that does not match what the operation needs.
type DimensionError struct {
	Name string // what was measured ("y", "points")
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("interp: %s has length %d, want %d: dimension mismatch", e.Name, e.Got, e.Want)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// DuplicateAbscissaError names the first pair of samples with equal x (I < J).
type DuplicateAbscissaError struct {
	I, J int
	X    float64
}

func (e *DuplicateAbscissaError) Error() string {
	return fmt.Sprintf("interp: samples %d and %d share x=%g: duplicate abscissa", e.I, e.J, e.X)
}

// Unwrap exposes ErrDuplicateAbscissa to errors.Is.
func (e *DuplicateAbscissaError) Unwrap() error { return ErrDuplicateAbscissa }

// Operation tags for error wrapping.
const (
	opSelect      = "SelectCentered"
	opLagrange    = "Lagrange"
	opNewton      = "Newton"
	opDivided     = "DividedDifferences"
	opInterpolate = "Interpolate"
	opPointSet    = "NewPointSet"
)

// interpErrorf wraps a non-nil err with an operation tag.
func interpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
