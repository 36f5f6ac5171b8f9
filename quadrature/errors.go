// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"
)

// Sentinel errors for the quadrature package.
var (
	// ErrTooFewSamples indicates fewer than two samples.
	ErrTooFewSamples = errors.New("quadrature: too few samples")

	// ErrInvalidSpacing indicates a missing, non-positive or non-finite spacing.
	ErrInvalidSpacing = errors.New("quadrature: invalid spacing")

	// ErrNonUniformSpacing indicates distances whose steps differ beyond tolerance.
	ErrNonUniformSpacing = errors.New("quadrature: non-uniform spacing")

	// ErrDimensionMismatch indicates distances and depths of different lengths.
	ErrDimensionMismatch = errors.New("quadrature: dimension mismatch")

	// ErrNaNInf indicates a NaN or ±Inf sample.
	ErrNaNInf = errors.New("quadrature: NaN or Inf encountered")
)

// SpacingError reports the first step distances[Index] − distances[Index−1]
// that deviates from the expected spacing.
type SpacingError struct {
	Index int
	Got   float64
	Want  float64
}

func (e *SpacingError) Error() string {
	return fmt.Sprintf("quadrature: step %g at index %d, want %g: non-uniform spacing", e.Got, e.Index, e.Want)
}

// Unwrap exposes ErrNonUniformSpacing to errors.Is.
func (e *SpacingError) Unwrap() error { return ErrNonUniformSpacing }

// Operation tags for error wrapping.
const (
	opTrapezoid    = "Trapezoid"
	opSimpson      = "Simpson"
	opInferSpacing = "InferSpacing"
	opCrossSection = "CrossSection"
)

func quadErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
