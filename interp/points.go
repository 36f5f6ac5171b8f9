// SPDX-License-Identifier: MIT

package interp

import (
	"math"

	"golang.org/x/exp/slices"
)

// PointSet is a pair of parallel sample slices of equal length.
type PointSet struct {
	X []float64
	Y []float64
}

// NewPointSet validates and copies parallel samples.
// Errors: ErrEmptyPointSet, *DimensionError, ErrNaNInf, *DuplicateAbscissaError.
func NewPointSet(x, y []float64) (PointSet, error) {
	if err := validateSamples(x, y); err != nil {
		return PointSet{}, interpErrorf(opPointSet, err)
	}
	if err := checkDistinct(x); err != nil {
		return PointSet{}, interpErrorf(opPointSet, err)
	}

	return PointSet{X: slices.Clone(x), Y: slices.Clone(y)}, nil
}

// Len returns the number of samples.
func (p PointSet) Len() int { return len(p.X) }

// validateSamples checks non-empty, equal lengths and finite values.
func validateSamples(x, y []float64) error {
	if len(x) == 0 {
		return ErrEmptyPointSet
	}
	if len(y) != len(x) {
		return &DimensionError{Name: "y", Got: len(y), Want: len(x)}
	}
	if slices.IndexFunc(x, nonFinite) >= 0 || slices.IndexFunc(y, nonFinite) >= 0 {
		return ErrNaNInf
	}

	return nil
}

// checkDistinct returns the first pair (i<j) with x_i == x_j.
// Complexity: O(n²), n is small for interpolation.
func checkDistinct(x []float64) error {
	var i, j int
	for i = 0; i < len(x); i++ {
		for j = i + 1; j < len(x); j++ {
			if x[i] == x[j] {
				return &DuplicateAbscissaError{I: i, J: j, X: x[i]}
			}
		}
	}

	return nil
}

func nonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
