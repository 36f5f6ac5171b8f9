// SPDX-License-Identifier: MIT

package interp

import (
	"math"
	"sort"

	"golang.org/x/exp/slices"
)

// SelectCentered picks the degree+1 samples nearest to target.
// MAIN DESCRIPTION:
//   - With len(x) ≤ degree+1 every sample is returned, copied, in input order.
//   - Otherwise samples are ranked by |x_i − target| (stable: ties keep input
//     order), the first degree+1 are kept and returned sorted by x ascending.
//
// Errors:
//   - ErrEmptyPointSet, *DimensionError (len(y) != len(x)), ErrInvalidDegree, ErrNaNInf.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func SelectCentered(x, y []float64, target float64, degree int) (PointSet, error) {
	if err := validateSamples(x, y); err != nil {
		return PointSet{}, interpErrorf(opSelect, err)
	}
	if degree < 0 {
		return PointSet{}, interpErrorf(opSelect, ErrInvalidDegree)
	}
	if nonFinite(target) {
		return PointSet{}, interpErrorf(opSelect, ErrNaNInf)
	}

	if len(x)-1 <= degree {
		return PointSet{X: slices.Clone(x), Y: slices.Clone(y)}, nil
	}
	need := degree + 1

	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return math.Abs(x[idx[a]]-target) < math.Abs(x[idx[b]]-target)
	})
	idx = idx[:need]
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	out := PointSet{X: make([]float64, need), Y: make([]float64, need)}
	for k, i := range idx {
		out.X[k], out.Y[k] = x[i], y[i]
	}

	return out, nil
}

// pointsFor returns degree+1, saturating at math.MaxInt.
func pointsFor(degree int) int {
	if degree == math.MaxInt {
		return degree
	}

	return degree + 1
}
