// SPDX-License-Identifier: MIT

package interp

import "math"

// Result is the outcome of Interpolate.
type Result struct {
	Selected   PointSet // samples used, ascending x unless all were taken
	Target     float64
	Degree     int
	Lagrange   float64
	Newton     float64
	Difference float64 // |Lagrange − Newton|
	Agree      bool    // Difference < agreement tolerance

	Terms []LagrangeTerm          // only with WithVerbose()
	Table *DividedDifferenceTable // only with WithVerbose()
}

// Interpolate selects the degree+1 samples nearest to target and evaluates
// both the Lagrange and the Newton polynomial there.
// Implementation:
//   - Stage 1: validate equal lengths, n ≥ 1, degree ≥ 0 and degree+1 ≤ n.
//   - Stage 2: SelectCentered.
//   - Stage 3: evaluate both forms; compare against the agreement tolerance.
//
// Errors:
//   - ErrEmptyPointSet, ErrInvalidDegree, *DimensionError, ErrNaNInf,
//     *DuplicateAbscissaError.
//
// Complexity:
//   - Time O(n log n + d²), Space O(n + d²) with d = degree+1.
func Interpolate(x, y []float64, target float64, degree int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := validateSamples(x, y); err != nil {
		return nil, interpErrorf(opInterpolate, err)
	}
	if degree < 0 {
		return nil, interpErrorf(opInterpolate, ErrInvalidDegree)
	}
	if degree >= len(x) {
		return nil, interpErrorf(opInterpolate, &DimensionError{Name: "points", Got: len(x), Want: pointsFor(degree)})
	}

	sel, err := SelectCentered(x, y, target, degree)
	if err != nil {
		return nil, interpErrorf(opInterpolate, err)
	}
	lv, err := Lagrange(sel.X, sel.Y, target)
	if err != nil {
		return nil, interpErrorf(opInterpolate, err)
	}
	table, err := DividedDifferences(sel.X, sel.Y)
	if err != nil {
		return nil, interpErrorf(opInterpolate, err)
	}
	nv := table.Evaluate(target)

	res := &Result{
		Selected:   sel,
		Target:     target,
		Degree:     degree,
		Lagrange:   lv,
		Newton:     nv,
		Difference: math.Abs(lv - nv),
	}
	res.Agree = res.Difference < o.agreeTol

	if o.verbose {
		if res.Terms, err = LagrangeTerms(sel.X, sel.Y, target); err != nil {
			return nil, interpErrorf(opInterpolate, err)
		}
		res.Table = table
	}

	return res, nil
}
