// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// SectionResult is the outcome of CrossSection.
type SectionResult struct {
	Depths    []float64
	Distances []float64 // given or generated as i·h
	Spacing   float64

	Trapezoid         float64
	Simpson           float64
	Difference        float64 // |Simpson − Trapezoid|
	PercentDifference float64 // Difference / Simpson · 100; 0 when Simpson is 0

	Fallback bool
	Warning  string
}

// CrossSection integrates a depth profile with both rules.
// MAIN DESCRIPTION:
//   - The spacing comes from WithSpacing, or is inferred from WithDistances.
//     With both, the explicit spacing is used and the distances are only
//     checked for uniformity.
//   - Without distances they are generated as 0, h, 2h, ...
//
// Errors:
//   - ErrTooFewSamples, ErrNaNInf, ErrDimensionMismatch (distance count),
//     ErrInvalidSpacing (none given, ≤ 0 or non-finite), ErrNonUniformSpacing.
//
// Complexity:
//   - Time O(n), Space O(n).
func CrossSection(depths []float64, opts ...Option) (*SectionResult, error) {
	o := gatherOptions(opts...)
	if len(depths) < 2 {
		return nil, quadErrorf(opCrossSection, ErrTooFewSamples)
	}

	if o.hasSpacing && (!finite(o.spacing) || o.spacing <= 0) {
		return nil, quadErrorf(opCrossSection, ErrInvalidSpacing)
	}

	var h float64
	var distances []float64
	switch {
	case o.distances != nil:
		if len(o.distances) != len(depths) {
			return nil, quadErrorf(opCrossSection, fmt.Errorf("%d distances for %d depths: %w",
				len(o.distances), len(depths), ErrDimensionMismatch))
		}
		inferred, err := inferSpacing(o.distances, o)
		if err != nil {
			return nil, quadErrorf(opCrossSection, err)
		}
		h, distances = inferred, slices.Clone(o.distances)
		if o.hasSpacing {
			h = o.spacing
		}
	case o.hasSpacing:
		h = o.spacing
		distances = make([]float64, len(depths))
		for i := range distances {
			distances[i] = float64(i) * h
		}
	default:
		return nil, quadErrorf(opCrossSection, fmt.Errorf("spacing or distances required: %w", ErrInvalidSpacing))
	}

	trap, err := Trapezoid(depths, h)
	if err != nil {
		return nil, quadErrorf(opCrossSection, err)
	}
	simp, err := Simpson(depths, h)
	if err != nil {
		return nil, quadErrorf(opCrossSection, err)
	}

	res := &SectionResult{
		Depths:     slices.Clone(depths),
		Distances:  distances,
		Spacing:    h,
		Trapezoid:  trap,
		Simpson:    simp.Area,
		Difference: math.Abs(simp.Area - trap),
		Fallback:   simp.Fallback,
		Warning:    simp.Warning(),
	}
	if simp.Area != 0 {
		res.PercentDifference = res.Difference / simp.Area * 100
	}

	return res, nil
}
