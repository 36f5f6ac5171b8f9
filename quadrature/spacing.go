// SPDX-License-Identifier: MIT

package quadrature

import "math"

// InferSpacing returns h = d₁ − d₀ after checking that every step
// d_i − d_{i−1} satisfies |Δ_i − h| ≤ atol + rtol·|h|.
//
// Errors:
//   - ErrTooFewSamples (fewer than two distances), ErrNaNInf,
//   - ErrInvalidSpacing (h ≤ 0), ErrNonUniformSpacing (*SpacingError).
//
// Complexity: Time O(n), Space O(1).
func InferSpacing(distances []float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	h, err := inferSpacing(distances, o)
	if err != nil {
		return 0, quadErrorf(opInferSpacing, err)
	}

	return h, nil
}

func inferSpacing(d []float64, o Options) (float64, error) {
	if len(d) < 2 {
		return 0, ErrTooFewSamples
	}
	for _, v := range d {
		if !finite(v) {
			return 0, ErrNaNInf
		}
	}
	h := d[1] - d[0]
	if h <= 0 {
		return 0, ErrInvalidSpacing
	}

	limit := o.atol + o.rtol*math.Abs(h)
	var step float64
	for i := 2; i < len(d); i++ {
		step = d[i] - d[i-1]
		if math.Abs(step-h) > limit {
			return 0, &SpacingError{Index: i, Got: step, Want: h}
		}
	}

	return h, nil
}
