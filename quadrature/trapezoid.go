// SPDX-License-Identifier: MIT

package quadrature

// Trapezoid integrates uniformly spaced samples with the composite trapezoidal rule:
//
//	h/2 · (y₀ + 2·Σ_{i=1}^{n−2} y_i + y_{n−1})
//
// Errors: ErrTooFewSamples (n < 2), ErrInvalidSpacing (h non-finite), ErrNaNInf.
// Complexity: Time O(n), Space O(1).
func Trapezoid(y []float64, h float64) (float64, error) {
	if err := validateProfile(y, h); err != nil {
		return 0, quadErrorf(opTrapezoid, err)
	}

	return trapezoid(y, h), nil
}

func trapezoid(y []float64, h float64) float64 {
	n := len(y)
	var interior float64
	for i := 1; i < n-1; i++ {
		interior += y[i]
	}

	return h / 2 * (y[0] + 2*interior + y[n-1])
}

// validateProfile checks n ≥ 2, a finite h and finite samples.
func validateProfile(y []float64, h float64) error {
	if len(y) < 2 {
		return ErrTooFewSamples
	}
	if !finite(h) {
		return ErrInvalidSpacing
	}
	for _, v := range y {
		if !finite(v) {
			return ErrNaNInf
		}
	}

	return nil
}
