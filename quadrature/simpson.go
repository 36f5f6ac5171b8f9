// SPDX-License-Identifier: MIT

package quadrature

import "fmt"

// SimpsonResult is the outcome of Simpson.
type SimpsonResult struct {
	Area     float64
	Samples  int
	Fallback bool // even sample count: the last interval used the trapezoidal rule

	SimpsonPart   float64 // Simpson over the first n (odd) or n−1 (even) samples
	TrapezoidPart float64 // trapezoid on (y_{n−2}, y_{n−1}); 0 without fallback
}

// Warning returns the fallback diagnostic, or "" when Simpson covered every interval.
func (r SimpsonResult) Warning() string {
	if !r.Fallback {
		return ""
	}

	return fmt.Sprintf("simpson: %d samples is an even count, last interval integrated with the trapezoidal rule", r.Samples)
}

// Simpson integrates uniformly spaced samples with the composite Simpson 1/3 rule.
// Implementation:
//   - Odd n:  h/3 · (y₀ + 4·Σ_{odd i} y_i + 2·Σ_{even interior i} y_i + y_{n−1}).
//   - Even n: Simpson over y₀..y_{n−2}, plus h/2 · (y_{n−2} + y_{n−1}).
//
// Behavior highlights:
//   - Two samples are a single trapezoid (Simpson over one sample is 0).
//   - The even-count fallback is reported in the result, never as an error.
//
// Errors: ErrTooFewSamples (n < 2), ErrInvalidSpacing (h non-finite), ErrNaNInf.
// Complexity: Time O(n), Space O(1).
func Simpson(y []float64, h float64) (SimpsonResult, error) {
	if err := validateProfile(y, h); err != nil {
		return SimpsonResult{}, quadErrorf(opSimpson, err)
	}

	n := len(y)
	res := SimpsonResult{Samples: n}
	if n%2 == 1 {
		res.SimpsonPart = simpsonOdd(y, h)
		res.Area = res.SimpsonPart

		return res, nil
	}

	res.Fallback = true
	res.SimpsonPart = simpsonOdd(y[:n-1], h)
	res.TrapezoidPart = h / 2 * (y[n-2] + y[n-1])
	res.Area = res.SimpsonPart + res.TrapezoidPart

	return res, nil
}

// simpsonOdd applies the 1/3 rule to an odd number of samples; one sample spans no interval.
func simpsonOdd(y []float64, h float64) float64 {
	n := len(y)
	if n < 3 {
		return 0
	}
	var odd, even float64
	var i int
	for i = 1; i < n-1; i += 2 {
		odd += y[i]
	}
	for i = 2; i < n-1; i += 2 {
		even += y[i]
	}

	return h / 3 * (y[0] + 4*odd + 2*even + y[n-1])
}
