// SPDX-License-Identifier: MIT

package quadrature

import "math"

// Uniformity check defaults: |Δ_i − h| ≤ DefaultSpacingAbsTol + DefaultSpacingRelTol·|h|.
const (
	DefaultSpacingRelTol = 1e-3
	DefaultSpacingAbsTol = 1e-6
)

const panicSpacingTolInvalid = "quadrature: WithSpacingTolerance: rtol and atol must be finite and >= 0"

// Option configures InferSpacing and CrossSection.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	spacing    float64
	hasSpacing bool
	distances  []float64
	rtol, atol float64
}

// WithSpacing sets the sample spacing h of CrossSection. The value is
// validated by CrossSection (ErrInvalidSpacing unless finite and > 0).
func WithSpacing(h float64) Option {
	return func(o *Options) {
		o.spacing = h
		o.hasSpacing = true
	}
}

// WithDistances supplies the abscissa of every depth; the spacing is inferred
// from them. The slice is read, never retained.
func WithDistances(d []float64) Option {
	return func(o *Options) { o.distances = d }
}

// WithSpacingTolerance sets the relative and absolute tolerance of the
// uniformity check. Panics on negative or non-finite values.
func WithSpacingTolerance(rtol, atol float64) Option {
	if !finite(rtol) || !finite(atol) || rtol < 0 || atol < 0 {
		panic(panicSpacingTolInvalid)
	}

	return func(o *Options) { o.rtol, o.atol = rtol, atol }
}

func gatherOptions(user ...Option) Options {
	o := Options{rtol: DefaultSpacingRelTol, atol: DefaultSpacingAbsTol}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
