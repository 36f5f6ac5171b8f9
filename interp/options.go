// SPDX-License-Identifier: MIT

package interp

import "math"

// DefaultAgreementTolerance is the largest |Lagrange − Newton| still reported as agreement.
const DefaultAgreementTolerance = 1e-10

// DefaultVerbose disables collection of the Lagrange terms and the divided-difference table.
const DefaultVerbose = false

const panicAgreementInvalid = "interp: WithAgreementTolerance: tol must be finite and > 0"

// Option configures Interpolate.
type Option func(*Options)

// Options holds the effective Interpolate configuration.
type Options struct {
	agreeTol float64
	verbose  bool
}

// WithAgreementTolerance sets the agreement threshold of Interpolate.
// Panics unless tol is finite and strictly positive.
func WithAgreementTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicAgreementInvalid)
	}

	return func(o *Options) { o.agreeTol = tol }
}

// WithVerbose makes Interpolate return the Lagrange terms and the divided-difference table.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{agreeTol: DefaultAgreementTolerance, verbose: DefaultVerbose}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
