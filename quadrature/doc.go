// Package quadrature integrates uniformly sampled profiles with the composite
// Trapezoidal and Simpson 1/3 rules.
//
// The rules offered are:
//
//   - Trapezoid: h/2 · (y₀ + 2·Σ interior + y_{n−1}); exact for linear profiles.
//   - Simpson:   h/3 · (y₀ + 4·Σ odd + 2·Σ even + y_{n−1}); exact for cubics.
//
// Simpson needs an odd number of samples. With an even count the first n−1
// samples are integrated with Simpson and the last interval with one
// trapezoid. This is a policy, not an error: SimpsonResult.Fallback is set and
// Warning() returns the diagnostic text.
//
// CrossSection ties both rules to a river-bed style depth profile: the spacing
// is given directly (WithSpacing) or inferred from measured distances
// (WithDistances), checked for uniformity within a relative/absolute tolerance.
package quadrature
