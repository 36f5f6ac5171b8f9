// Package interp evaluates the interpolating polynomial of a small sample set
// at a target abscissa.
//
// Two equivalent constructions are provided and can be cross-checked:
//
//   - Lagrange: Σ y_i · Π_{j≠i} (t − x_j)/(x_i − x_j), O(n²) per evaluation.
//   - Newton: divided-difference table built once in O(n²), evaluated in O(n).
//
// SelectCentered picks the degree+1 samples closest to the target (stable on
// ties, returned in ascending x) so that a low-degree polynomial is fitted
// where it is evaluated. Interpolate combines selection and both methods and
// reports whether the two agree within AgreementTolerance.
//
// Duplicate abscissas make both constructions undefined and are reported as
// ErrDuplicateAbscissa with a *DuplicateAbscissaError naming the pair.
// Inputs are copied; nothing is retained between calls.
package interp
