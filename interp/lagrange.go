// SPDX-License-Identifier: MIT

package interp

// LagrangeTerm is the contribution of one sample to the Lagrange sum.
type LagrangeTerm struct {
	Index        int
	X, Y         float64
	Basis        float64 // L_i(target) = Π_{j≠i} (target − x_j)/(x_i − x_j)
	Contribution float64 // Y · Basis
}

// Lagrange evaluates the Lagrange interpolating polynomial of (x, y) at target.
// Implementation:
//   - Stage 1: validate samples (non-empty, equal lengths, finite, distinct x).
//   - Stage 2: accumulate y_i · L_i(target) in index order.
//
// Errors:
//   - ErrEmptyPointSet, *DimensionError, ErrNaNInf, *DuplicateAbscissaError.
//
// Complexity:
//   - Time O(n²), Space O(1).
func Lagrange(x, y []float64, target float64) (float64, error) {
	if err := validateLagrange(x, y, target); err != nil {
		return 0, interpErrorf(opLagrange, err)
	}

	var sum float64
	for i := range x {
		sum += y[i] * basis(x, i, target)
	}

	return sum, nil
}

// LagrangeTerms returns the per-sample basis values and contributions; their
// contributions sum to Lagrange(x, y, target).
func LagrangeTerms(x, y []float64, target float64) ([]LagrangeTerm, error) {
	if err := validateLagrange(x, y, target); err != nil {
		return nil, interpErrorf(opLagrange, err)
	}

	terms := make([]LagrangeTerm, len(x))
	var l float64
	for i := range x {
		l = basis(x, i, target)
		terms[i] = LagrangeTerm{Index: i, X: x[i], Y: y[i], Basis: l, Contribution: y[i] * l}
	}

	return terms, nil
}

func validateLagrange(x, y []float64, target float64) error {
	if err := validateSamples(x, y); err != nil {
		return err
	}
	if nonFinite(target) {
		return ErrNaNInf
	}

	return checkDistinct(x)
}

// basis computes L_i(t) for pre-validated abscissas.
func basis(x []float64, i int, t float64) float64 {
	l := 1.0
	for j := range x {
		if j != i {
			l *= (t - x[j]) / (x[i] - x[j])
		}
	}

	return l
}
