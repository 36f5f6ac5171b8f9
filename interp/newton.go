// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// DividedDifferenceTable is the triangular table of Newton divided differences.
// Column 0 holds y; column j holds the order-j differences; only cells with
// i+j < n are defined.
type DividedDifferenceTable struct {
	n int
	x []float64
	t []float64 // n*n row-major, upper-left triangle populated
}

// DividedDifferences builds the table
//
//	T[i][0] = y_i
//	T[i][j] = (T[i+1][j−1] − T[i][j−1]) / (x_{i+j} − x_i)
//
// Errors: ErrEmptyPointSet, *DimensionError, ErrNaNInf, *DuplicateAbscissaError.
// Complexity: Time O(n²), Space O(n²).
func DividedDifferences(x, y []float64) (*DividedDifferenceTable, error) {
	if err := validateSamples(x, y); err != nil {
		return nil, interpErrorf(opDivided, err)
	}
	if err := checkDistinct(x); err != nil {
		return nil, interpErrorf(opDivided, err)
	}

	n := len(x)
	d := &DividedDifferenceTable{n: n, x: slices.Clone(x), t: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		d.t[i*n] = y[i]
	}
	for j = 1; j < n; j++ {
		for i = 0; i < n-j; i++ {
			d.t[i*n+j] = (d.t[(i+1)*n+j-1] - d.t[i*n+j-1]) / (x[i+j] - x[i])
		}
	}

	return d, nil
}

// Size returns the number of samples n.
func (d *DividedDifferenceTable) Size() int { return d.n }

// At returns T[i][j] for i, j ≥ 0 and i+j < n, else ErrOutOfRange.
func (d *DividedDifferenceTable) At(i, j int) (float64, error) {
	if i < 0 || j < 0 || i+j >= d.n {
		return 0, fmt.Errorf("DividedDifferenceTable.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return d.t[i*d.n+j], nil
}

// Coefficients returns a copy of row 0: the Newton-form coefficients.
func (d *DividedDifferenceTable) Coefficients() []float64 {
	return slices.Clone(d.t[:d.n])
}

// Rows returns the triangle as fresh slices; row i has n−i entries.
func (d *DividedDifferenceTable) Rows() [][]float64 {
	out := make([][]float64, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = slices.Clone(d.t[i*d.n : i*d.n+d.n-i])
	}

	return out
}

// Evaluate computes T[0][0] + Σ_{i≥1} T[0][i] · Π_{j<i} (t − x_j).
// Complexity: O(n).
func (d *DividedDifferenceTable) Evaluate(t float64) float64 {
	r := d.t[0]
	p := 1.0
	for i := 1; i < d.n; i++ {
		p *= t - d.x[i-1]
		r += d.t[i] * p
	}

	return r
}

// Newton evaluates the Newton-form interpolating polynomial of (x, y) at target.
// Errors: as DividedDifferences, plus ErrNaNInf for a non-finite target.
func Newton(x, y []float64, target float64) (float64, error) {
	if nonFinite(target) {
		return 0, interpErrorf(opNewton, ErrNaNInf)
	}
	d, err := DividedDifferences(x, y)
	if err != nil {
		return 0, interpErrorf(opNewton, err)
	}

	return d.Evaluate(target), nil
}
