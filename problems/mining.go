// SPDX-License-Identifier: MIT

package problems

import (
	"fmt"

	"github.com/katalvlaran/numerics/linsolve"
	"github.com/katalvlaran/numerics/matrix"
)

const (
	opMiningSystem = "MiningSystem"
	opSolveMining  = "SolveMining"
	percent        = 100.0
)

// MiningResult is the outcome of SolveMining.
type MiningResult struct {
	Quantities []float64 // m³ to extract per mine
	Required   []float64 // required m³ per material
	Obtained   []float64 // A·Quantities
	Errors     []float64 // Obtained − Required

	System *matrix.Dense          // A, row per material, column per mine
	Direct *linsolve.DirectResult // elimination artifacts
}

// MiningSystem builds A·x = b where A = compositionᵀ / 100: composition has
// one row per mine with the percentage of each material, so A has one row per
// material and one column per mine.
// Errors: matrix.ErrInvalidDimensions, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
func MiningSystem(required []float64, composition [][]float64) (*matrix.Dense, []float64, error) {
	comp, err := matrix.NewDenseFromRows(composition)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opMiningSystem, err)
	}
	if err = matrix.ValidateSquare(comp); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opMiningSystem, err)
	}
	if err = matrix.ValidateVecLen(required, comp.Rows()); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opMiningSystem, err)
	}
	t, err := matrix.Transpose(comp)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opMiningSystem, err)
	}
	a, err := matrix.Scale(t, 1/percent)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opMiningSystem, err)
	}
	b := make([]float64, len(required))
	copy(b, required)

	return a, b, nil
}

// SolveMining solves the blend problem with Gaussian elimination and reports
// how closely the solution reproduces the requirements.
func SolveMining(required []float64, composition [][]float64, opts ...linsolve.Option) (*MiningResult, error) {
	a, b, err := MiningSystem(required, composition)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveMining, err)
	}
	direct, err := linsolve.Gauss(a, b, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveMining, err)
	}
	obtained, err := matrix.MatVec(a, direct.X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveMining, err)
	}
	errs := make([]float64, len(b))
	for i := range b {
		errs[i] = obtained[i] - b[i]
	}

	return &MiningResult{
		Quantities: direct.X,
		Required:   b,
		Obtained:   obtained,
		Errors:     errs,
		System:     a,
		Direct:     direct,
	}, nil
}
