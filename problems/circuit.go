// SPDX-License-Identifier: MIT

package problems

import (
	"context"
	"fmt"

	"github.com/katalvlaran/numerics/linsolve"
	"github.com/katalvlaran/numerics/matrix"
)

const opSolveCircuit = "SolveCircuit"

// CircuitResult is the outcome of SolveCircuit.
type CircuitResult struct {
	Currents     []float64     // mesh currents i1..in
	Coefficients *matrix.Dense // resistance matrix R
	RHS          []float64     // source voltages V
	Residual     []float64     // R·i − V
	Iterations   int
	Change       float64   // relative change of the last sweep
	History      []float64 // per-sweep change; only with linsolve.WithVerbose()
}

// SolveCircuit runs the iterative solver on an extended matrix (R | V).
// The default tolerance is linsolve.DefaultTolerance; pass linsolve options to override.
func SolveCircuit(ctx context.Context, extended [][]float64, opts ...linsolve.Option) (*CircuitResult, error) {
	ab, err := matrix.NewDenseFromRows(extended)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveCircuit, err)
	}
	r, v, err := matrix.SplitAugmented(ab)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveCircuit, err)
	}
	it, err := linsolve.GaussSeidelAugmented(ctx, ab, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveCircuit, err)
	}
	res, err := matrix.Residual(r, it.X, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveCircuit, err)
	}

	return &CircuitResult{
		Currents:     it.X,
		Coefficients: r,
		RHS:          v,
		Residual:     res,
		Iterations:   it.Iterations,
		Change:       it.Change,
		History:      it.History,
	}, nil
}
