// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/numerics/interp"
	"github.com/katalvlaran/numerics/linsolve"
	"github.com/katalvlaran/numerics/matrix"
	"github.com/katalvlaran/numerics/problems"
	"github.com/katalvlaran/numerics/quadrature"
)

// displayZero is the magnitude under which values are printed as zero.
const displayZero = 1e-10

// fmtNum formats v in a fixed 10.4 column, printing near-zero values as 0.
func fmtNum(v float64) string {
	if math.Abs(v) < displayZero {
		v = 0
	}

	return fmt.Sprintf("%10.4f", v)
}

func header(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", strings.ToUpper(title))
}

func printMatrix(w io.Writer, title string, m *matrix.Dense) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, row := range m.ToRows() {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmtNum(v)
		}
		fmt.Fprintf(w, "  [%s]\n", strings.Join(cells, " "))
	}
}

func printVector(w io.Writer, title string, v []float64) {
	cells := make([]string, len(v))
	for i, x := range v {
		cells[i] = fmtNum(x)
	}
	fmt.Fprintf(w, "%s: [%s]\n", title, strings.Join(cells, " "))
}

func printTrace(w io.Writer, tr *linsolve.Trace) {
	printMatrix(w, "augmented matrix", tr.Initial)
	for k, snap := range tr.Snapshots {
		for _, e := range tr.Eliminations {
			if e.Column == k {
				fmt.Fprintf(w, "  L%d = L%d - (%.4f) * L%d\n", e.Row+1, e.Row+1, e.Factor, e.Column+1)
			}
		}
		printMatrix(w, fmt.Sprintf("after column %d", k+1), snap)
	}
	fmt.Fprintln(w, "back substitution:")
	for _, s := range tr.Substitution {
		fmt.Fprintf(w, "  x%d = (%.4f - %.4f) / %.4f = %.4f\n", s.Row+1, s.RHS, s.Sum, s.Pivot, s.X)
	}
}

func reportMining(w io.Writer, res *problems.MiningResult, verbose bool) {
	header(w, "mining blend")
	printMatrix(w, "system A (material x mine)", res.System)
	printVector(w, "required b", res.Required)
	if verbose && res.Direct.Trace != nil {
		printTrace(w, res.Direct.Trace)
	}
	for _, s := range res.Direct.Swaps {
		fmt.Fprintf(w, "pivot swap in column %d: row %d <-> row %d\n", s.Column+1, s.From+1, s.To+1)
	}
	printMatrix(w, "triangular form", res.Direct.Upper)
	fmt.Fprintln(w, "quantities:")
	for i, q := range res.Quantities {
		fmt.Fprintf(w, "  Mine %d: %s m³\n", i+1, fmtNum(q))
	}
	fmt.Fprintln(w, "verification:")
	for i := range res.Required {
		name := fmt.Sprintf("material %d", i+1)
		if i < len(problems.Materials) {
			name = problems.Materials[i]
		}
		fmt.Fprintf(w, "  %-14s required %s obtained %s error %s\n",
			name, fmtNum(res.Required[i]), fmtNum(res.Obtained[i]), fmtNum(res.Errors[i]))
	}
}

func reportCircuit(w io.Writer, res *problems.CircuitResult, tol float64, verbose bool) {
	header(w, "circuit currents")
	printMatrix(w, "resistance matrix R", res.Coefficients)
	printVector(w, "sources V", res.RHS)
	if verbose {
		for k, c := range res.History {
			fmt.Fprintf(w, "  iteration %3d: change %.6e\n", k+1, c)
		}
	}
	fmt.Fprintf(w, "converged after %d iterations (change %.3e <= %.0e)\n", res.Iterations, res.Change, tol)
	for i, c := range res.Currents {
		fmt.Fprintf(w, "  i%d = %.6f A\n", i+1, c)
	}
	printVector(w, "residual R·i - V", res.Residual)
}

func reportInterpolation(w io.Writer, res *interp.Result, verbose bool) {
	header(w, "interpolation")
	fmt.Fprintf(w, "target %.4f, degree %d\n", res.Target, res.Degree)
	fmt.Fprintln(w, "selected points:")
	for i := range res.Selected.X {
		fmt.Fprintf(w, "  (%s, %s)\n", fmtNum(res.Selected.X[i]), fmtNum(res.Selected.Y[i]))
	}
	if verbose {
		for _, t := range res.Terms {
			fmt.Fprintf(w, "  L%d = %.6f, y·L = %.6f\n", t.Index, t.Basis, t.Contribution)
		}
		if res.Table != nil {
			fmt.Fprintln(w, "divided differences:")
			for _, row := range res.Table.Rows() {
				cells := make([]string, len(row))
				for j, v := range row {
					cells[j] = fmtNum(v)
				}
				fmt.Fprintf(w, "  %s\n", strings.Join(cells, " "))
			}
		}
	}
	fmt.Fprintf(w, "Lagrange: %.7f\n", res.Lagrange)
	fmt.Fprintf(w, "Newton:   %.7f\n", res.Newton)
	fmt.Fprintf(w, "difference %.3e, agree %t\n", res.Difference, res.Agree)
}

func reportSection(w io.Writer, res *quadrature.SectionResult, verbose bool) {
	header(w, "river cross-section")
	fmt.Fprintf(w, "%d soundings, spacing %.4f m\n", len(res.Depths), res.Spacing)
	if verbose {
		for i := range res.Depths {
			fmt.Fprintf(w, "  x = %s m  depth = %s m\n", fmtNum(res.Distances[i]), fmtNum(res.Depths[i]))
		}
	}
	fmt.Fprintf(w, "trapezoid: %s m²\n", fmtNum(res.Trapezoid))
	fmt.Fprintf(w, "simpson:   %s m²\n", fmtNum(res.Simpson))
	fmt.Fprintf(w, "difference %s m² (%.2f%%)\n", fmtNum(res.Difference), res.PercentDifference)
	if res.Fallback {
		fmt.Fprintf(w, "warning: %s\n", res.Warning)
	}
}
