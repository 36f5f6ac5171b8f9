// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/numerics/linsolve"
	"github.com/katalvlaran/numerics/problems"
)

// Problem names accepted by -problem.
const (
	problemMining        = "mining"
	problemCircuit       = "circuit"
	problemInterpolation = "interpolation"
	problemSection       = "section"
	problemAll           = "all"
)

var problemOrder = []string{problemMining, problemCircuit, problemInterpolation, problemSection}

var errInvalidConfig = errors.New("numerics: invalid configuration")

// config is the validated command-line configuration.
type config struct {
	problem   string
	verbose   bool
	tolerance float64
	maxIter   int
	target    float64
	degree    int
	spacing   float64
	depths    []float64

	logLevel zapcore.Level
	logDev   bool
}

// floatList is a flag.Value for comma-separated numbers.
type floatList []float64

func (f *floatList) String() string {
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

func (f *floatList) Set(s string) error {
	var out []float64
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*f = out

	return nil
}

// parseFlags reads args into a config and validates it.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := config{logLevel: zapcore.InfoLevel}
	depths := floatList(problems.RiverDepths())

	fs := flag.NewFlagSet("numerics", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.problem, "problem", problemAll, "problem to run: mining|circuit|interpolation|section|all")
	fs.BoolVar(&cfg.verbose, "verbose", false, "print intermediate steps")
	fs.Float64Var(&cfg.tolerance, "tolerance", linsolve.DefaultTolerance, "relative change at which the circuit iteration stops")
	fs.IntVar(&cfg.maxIter, "max-iter", linsolve.DefaultMaxIterations, "maximum number of circuit iterations")
	fs.Float64Var(&cfg.target, "target", problems.InterpolationTarget, "abscissa at which to interpolate")
	fs.IntVar(&cfg.degree, "degree", problems.InterpolationDegree, "interpolating polynomial degree")
	fs.Float64Var(&cfg.spacing, "spacing", problems.RiverSpacing, "distance between depth soundings (m)")
	fs.Var(&depths, "depths", "comma-separated depth soundings (m)")
	fs.Var(&cfg.logLevel, "log-level", "set log level")
	fs.BoolVar(&cfg.logDev, "log-dev", false, "human-readable development logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments %q: %w", fs.Args(), errInvalidConfig)
	}
	cfg.depths = depths

	return cfg, cfg.validate()
}

// validate rejects values the library option constructors would panic on.
func (c config) validate() error {
	switch {
	case c.problem != problemAll && !slices.Contains(problemOrder, c.problem):
		return fmt.Errorf("unknown problem %q: %w", c.problem, errInvalidConfig)
	case math.IsNaN(c.tolerance) || math.IsInf(c.tolerance, 0) || c.tolerance <= 0:
		return fmt.Errorf("tolerance must be finite and > 0, got %g: %w", c.tolerance, errInvalidConfig)
	case c.maxIter < 1:
		return fmt.Errorf("max-iter must be >= 1, got %d: %w", c.maxIter, errInvalidConfig)
	case c.degree < 0:
		return fmt.Errorf("degree must be >= 0, got %d: %w", c.degree, errInvalidConfig)
	case math.IsNaN(c.spacing) || math.IsInf(c.spacing, 0) || c.spacing <= 0:
		return fmt.Errorf("spacing must be finite and > 0, got %g: %w", c.spacing, errInvalidConfig)
	case len(c.depths) < 2:
		return fmt.Errorf("at least two depths are required, got %d: %w", len(c.depths), errInvalidConfig)
	}

	return nil
}

// selected returns the problems to run in execution order.
func (c config) selected() []string {
	if c.problem == problemAll {
		return problemOrder
	}

	return []string{c.problem}
}
