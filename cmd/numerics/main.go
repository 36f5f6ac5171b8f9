// SPDX-License-Identifier: MIT

// Command numerics runs the reference numerical problems: the mining blend
// (Gaussian elimination), the circuit mesh currents (iterative sweeps), the
// current/voltage interpolation (Lagrange and Newton) and the river
// cross-section area (Trapezoidal and Simpson rules).
//
// Usage:
//
//	numerics [-problem all] [-verbose] [-tolerance 1e-4] [-max-iter 1000]
//	         [-target 1.1] [-degree 4] [-spacing 2] [-depths 0,1.8,...]
//	         [-log-level info] [-log-dev]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/numerics/interp"
	"github.com/katalvlaran/numerics/linsolve"
	"github.com/katalvlaran/numerics/problems"
	"github.com/katalvlaran/numerics/quadrature"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
	log := logger.Sugar().With("run_id", uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, os.Stdout, log)
	stop()
	if err != nil {
		log.Errorw("run failed", "error", err)
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// newLogger builds a production (JSON) or development (console) logger at the configured level.
func newLogger(cfg config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.logDev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.logLevel)

	return zc.Build()
}

// run executes the selected problems, writing reports to w.
func run(ctx context.Context, cfg config, w io.Writer, log *zap.SugaredLogger) error {
	for _, name := range cfg.selected() {
		log.Infow("problem started", "problem", name)
		var err error
		switch name {
		case problemMining:
			err = runMining(cfg, w, log)
		case problemCircuit:
			err = runCircuit(ctx, cfg, w, log)
		case problemInterpolation:
			err = runInterpolation(cfg, w, log)
		case problemSection:
			err = runSection(cfg, w, log)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.Infow("problem finished", "problem", name)
	}

	return nil
}

func runMining(cfg config, w io.Writer, log *zap.SugaredLogger) error {
	var opts []linsolve.Option
	if cfg.verbose {
		opts = append(opts, linsolve.WithVerbose())
	}
	res, err := problems.SolveMining(problems.MiningRequirements(), problems.MiningComposition(), opts...)
	if err != nil {
		return err
	}
	log.Debugw("mining solved", "quantities", res.Quantities, "swaps", len(res.Direct.Swaps))
	reportMining(w, res, cfg.verbose)

	return nil
}

func runCircuit(ctx context.Context, cfg config, w io.Writer, log *zap.SugaredLogger) error {
	opts := []linsolve.Option{
		linsolve.WithTolerance(cfg.tolerance),
		linsolve.WithMaxIterations(cfg.maxIter),
	}
	if cfg.verbose {
		opts = append(opts, linsolve.WithVerbose())
	}
	res, err := problems.SolveCircuit(ctx, problems.CircuitExtended(), opts...)
	if err != nil {
		return err
	}
	log.Infow("circuit converged", "iterations", res.Iterations, "change", res.Change, "tolerance", cfg.tolerance)
	reportCircuit(w, res, cfg.tolerance, cfg.verbose)

	return nil
}

func runInterpolation(cfg config, w io.Writer, log *zap.SugaredLogger) error {
	x, y := problems.CurrentSamples()
	var opts []interp.Option
	if cfg.verbose {
		opts = append(opts, interp.WithVerbose())
	}
	res, err := interp.Interpolate(x, y, cfg.target, cfg.degree, opts...)
	if err != nil {
		return err
	}
	if !res.Agree {
		log.Warnw("lagrange and newton disagree", "difference", res.Difference)
	}
	reportInterpolation(w, res, cfg.verbose)

	return nil
}

func runSection(cfg config, w io.Writer, log *zap.SugaredLogger) error {
	res, err := quadrature.CrossSection(cfg.depths, quadrature.WithSpacing(cfg.spacing))
	if err != nil {
		return err
	}
	if res.Fallback {
		log.Warnw("simpson fallback", "samples", len(res.Depths), "warning", res.Warning)
	}
	reportSection(w, res, cfg.verbose)

	return nil
}
