/*
 * main.go, part of trajplot.
 *
 * Copyright 2026 The trajplot authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// trajsim shoots a projectile with drag from a moving turret at a target,
// aims it, and writes the first and the aimed shots as trajectory files
// that trajplot can show.
//
//	trajsim TX TY TZ GX GY GZ VX VY POWER
//
// (TX, TY, TZ) is the turret, (GX, GY, GZ) the target, (VX, VY) the turret
// velocity and POWER the launch speed. The files are
// $TRAJPLOT_SIM_PREFIX + "initial.dat" and "final.dat". The error (squared
// distance to the target) of each shot is printed.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rmera/trajplot/ballistics"
	"github.com/rmera/trajplot/internal/config"
	"github.com/rmera/trajplot/internal/logging"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const usage = "usage: trajsim TX TY TZ GX GY GZ VX VY POWER"

const (
	exitOK = iota
	exitFail
	exitUsage
)

func main() {
	cfg, logger := setup(os.Stderr)
	if cfg == nil {
		os.Exit(exitUsage)
	}
	os.Exit(run(os.Args[1:], cfg.SimPrefix, os.Stdout, logger))
}

// setup loads the configuration and builds the logger, writing to w.
// Failures are logged; cfg is nil then.
func setup(w io.Writer) (*config.Config, zerolog.Logger) {
	cfg, err := config.Load()
	if err != nil {
		logger, _ := logging.NewTo(w, "trajsim", "info")
		logger.Error().Err(err).Msg("bad configuration")
		return nil, logger
	}
	logger, err := logging.NewTo(w, "trajsim", cfg.LogLevel)
	if err != nil {
		logger.Error().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
		return nil, logger
	}
	return cfg, logger
}

// parseProblem reads the 9 numbers of the command line.
func parseProblem(args []string) (ballistics.Problem, error) {
	var P ballistics.Problem
	if len(args) != 9 {
		return P, fmt.Errorf("expected 9 arguments, got %d", len(args))
	}
	v := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return P, fmt.Errorf("argument %d: %w", i+1, err)
		}
		v[i] = f
	}
	P.Turret = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	P.Target = r3.Vec{X: v[3], Y: v[4], Z: v[5]}
	P.TurretVel = r2.Vec{X: v[6], Y: v[7]}
	P.Power = v[8]
	return P, nil
}

func run(args []string, prefix string, out io.Writer, logger zerolog.Logger) int {
	P, err := parseProblem(args)
	if err != nil {
		fmt.Fprintln(out, usage)
		logger.Error().Err(err).Msg("bad arguments")
		return exitUsage
	}
	res, err := ballistics.Solve(P, prefix, logger)
	if err != nil {
		logger.Error().Err(err).Msg("simulation failed")
		return exitFail
	}
	fmt.Fprintf(out, "%s: error %g\n", res.Files[0], res.InitialMiss)
	fmt.Fprintf(out, "%s: error %g (%d iterations)\n", res.Files[1], res.FinalMiss, res.Iterations)
	return exitOK
}
