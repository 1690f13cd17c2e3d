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

// trajplot shows the trajectory files given as arguments in one 3D scene.
//
//	trajplot FILE...
//
// There are no flags; the TRAJPLOT_* environment variables configure it
// (see internal/config). The scene is served at TRAJPLOT_ADDR until the
// program is interrupted, or written to TRAJPLOT_OUTPUT. If
// TRAJPLOT_PROJECTIONS is set, the XY, XZ and YZ projections are also
// saved there.
//
// The exit status is 0 on success, 1 if a trajectory can't be read and
// 2 if the configuration is wrong.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rmera/trajplot"
	"github.com/rmera/trajplot/internal/config"
	"github.com/rmera/trajplot/internal/logging"
	"github.com/rmera/trajplot/render/echarts"
	"github.com/rmera/trajplot/render/projection"
	"github.com/rmera/trajplot/scene"
	"github.com/rs/zerolog"
)

const (
	exitOK = iota
	exitSource
	exitConfig
)

func main() {
	cfg, logger := setup(os.Stderr)
	if cfg == nil {
		os.Exit(exitConfig)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Args[1:], logger)
	stop()
	os.Exit(code)
}

// setup loads the configuration and builds the logger, writing to w.
// Failures are logged; cfg is nil then.
func setup(w io.Writer) (*config.Config, zerolog.Logger) {
	cfg, err := config.Load()
	if err != nil {
		logger, _ := logging.NewTo(w, "trajplot", "info")
		logger.Error().Err(err).Msg("bad configuration")
		return nil, logger
	}
	logger, err := logging.NewTo(w, "trajplot", cfg.LogLevel)
	if err != nil {
		logger.Error().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
		return nil, logger
	}
	return cfg, logger
}

// surfaces builds the surfaces configured in cfg.
func surfaces(cfg *config.Config, logger zerolog.Logger) scene.Surface {
	var s scene.Surface = echarts.New(echarts.Options{
		Title:  cfg.Title,
		Output: cfg.Output,
		Addr:   cfg.Addr,
		Logger: logger,
	})
	if cfg.Projections != "" {
		//the files are written before the (possibly blocking) 3D view.
		p := projection.New(projection.Options{Base: cfg.Projections, Title: cfg.Title, Logger: logger})
		s = scene.Multi(p, s)
	}
	return s
}

// run composes the scene from sources and returns the exit status.
func run(ctx context.Context, cfg *config.Config, sources []string, logger zerolog.Logger) int {
	C, err := scene.NewComposer(surfaces(cfg, logger), scene.WithLogger(logger))
	if err != nil {
		logger.Error().Err(err).Msg("can't build the scene")
		return exitConfig
	}
	if _, err := C.Compose(ctx, sources); err != nil {
		var terr trajplot.TrajError
		if errors.As(err, &terr) {
			logger.Error().Err(err).Str("file", terr.FileName()).Msg("can't read trajectory")
		} else {
			logger.Error().Err(err).Msg("can't show the scene")
		}
		return exitSource
	}
	return exitOK
}
