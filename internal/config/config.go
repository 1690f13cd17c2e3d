/*
 * config.go, part of trajplot.
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

package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load.
const Prefix = "trajplot"

// Config holds the settings of the trajplot commands, read from TRAJPLOT_* variables.
type Config struct {
	Addr        string `envconfig:"ADDR" default:"127.0.0.1:8765"`
	Output      string `envconfig:"OUTPUT"`      //HTML file to write instead of serving
	Projections string `envconfig:"PROJECTIONS"` //base path for the 2D projections, empty to skip them
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Title       string `envconfig:"TITLE" default:"Trajectories"`
	SimPrefix   string `envconfig:"SIM_PREFIX" default:"results"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
