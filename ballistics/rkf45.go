/*
 * rkf45.go, part of trajplot.
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

package ballistics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// System is a first order ODE system, dx/dt = f(t, x). It puts the
// derivative of x in dx, which has the same length as x.
type System func(t float64, x, dx []float64)

const (
	DefaultTolerance = 0.001
	InitialStep      = 0.00001
	minScale         = 0.1
	maxScale         = 4.0
)

// Butcher tableau for Runge-Kutta-Fehlberg 4(5).
var (
	rkfC = [6]float64{0, 1.0 / 4, 3.0 / 8, 12.0 / 13, 1, 1.0 / 2}
	rkfA = [6][]float64{
		{},
		{1.0 / 4},
		{3.0 / 32, 9.0 / 32},
		{1932.0 / 2197, -7200.0 / 2197, 7296.0 / 2197},
		{439.0 / 216, -8, 3680.0 / 513, -845.0 / 4104},
		{-8.0 / 27, 2, -3544.0 / 2565, 1859.0 / 4104, -11.0 / 40},
	}
	//fifth order solution
	rkfB = [6]float64{16.0 / 135, 0, 6656.0 / 12825, 28561.0 / 56430, -9.0 / 50, 2.0 / 55}
	//difference between the fifth and the fourth order solutions
	rkfE = [6]float64{1.0 / 360, 0, -128.0 / 4275, -2197.0 / 75240, 1.0 / 50, 2.0 / 55}
)

// RKF45 is an adaptive Runge-Kutta-Fehlberg integrator. Each Step
// either advances State by H and T, if the local error estimate is within
// Tol, or only shrinks H. H is rescaled after every step.
type RKF45 struct {
	State []float64
	T     float64
	H     float64
	Tol   float64
	f     System
	k     [6][]float64
	tmp   []float64
	errv  []float64
}

// NewRKF45 returns an integrator for f starting from x0 at t0. A copy of x0 is kept.
// If tol is not positive, DefaultTolerance is used.
func NewRKF45(f System, x0 []float64, t0, tol float64) *RKF45 {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	n := len(x0)
	R := &RKF45{State: make([]float64, n), T: t0, H: InitialStep, Tol: tol, f: f}
	copy(R.State, x0)
	for i := range R.k {
		R.k[i] = make([]float64, n)
	}
	R.tmp = make([]float64, n)
	R.errv = make([]float64, n)
	return R
}

// Step tries one step and returns true if it was accepted.
func (R *RKF45) Step() bool {
	for i := range R.k {
		copy(R.tmp, R.State)
		for j, a := range rkfA[i] {
			if a != 0 {
				floats.AddScaled(R.tmp, a, R.k[j])
			}
		}
		R.f(R.T+rkfC[i]*R.H, R.tmp, R.k[i])
		floats.Scale(R.H, R.k[i])
	}
	for i := range R.errv {
		R.errv[i] = 0
	}
	for i, e := range rkfE {
		if e != 0 {
			floats.AddScaled(R.errv, e, R.k[i])
		}
	}
	err := floats.Norm(R.errv, math.Inf(1))
	accepted := err <= R.Tol
	if accepted {
		for i, b := range rkfB {
			if b != 0 {
				floats.AddScaled(R.State, b, R.k[i])
			}
		}
		R.T += R.H
	}
	scale := maxScale
	if err > 0 {
		scale = 0.84 * math.Pow(R.Tol/err, 0.25)
	}
	R.H *= math.Max(minScale, math.Min(maxScale, scale))
	return accepted
}
