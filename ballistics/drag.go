/*
 * drag.go, part of trajplot.
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

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DragCoefficient = 0.2041 //km, per metre
	Gravity         = 9.81
	MaxSteps        = 1000
	simTolerance    = 0.01
)

// Drag returns the system for a point mass under gravity g and a drag
// force proportional to the square of its speed, with coefficient km.
// The state is (x, vx, y, vy, z, vz).
func Drag(km, g float64) System {
	return func(t float64, x, dx []float64) {
		v := math.Sqrt(x[1]*x[1] + x[3]*x[3] + x[5]*x[5])
		dx[0] = x[1]
		dx[1] = -km * v * x[1]
		dx[2] = x[3]
		dx[3] = -km * v * x[3]
		dx[4] = x[5]
		dx[5] = -km*v*x[5] - g
	}
}

// Recorder gets each point of a simulated path. *traj.Writer is one.
type Recorder interface {
	WNext(t float64, p r3.Vec) error
}

// Simulate shoots a projectile from turret with initial velocity vel and
// follows it while it gets closer to target (at most MaxSteps steps).
// The last point is then moved along the last step to the height of the
// target. Every point, the last one included, goes to rec, if not nil.
// It returns the squared distance to the target at the last step.
func Simulate(turret, target, vel r3.Vec, rec Recorder) (float64, error) {
	R := NewRKF45(Drag(DragCoefficient, Gravity), []float64{turret.X, vel.X, turret.Y, vel.Y, turret.Z, vel.Z}, 0, simTolerance)
	pos := func() r3.Vec { return r3.Vec{X: R.State[0], Y: R.State[2], Z: R.State[4]} }
	record := func(t float64, p r3.Vec) error {
		if rec == nil {
			return nil
		}
		return rec.WNext(t, p)
	}
	last := pos()
	dist := r3.Norm2(r3.Sub(target, last))
	recorded := math.Inf(-1)
	for i := 0; i < MaxSteps; i++ {
		last = pos()
		if R.T != recorded { //rejected steps leave the state where it was.
			if err := record(R.T, last); err != nil {
				return 0, err
			}
			recorded = R.T
		}
		R.Step()
		d := r3.Norm2(r3.Sub(target, pos()))
		improvement := dist - d
		dist = d
		if improvement < 0 {
			break
		}
	}
	cur := pos()
	var f float64
	if cur.Z != last.Z {
		f = (target.Z - last.Z) / (cur.Z - last.Z)
		f = math.Max(0, math.Min(1, f))
	}
	hit := r3.Add(last, r3.Scale(f, r3.Sub(cur, last)))
	if err := record(R.T, hit); err != nil {
		return 0, err
	}
	return dist, nil
}
