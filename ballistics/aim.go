/*
 * aim.go, part of trajplot.
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
	"fmt"
	"math"

	"github.com/rmera/trajplot"
	"github.com/rmera/trajplot/traj"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	SecantIterations = 10
	Converged        = 0.01 //squared distance to the target
)

// FirstAngleStep is the first change of the angle in the secant search, -0.3 degrees.
var FirstAngleStep = -0.3 * math.Pi / 180

// ShotDirection returns the unit horizontal direction to shoot in from a turret
// moving with turretVel, so that the shot, launched at power with the given
// angle from the vertical, moves toward target.
func ShotDirection(turret, target r3.Vec, turretVel r2.Vec, angle, power float64) r2.Vec {
	c := power * math.Sin(angle)
	d := r3.Sub(target, turret)
	vx, vy := turretVel.X, turretVel.Y
	dx, dy := d.X, d.Y
	den := c * c * (dx*dx + dy*dy)
	if den == 0 {
		//straight up (or no power): any direction will do.
		return r2.Vec{X: 1}
	}
	root := math.Sqrt(math.Max(0, c*c*dx*dx*(-vx*vx*dy*dy+2*vx*vy*dx*dy-vy*vy*dx*dx+c*c*(dx*dx+dy*dy))))
	b := -vx*c*dy*dy + vy*c*dx*dy
	//Of the candidate solutions, keep the one whose ground velocity
	//points to the target.
	var best r2.Vec
	bestCross := math.Inf(1)
	for _, u := range [2]float64{(root + b) / den, (-root + b) / den} {
		u = math.Max(-1, math.Min(1, u))
		v := math.Sqrt(1 - u*u)
		for _, s := range [2]float64{1, -1} {
			wx, wy := vx+c*u, vy+c*s*v
			if wx*dx+wy*dy <= 0 {
				continue
			}
			if cross := math.Abs(wx*dy - wy*dx); cross < bestCross {
				best, bestCross = r2.Vec{X: u, Y: s * v}, cross
			}
		}
	}
	if math.IsInf(bestCross, 1) {
		//the turret outruns the shot. Just shoot at the target.
		n := math.Hypot(dx, dy)
		return r2.Vec{X: dx / n, Y: dy / n}
	}
	return best
}

// Problem is a turret, moving on the horizontal plane, that has to hit a target.
type Problem struct {
	Turret    r3.Vec
	Target    r3.Vec
	TurretVel r2.Vec
	Power     float64 //launch speed relative to the turret
}

// Velocity returns the initial velocity of a shot with the given angle from the vertical.
func (P Problem) Velocity(angle float64) r3.Vec {
	d := ShotDirection(P.Turret, P.Target, P.TurretVel, angle, P.Power)
	s := P.Power * math.Sin(angle)
	return r3.Vec{X: P.TurretVel.X + s*d.X, Y: P.TurretVel.Y + s*d.Y, Z: P.Power * math.Cos(angle)}
}

// Miss returns the squared distance by which a shot at angle misses the target.
func (P Problem) Miss(angle float64) float64 {
	m, _ := Simulate(P.Turret, P.Target, P.Velocity(angle), nil)
	return m
}

// LineOfSight is the angle from the vertical that points straight to the target.
func (P Problem) LineOfSight() float64 {
	d := r3.Sub(P.Target, P.Turret)
	return math.Pi/2 - math.Atan2(d.Z, math.Hypot(d.X, d.Y))
}

// Record simulates a shot at angle and writes it as a trajectory file, with
// the turret and target positions as boundary. It returns the squared miss.
func (P Problem) Record(angle float64, name string) (float64, error) {
	W, err := traj.NewWriter(name)
	if err != nil {
		return 0, err
	}
	if err := W.WBoundary(P.Turret, P.Target); err != nil {
		W.Close()
		return 0, trajplot.Decorate(err, "Record")
	}
	m, err := Simulate(P.Turret, P.Target, P.Velocity(angle), W)
	if err != nil {
		W.Close()
		return 0, trajplot.Decorate(err, "Record")
	}
	if err := W.Close(); err != nil {
		return 0, trajplot.Decorate(err, "Record")
	}
	return m, nil
}

// Aim runs a secant search for the angle that zeroes the miss, starting
// from the line of sight. It returns the angle, its miss and the number
// of iterations used.
func (P Problem) Aim() (float64, float64, int) {
	lastAngle := P.LineOfSight()
	lastMiss := P.Miss(lastAngle)
	angle := lastAngle + FirstAngleStep
	miss := P.Miss(angle)
	i := 0
	for ; i < SecantIterations && miss >= Converged; i++ {
		den := miss - lastMiss
		if den == 0 {
			break
		}
		next := angle - miss*(angle-lastAngle)/den
		if math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		lastAngle, lastMiss = angle, miss
		angle = next
		miss = P.Miss(angle)
	}
	return angle, miss, i
}

// Result summarizes a Solve run.
type Result struct {
	InitialAngle float64
	InitialMiss  float64
	FinalAngle   float64
	FinalMiss    float64
	Iterations   int
	Files        []string
}

// Solve writes prefix+"initial.dat" with the line of sight shot, aims,
// and writes prefix+"final.dat" with the aimed shot.
func Solve(P Problem, prefix string, log zerolog.Logger) (*Result, error) {
	if P.Power <= 0 {
		return nil, fmt.Errorf("ballistics: power must be positive, got %v", P.Power)
	}
	res := &Result{InitialAngle: P.LineOfSight()}
	initial := prefix + "initial.dat"
	m, err := P.Record(res.InitialAngle, initial)
	if err != nil {
		return nil, err
	}
	res.InitialMiss = m
	res.Files = append(res.Files, initial)
	log.Info().Str("file", initial).Float64("angle", res.InitialAngle).Float64("error", m).Msg("initial shot")

	res.FinalAngle, _, res.Iterations = P.Aim()
	final := prefix + "final.dat"
	m, err = P.Record(res.FinalAngle, final)
	if err != nil {
		return nil, err
	}
	res.FinalMiss = m
	res.Files = append(res.Files, final)
	log.Info().Str("file", final).Float64("angle", res.FinalAngle).Float64("error", m).
		Int("iterations", res.Iterations).Msg("aimed shot")
	return res, nil
}
