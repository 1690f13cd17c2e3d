/*
 * doc.go, part of trajplot.
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

/*
Package ballistics produces trajectory files: shots of a projectile with
quadratic drag, fired from a (possibly moving) turret at a target.

A shot is integrated with an adaptive Runge-Kutta-Fehlberg 4(5) stepper
(RKF45) until it stops getting closer to the target. The miss of a shot is
the squared distance to the target at that point. Problem.Aim looks for the
launch angle (measured from the vertical) with no miss with a secant search
starting from the line of sight, and Solve writes both the first and the
aimed shot as trajectory files:

	P := ballistics.Problem{Turret: r3.Vec{}, Target: r3.Vec{X: 20, Y: 5, Z: 2.46}, Power: 30}
	res, err := ballistics.Solve(P, "results", log)

The files can be read back with traj.ReadFile, the first line holding the
turret and target positions.
*/
package ballistics
