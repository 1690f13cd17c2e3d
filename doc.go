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
Package trajplot reads trajectory files describing paths in 3D space and
draws them overlaid in a single scene.

	**trajplot Capabilities**

    Reads plain, gzip and zstd compressed trajectory files (package traj).
    Each file holds a boundary line (start and end point) followed by
    one "t x y z" record per step.

    Writes trajectory files in the same format (traj.Writer).

    Composes any number of trajectories into one scene, each path with
    a colour from a fixed rotating palette and a "solution #n" label,
    the start/end points drawn as markers (package scene).

    Renders the scene as an interactive 3D page (render/echarts) and,
    optionally, as XY/XZ/YZ projections (render/projection).

    Generates trajectory files for a projectile with quadratic drag,
    aimed with a secant search over the elevation angle (package ballistics).

The programs in cmd/ put all this together: trajplot shows files, trajsim
produces them.
*/
package trajplot
