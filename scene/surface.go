/*
 * surface.go, part of trajplot.
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

package scene

import (
	"context"

	"gonum.org/v1/gonum/spatial/r3"
)

// MarkerStyle is the look of discrete markers.
type MarkerStyle struct {
	Glyph string  //"circle", "ring", ...; renderers fall back to their default for unknown glyphs
	Size  float64 //in the renderer's own unit
}

// BoundaryMarkers is the style used for the start and end points of every trajectory.
// It carries no colour: renderers use their neutral default.
var BoundaryMarkers = MarkerStyle{Glyph: "circle", Size: 40}

// Surface is something trajectories can be drawn on.
type Surface interface {
	//Markers draws each of points as a separate marker, with no line between them.
	Markers(points []r3.Vec, style MarkerStyle) error
	//Polyline draws points, in order, as a connected line with the colour c, under the legend label.
	Polyline(points []r3.Vec, c Color, label string) error
	//Legend adds a legend with every label and colour given to Polyline so far.
	Legend() error
	//Show displays the result. It may block until the display is dismissed or ctx is done.
	Show(ctx context.Context) error
}

// Multi returns a Surface that forwards every call to each of surfaces, in order.
// A call stops at the first surface that fails.
func Multi(surfaces ...Surface) Surface {
	return multi(surfaces)
}

type multi []Surface

func (m multi) Markers(points []r3.Vec, style MarkerStyle) error {
	for _, s := range m {
		if err := s.Markers(points, style); err != nil {
			return err
		}
	}
	return nil
}

func (m multi) Polyline(points []r3.Vec, c Color, label string) error {
	for _, s := range m {
		if err := s.Polyline(points, c, label); err != nil {
			return err
		}
	}
	return nil
}

func (m multi) Legend() error {
	for _, s := range m {
		if err := s.Legend(); err != nil {
			return err
		}
	}
	return nil
}

// Show runs the surfaces one after another, so only the last one should block.
func (m multi) Show(ctx context.Context) error {
	for _, s := range m {
		if err := s.Show(ctx); err != nil {
			return err
		}
	}
	return nil
}
