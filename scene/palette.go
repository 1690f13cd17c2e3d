/*
 * palette.go, part of trajplot.
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
	"image/color"
	"strconv"
)

// Color is a named colour. Name is what text based renderers (HTML/CSS) get,
// RGBA what raster/vector ones get.
type Color struct {
	Name string
	RGBA color.RGBA
}

// Palette is a fixed, ordered set of colours. Trajectories take
// their colours from it in turn, starting again from the first one
// when the palette runs out.
type Palette []Color

var (
	Red    = Color{"red", color.RGBA{R: 255, A: 255}}
	Green  = Color{"green", color.RGBA{G: 128, A: 255}}
	Blue   = Color{"blue", color.RGBA{B: 255, A: 255}}
	Yellow = Color{"yellow", color.RGBA{R: 255, G: 255, A: 255}}
)

// DefaultPalette returns a new copy of the default palette: red, green, blue, yellow.
func DefaultPalette() Palette {
	return Palette{Red, Green, Blue, Yellow}
}

// At returns the colour for the trajectory in position n (0-based).
// It depends only on n and the length of the palette. P must not be empty.
func (P Palette) At(n int) Color {
	return P[n%len(P)]
}

// Label returns the legend label for the trajectory in position n (0-based).
func Label(n int) string {
	return "solution #" + strconv.Itoa(n)
}
