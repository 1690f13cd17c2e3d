/*
 * projection.go, part of trajplot.
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

// Package projection draws scenes as three static plots, the orthogonal
// projections of the trajectories on the XY, XZ and YZ planes.
package projection

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/rmera/trajplot/scene"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plane is a 2D view of 3D points.
type Plane struct {
	Name         string //used as the file name suffix
	XName, YName string
	Project      func(r3.Vec) (float64, float64)
}

// Planes are the three projections produced, in order.
var Planes = []Plane{
	{"xy", "X", "Y", func(v r3.Vec) (float64, float64) { return v.X, v.Y }},
	{"xz", "X", "Z", func(v r3.Vec) (float64, float64) { return v.X, v.Z }},
	{"yz", "Y", "Z", func(v r3.Vec) (float64, float64) { return v.Y, v.Z }},
}

var markerColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Options configure a Surface.
type Options struct {
	Base   string //files are Base_xy.ext, Base_xz.ext and Base_yz.ext; ext defaults to .png
	Title  string
	Width  vg.Length //of each plot; default 5 inches
	Height vg.Length //default 5 inches
	Logger zerolog.Logger
}

// Surface is a scene.Surface that keeps one gonum plot per plane.
type Surface struct {
	opts  Options
	plots []*plot.Plot
	items []legendItem
	log   zerolog.Logger
}

type legendItem struct {
	label string
	lines []plot.Thumbnailer //one per plane
}

// New returns an empty Surface.
func New(o Options) *Surface {
	if o.Width == 0 {
		o.Width = 5 * vg.Inch
	}
	if o.Height == 0 {
		o.Height = 5 * vg.Inch
	}
	S := &Surface{opts: o, log: o.Logger}
	for _, pl := range Planes {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s (%s)", o.Title, strings.ToUpper(pl.Name))
		if o.Title == "" {
			p.Title.Text = strings.ToUpper(pl.Name)
		}
		p.Title.Padding = 3 * vg.Millimeter
		p.X.Label.Text = pl.XName
		p.Y.Label.Text = pl.YName
		p.Add(plotter.NewGrid())
		S.plots = append(S.plots, p)
	}
	return S
}

func project(points []r3.Vec, pl Plane) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, v := range points {
		xys[i].X, xys[i].Y = pl.Project(v)
	}
	return xys
}

func glyph(name string) draw.GlyphDrawer {
	switch name {
	case "ring":
		return draw.RingGlyph{}
	case "square":
		return draw.SquareGlyph{}
	case "cross":
		return draw.CrossGlyph{}
	case "triangle":
		return draw.TriangleGlyph{}
	}
	return draw.CircleGlyph{}
}

// Markers adds a scatter of points to every plane. The style's size is
// taken as an area in points², the marker radius is derived from it.
func (S *Surface) Markers(points []r3.Vec, style scene.MarkerStyle) error {
	if len(points) == 0 {
		return nil
	}
	radius := vg.Points(3)
	if style.Size > 0 {
		radius = vg.Points(math.Sqrt(style.Size) / 2)
	}
	for i, pl := range Planes {
		s, err := plotter.NewScatter(project(points, pl))
		if err != nil {
			return fmt.Errorf("%s markers: %w", pl.Name, err)
		}
		s.GlyphStyle.Shape = glyph(style.Glyph)
		s.GlyphStyle.Radius = radius
		s.GlyphStyle.Color = markerColor
		S.plots[i].Add(s)
	}
	return nil
}

// Polyline adds a line with colour c to every plane. Paths with no
// points still get their legend entry.
func (S *Surface) Polyline(points []r3.Vec, c scene.Color, label string) error {
	item := legendItem{label: label}
	for i, pl := range Planes {
		l, err := plotter.NewLine(project(points, pl))
		if err != nil {
			return fmt.Errorf("%s line %s: %w", pl.Name, label, err)
		}
		l.Color = c.RGBA
		l.Width = vg.Points(1.5)
		if len(points) > 0 {
			S.plots[i].Add(l)
		}
		item.lines = append(item.lines, l)
	}
	S.items = append(S.items, item)
	return nil
}

// Legend adds the labels of every line drawn so far to each plane.
func (S *Surface) Legend() error {
	for i, p := range S.plots {
		for _, it := range S.items {
			p.Legend.Add(it.label, it.lines[i])
		}
		p.Legend.Top = true
		p.Legend.Left = false
		p.Legend.XOffs = -10
		p.Legend.YOffs = -10
	}
	return nil
}

// Files returns the names of the files Show writes.
func (S *Surface) Files() []string {
	base, ext := S.opts.Base, filepath.Ext(S.opts.Base)
	if ext == "" {
		ext = ".png"
	} else {
		base = strings.TrimSuffix(base, ext)
	}
	ret := make([]string, 0, len(Planes))
	for _, pl := range Planes {
		ret = append(ret, base+"_"+pl.Name+ext)
	}
	return ret
}

// Show saves one file per plane. It does not block.
func (S *Surface) Show(ctx context.Context) error {
	for i, name := range S.Files() {
		if err := S.plots[i].Save(S.opts.Width, S.opts.Height, name); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
		S.log.Info().Str("file", name).Msg("projection written")
	}
	return nil
}
