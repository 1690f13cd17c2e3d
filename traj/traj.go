/*
 * traj.go, part of trajplot.
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

// Package traj reads and writes trajectory files.
//
// A trajectory file is plain text. The first line holds the boundary of the
// trajectory, its start and end points: "x1 y1 z1 x2 y2 z2". Every following
// line holds one step of the path: "t x y z", where t is the time (or step
// index) of the point. Fields are separated by any amount of white space.
// Lines with no fields after the first one are ignored.
//
// Files whose names end in ".gz" or ".zst" are transparently (de)compressed.
package traj

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rmera/trajplot"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	boundaryFields = 6
	recordFields   = 4
)

// Trajectory is a path in 3D space together with its boundary, the
// start and end points given in the first line of the file.
// The time column of the file is checked, but not kept.
type Trajectory struct {
	Name     string //the source the trajectory was read from
	Boundary [2]r3.Vec
	Path     []r3.Vec //may be empty
}

// Start returns the first boundary point.
func (T *Trajectory) Start() r3.Vec { return T.Boundary[0] }

// End returns the second boundary point.
func (T *Trajectory) End() r3.Vec { return T.Boundary[1] }

// Len returns the number of points in the path.
func (T *Trajectory) Len() int {
	return len(T.Path)
}

// Length returns the length of the polyline formed by the path.
func (T *Trajectory) Length() float64 {
	var l float64
	for i := 1; i < len(T.Path); i++ {
		l += r3.Norm(r3.Sub(T.Path[i], T.Path[i-1]))
	}
	return l
}

// Miss returns the distance between the last point of the path and
// the end boundary point. It is 0 for an empty path.
func (T *Trajectory) Miss() float64 {
	if len(T.Path) == 0 {
		return 0
	}
	return r3.Norm(r3.Sub(T.Path[len(T.Path)-1], T.End()))
}

// Bounds returns the axis-aligned box containing the boundary and
// every point of the path.
func (T *Trajectory) Bounds() r3.Box {
	b := r3.Box{Min: T.Boundary[0], Max: T.Boundary[0]}
	grow := func(p r3.Vec) {
		b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	}
	grow(T.Boundary[1])
	for _, p := range T.Path {
		grow(p)
	}
	return b
}

// Parse reads a whole trajectory from r. name is only used to identify
// the source in errors. It returns a *FormatError if a line does not
// follow the format, and a *SourceError if r fails.
func Parse(r io.Reader, name string) (*Trajectory, error) {
	in := bufio.NewReader(r)
	T := &Trajectory{Name: name}
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, newSourceError(ReadError, name, err, "Parse")
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, newFormatError(MissingHeader, name, 1, "Parse")
	}
	if len(fields) != boundaryFields {
		return nil, newFormatError(fmt.Sprintf("%s, got %d", WrongBoundary, len(fields)), name, 1, "Parse")
	}
	var b [boundaryFields]float64
	if err := parseFields(fields, b[:]); err != nil {
		return nil, newFormatError(err.Error(), name, 1, "Parse")
	}
	T.Boundary[0] = r3.Vec{X: b[0], Y: b[1], Z: b[2]}
	T.Boundary[1] = r3.Vec{X: b[3], Y: b[4], Z: b[5]}
	var rec [recordFields]float64
	for lineno := 1; err != io.EOF; {
		line, err = in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, newSourceError(ReadError, name, err, "Parse")
		}
		lineno++
		fields = strings.Fields(line)
		if len(fields) == 0 {
			continue //blank lines, including the usual one at the end, are fine.
		}
		if len(fields) != recordFields {
			return nil, newFormatError(fmt.Sprintf("%s, got %d", WrongRecord, len(fields)), name, lineno, "Parse")
		}
		if err2 := parseFields(fields, rec[:]); err2 != nil {
			return nil, newFormatError(err2.Error(), name, lineno, "Parse")
		}
		//rec[0] is the time, we only needed to know it is a number.
		T.Path = append(T.Path, r3.Vec{X: rec[1], Y: rec[2], Z: rec[3]})
	}
	return T, nil
}

// ReadFile opens, reads and closes the trajectory file name.
// Compressed files are recognized by their extension.
func ReadFile(name string) (*Trajectory, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newSourceError(UnableToOpen, name, err, "ReadFile")
	}
	defer f.Close()
	r, err := decompressor(name, f)
	if err != nil {
		return nil, newSourceError(ReadError, name, err, "ReadFile")
	}
	defer r.Close()
	T, err := Parse(r, name)
	if err != nil {
		return nil, trajplot.Decorate(err, "ReadFile")
	}
	return T, nil
}

// parseFields puts in dst the values of fields, which must have the same length.
// NaN and infinities are rejected: no point of a trajectory can be drawn with them.
func parseFields(fields []string, dst []float64) error {
	for i, v := range fields {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: field %d (%q)", NotANumber, i+1, v)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s: field %d (%q)", NotFinite, i+1, v)
		}
		dst[i] = f
	}
	return nil
}
