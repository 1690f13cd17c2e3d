/*
 * traj_test.go, part of trajplot.
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

package traj

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestParse(Te *testing.T) {
	cases := []struct {
		name string
		in   string
		want *Trajectory
	}{
		{"simple", "0 0 0 1 1 1\n0 0 0 0\n1 1 1 1\n", &Trajectory{
			Boundary: [2]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}},
			Path:     []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}},
		}},
		{"time column dropped", "1 2 3 4 5 6\n0.5 -1 2.5 3e2\n", &Trajectory{
			Boundary: [2]r3.Vec{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}},
			Path:     []r3.Vec{{X: -1, Y: 2.5, Z: 300}},
		}},
		{"boundary only", "1 2 3 4 5 6\n", &Trajectory{
			Boundary: [2]r3.Vec{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}},
		}},
		{"boundary only, no newline", "1 2 3 4 5 6", &Trajectory{
			Boundary: [2]r3.Vec{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}},
		}},
		{"blank lines", "0 0 0 1 1 1\n\n0 1 2 3\n   \n\t\n1 4 5 6\n\n\n", &Trajectory{
			Boundary: [2]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}},
			Path:     []r3.Vec{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}},
		}},
		{"crlf and extra spaces", "  0\t0 0   1 1 1 \r\n0 7 8 9\r\n", &Trajectory{
			Boundary: [2]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}},
			Path:     []r3.Vec{{X: 7, Y: 8, Z: 9}},
		}},
		{"last record without newline", "0 0 0 1 1 1\n0 1 1 1\n1 2 2 2", &Trajectory{
			Boundary: [2]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}},
			Path:     []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2}},
		}},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			got, err := Parse(strings.NewReader(c.in), c.name)
			if err != nil {
				Te.Fatal(err)
			}
			c.want.Name = c.name
			if diff := cmp.Diff(c.want, got, cmpopts.EquateEmpty()); diff != "" {
				Te.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFormatErrors(Te *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
		msg  string
	}{
		{"empty", "", 1, MissingHeader},
		{"blank first line", "\n0 0 0 1 1 1\n", 1, MissingHeader},
		{"five boundary fields", "0 0 0 1 1\n0 0 0 0\n", 1, WrongBoundary},
		{"seven boundary fields", "0 0 0 1 1 1 1\n", 1, WrongBoundary},
		{"bad boundary number", "0 0 zero 1 1 1\n", 1, NotANumber},
		{"three record fields", "0 0 0 1 1 1\n0 0 0 0\n1 1 1\n", 3, WrongRecord},
		{"five record fields", "0 0 0 1 1 1\n0 0 0 0 0\n", 2, WrongRecord},
		{"bad time", "0 0 0 1 1 1\nt 0 0 0\n", 2, NotANumber},
		{"bad record after blanks", "0 0 0 1 1 1\n\n\n0 1 1 x\n", 4, NotANumber},
		{"nan coordinate", "0 0 0 1 1 1\n0 0 0 0\n1 nan 1 1\n2 2 inf 2\n", 3, NotFinite},
		{"infinite coordinate", "0 0 0 1 1 1\n0 0 0 0\n2 2 -Inf 2\n", 3, NotFinite},
		{"infinite boundary", "0 0 0 1 +Inf 1\n", 1, NotFinite},
		{"nan time", "0 0 0 1 1 1\nNaN 0 0 0\n", 2, NotFinite},
		{"overflowing number", "0 0 0 1 1 1\n0 1e999 0 0\n", 2, NotANumber},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			T, err := Parse(strings.NewReader(c.in), "bad.dat")
			if err == nil {
				Te.Fatalf("expected an error, got %v", T)
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				Te.Fatalf("expected a *FormatError, got %T: %v", err, err)
			}
			if ferr.Line() != c.line {
				Te.Errorf("error on line %d, expected %d", ferr.Line(), c.line)
			}
			if ferr.FileName() != "bad.dat" {
				Te.Errorf("wrong file name in error: %s", ferr.FileName())
			}
			if !strings.Contains(err.Error(), c.msg) {
				Te.Errorf("error %q does not mention %q", err.Error(), c.msg)
			}
			if !ferr.Critical() {
				Te.Errorf("format errors should be critical")
			}
		})
	}
}

// Parsing the same content twice must give the same result.
func TestParseIdempotent(Te *testing.T) {
	in := "0 0 0 10 0 2\n0 0 0 0\n0.1 1 0 0.5\n0.2 2 0 0.8\n0.3 3 0 0.9\n"
	a, err := Parse(strings.NewReader(in), "a")
	if err != nil {
		Te.Fatal(err)
	}
	b, err := Parse(strings.NewReader(in), "a")
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		Te.Errorf("re-parsing changed the trajectory:\n%s", diff)
	}
}

func TestReadFileMissing(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "nothere.dat")
	_, err := ReadFile(name)
	var serr *SourceError
	if !errors.As(err, &serr) {
		Te.Fatalf("expected a *SourceError, got %T: %v", err, err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("the underlying error should be fs.ErrNotExist: %v", err)
	}
	if serr.FileName() != name {
		Te.Errorf("wrong file name %s", serr.FileName())
	}
}

func TestReadFileFormatError(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "five.dat")
	if err := os.WriteFile(name, []byte("0 0 0 1 1\n0 0 0 0\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	_, err := ReadFile(name)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		Te.Fatalf("expected a *FormatError, got %T: %v", err, err)
	}
	if got := Trace(err); got != "Parse <- ReadFile" {
		Te.Errorf("unexpected trace %q", got)
	}
}

func TestWriteRead(Te *testing.T) {
	dir := Te.TempDir()
	start := r3.Vec{X: 0, Y: 0, Z: 1.5}
	end := r3.Vec{X: 20, Y: -3.25, Z: 2.46}
	path := []r3.Vec{{X: 0, Y: 0, Z: 1.5}, {X: 1.0 / 3, Y: 0.1, Z: 2}, {X: 2, Y: -0.2, Z: 2.4}, {X: 3e-9, Y: 1e10, Z: -7}}
	for _, name := range []string{"plain.dat", "packed.dat.gz", "packed.dat.zst"} {
		Te.Run(name, func(Te *testing.T) {
			fname := filepath.Join(dir, name)
			W, err := NewWriter(fname)
			if err != nil {
				Te.Fatal(err)
			}
			if err := W.WBoundary(start, end); err != nil {
				Te.Fatal(err)
			}
			for i, p := range path {
				if err := W.WNext(float64(i)*0.01, p); err != nil {
					Te.Fatal(err)
				}
			}
			if W.Len() != len(path) {
				Te.Errorf("writer reports %d records, wrote %d", W.Len(), len(path))
			}
			if err := W.Close(); err != nil {
				Te.Fatal(err)
			}
			T, err := ReadFile(fname)
			if err != nil {
				Te.Fatal(err)
			}
			want := &Trajectory{Name: fname, Boundary: [2]r3.Vec{start, end}, Path: path}
			if diff := cmp.Diff(want, T); diff != "" {
				Te.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriterOrder(Te *testing.T) {
	W, err := NewWriter(filepath.Join(Te.TempDir(), "order.dat"))
	if err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(0, r3.Vec{}); err == nil {
		Te.Errorf("a record before the boundary should fail")
	}
	if err := W.WBoundary(r3.Vec{}, r3.Vec{X: 1}); err != nil {
		Te.Fatal(err)
	}
	if err := W.WBoundary(r3.Vec{}, r3.Vec{X: 1}); err == nil {
		Te.Errorf("writing the boundary twice should fail")
	}
	if err := W.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := W.Close(); err != nil {
		Te.Errorf("second Close should be a no-op, got %v", err)
	}
	if err := W.WNext(1, r3.Vec{}); err == nil {
		Te.Errorf("writing after Close should fail")
	}
}

func TestGeometry(Te *testing.T) {
	T := &Trajectory{
		Boundary: [2]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 4, Z: 0}},
		Path:     []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 2}, {X: 3, Y: 4, Z: 2}},
	}
	if T.Len() != 3 {
		Te.Errorf("Len %d, expected 3", T.Len())
	}
	if l := T.Length(); l != 7 {
		Te.Errorf("Length %v, expected 7", l)
	}
	if m := T.Miss(); m != 2 {
		Te.Errorf("Miss %v, expected 2", m)
	}
	want := r3.Box{Min: r3.Vec{X: 0, Y: 0, Z: 0}, Max: r3.Vec{X: 3, Y: 4, Z: 2}}
	if diff := cmp.Diff(want, T.Bounds()); diff != "" {
		Te.Errorf("Bounds mismatch (-want +got):\n%s", diff)
	}
	empty := &Trajectory{Boundary: [2]r3.Vec{{X: 1, Y: 1, Z: 1}, {X: -1, Y: 2, Z: 0}}}
	if empty.Length() != 0 || empty.Miss() != 0 {
		Te.Errorf("an empty path has no length and no miss")
	}
	wantEmpty := r3.Box{Min: r3.Vec{X: -1, Y: 1, Z: 0}, Max: r3.Vec{X: 1, Y: 2, Z: 1}}
	if diff := cmp.Diff(wantEmpty, empty.Bounds()); diff != "" {
		Te.Errorf("Bounds mismatch (-want +got):\n%s", diff)
	}
}
