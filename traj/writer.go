/*
 * writer.go, part of trajplot.
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
	"bufio"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// Writer writes a trajectory file. The boundary has to be written
// (once) before any record.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	buf       *bufio.Writer
	filename  string
	writeable bool
	boundary  bool
	records   int
	line      []byte
}

// NewWriter creates the file name (truncating it if it exists) and
// returns a Writer for it. Names ending in ".gz" or ".zst" produce
// compressed files.
func NewWriter(name string) (*Writer, error) {
	var err error
	W := new(Writer)
	W.filename = name
	W.f, err = os.Create(name)
	if err != nil {
		return nil, newSourceError(UnableToOpen, name, err, "NewWriter")
	}
	W.h, err = compressor(name, W.f)
	if err != nil {
		W.f.Close()
		return nil, newSourceError(WriteError, name, err, "NewWriter")
	}
	W.buf = bufio.NewWriter(W.h)
	W.writeable = true
	return W, nil
}

// Len returns the number of records written so far.
func (W *Writer) Len() int {
	return W.records
}

// WBoundary writes the boundary line with the start and end points.
func (W *Writer) WBoundary(start, end r3.Vec) error {
	if !W.writeable {
		return newSourceError(TrajUnIniWrite, W.filename, nil, "WBoundary")
	}
	if W.boundary {
		return newSourceError(BoundaryTwice, W.filename, nil, "WBoundary")
	}
	W.line = W.line[:0]
	W.line = appendVec(W.line, start)
	W.line = append(W.line, ' ')
	W.line = appendVec(W.line, end)
	W.line = append(W.line, '\n')
	if _, err := W.buf.Write(W.line); err != nil {
		return newSourceError(WriteError, W.filename, err, "WBoundary")
	}
	W.boundary = true
	return nil
}

// WNext writes one record, the point p at time t.
func (W *Writer) WNext(t float64, p r3.Vec) error {
	if !W.writeable {
		return newSourceError(TrajUnIniWrite, W.filename, nil, "WNext")
	}
	if !W.boundary {
		return newSourceError(NoBoundary, W.filename, nil, "WNext")
	}
	W.line = W.line[:0]
	W.line = strconv.AppendFloat(W.line, t, 'g', -1, 64)
	W.line = append(W.line, ' ')
	W.line = appendVec(W.line, p)
	W.line = append(W.line, '\n')
	if _, err := W.buf.Write(W.line); err != nil {
		return newSourceError(WriteError, W.filename, err, "WNext")
	}
	W.records++
	return nil
}

// Close flushes everything to disk and closes the file. The Writer
// can't be used after this call. Closing twice is a no-op.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	err := W.buf.Flush()
	if err2 := W.h.Close(); err == nil {
		err = err2
	}
	if err2 := W.f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return newSourceError(WriteError, W.filename, err, "Close")
	}
	return nil
}

func appendVec(b []byte, v r3.Vec) []byte {
	b = strconv.AppendFloat(b, v.X, 'g', -1, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, v.Y, 'g', -1, 64)
	b = append(b, ' ')
	return strconv.AppendFloat(b, v.Z, 'g', -1, 64)
}
