/*
 * errors.go, part of trajplot.
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
	"fmt"
	"strings"
)

//Errors

const format = "trajectory"

const (
	UnableToOpen   = "Unable to open file"
	ReadError      = "Error reading file"
	WriteError     = "Error writing file"
	WrongBoundary  = "Boundary line must contain exactly 6 numbers"
	WrongRecord    = "Record line must contain exactly 4 numbers"
	NotANumber     = "Field is not a number"
	NotFinite      = "Field is not a finite number"
	MissingHeader  = "Missing boundary line"
	TrajUnIniWrite = "Trajectory writer is closed"
	BoundaryTwice  = "Boundary line already written"
	NoBoundary     = "Boundary line must be written before any record"
)

// FormatError is returned when a line of a trajectory does not follow the format,
// either because of its number of fields or because a field is not a number.
// It fulfills trajplot.TrajError.
type FormatError struct {
	message  string
	filename string //the input that has problems, or empty string if none.
	line     int    //1-based, 0 if unknown
	deco     []string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("trajectory %s line %d: %s", err.filename, err.line, err.message)
}

// Decorate adds new information to the error.
func (err *FormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the source the error is associated to.
func (err *FormatError) FileName() string { return err.filename }

// Line returns the 1-based line where the problem was found.
func (err *FormatError) Line() int { return err.line }

func (err *FormatError) Format() string { return format }

// Critical is always true: a malformed file can't be read any further.
func (err *FormatError) Critical() bool { return true }

// SourceError is returned when a trajectory source can't be opened, read or written.
// The underlying error is available through Unwrap.
type SourceError struct {
	message  string
	filename string
	deco     []string
	err      error
}

func (err *SourceError) Error() string {
	if err.err == nil {
		return fmt.Sprintf("trajectory %s: %s", err.filename, err.message)
	}
	return fmt.Sprintf("trajectory %s: %s: %s", err.filename, err.message, err.err.Error())
}

func (err *SourceError) Unwrap() error { return err.err }

// Decorate adds new information to the error.
func (err *SourceError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *SourceError) FileName() string { return err.filename }

func (err *SourceError) Format() string { return format }

func (err *SourceError) Critical() bool { return true }

// Trace returns the chain of callers the error was decorated with, innermost first.
func Trace(err error) string {
	switch e := err.(type) {
	case *FormatError:
		return strings.Join(e.deco, " <- ")
	case *SourceError:
		return strings.Join(e.deco, " <- ")
	}
	return ""
}

func newFormatError(message, filename string, line int, caller string) *FormatError {
	return &FormatError{message: message, filename: filename, line: line, deco: []string{caller}}
}

func newSourceError(message, filename string, err error, caller string) *SourceError {
	return &SourceError{message: message, filename: filename, err: err, deco: []string{caller}}
}
