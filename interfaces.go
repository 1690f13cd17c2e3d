/*
 * interfaces.go, part of trajplot.
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

package trajplot

//Errors

// Error is the interface for errors that the packages in this library implement. The Decorate method allows to add and retrieve
// the chain of callers the error went through, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the caller (and optionally extra info, as "FunctionName: Extra info") to the error and returns
	//the resulting slice. If given an empty string, it just returns the current value.
	Decorate(string) []string
}

// TrajError is the interface for errors related to a trajectory source.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// Decorate adds caller to the trace of err, if err implements Error, and returns err.
// Other errors are returned untouched.
func Decorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}
