/*
 * scene.go, part of trajplot.
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

// Package scene puts several trajectories together in one picture.
//
// Each trajectory gets a colour from a Palette, chosen only by its position
// (n mod the palette length) and the label "solution #n". Its start and
// end points are drawn as markers and its path as a line. Nothing is drawn
// until every trajectory has been read: if one source fails, the whole
// scene is dropped and the error is returned as it came from the reader.
package scene

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rmera/trajplot"
	"github.com/rmera/trajplot/traj"
	"github.com/rs/zerolog"
)

var (
	ErrFinalized    = errors.New("scene: already finalized")
	ErrEmptyPalette = errors.New("scene: empty palette")
	ErrNilSurface   = errors.New("scene: nil surface")
)

// State is the stage a Scene is in. It only moves forward.
type State int

const (
	Accumulating State = iota
	Finalized
)

func (s State) String() string {
	switch s {
	case Accumulating:
		return "accumulating"
	case Finalized:
		return "finalized"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Entry is a trajectory with the colour and label it is drawn with.
type Entry struct {
	Trajectory *traj.Trajectory
	Color      Color
	Label      string
}

// Scene is an ordered set of entries. Trajectories are added while the scene
// is Accumulating; Finalize draws them and moves the scene to Finalized.
type Scene struct {
	ID      string
	palette Palette
	entries []Entry
	state   State
}

// New returns an empty scene that takes its colours from p.
func New(p Palette) (*Scene, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	return &Scene{ID: uuid.NewString(), palette: p}, nil
}

// Add appends T to the scene and returns the resulting entry.
func (S *Scene) Add(T *traj.Trajectory) (Entry, error) {
	if S.state != Accumulating {
		return Entry{}, ErrFinalized
	}
	n := len(S.entries)
	e := Entry{Trajectory: T, Color: S.palette.At(n), Label: Label(n)}
	S.entries = append(S.entries, e)
	return e, nil
}

// Len returns the number of trajectories in the scene.
func (S *Scene) Len() int { return len(S.entries) }

// State returns the current state of the scene.
func (S *Scene) State() State { return S.state }

// Entries returns a copy of the entries, in the order they were added.
func (S *Scene) Entries() []Entry {
	ret := make([]Entry, len(S.entries))
	copy(ret, S.entries)
	return ret
}

// Finalize draws every entry on surface (markers for the boundary, then
// the path), adds the legend and shows the result. It can be called only
// once; the scene is Finalized even if drawing fails.
func (S *Scene) Finalize(ctx context.Context, surface Surface) error {
	if S.state != Accumulating {
		return ErrFinalized
	}
	S.state = Finalized
	for _, e := range S.entries {
		T := e.Trajectory
		if err := surface.Markers(T.Boundary[:], BoundaryMarkers); err != nil {
			return fmt.Errorf("drawing boundary of %s: %w", T.Name, err)
		}
		if err := surface.Polyline(T.Path, e.Color, e.Label); err != nil {
			return fmt.Errorf("drawing path of %s: %w", T.Name, err)
		}
	}
	if err := surface.Legend(); err != nil {
		return fmt.Errorf("drawing legend: %w", err)
	}
	return surface.Show(ctx)
}

// Loader obtains the trajectory for a source name.
type Loader func(name string) (*traj.Trajectory, error)

// Composer reads trajectories and composes them on a Surface.
type Composer struct {
	surface Surface
	palette Palette
	load    Loader
	log     zerolog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithPalette sets the palette. The default is DefaultPalette().
func WithPalette(p Palette) Option {
	return func(C *Composer) { C.palette = p }
}

// WithLoader sets how sources are read. The default is traj.ReadFile.
func WithLoader(l Loader) Option {
	return func(C *Composer) { C.load = l }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(C *Composer) { C.log = l }
}

// NewComposer returns a Composer that draws on surface.
func NewComposer(surface Surface, opts ...Option) (*Composer, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	C := &Composer{surface: surface, palette: DefaultPalette(), load: traj.ReadFile, log: zerolog.Nop()}
	for _, o := range opts {
		o(C)
	}
	if len(C.palette) == 0 {
		return nil, ErrEmptyPalette
	}
	return C, nil
}

// Compose reads sources, in order, and draws them all on the Composer's surface,
// then shows it. The first source that can't be read aborts the whole operation,
// before anything is drawn, and its error is returned (a *traj.SourceError or
// *traj.FormatError with the default loader). With no sources an empty scene,
// with an empty legend, is shown.
func (C *Composer) Compose(ctx context.Context, sources []string) (*Scene, error) {
	S, err := New(C.palette)
	if err != nil {
		return nil, err
	}
	log := C.log.With().Str("scene", S.ID).Logger()
	for n, name := range sources {
		T, err := C.load(name)
		if err != nil {
			log.Debug().Err(err).Str("source", name).Int("index", n).Msg("aborting scene")
			return nil, trajplot.Decorate(err, "Compose")
		}
		e, err := S.Add(T)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("source", name).Str("label", e.Label).Str("color", e.Color.Name).
			Int("points", T.Len()).Float64("length", T.Length()).Float64("miss", T.Miss()).Msg("trajectory read")
	}
	log.Info().Int("trajectories", S.Len()).Msg("showing scene")
	if err := S.Finalize(ctx, C.surface); err != nil {
		return S, err
	}
	return S, nil
}
