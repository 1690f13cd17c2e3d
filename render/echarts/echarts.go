/*
 * echarts.go, part of trajplot.
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

// Package echarts draws scenes as an interactive 3D page (rotate, zoom,
// toggle trajectories from the legend) using go-echarts.
package echarts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rmera/trajplot/scene"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DefaultAddr  = "127.0.0.1:8765"
	DefaultTitle = "Trajectories"
	lineWidth    = 2
)

// Options configure a Surface.
type Options struct {
	Title  string
	Output string //if not empty, Show writes the page here and returns
	Addr   string //where Show serves the page when Output is empty
	Logger zerolog.Logger
}

// Surface is a scene.Surface building one 3D chart. Paths are line3D
// series, boundary markers scatter3D series left out of the legend.
type Surface struct {
	opts   Options
	id     string
	chart  *charts.Line3D
	labels []string
	nmarks int
	log    zerolog.Logger
}

// New returns an empty Surface.
func New(o Options) *Surface {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Addr == "" {
		o.Addr = DefaultAddr
	}
	S := &Surface{opts: o, id: chartID(), log: o.Logger}
	S.chart = charts.NewLine3D()
	S.chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: "100%", Height: "860px", ChartID: S.id}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z"}),
	)
	return S
}

// chartID returns a random id usable in the JavaScript identifiers of the page.
func chartID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ID returns the chart id, also used in the logs.
func (S *Surface) ID() string { return S.id }

// ErrNotFinite is returned for points with NaN or infinite coordinates, which
// can't be encoded in the page.
var ErrNotFinite = errors.New("echarts: point with a non-finite coordinate")

func chartData(points []r3.Vec) ([]opts.Chart3DData, error) {
	data := make([]opts.Chart3DData, 0, len(points))
	for i, p := range points {
		for _, v := range [3]float64{p.X, p.Y, p.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: point %d %v", ErrNotFinite, i, p)
			}
		}
		data = append(data, opts.Chart3DData{Value: []interface{}{p.X, p.Y, p.Z}})
	}
	return data, nil
}

// Markers adds a scatter3D series with points, in echarts' default symbol.
// The style's size is taken as a marker area, so the symbol gets its square root.
func (S *Surface) Markers(points []r3.Vec, style scene.MarkerStyle) error {
	data, err := chartData(points)
	if err != nil {
		return err
	}
	sc := charts.NewScatter3D()
	sc.AddSeries(fmt.Sprintf("markers %d", S.nmarks), data)
	for i := range sc.MultiSeries {
		if style.Size > 0 {
			sc.MultiSeries[i].SymbolSize = math.Sqrt(style.Size)
		}
	}
	S.chart.MultiSeries = append(S.chart.MultiSeries, sc.MultiSeries...)
	S.nmarks++
	return nil
}

// Polyline adds a line3D series named label, drawn with c.
func (S *Surface) Polyline(points []r3.Vec, c scene.Color, label string) error {
	data, err := chartData(points)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	S.chart.AddSeries(label, data,
		charts.WithLineStyleOpts(opts.LineStyle{Color: c.Name, Width: lineWidth}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: c.Name}),
	)
	S.labels = append(S.labels, label)
	return nil
}

// Legend shows every path label given so far, in order.
func (S *Surface) Legend() error {
	labels := make([]string, len(S.labels))
	copy(labels, S.labels)
	S.chart.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Data: labels}))
	return nil
}

// Labels returns the path labels drawn so far.
func (S *Surface) Labels() []string {
	ret := make([]string, len(S.labels))
	copy(ret, S.labels)
	return ret
}

// Render writes the HTML page to w.
func (S *Surface) Render(w io.Writer) error {
	if err := S.chart.Render(w); err != nil {
		return fmt.Errorf("render chart %s: %w", S.id, err)
	}
	return nil
}

// Show writes the page to the configured output file, or, if there is none,
// serves it on the configured address until ctx is done.
func (S *Surface) Show(ctx context.Context) error {
	if S.opts.Output != "" {
		return S.WriteFile(S.opts.Output)
	}
	ln, err := net.Listen("tcp", S.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", S.opts.Addr, err)
	}
	return S.Serve(ctx, ln)
}

// WriteFile writes the page to the file name.
func (S *Surface) WriteFile(name string) error {
	var buf bytes.Buffer
	if err := S.Render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	S.log.Info().Str("chart", S.id).Str("file", name).Msg("scene written")
	return nil
}

// Handler returns the router serving the page at "/" and a health check at "/healthz".
// The page is rendered once, when Handler is called.
func (S *Surface) Handler() (http.Handler, error) {
	var buf bytes.Buffer
	if err := S.Render(&buf); err != nil {
		return nil, err
	}
	page := buf.Bytes()
	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}).Methods(http.MethodGet)
	return r, nil
}

// Serve serves the page on ln until ctx is done, then shuts the server down.
// It returns nil after a clean shutdown.
func (S *Surface) Serve(ctx context.Context, ln net.Listener) error {
	h, err := S.Handler()
	if err != nil {
		if cerr := ln.Close(); cerr != nil {
			S.log.Warn().Err(cerr).Msg("closing listener")
		}
		return err
	}
	server := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(ln)
	}()
	S.log.Info().Str("chart", S.id).Str("url", "http://"+ln.Addr().String()+"/").Msg("viewer ready, interrupt to quit")
	select {
	case err := <-errc:
		return fmt.Errorf("viewer: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		S.log.Warn().Err(err).Msg("viewer shutdown")
		server.Close()
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("viewer: %w", err)
	}
	S.log.Debug().Str("chart", S.id).Msg("viewer stopped")
	return nil
}
