// Package app is the root controller of the viewer. It owns the dataset and
// every piece of session state, and exposes the operations the user
// interface drives.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comgen/marylandPlot/internal/charts"
	"github.com/comgen/marylandPlot/internal/dataset"
	"github.com/comgen/marylandPlot/internal/debug"
	"github.com/comgen/marylandPlot/internal/metrics"
	"github.com/comgen/marylandPlot/internal/plot"
	"github.com/comgen/marylandPlot/internal/regression"
	"github.com/comgen/marylandPlot/internal/search"
	"github.com/comgen/marylandPlot/internal/selection"
)

var (
	// ErrNotLoaded is returned by operations that need the dataset before it
	// has loaded.
	ErrNotLoaded = errors.New("dataset not loaded")

	// ErrUnknownGene is returned when selecting a name the dataset lacks.
	ErrUnknownGene = errors.New("unknown gene")
)

const (
	PlaceholderDefault = "Enter gene name"
	PlaceholderFull    = "Maximum reached"
)

// Config configures an App. Zero values select the defaults.
type Config struct {
	MaxSelected int
	Palette     []string
	Random      charts.RandomSource
	// Fitter overrides the instrumented quadratic fitter.
	Fitter regression.Fitter
	// Renderer draws each rebuilt descriptor. Without one, Rebuild only
	// builds descriptors.
	Renderer charts.Renderer
	Recorder *metrics.Recorder
}

// App holds the state of one viewing session.
type App struct {
	dataset    *dataset.Dataset
	index      *search.Index
	loadErr    error
	store      *selection.Store
	colors     *charts.Assigner
	polynomial regression.Polynomial
	builder    *plot.Builder
	canvas     *charts.Canvas
	recorder   *metrics.Recorder
	descriptor plot.Descriptor
}

func New(cfg Config) *App {
	if cfg.MaxSelected == 0 {
		cfg.MaxSelected = selection.DefaultMax
	}
	if cfg.Recorder == nil {
		cfg.Recorder = metrics.NewRecorder()
	}

	a := &App{
		store:      selection.New(cfg.MaxSelected),
		colors:     charts.NewAssigner(cfg.Palette, cfg.Random),
		polynomial: regression.NewPolynomial(),
		recorder:   cfg.Recorder,
	}
	fitter := cfg.Fitter
	if fitter == nil {
		fitter = observedFitter{a}
	}
	a.builder = plot.NewBuilder(fitter)
	if cfg.Renderer != nil {
		a.canvas = charts.NewCanvas(cfg.Renderer)
	}
	a.descriptor = a.builder.Build(nil, nil, a.colors)
	return a
}

// Load fetches the dataset once. On failure the app stays unloaded; there is
// no retry.
func (a *App) Load(ctx context.Context, source string) error {
	start := time.Now()
	ds, err := dataset.Load(ctx, source)
	debug.LogTiming("dataset load", time.Since(start))
	if err != nil {
		a.Fail(err)
		return err
	}
	a.SetDataset(ds)
	return nil
}

// SetDataset installs a loaded dataset and enables search.
func (a *App) SetDataset(ds *dataset.Dataset) {
	a.dataset = ds
	a.index = search.New(ds.Names())
	a.loadErr = nil
	a.recorder.Load(nil)
	debug.Log("dataset ready: %d genes, %d samples", ds.Len(), ds.Samples())
}

// Fail records a load failure. Search stays disabled.
func (a *App) Fail(err error) {
	a.loadErr = err
	a.recorder.Load(err)
	debug.Log("dataset load failed: %v", err)
}

func (a *App) Loaded() bool {
	return a.dataset != nil
}

// LoadError returns the load failure, if any.
func (a *App) LoadError() error {
	return a.loadErr
}

func (a *App) Dataset() *dataset.Dataset {
	return a.dataset
}

// Suggestions returns the genes matching query in dataset order, or nothing
// before the dataset has loaded.
func (a *App) Suggestions(query string) []string {
	return a.index.Query(query)
}

// FuzzySuggestions ranks genes by fuzzy similarity to query.
func (a *App) FuzzySuggestions(query string) []string {
	return a.index.Fuzzy(query)
}

// Select adds gene to the selection and gives it a color the first time it
// is added. Errors come with the Rejected outcome. Callers decide when to
// Rebuild.
func (a *App) Select(gene string) (selection.Outcome, error) {
	if !a.Loaded() {
		return selection.Rejected, ErrNotLoaded
	}
	if !a.dataset.Has(gene) {
		a.recorder.Selection("unknown")
		return selection.Rejected, fmt.Errorf("%q: %w", gene, ErrUnknownGene)
	}

	outcome := a.store.Add(gene)
	a.recorder.Selection(outcome.String())
	if outcome == selection.Added {
		color := a.colors.ColorFor(gene)
		debug.Log("selected %s (%s), %d/%d", gene, color, a.store.Len(), a.store.Max())
	}
	return outcome, nil
}

// Deselect removes gene and reports whether it was selected. Its color is
// kept for a later reselection.
func (a *App) Deselect(gene string) bool {
	if !a.store.Remove(gene) {
		return false
	}
	a.recorder.Deselection()
	debug.Log("deselected %s", gene)
	return true
}

// Selected returns the selected genes in selection order.
func (a *App) Selected() []string {
	return a.store.List()
}

// Full reports whether no more genes can be selected.
func (a *App) Full() bool {
	return a.store.Full()
}

func (a *App) MaxSelected() int {
	return a.store.Max()
}

// Placeholder is the search box hint for the current selection.
func (a *App) Placeholder() string {
	if a.store.Full() {
		return PlaceholderFull
	}
	return PlaceholderDefault
}

// Color returns the color assigned to gene, if it has been selected before.
func (a *App) Color(gene string) (string, bool) {
	return a.colors.Lookup(gene)
}

// Rebuild builds a fresh descriptor from the current selection and, when a
// renderer is configured, replaces the live chart with it.
func (a *App) Rebuild() (plot.Descriptor, error) {
	a.descriptor = a.builder.Build(a.store.List(), a.dataset, a.colors)
	a.recorder.Rebuild()
	if a.canvas == nil {
		return a.descriptor, nil
	}
	err := a.canvas.Draw(a.descriptor)
	a.recorder.LiveCharts(a.canvas.Live())
	if err != nil {
		return a.descriptor, fmt.Errorf("drawing chart: %w", err)
	}
	return a.descriptor, nil
}

// Descriptor returns the descriptor of the last Rebuild.
func (a *App) Descriptor() plot.Descriptor {
	return a.descriptor
}

// Canvas returns the chart canvas, or nil without a renderer.
func (a *App) Canvas() *charts.Canvas {
	return a.canvas
}

// Fit solves the quadratic fit of one gene.
func (a *App) Fit(gene string) (regression.Result, error) {
	if !a.Loaded() {
		return regression.Result{}, ErrNotLoaded
	}
	ys, ok := a.dataset.Series(gene)
	if !ok {
		return regression.Result{}, fmt.Errorf("%q: %w", gene, ErrUnknownGene)
	}
	xs := a.dataset.Xs()
	points := make([]regression.Point, len(ys))
	for i := range ys {
		points[i] = regression.Point{X: xs[i], Y: ys[i]}
	}
	res, err := a.polynomial.Solve(points)
	a.recorder.Fit(err == nil)
	return res, err
}

func (a *App) Recorder() *metrics.Recorder {
	return a.recorder
}

// observedFitter fits with the app's polynomial and counts the outcome.
type observedFitter struct {
	app *App
}

func (f observedFitter) Fit(points []regression.Point) []regression.Point {
	res, err := f.app.polynomial.Solve(points)
	f.app.recorder.Fit(err == nil)
	if err != nil {
		debug.Log("fit fell back to raw points: %v", err)
		return append([]regression.Point(nil), points...)
	}
	return res.Points
}
