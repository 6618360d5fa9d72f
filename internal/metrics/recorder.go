// Package metrics counts what the viewer does during a session.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "marylandplot"

// Recorder owns a private registry so several viewers (and tests) never
// share counters.
type Recorder struct {
	registry *prometheus.Registry

	loads        *prometheus.CounterVec
	selections   *prometheus.CounterVec
	deselections prometheus.Counter
	fits         *prometheus.CounterVec
	rebuilds     prometheus.Counter
	liveCharts   prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Dataset load attempts by result.",
		}, []string{"result"}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "Gene selection attempts by outcome.",
		}, []string{"outcome"}),
		deselections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deselections_total",
			Help:      "Genes removed from the selection.",
		}),
		fits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "curve_fits_total",
			Help:      "Curve fits by result.",
		}, []string{"result"}),
		rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_rebuilds_total",
			Help:      "Chart descriptors built and drawn.",
		}),
		liveCharts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_charts",
			Help:      "Rendered charts currently on screen.",
		}),
	}
	r.registry.MustRegister(r.loads, r.selections, r.deselections, r.fits, r.rebuilds, r.liveCharts)
	return r
}

// Load records the outcome of a dataset load.
func (r *Recorder) Load(err error) {
	if err != nil {
		r.loads.WithLabelValues("error").Inc()
		return
	}
	r.loads.WithLabelValues("ok").Inc()
}

// Selection records a selection attempt. outcome is one of added, duplicate,
// capacity or unknown.
func (r *Recorder) Selection(outcome string) {
	r.selections.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Deselection() {
	r.deselections.Inc()
}

// Fit records whether a curve was fitted or the raw points were used.
func (r *Recorder) Fit(fitted bool) {
	if fitted {
		r.fits.WithLabelValues("fitted").Inc()
		return
	}
	r.fits.WithLabelValues("fallback").Inc()
}

func (r *Recorder) Rebuild() {
	r.rebuilds.Inc()
}

// LiveCharts sets the live chart gauge.
func (r *Recorder) LiveCharts(live bool) {
	if live {
		r.liveCharts.Set(1)
		return
	}
	r.liveCharts.Set(0)
}

// Registry exposes the registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteFile writes every metric to path in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
