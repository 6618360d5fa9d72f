package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()

	r.Load(nil)
	r.Load(errors.New("boom"))
	r.Selection("added")
	r.Selection("added")
	r.Selection("capacity")
	r.Deselection()
	r.Fit(true)
	r.Fit(false)
	r.Fit(false)
	r.Rebuild()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"loads ok", testutil.ToFloat64(r.loads.WithLabelValues("ok")), 1},
		{"loads error", testutil.ToFloat64(r.loads.WithLabelValues("error")), 1},
		{"selections added", testutil.ToFloat64(r.selections.WithLabelValues("added")), 2},
		{"selections capacity", testutil.ToFloat64(r.selections.WithLabelValues("capacity")), 1},
		{"deselections", testutil.ToFloat64(r.deselections), 1},
		{"fits fitted", testutil.ToFloat64(r.fits.WithLabelValues("fitted")), 1},
		{"fits fallback", testutil.ToFloat64(r.fits.WithLabelValues("fallback")), 2},
		{"rebuilds", testutil.ToFloat64(r.rebuilds), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLiveChartsGauge(t *testing.T) {
	r := NewRecorder()
	r.LiveCharts(true)
	if got := testutil.ToFloat64(r.liveCharts); got != 1 {
		t.Errorf("live_charts = %v, want 1", got)
	}
	r.LiveCharts(false)
	if got := testutil.ToFloat64(r.liveCharts); got != 0 {
		t.Errorf("live_charts = %v, want 0", got)
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.Rebuild()
	if got := testutil.ToFloat64(b.rebuilds); got != 0 {
		t.Errorf("second recorder rebuilds = %v, want 0", got)
	}
}

func TestWriteFile(t *testing.T) {
	r := NewRecorder()
	r.Selection("duplicate")

	path := filepath.Join(t.TempDir(), "marylandplot.prom")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `marylandplot_selections_total{outcome="duplicate"} 1`) {
		t.Errorf("metrics file missing selection counter:\n%s", data)
	}
}
