// Package plot builds renderer independent descriptions of the expression chart.
package plot

import (
	"math"

	"github.com/comgen/marylandPlot/internal/regression"
)

// Kind tells a renderer how to draw a series.
type Kind string

const (
	KindPoints Kind = "points"
	KindFit    Kind = "fit"
)

// Series is one drawable data set. Series with an empty Label are kept out
// of the legend.
type Series struct {
	Gene        string             `json:"gene" yaml:"gene"`
	Label       string             `json:"label" yaml:"label"`
	Kind        Kind               `json:"kind" yaml:"kind"`
	Color       string             `json:"color" yaml:"color"`
	ShowLine    bool               `json:"showLine" yaml:"showLine"`
	PointRadius float64            `json:"pointRadius" yaml:"pointRadius"`
	Points      []regression.Point `json:"points" yaml:"points"`
}

// InLegend reports whether the series gets a legend entry.
func (s Series) InLegend() bool {
	return s.Label != ""
}

// Axis configures one chart axis.
type Axis struct {
	Title       string `json:"title" yaml:"title"`
	Type        string `json:"type" yaml:"type"`
	BeginAtZero bool   `json:"beginAtZero" yaml:"beginAtZero"`
}

// Band is a shaded background range on the x axis, [XMin, XMax).
type Band struct {
	Label string  `json:"label" yaml:"label"`
	XMin  float64 `json:"xMin" yaml:"xMin"`
	XMax  float64 `json:"xMax" yaml:"xMax"`
	Color string  `json:"color" yaml:"color"`
}

// Descriptor is everything a renderer needs to draw the chart.
type Descriptor struct {
	Series []Series `json:"series" yaml:"series"`
	XAxis  Axis     `json:"xAxis" yaml:"xAxis"`
	YAxis  Axis     `json:"yAxis" yaml:"yAxis"`
	Bands  []Band   `json:"bands" yaml:"bands"`
}

// Empty reports whether there is nothing to plot.
func (d Descriptor) Empty() bool {
	return len(d.Series) == 0
}

// Legend returns the series that carry a label, in draw order.
func (d Descriptor) Legend() []Series {
	var out []Series
	for _, s := range d.Series {
		if s.InLegend() {
			out = append(out, s)
		}
	}
	return out
}

// Bounds returns the data extent over every series and band. The y range
// starts at zero when the axis asks for it. ok is false when no series has
// a point.
func (d Descriptor) Bounds() (minX, maxX, minY, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, s := range d.Series {
		for _, p := range s.Points {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
			ok = true
		}
	}
	if !ok {
		return 0, 0, 0, 0, false
	}
	for _, b := range d.Bands {
		minX, maxX = math.Min(minX, b.XMin), math.Max(maxX, b.XMax)
	}
	if d.YAxis.BeginAtZero && minY > 0 {
		minY = 0
	}
	return minX, maxX, minY, maxY, true
}
