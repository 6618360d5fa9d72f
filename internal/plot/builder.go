package plot

import (
	"math"

	"github.com/comgen/marylandPlot/internal/dataset"
	"github.com/comgen/marylandPlot/internal/regression"
)

const (
	XAxisTitle = "Individual ID"
	YAxisTitle = "Expression Level"

	// PointRadius is the marker size of raw samples.
	PointRadius = 3
	// FitPointRadius is the marker size along a fitted curve.
	FitPointRadius = 1
)

// LifeStageBands shade the x axis into the two age ranges of the study.
var LifeStageBands = []Band{
	{Label: "Childhood", XMin: 0, XMax: 10, Color: "rgba(216, 221, 216, 0.1)"},
	{Label: "Adulthood", XMin: 10, XMax: 20, Color: "rgba(197, 247, 197, 0.1)"},
}

// ColorLookup returns the color assigned to a gene.
type ColorLookup interface {
	ColorFor(gene string) string
}

// Builder turns a selection into a Descriptor.
type Builder struct {
	Fitter regression.Fitter
	Bands  []Band
}

// NewBuilder returns a Builder with the life stage bands.
func NewBuilder(fitter regression.Fitter) *Builder {
	return &Builder{Fitter: fitter, Bands: LifeStageBands}
}

// Build describes the chart for the selected genes in selection order. Each
// gene gives a labelled points series followed by an unlabelled fit series.
// Genes missing from the dataset are skipped, as are samples whose
// identifier or value is not a finite number.
func (b *Builder) Build(selected []string, ds *dataset.Dataset, colors ColorLookup) Descriptor {
	d := Descriptor{
		XAxis: Axis{Title: XAxisTitle, Type: "linear"},
		YAxis: Axis{Title: YAxisTitle, Type: "linear", BeginAtZero: true},
		Bands: append([]Band(nil), b.Bands...),
	}
	if ds == nil {
		return d
	}

	xs := ds.Xs()
	for _, gene := range selected {
		ys, ok := ds.Series(gene)
		if !ok {
			continue
		}
		points := samples(xs, ys)
		color := colors.ColorFor(gene)

		fitted := points
		if b.Fitter != nil {
			fitted = b.Fitter.Fit(points)
		}

		d.Series = append(d.Series,
			Series{
				Gene:        gene,
				Label:       gene,
				Kind:        KindPoints,
				Color:       color,
				PointRadius: PointRadius,
				Points:      points,
			},
			Series{
				Gene:        gene,
				Kind:        KindFit,
				Color:       color,
				ShowLine:    true,
				PointRadius: FitPointRadius,
				Points:      fitted,
			},
		)
	}
	return d
}

func samples(xs, ys []float64) []regression.Point {
	points := make([]regression.Point, 0, len(ys))
	for i := range ys {
		if i >= len(xs) || !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		points = append(points, regression.Point{X: xs[i], Y: ys[i]})
	}
	return points
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
