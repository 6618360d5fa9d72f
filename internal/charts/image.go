package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/comgen/marylandPlot/internal/plot"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyPlot is returned when a descriptor has no points to draw.
var ErrEmptyPlot = errors.New("nothing to plot")

// Format is an image encoding supported by WriteImage.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// pointStyle renders markers only. A zero stroke width would inherit the
// series default, so the line is drawn fully transparent instead.
func pointStyle(col drawing.Color, radius float64) chart.Style {
	return chart.Style{
		StrokeWidth: 1,
		StrokeColor: col.WithAlpha(0),
		DotWidth:    radius,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color, radius float64) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    radius,
		DotColor:    col,
	}
}

// WriteImage renders d as a PNG or SVG image of the given size.
func WriteImage(w io.Writer, d plot.Descriptor, format Format, width, height int) error {
	minX, maxX, minY, maxY, ok := d.Bounds()
	if !ok {
		return ErrEmptyPlot
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	var provider chart.RendererProvider
	switch format {
	case PNG:
		provider = chart.PNG
	case SVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}

	var series []chart.Series
	var labels []chart.Value2
	for _, b := range d.Bands {
		col := drawing.ParseColor(b.Color)
		series = append(series, chart.ContinuousSeries{
			Style: chart.Style{
				StrokeWidth: 1,
				StrokeColor: col,
				FillColor:   col,
			},
			XValues: []float64{b.XMin, b.XMax},
			YValues: []float64{maxY, maxY},
		})
		labels = append(labels, chart.Value2{
			Label:  b.Label,
			XValue: b.XMin,
			YValue: maxY,
		})
	}
	if len(labels) > 0 {
		series = append(series, chart.AnnotationSeries{Annotations: labels})
	}

	var legend []chart.Series
	for _, s := range d.Series {
		col := drawing.ParseColor(s.Color)
		if s.InLegend() {
			legend = append(legend, chart.ContinuousSeries{Name: s.Label, Style: lineStyle(col, 0)})
		}
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		style := pointStyle(col, s.PointRadius)
		if s.ShowLine {
			style = lineStyle(col, s.PointRadius)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			Style:   style,
			XValues: xs,
			YValues: ys,
		})
	}

	ch := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  d.XAxis.Title,
			Range: &chart.ContinuousRange{Min: minX, Max: maxX},
		},
		YAxis: chart.YAxis{
			Name:  d.YAxis.Title,
			Range: &chart.ContinuousRange{Min: minY, Max: maxY},
		},
		Series: series,
	}
	if len(legend) > 0 {
		entries := ch
		entries.Series = legend
		ch.Elements = []chart.Renderable{chart.Legend(&entries)}
	}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}
	return nil
}
