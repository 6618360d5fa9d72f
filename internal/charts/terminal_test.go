package charts

import (
	"errors"
	"strings"
	"testing"

	"github.com/comgen/marylandPlot/internal/plot"
	"github.com/comgen/marylandPlot/internal/regression"
)

func TestTerminalResize(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		wantWidth  int
		wantHeight int
	}{
		{"wide terminal", 120, 120, 30},
		{"narrow terminal keeps minimum height", 24, 24, MinChartHeight},
		{"tiny terminal keeps minimum width", 5, MinChartWidth, MinChartHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := NewTerminal(tt.width)
			if term.Width != tt.wantWidth || term.Height != tt.wantHeight {
				t.Errorf("size = %dx%d, want %dx%d", term.Width, term.Height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestTerminalRender(t *testing.T) {
	d := plot.Descriptor{
		XAxis: plot.Axis{Title: plot.XAxisTitle},
		YAxis: plot.Axis{Title: plot.YAxisTitle, BeginAtZero: true},
		Bands: plot.LifeStageBands,
		Series: []plot.Series{
			{Label: "A", Kind: plot.KindPoints, Color: Palette[0], Points: []regression.Point{{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 15}}},
			{Kind: plot.KindFit, Color: Palette[0], ShowLine: true, Points: []regression.Point{{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 15}}},
		},
	}

	chart, err := NewTerminal(80).Render(d)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	view := chart.View()
	for _, want := range []string{plot.XAxisTitle, plot.YAxisTitle, "Childhood", "Adulthood"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	chart.Destroy()
	if chart.View() != "" {
		t.Errorf("View() after Destroy = %q, want empty", chart.View())
	}
}

func TestTerminalRenderEmpty(t *testing.T) {
	_, err := NewTerminal(80).Render(plot.Descriptor{Bands: plot.LifeStageBands})
	if !errors.Is(err, ErrEmptyPlot) {
		t.Errorf("Render() error = %v, want ErrEmptyPlot", err)
	}
}
