package charts

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/comgen/marylandPlot/internal/plot"
)

// MarkerRune marks a raw sample.
const MarkerRune = '●'

var axisStyle = lipgloss.NewStyle().
	Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().
	Foreground(LabelColor)

// Terminal draws descriptors as braille line charts.
type Terminal struct {
	Width  int
	Height int
}

// NewTerminal returns a renderer sized for the given terminal width.
func NewTerminal(width int) *Terminal {
	t := &Terminal{}
	t.Resize(width)
	return t
}

// Resize sizes the chart for a terminal width, keeping the height ratio.
func (t *Terminal) Resize(width int) {
	t.Width = max(width, MinChartWidth)
	t.Height = max(t.Width/ChartHeightRatio, MinChartHeight)
}

// Render draws d. The returned chart holds the finished frame.
func (t *Terminal) Render(d plot.Descriptor) (Chart, error) {
	minX, maxX, minY, maxY, ok := d.Bounds()
	if !ok {
		return nil, ErrEmptyPlot
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	lc := linechart.New(t.Width, t.Height, minX, maxX, minY, maxY)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.DrawXYAxisAndLabel()

	for i, b := range d.Bands {
		style := BandStyle(i)
		for _, x := range []float64{b.XMin, b.XMax} {
			if x <= minX || x >= maxX {
				continue
			}
			lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: x, Y: minY},
				canvas.Float64Point{X: x, Y: maxY},
				style,
			)
		}
	}

	for _, s := range d.Series {
		style := SeriesStyle(s.Color)
		if s.ShowLine {
			for i := 1; i < len(s.Points); i++ {
				lc.DrawBrailleLineWithStyle(
					canvas.Float64Point{X: s.Points[i-1].X, Y: s.Points[i-1].Y},
					canvas.Float64Point{X: s.Points[i].X, Y: s.Points[i].Y},
					style,
				)
			}
			continue
		}
		for _, p := range s.Points {
			lc.DrawRuneWithStyle(canvas.Float64Point{X: p.X, Y: p.Y}, MarkerRune, style)
		}
	}

	return &terminalChart{
		frame:  lc.View(),
		footer: footer(d),
	}, nil
}

// footer names the axes and bands, which the braille canvas has no room for.
func footer(d plot.Descriptor) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("x: %s   y: %s", d.XAxis.Title, d.YAxis.Title)))
	for i, band := range d.Bands {
		b.WriteString("   ")
		b.WriteString(BandStyle(i).Render(fmt.Sprintf("%c %s [%g, %g)", runes.FullBlock, band.Label, band.XMin, band.XMax)))
	}
	return b.String()
}

type terminalChart struct {
	frame  string
	footer string
}

func (c *terminalChart) View() string {
	if c.frame == "" {
		return ""
	}
	return c.frame + "\n" + c.footer
}

func (c *terminalChart) Destroy() {
	c.frame = ""
	c.footer = ""
}
