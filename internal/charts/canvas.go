package charts

import (
	"errors"

	"github.com/comgen/marylandPlot/internal/plot"
)

// Chart is a rendered chart instance.
type Chart interface {
	View() string
	Destroy()
}

// Renderer draws a descriptor into a new Chart.
type Renderer interface {
	Render(d plot.Descriptor) (Chart, error)
}

// Canvas owns at most one live chart. Drawing always tears down the current
// chart before a new one is rendered; charts are never overlaid.
type Canvas struct {
	renderer Renderer
	live     Chart
	last     plot.Descriptor
}

func NewCanvas(r Renderer) *Canvas {
	return &Canvas{renderer: r}
}

// Draw replaces the live chart with a rendering of d. An empty descriptor
// leaves the canvas blank.
func (c *Canvas) Draw(d plot.Descriptor) error {
	c.Destroy()
	c.last = d
	if d.Empty() {
		return nil
	}
	chart, err := c.renderer.Render(d)
	if errors.Is(err, ErrEmptyPlot) {
		return nil
	}
	if err != nil {
		return err
	}
	c.live = chart
	return nil
}

// Redraw renders the last descriptor again, e.g. after a resize.
func (c *Canvas) Redraw() error {
	return c.Draw(c.last)
}

// Destroy tears down the live chart, if any.
func (c *Canvas) Destroy() {
	if c.live == nil {
		return
	}
	c.live.Destroy()
	c.live = nil
}

// Live reports whether a chart is currently shown.
func (c *Canvas) Live() bool {
	return c.live != nil
}

func (c *Canvas) View() string {
	if c.live == nil {
		return ""
	}
	return c.live.View()
}
