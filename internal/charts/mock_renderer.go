package charts

import "github.com/comgen/marylandPlot/internal/plot"

// MockRenderer is a mock implementation of the Renderer interface for testing.
type MockRenderer struct {
	RenderFunc func(d plot.Descriptor) (Chart, error)

	// Charts holds every chart handed out, oldest first.
	Charts []*MockChart
}

func (m *MockRenderer) Render(d plot.Descriptor) (Chart, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(d)
	}
	c := &MockChart{Descriptor: d}
	m.Charts = append(m.Charts, c)
	return c, nil
}

// MockChart records whether it has been torn down.
type MockChart struct {
	Descriptor plot.Descriptor
	Destroyed  bool
}

func (c *MockChart) View() string {
	if c.Destroyed {
		return ""
	}
	return "chart"
}

func (c *MockChart) Destroy() {
	c.Destroyed = true
}
