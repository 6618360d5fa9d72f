package tui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/comgen/marylandPlot/internal/app"
	"github.com/comgen/marylandPlot/internal/charts"
	"github.com/comgen/marylandPlot/internal/dataset"
	"github.com/comgen/marylandPlot/internal/search"
	teatable "github.com/evertras/bubble-table/table"
	"golang.org/x/term"
)

// State is the lifecycle of the viewer.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Focus tracks which part of the screen receives keys.
type Focus int

const (
	FocusNone Focus = iota
	FocusSearch
	FocusChips
)

// datasetLoadedMsg carries the result of the startup load.
type datasetLoadedMsg struct {
	dataset  *dataset.Dataset
	err      error
	duration time.Duration
}

// clearSuggestionsMsg hides the suggestion list after the search box loses
// focus. seq ties it to one blur so a later refocus is not undone.
type clearSuggestionsMsg struct {
	seq int
}

// Model is the Bubble Tea model of the gene viewer.
type Model struct {
	app      *app.App
	terminal *charts.Terminal
	source   string
	timeout  time.Duration

	state        State
	loadDuration time.Duration

	// Search
	searchInput textinput.Model
	suggestions search.Cursor
	showList    bool
	blurSeq     int

	// Selection
	focus     Focus
	chipIndex int
	status    string

	legendTable teatable.Model

	width   int
	height  int
	spinner spinner.Model
}

// NewModel creates a viewer over a. The terminal renderer must be the one
// a draws with, so resizes reach the live chart.
func NewModel(a *app.App, terminal *charts.Terminal, source string, timeout time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = a.Placeholder()
	ti.Width = 40

	m := Model{
		app:         a,
		terminal:    terminal,
		source:      source,
		timeout:     timeout,
		state:       StateLoading,
		searchInput: ti,
		suggestions: search.NewCursor(nil),
		spinner:     NewLoadingSpinner(),
	}
	if a.Loaded() {
		m.state = StateReady
	}
	m = m.createLegendTable()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == StateReady {
		return textinput.Blink
	}
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.loadDataset(),
	)
}

func (m Model) loadDataset() tea.Cmd {
	source, timeout := m.source, m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		start := time.Now()
		ds, err := dataset.Load(ctx, source)
		return datasetLoadedMsg{
			dataset:  ds,
			err:      err,
			duration: time.Since(start),
		}
	}
}

// State returns the current lifecycle state.
func (m Model) State() State {
	return m.state
}

func (m Model) getChartWidth() int {
	return m.getTerminalWidth() - ChartWidthPadding
}

func (m Model) getTerminalWidth() int {
	if m.width > 0 {
		return m.width
	}
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && termWidth > 0 {
		return termWidth
	}
	return DefaultTerminalWidth
}
