package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/comgen/marylandPlot/internal/app"
	"github.com/comgen/marylandPlot/internal/charts"
	"github.com/comgen/marylandPlot/internal/tables"
	"github.com/comgen/marylandPlot/internal/tui"
)

type plotState int

const (
	stateLoading plotState = iota
	stateSuccess
	stateError
	stateShowingTable
)

type plotResultMsg struct {
	app      *app.App
	err      error
	duration time.Duration
}

// PlotModel loads the dataset behind a spinner, then shows the chart or the
// expression table of the requested genes.
type PlotModel struct {
	ctx      *Context
	terminal *charts.Terminal
	genes    []string
	output   string

	state        plotState
	spinner      spinner.Model
	app          *app.App
	warnings     []string
	err          error
	duration     time.Duration
	tableModel   *tables.Model
	chartContent string
	quitting     bool
}

func NewPlotModel(ctx *Context, terminal *charts.Terminal, genes []string, output string) PlotModel {
	return PlotModel{
		ctx:      ctx,
		terminal: terminal,
		genes:    genes,
		output:   output,
		state:    stateLoading,
		spinner:  tui.NewLoadingSpinner(),
	}
}

func (m PlotModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadDataset(),
	)
}

// loadDataset only fetches the dataset. Selection and drawing happen in
// handlePlotResult, on the event loop that also owns the terminal size.
func (m PlotModel) loadDataset() tea.Cmd {
	ctx, terminal := m.ctx, m.terminal
	return func() tea.Msg {
		start := time.Now()
		a, err := ctx.loadApp(terminal)
		return plotResultMsg{app: a, err: err, duration: time.Since(start)}
	}
}

func (m PlotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case plotResultMsg:
		return m.handlePlotResult(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	}

	return m, nil
}

func (m PlotModel) handleWindowSize(msg tea.WindowSizeMsg) PlotModel {
	if m.terminal == nil {
		return m
	}
	m.terminal.Resize(msg.Width - ChartWidthPadding)
	if m.state == stateSuccess && m.app != nil {
		if canvas := m.app.Canvas(); canvas != nil {
			if err := canvas.Redraw(); err == nil {
				m.chartContent = canvas.View()
			}
		}
	}
	return m
}

func (m PlotModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateShowingTable && m.tableModel != nil {
		// Let the table handle the key if we're in table mode
		if msg.String() != "ctrl+c" {
			updated, cmd := m.tableModel.Update(msg)
			if tableModel, ok := updated.(tables.Model); ok {
				*m.tableModel = tableModel
			}
			return m, cmd
		}
	}

	if msg.String() == "q" || msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m PlotModel) handlePlotResult(msg plotResultMsg) (tea.Model, tea.Cmd) {
	m.app = msg.app
	m.err = msg.err
	m.duration = msg.duration

	if m.err == nil {
		m.warnings, m.err = selectGenes(m.app, m.genes)
	}
	if m.err == nil && m.output != OutputTable {
		_, m.err = m.app.Rebuild()
	}
	if m.err != nil {
		m.state = stateError
		return m, tea.Quit
	}

	if m.output == OutputTable {
		return m.handleTableOutput()
	}

	m.state = stateSuccess
	if canvas := m.app.Canvas(); canvas != nil {
		m.chartContent = canvas.View()
	}
	return m, nil
}

func (m PlotModel) handleTableOutput() (tea.Model, tea.Cmd) {
	tableModel, err := tables.Expression(m.app.Dataset(), m.app.Selected())
	if err != nil {
		m.err = err
		m.state = stateError
		return m, tea.Quit
	}
	m.tableModel = &tableModel
	m.state = stateShowingTable
	return m, m.tableModel.Init()
}

func (m PlotModel) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.state == stateLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PlotModel) View() string {
	var s strings.Builder

	switch m.state {
	case stateLoading:
		s.WriteString(fmt.Sprintf("\n%s Loading dataset from %s\n\n", m.spinner.View(), m.ctx.Data))

	case stateError:
		s.WriteString("\n")
		s.WriteString(tui.ErrorStyle.Render("Error: ") + m.err.Error() + "\n")

	case stateSuccess:
		m.writeWarnings(&s)
		s.WriteString(m.chartContent)
		s.WriteString("\n")
		s.WriteString(fmt.Sprintf("%s  (loaded in %s)\n", strings.Join(m.app.Selected(), ", "), formatDuration(m.duration)))
		if !m.quitting {
			s.WriteString("\nPress q or ctrl+c to quit\n")
		}

	case stateShowingTable:
		if m.tableModel != nil && !m.quitting {
			m.writeWarnings(&s)
			s.WriteString(m.tableModel.View())
		}
	}

	return s.String()
}

func (m PlotModel) writeWarnings(s *strings.Builder) {
	if len(m.warnings) == 0 {
		return
	}
	s.WriteString("\n")
	s.WriteString(tui.WarningStyle.Render("Warnings:\n"))
	for _, w := range m.warnings {
		s.WriteString(tui.WarningStyle.Render(fmt.Sprintf("  • %s\n", w)))
	}
	s.WriteString("\n")
}

// Err returns the error that ended the program, if any.
func (m PlotModel) Err() error {
	return m.err
}
