package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/comgen/marylandPlot/internal/app"
	"github.com/comgen/marylandPlot/internal/debug"
	"github.com/comgen/marylandPlot/internal/search"
	"github.com/comgen/marylandPlot/internal/selection"
	teatable "github.com/evertras/bubble-table/table"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = msg.Width - 10
		return m.handleResize(), nil

	case datasetLoadedMsg:
		return m.handleLoaded(msg)

	case clearSuggestionsMsg:
		if msg.seq == m.blurSeq && m.focus != FocusSearch {
			m = m.hideSuggestions()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Update text input if focused
	if m.focus == FocusSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleResize() Model {
	if m.terminal == nil {
		return m
	}
	m.terminal.Resize(m.getChartWidth())
	if canvas := m.app.Canvas(); canvas != nil {
		if err := canvas.Redraw(); err != nil {
			m.status = err.Error()
		}
	}
	return m
}

func (m Model) handleLoaded(msg datasetLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadDuration = msg.duration
	debug.LogTiming("startup load", msg.duration)
	if msg.err != nil {
		m.app.Fail(msg.err)
		m.state = StateError
		return m, nil
	}

	m.app.SetDataset(msg.dataset)
	m.state = StateReady
	return m.focusSearch()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case StateLoading:
		// Only allow quit during loading
		return m, nil
	case StateError:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.focus {
	case FocusSearch:
		return m.handleSearchKey(msg)
	case FocusChips:
		return m.handleChipsKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/", "i", "enter":
		return m.focusSearch()
	case "tab":
		return m.focusChips(), nil
	case "down":
		if m.showList {
			m.suggestions.Down()
		}
	case "up":
		if m.showList {
			m.suggestions.Up()
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.blurSearch()
	case "tab":
		if len(m.app.Selected()) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = m.blurSearch()
		return m.focusChips(), cmd
	case "down":
		if m.showList {
			m.suggestions.Down()
		}
		return m, nil
	case "up":
		if m.showList {
			m.suggestions.Up()
		}
		return m, nil
	case "enter":
		if gene, ok := m.suggestions.Active(); ok && m.showList {
			return m.commit(gene)
		}
		return m, nil
	}

	if m.app.Full() {
		m.searchInput.SetValue("")
		m.status = app.PlaceholderFull
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if strings.TrimSpace(m.searchInput.Value()) == "" {
		m = m.hideSuggestions()
	} else {
		m = m.showSuggestions(m.app.Suggestions(m.searchInput.Value()))
	}
	return m, cmd
}

func (m Model) handleChipsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := m.app.Selected()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		if m.chipIndex > 0 {
			m.chipIndex--
		}
	case "right", "l":
		if m.chipIndex < len(selected)-1 {
			m.chipIndex++
		}
	case "x", "delete", "backspace":
		if m.chipIndex < len(selected) {
			return m.deselect(selected[m.chipIndex])
		}
	case "esc":
		m.focus = FocusNone
	case "tab", "/":
		m.focus = FocusNone
		return m.focusSearch()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.state != StateReady {
		return m, nil
	}

	if msg.Y > 0 && msg.Y < SuggestionsTop {
		return m.focusSearch()
	}

	if !m.showList {
		return m, nil
	}
	start, end := m.visibleRange()
	row := msg.Y - SuggestionsTop
	if row < 0 || start+row >= end {
		return m, nil
	}
	m.suggestions.Set(start + row)
	gene, _ := m.suggestions.Active()
	return m.commit(gene)
}

// focusSearch gives the search box focus unless the selection is full.
// An empty box opens the full gene list.
func (m Model) focusSearch() (Model, tea.Cmd) {
	if m.state != StateReady {
		return m, nil
	}
	m.searchInput.Placeholder = m.app.Placeholder()
	if m.app.Full() {
		m.focus = FocusNone
		m.status = app.PlaceholderFull
		return m, nil
	}

	m.focus = FocusSearch
	m.blurSeq++
	cmd := m.searchInput.Focus()
	if m.searchInput.Value() == "" {
		m = m.showSuggestions(m.app.Suggestions(""))
	}
	return m, cmd
}

// blurSearch drops focus and hides the list after BlurClearDelay, so a click
// already on its way still finds the suggestion it was aimed at.
func (m Model) blurSearch() (Model, tea.Cmd) {
	m.searchInput.Blur()
	m.focus = FocusNone
	m.blurSeq++
	seq := m.blurSeq
	return m, tea.Tick(BlurClearDelay, func(time.Time) tea.Msg {
		return clearSuggestionsMsg{seq: seq}
	})
}

func (m Model) focusChips() Model {
	if len(m.app.Selected()) == 0 {
		return m
	}
	m.focus = FocusChips
	m.chipIndex = 0
	return m
}

func (m Model) showSuggestions(items []string) Model {
	m.suggestions = search.NewCursor(items)
	m.showList = true
	return m
}

func (m Model) hideSuggestions() Model {
	m.suggestions = search.NewCursor(nil)
	m.showList = false
	return m
}

// visibleRange is the window of suggestions on screen, scrolled so the
// active one is visible.
func (m Model) visibleRange() (start, end int) {
	if active := m.suggestions.Index(); active >= MaxVisibleSuggestions {
		start = active - MaxVisibleSuggestions + 1
	}
	end = min(m.suggestions.Len(), start+MaxVisibleSuggestions)
	return start, end
}

func (m Model) commit(gene string) (Model, tea.Cmd) {
	outcome, err := m.app.Select(gene)
	m.searchInput.SetValue("")
	m = m.hideSuggestions()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	switch outcome {
	case selection.Added:
		m.status = ""
		m = m.rebuild()
	case selection.Duplicate:
		m.status = fmt.Sprintf("%s is already plotted", gene)
	case selection.AtCapacity:
		m.status = app.PlaceholderFull
	}

	m.searchInput.Placeholder = m.app.Placeholder()
	if m.app.Full() {
		m.searchInput.Blur()
		m.focus = FocusNone
	}
	return m, nil
}

func (m Model) deselect(gene string) (Model, tea.Cmd) {
	if !m.app.Deselect(gene) {
		return m, nil
	}
	m.status = ""
	m = m.rebuild()
	m.searchInput.Placeholder = m.app.Placeholder()

	remaining := len(m.app.Selected())
	if remaining == 0 {
		m.focus = FocusNone
		return m.focusSearch()
	}
	if m.chipIndex >= remaining {
		m.chipIndex = remaining - 1
	}
	return m, nil
}

func (m Model) rebuild() Model {
	if _, err := m.app.Rebuild(); err != nil {
		m.status = err.Error()
	}
	return m.createLegendTable()
}

func (m Model) createLegendTable() Model {
	entries := m.app.Descriptor().Legend()

	rows := make([]teatable.Row, 0, len(entries))
	longestGene := 0
	for _, entry := range entries {
		if len(entry.Label) > longestGene {
			longestGene = len(entry.Label)
		}
		rows = append(rows, teatable.NewRow(teatable.RowData{
			"color": swatch(entry.Color),
			"gene":  entry.Label,
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("color", "", 3),
		teatable.NewColumn("gene", "Gene", max(longestGene, 20)),
	}

	m.legendTable = teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(LegendMaxRows).
		Focused(false)
	return m
}
