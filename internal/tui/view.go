package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/comgen/marylandPlot/internal/charts"
)

func (m Model) View() string {
	switch m.state {
	case StateLoading:
		return m.renderLoadingState()
	case StateError:
		return m.renderErrorState()
	}

	var s strings.Builder

	// Status bar
	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	// Search input
	s.WriteString(m.renderSearchInput())
	s.WriteString("\n")

	if m.showList {
		s.WriteString(m.renderSuggestions())
		s.WriteString("\n")
	}

	if chips := m.renderChips(); chips != "" {
		s.WriteString(chips)
		s.WriteString("\n")
	}

	s.WriteString(m.renderChart())
	s.WriteString("\n")

	if m.status != "" {
		s.WriteString(WarningStyle.Render("  " + m.status))
		s.WriteString("\n")
	}

	// Help bar
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m Model) renderStatusBar() string {
	ds := m.app.Dataset()
	genes, samples := 0, 0
	if ds != nil {
		genes, samples = ds.Len(), ds.Samples()
	}

	text := fmt.Sprintf("  Genes: %d   Individuals: %d   Selected: %d/%d",
		genes, samples, len(m.app.Selected()), m.app.MaxSelected())
	if m.loadDuration > 0 {
		text += fmt.Sprintf("   Loaded in %s", m.loadDuration.Round(time.Millisecond))
	}

	return barStyle.Width(m.width).Render(text)
}

func (m Model) renderSearchInput() string {
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if m.focus == FocusSearch {
		inputStyle = inputStyle.BorderForeground(accentColor)
	} else {
		inputStyle = inputStyle.BorderForeground(borderColor)
	}

	label := lipgloss.NewStyle().Bold(true).Render("Gene: ")
	return inputStyle.Render(label + m.searchInput.View())
}

func (m Model) renderSuggestions() string {
	if m.suggestions.Len() == 0 {
		return dimStyle.Render("  no matching genes")
	}

	items := m.suggestions.Items()
	start, end := m.visibleRange()
	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		if i == m.suggestions.Index() {
			lines = append(lines, activeSuggestionStyle.Render("> "+items[i]))
			continue
		}
		lines = append(lines, suggestionStyle.Render(items[i]))
	}
	if hidden := len(items) - end; hidden > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  … %d more", hidden)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderChips() string {
	selected := m.app.Selected()
	if len(selected) == 0 {
		return ""
	}

	chips := make([]string, 0, len(selected))
	for i, gene := range selected {
		color, _ := m.app.Color(gene)
		style := lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(color))
		if m.focus == FocusChips && i == m.chipIndex {
			style = style.
				Bold(true).
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color(color))
		}
		chips = append(chips, style.Render(gene+" ×"))
	}
	return "  " + strings.Join(chips, " ")
}

func (m Model) renderChart() string {
	canvas := m.app.Canvas()
	if canvas == nil || !canvas.Live() {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(2, 4)
		return emptyStyle.Render("Search for a gene and press Enter to plot its expression")
	}

	var s strings.Builder

	chartStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)
	s.WriteString(chartStyle.Render(canvas.View()))

	if len(m.app.Descriptor().Legend()) > 0 {
		legendStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			MarginTop(1)
		if m.focus == FocusChips {
			legendStyle = legendStyle.BorderForeground(accentColor)
		}
		s.WriteString("\n")
		s.WriteString(legendStyle.Render(m.legendTable.View()))
	}
	return s.String()
}

func (m Model) renderLoadingState() string {
	loadingStyle := lipgloss.NewStyle().Padding(2, 4)
	return loadingStyle.Render(fmt.Sprintf("%s Loading dataset from %s", m.spinner.View(), m.source))
}

func (m Model) renderErrorState() string {
	errorStyle := lipgloss.NewStyle().Padding(1, 2)
	err := m.app.LoadError()
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return errorStyle.Render(ErrorStyle.Render("Error: ")+msg) + "\n" + m.renderHelpBar()
}

func (m Model) renderHelpBar() string {
	var helpText string
	switch {
	case m.state == StateError:
		helpText = "  q: quit"
	case m.focus == FocusSearch:
		helpText = "  ↑/↓: navigate | Enter: plot | Tab: selected genes | Esc: leave search"
	case m.focus == FocusChips:
		helpText = "  ←/→: move | x: remove | Tab: search | Esc: back | q: quit"
	default:
		helpText = "  /: search | Tab: selected genes | q: quit"
	}
	return barStyle.Width(m.width).Render(helpText)
}

// swatch is the legend marker for a series color.
func swatch(color string) string {
	return charts.SeriesStyle(color).Render("█")
}
