// Package tables shows expression values as a filterable table.
package tables

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/comgen/marylandPlot/internal/dataset"
	teatable "github.com/evertras/bubble-table/table"
)

const (
	individualKey = "individual"

	// PageSize is the number of rows shown per page.
	PageSize = 10

	minColumnWidth = 8
	maxColumnWidth = 24
)

type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
}

// Expression builds a table with one row per individual and one column per
// gene, in the given order. Genes the dataset lacks are an error.
func Expression(ds *dataset.Dataset, genes []string) (Model, error) {
	if ds == nil {
		return Model{}, fmt.Errorf("no dataset")
	}

	series := make([][]float64, len(genes))
	for i, gene := range genes {
		ys, ok := ds.Series(gene)
		if !ok {
			return Model{}, fmt.Errorf("unknown gene %q", gene)
		}
		series[i] = ys
	}

	individuals := ds.Individuals()
	idWidth := len("Individual")
	for _, id := range individuals {
		idWidth = max(idWidth, len(id.String()))
	}

	widths := make([]int, len(genes))
	for i, gene := range genes {
		widths[i] = len(gene)
		for _, y := range series[i] {
			widths[i] = max(widths[i], len(formatValue(y)))
		}
		widths[i] = min(max(widths[i]+1, minColumnWidth), maxColumnWidth)
	}

	rows := make([]teatable.Row, 0, len(individuals))
	for r, id := range individuals {
		data := teatable.RowData{individualKey: id.String()}
		for i, gene := range genes {
			data[gene] = formatValue(series[i][r])
		}
		rows = append(rows, teatable.NewRow(data))
	}

	columns := make([]teatable.Column, 0, len(genes)+1)
	columns = append(columns, teatable.NewColumn(individualKey, "Individual", idWidth+1).WithFiltered(true))
	for i, gene := range genes {
		columns = append(columns, teatable.NewColumn(gene, gene, widths[i]).WithFiltered(true))
	}

	return Model{
		table: teatable.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(PageSize).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// global
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// typing into the filter
	if m.filterTextInput.Focused() {
		if keyMsg.String() == "enter" || keyMsg.String() == "esc" {
			m.filterTextInput.Blur()
		} else {
			m.filterTextInput, _ = m.filterTextInput.Update(keyMsg)
		}
		m.table = m.table.WithFilterInput(m.filterTextInput)
		return m, nil
	}

	switch keyMsg.String() {
	case "/":
		m.filterTextInput.Focus()
	case "q":
		return m, tea.Quit
	default:
		m.table, cmd = m.table.Update(keyMsg)
	}

	return m, cmd
}

// Filter returns the current filter text.
func (m Model) Filter() string {
	return m.filterTextInput.Value()
}

// VisibleRows is the number of rows left after filtering.
func (m Model) VisibleRows() int {
	return len(m.table.GetVisibleRows())
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to filter individuals, and q or ctrl+c to quit")

	return body.String()
}
