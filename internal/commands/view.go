package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/comgen/marylandPlot/internal/charts"
	"github.com/comgen/marylandPlot/internal/tui"
)

// ViewCmd is the Kong command for the interactive viewer.
type ViewCmd struct {
	NoMouse bool `name:"no-mouse" help:"Disable mouse support." env:"MARYLANDPLOT_NO_MOUSE"`
}

// Run starts the interactive viewer. The dataset loads in the background
// while a spinner is shown.
func (v *ViewCmd) Run(ctx *Context) error {
	if err := ctx.redirectDebug(); err != nil {
		fmt.Fprintln(ctx.Stderr, tui.WarningStyle.Render(err.Error()))
	}
	terminal := charts.NewTerminal(chartWidth())
	model := tui.NewModel(ctx.newApp(terminal), terminal, ctx.Data, ctx.Timeout)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !v.NoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	return err
}
