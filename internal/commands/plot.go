package commands

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/comgen/marylandPlot/internal/app"
	"github.com/comgen/marylandPlot/internal/charts"
	"github.com/comgen/marylandPlot/internal/plot"
	"github.com/comgen/marylandPlot/internal/selection"
	"github.com/comgen/marylandPlot/internal/tui"
)

type PlotCmd struct {
	Genes  []string `arg:"" name:"gene" help:"Genes to plot, in selection order." required:"true"`
	Output string   `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,table,bars,json,yaml,png,svg"`
	Out    string   `name:"out" help:"File to write png and svg images to; stdout when empty." type:"path"`
	Width  int      `name:"width" help:"Image width in pixels." default:"1024"`
	Height int      `name:"height" help:"Image height in pixels." default:"512"`
}

func (p *PlotCmd) Run(ctx *Context) error {
	switch p.Output {
	case OutputGraph, OutputTable:
		return p.runInteractive(ctx)
	}

	a, err := ctx.loadApp(nil)
	if err != nil {
		return err
	}
	warnings, err := selectGenes(a, p.Genes)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintln(ctx.Stderr, tui.WarningStyle.Render(w))
	}

	d, err := a.Rebuild()
	if err != nil {
		return err
	}

	switch p.Output {
	case OutputBars:
		bars, err := charts.BandBarchart(d, chartWidth())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.Stdout, bars)
		return err
	case OutputPNG, OutputSVG:
		return p.writeImage(ctx.Stdout, d)
	default:
		return writeStructured(ctx.Stdout, p.Output, d)
	}
}

func (p *PlotCmd) writeImage(stdout io.Writer, d plot.Descriptor) error {
	w := stdout
	if p.Out != "" {
		f, err := os.Create(p.Out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.Out, err)
		}
		defer f.Close()
		w = f
	}
	return charts.WriteImage(w, d, charts.Format(p.Output), p.Width, p.Height)
}

func (p *PlotCmd) runInteractive(ctx *Context) error {
	if err := ctx.redirectDebug(); err != nil {
		fmt.Fprintln(ctx.Stderr, tui.WarningStyle.Render(err.Error()))
	}
	terminal := charts.NewTerminal(chartWidth())
	model := NewPlotModel(ctx, terminal, p.Genes, p.Output)

	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(PlotModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// selectGenes selects genes in order. Duplicates are ignored; genes past the
// selection limit are reported as warnings rather than errors.
func selectGenes(a *app.App, genes []string) ([]string, error) {
	var warnings []string
	for _, gene := range genes {
		outcome, err := a.Select(gene)
		if err != nil {
			return nil, err
		}
		if outcome == selection.AtCapacity {
			warnings = append(warnings, fmt.Sprintf("%s skipped: at most %d genes can be plotted", gene, a.MaxSelected()))
		}
	}
	return warnings, nil
}
