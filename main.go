package main

import (
	"github.com/alecthomas/kong"
	"github.com/comgen/marylandPlot/internal/commands"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("marylandplot"),
		kong.Description("Terminal-native gene expression viewer with quadratic trend curves."),
		kong.UsageOnError(),
	)

	runCtx, err := commands.Cli.Start()
	ctx.FatalIfErrorf(err)

	// Call the Run() method of the selected parsed command.
	err = ctx.Run(runCtx)
	if finishErr := runCtx.Finish(); err == nil {
		err = finishErr
	}
	ctx.FatalIfErrorf(err)
}
