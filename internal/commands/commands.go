package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/comgen/marylandPlot/internal/app"
	"github.com/comgen/marylandPlot/internal/charts"
	"github.com/comgen/marylandPlot/internal/debug"
	"github.com/comgen/marylandPlot/internal/metrics"
)

// defaultLogFile receives debug output during interactive sessions when
// MARYLANDPLOT_DEBUG is set without --log-file.
var defaultLogFile = filepath.Join(os.TempDir(), "marylandplot-debug.log")

// Context is shared by every command's Run.
type Context struct {
	Data        string
	MaxSelected int
	Timeout     time.Duration
	Recorder    *metrics.Recorder

	Stdout io.Writer
	Stderr io.Writer

	metricsFile string
	logFile     io.Closer
}

// CLI is the root command line of marylandplot.
type CLI struct {
	Data        string        `help:"Path or http(s) URL of the dataset document." short:"d" default:"data.json" env:"MARYLANDPLOT_DATA"`
	MaxSelected int           `name:"max-selected" help:"Maximum number of genes plotted at once." default:"5" env:"MARYLANDPLOT_MAX_SELECTED"`
	Timeout     time.Duration `help:"Timeout for fetching the dataset." default:"30s" env:"MARYLANDPLOT_TIMEOUT"`
	LogFile     string        `name:"log-file" help:"Write debug logs to this file." type:"path" env:"MARYLANDPLOT_LOG_FILE"`
	MetricsFile string        `name:"metrics-file" help:"Write Prometheus metrics to this file on exit." type:"path" env:"MARYLANDPLOT_METRICS_FILE"`

	View   ViewCmd   `cmd:"" default:"1" help:"Interactive gene expression viewer."`
	Search SearchCmd `cmd:"" help:"List genes whose name matches a query."`
	Plot   PlotCmd   `cmd:"" help:"Plot the expression of one or more genes."`
	Fit    FitCmd    `cmd:"" help:"Fit the quadratic trend of one gene."`
}

var Cli CLI

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if c.MaxSelected < 1 {
		return fmt.Errorf("--max-selected must be at least 1, got %d", c.MaxSelected)
	}
	return nil
}

// Start prepares logging and metrics for a run. Finish must be called on the
// returned Context once the command is done.
func (c *CLI) Start() (*Context, error) {
	ctx := &Context{
		Data:        c.Data,
		MaxSelected: c.MaxSelected,
		Timeout:     c.Timeout,
		Recorder:    metrics.NewRecorder(),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		metricsFile: c.MetricsFile,
	}

	if c.LogFile != "" {
		// The TUI owns the terminal, so debug output always goes to a file.
		f, err := tea.LogToFile(c.LogFile, "marylandplot")
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		debug.SetOutput(f)
		debug.SetEnabled(true)
		ctx.logFile = f
	}
	return ctx, nil
}

// redirectDebug sends debug output to a file before a program takes over the
// terminal. It does nothing when debugging is off or --log-file is set.
func (c *Context) redirectDebug() error {
	if !debug.Enabled() || c.logFile != nil {
		return nil
	}
	f, err := tea.LogToFile(defaultLogFile, "marylandplot")
	if err != nil {
		debug.SetOutput(io.Discard)
		return fmt.Errorf("opening log file: %w", err)
	}
	debug.SetOutput(f)
	c.logFile = f
	return nil
}

// Finish writes the metrics file, if requested, and closes the log.
func (c *Context) Finish() error {
	var err error
	if c.metricsFile != "" {
		if werr := c.Recorder.WriteFile(c.metricsFile); werr != nil {
			err = fmt.Errorf("writing metrics: %w", werr)
		}
	}
	if c.logFile != nil {
		if cerr := c.logFile.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (c *Context) newApp(renderer charts.Renderer) *app.App {
	return app.New(app.Config{
		MaxSelected: c.MaxSelected,
		Renderer:    renderer,
		Recorder:    c.Recorder,
	})
}

// loadApp creates an app and loads the dataset, honouring the timeout.
func (c *Context) loadApp(renderer charts.Renderer) (*app.App, error) {
	a := c.newApp(renderer)

	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	if err := a.Load(ctx, c.Data); err != nil {
		return nil, err
	}
	return a, nil
}
