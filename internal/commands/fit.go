package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/comgen/marylandPlot/internal/regression"
	"github.com/comgen/marylandPlot/internal/tui"
)

type FitCmd struct {
	Gene   string `arg:"" name:"gene" help:"Gene to fit." required:"true"`
	Output string `name:"output" short:"o" help:"Output format." default:"text" enum:"text,json,yaml"`
}

type fitResult struct {
	Gene   string `json:"gene" yaml:"gene"`
	Fitted bool   `json:"fitted" yaml:"fitted"`
	// Reason explains why the raw points were kept.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	regression.Result `yaml:",inline"`
}

func (f *FitCmd) Run(ctx *Context) error {
	a, err := ctx.loadApp(nil)
	if err != nil {
		return err
	}

	out := fitResult{Gene: f.Gene, Fitted: true}
	res, err := a.Fit(f.Gene)
	switch {
	case errors.Is(err, regression.ErrUnderdetermined), errors.Is(err, regression.ErrSingular):
		out.Fitted = false
		out.Reason = err.Error()
	case err != nil:
		return err
	}
	out.Result = res

	if f.Output != OutputText {
		return writeStructured(ctx.Stdout, f.Output, out)
	}

	if !out.Fitted {
		fmt.Fprintln(ctx.Stderr, tui.WarningStyle.Render(fmt.Sprintf("%s: no curve fitted: %s", f.Gene, out.Reason)))
		return nil
	}
	fmt.Fprintf(ctx.Stdout, "%s: y = %s  (R² = %.4f)\n", f.Gene, formatPolynomial(res.Coefficients), res.R2)
	for _, p := range res.Points {
		fmt.Fprintf(ctx.Stdout, "%g\t%g\n", p.X, p.Y)
	}
	return nil
}

// formatPolynomial renders coefficients, constant term first, as an
// expression in x with the highest power leading.
func formatPolynomial(coefficients []float64) string {
	if len(coefficients) == 0 {
		return "0"
	}

	var b strings.Builder
	for power := len(coefficients) - 1; power >= 0; power-- {
		c := coefficients[power]
		switch {
		case b.Len() == 0:
			if c < 0 {
				b.WriteString("-")
			}
		case c < 0:
			b.WriteString(" - ")
		default:
			b.WriteString(" + ")
		}
		if c < 0 {
			c = -c
		}
		b.WriteString(fmt.Sprintf("%g", c))
		switch power {
		case 0:
		case 1:
			b.WriteString("x")
		default:
			b.WriteString(fmt.Sprintf("x^%d", power))
		}
	}
	return b.String()
}
