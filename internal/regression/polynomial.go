// Package regression fits smoothing curves to expression series.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultDegree is the order of the trend curve drawn for each gene.
	DefaultDegree = 2

	// DefaultPrecision is the number of decimals kept in coefficients and
	// fitted values.
	DefaultPrecision = 2
)

var (
	// ErrUnderdetermined is returned when there are fewer distinct x values
	// than coefficients to estimate.
	ErrUnderdetermined = errors.New("not enough distinct samples for polynomial degree")

	// ErrSingular is returned when the least squares system cannot be solved.
	ErrSingular = errors.New("least squares system is singular")
)

// Point is one (x, y) sample.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Fitter turns the samples of one series into a fitted curve. Implementations
// must be pure: the same input always produces the same output.
type Fitter interface {
	Fit(points []Point) []Point
}

// Result describes a polynomial fit.
type Result struct {
	// Points holds the curve evaluated at each input x, in input order.
	Points []Point `json:"points" yaml:"points"`
	// Coefficients are ordered by power, constant term first.
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	R2           float64   `json:"r2" yaml:"r2"`
}

// Polynomial is a least squares polynomial Fitter.
type Polynomial struct {
	Degree int
	// Precision is the number of decimals to round to; negative disables rounding.
	Precision int
}

// NewPolynomial returns a quadratic fitter rounding to two decimals.
func NewPolynomial() Polynomial {
	return Polynomial{Degree: DefaultDegree, Precision: DefaultPrecision}
}

// Fit returns the fitted curve, or a copy of the input when no curve can be
// fitted.
func (p Polynomial) Fit(points []Point) []Point {
	res, err := p.Solve(points)
	if err != nil {
		return append([]Point(nil), points...)
	}
	return res.Points
}

// Solve fits the polynomial. Points with a non-finite coordinate are ignored.
func (p Polynomial) Solve(points []Point) (Result, error) {
	degree := p.Degree
	if degree < 0 {
		degree = 0
	}

	usable := make([]Point, 0, len(points))
	distinct := make(map[float64]struct{}, len(points))
	for _, pt := range points {
		if !finite(pt.X) || !finite(pt.Y) {
			continue
		}
		usable = append(usable, pt)
		distinct[pt.X] = struct{}{}
	}
	if len(distinct) < degree+1 {
		return Result{}, fmt.Errorf("%d distinct x for degree %d: %w", len(distinct), degree, ErrUnderdetermined)
	}

	n, k := len(usable), degree+1
	design := mat.NewDense(n, k, nil)
	ys := make([]float64, n)
	for i, pt := range usable {
		v := 1.0
		for j := 0; j < k; j++ {
			design.Set(i, j, v)
			v *= pt.X
		}
		ys[i] = pt.Y
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, mat.NewVecDense(n, ys)); err != nil {
		return Result{}, fmt.Errorf("%v: %w", err, ErrSingular)
	}

	coefficients := make([]float64, k)
	for j := range coefficients {
		coefficients[j] = p.round(coef.AtVec(j))
	}

	res := Result{
		Points:       make([]Point, n),
		Coefficients: coefficients,
	}
	estimates := make([]float64, n)
	for i, pt := range usable {
		y := p.round(evaluate(coefficients, pt.X))
		res.Points[i] = Point{X: p.round(pt.X), Y: y}
		estimates[i] = y
	}

	if stat.Variance(ys, nil) == 0 {
		res.R2 = 1
	} else {
		res.R2 = stat.RSquaredFrom(estimates, ys, nil)
	}
	return res, nil
}

func (p Polynomial) round(v float64) float64 {
	if p.Precision < 0 {
		return v
	}
	scale := math.Pow(10, float64(p.Precision))
	return math.Round(v*scale) / scale
}

// evaluate computes sum(c[i] * x^i).
func evaluate(coefficients []float64, x float64) float64 {
	y := 0.0
	for i := len(coefficients) - 1; i >= 0; i-- {
		y = y*x + coefficients[i]
	}
	return y
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
