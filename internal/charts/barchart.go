package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/comgen/marylandPlot/internal/plot"
)

// BandBarchart draws the mean expression of each gene per annotation band as
// horizontal bars in the gene's color.
func BandBarchart(d plot.Descriptor, width int) (string, error) {
	means := d.BandMeans()
	if len(means) == 0 {
		return "", ErrEmptyPlot
	}

	barData := make([]barchart.BarData, 0, len(means))
	for _, m := range means {
		label := fmt.Sprintf("%s %s (%.2f, n=%d)", m.Gene, m.Band, m.Mean, m.N)
		barData = append(barData, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: label, Value: m.Mean, Style: SeriesStyle(m.Color)},
			},
		})
	}

	bc := barchart.New(max(width, MinChartWidth), len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View(), nil
}
