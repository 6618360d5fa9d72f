package plot

import (
	"gonum.org/v1/gonum/stat"
)

// BandMean is the mean expression of one gene inside one annotation band.
type BandMean struct {
	Gene  string  `json:"gene" yaml:"gene"`
	Band  string  `json:"band" yaml:"band"`
	Color string  `json:"color" yaml:"color"`
	Mean  float64 `json:"mean" yaml:"mean"`
	N     int     `json:"n" yaml:"n"`
}

// BandMeans averages the raw samples of every points series over each band,
// by gene in draw order and then by band. A band is [XMin, XMax). Bands
// without samples for a gene are left out.
func (d Descriptor) BandMeans() []BandMean {
	var out []BandMean
	for _, s := range d.Series {
		if s.Kind != KindPoints {
			continue
		}
		for _, b := range d.Bands {
			var ys []float64
			for _, p := range s.Points {
				if p.X >= b.XMin && p.X < b.XMax {
					ys = append(ys, p.Y)
				}
			}
			if len(ys) == 0 {
				continue
			}
			out = append(out, BandMean{
				Gene:  s.Gene,
				Band:  b.Label,
				Color: s.Color,
				Mean:  stat.Mean(ys, nil),
				N:     len(ys),
			})
		}
	}
	return out
}
