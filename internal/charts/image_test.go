package charts

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/comgen/marylandPlot/internal/plot"
	"github.com/comgen/marylandPlot/internal/regression"
)

func sampleDescriptor() plot.Descriptor {
	b := plot.NewBuilder(regression.NewPolynomial())
	d := b.Build(nil, nil, nil)
	pts := []regression.Point{{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 15}}
	d.Series = []plot.Series{
		{Gene: "A", Label: "A", Kind: plot.KindPoints, Color: Palette[0], PointRadius: plot.PointRadius, Points: pts},
		{Gene: "A", Kind: plot.KindFit, Color: Palette[0], ShowLine: true, PointRadius: plot.FitPointRadius, Points: pts},
	}
	return d
}

func TestWriteImage(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		check  func(out []byte) bool
	}{
		{"png", PNG, func(out []byte) bool { return bytes.HasPrefix(out, []byte("\x89PNG")) }},
		{"svg", SVG, func(out []byte) bool { return strings.Contains(string(out), "<svg") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteImage(&buf, sampleDescriptor(), tt.format, DefaultImageWidth, DefaultImageHeight); err != nil {
				t.Fatalf("WriteImage() error = %v", err)
			}
			if !tt.check(buf.Bytes()) {
				t.Errorf("WriteImage() output is not %s", tt.format)
			}
		})
	}
}

func TestWriteImageErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteImage(&buf, plot.Descriptor{}, PNG, 100, 100); !errors.Is(err, ErrEmptyPlot) {
		t.Errorf("WriteImage(empty) error = %v, want ErrEmptyPlot", err)
	}
	if err := WriteImage(&buf, sampleDescriptor(), Format("gif"), 100, 100); err == nil {
		t.Error("WriteImage(gif) error = nil")
	}
}
