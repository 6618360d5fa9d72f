package charts

import (
	"fmt"
	"math/rand/v2"
)

// RandomSource draws the channels of fallback colors.
type RandomSource interface {
	IntN(n int) int
}

// Assigner hands out a stable color per gene. A gene keeps its color for the
// life of the Assigner, including after it is deselected. Once every palette
// color is taken, colors are drawn at random and may collide.
type Assigner struct {
	palette  []string
	rand     RandomSource
	assigned map[string]string
	used     map[string]bool
}

// NewAssigner returns an Assigner over palette. A nil palette means Palette,
// a nil source means a time seeded generator.
func NewAssigner(palette []string, source RandomSource) *Assigner {
	if palette == nil {
		palette = Palette
	}
	if source == nil {
		source = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Assigner{
		palette:  append([]string(nil), palette...),
		rand:     source,
		assigned: make(map[string]string),
		used:     make(map[string]bool),
	}
}

// ColorFor returns the color of gene, assigning one on first use.
func (a *Assigner) ColorFor(gene string) string {
	if color, ok := a.assigned[gene]; ok {
		return color
	}
	color := a.next()
	a.assigned[gene] = color
	a.used[color] = true
	return color
}

// Lookup returns the color of gene without assigning one.
func (a *Assigner) Lookup(gene string) (string, bool) {
	color, ok := a.assigned[gene]
	return color, ok
}

// Len is the number of genes that have been assigned a color.
func (a *Assigner) Len() int {
	return len(a.assigned)
}

func (a *Assigner) next() string {
	for _, color := range a.palette {
		if !a.used[color] {
			return color
		}
	}
	return fmt.Sprintf("#%02X%02X%02X", a.rand.IntN(256), a.rand.IntN(256), a.rand.IntN(256))
}
