package charts

import "github.com/charmbracelet/lipgloss"

// Palette is the Okabe-Ito qualitative palette, designed for colorblind accessibility.
// See: https://jfly.uni-koeln.de/color/
var Palette = []string{
	"#E69F00", // Orange
	"#56B4E9", // Sky blue
	"#009E73", // Bluish green
	"#F0E442", // Yellow
	"#0072B2", // Blue
}

// AxisColor is the color used for chart axes.
var AxisColor = lipgloss.Color("#BBBBBB") // Grey - neutral against the palette

// LabelColor is the color used for chart labels.
var LabelColor = lipgloss.Color("#66CCEE") // Cyan - good contrast

// BandColors tint the life stage bands in the terminal, where translucent
// fills are not available.
var BandColors = []lipgloss.Color{
	lipgloss.Color("#3A3D3A"),
	lipgloss.Color("#2E4A2E"),
}

// SeriesStyle returns a lipgloss style with the given foreground color.
func SeriesStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// BandStyle returns the style for the i-th band, cycling through BandColors.
func BandStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(BandColors[index%len(BandColors)])
}
