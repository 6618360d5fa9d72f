package tui

import "time"

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// BlurClearDelay lets a click on a still visible suggestion land before
	// the list is hidden.
	BlurClearDelay = 100 * time.Millisecond

	// MaxVisibleSuggestions bounds the dropdown height.
	MaxVisibleSuggestions = 8

	// SuggestionsTop is the screen row of the first suggestion: one status
	// bar line and the three lines of the bordered search box.
	SuggestionsTop = 4

	// LegendMaxRows is the maximum number of visible rows in the legend table.
	LegendMaxRows = 5
)
