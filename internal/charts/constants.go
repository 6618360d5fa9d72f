package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 4

	// MinChartHeight is the floor for terminal chart height.
	MinChartHeight = 8

	// MinChartWidth is the floor for terminal chart width.
	MinChartWidth = 20

	// DefaultImageWidth and DefaultImageHeight size exported images.
	DefaultImageWidth  = 1024
	DefaultImageHeight = 512
)
