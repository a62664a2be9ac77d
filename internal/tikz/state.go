// Package tikz turns accumulated plot state into TikZ/PGFPlots markup.
//
// The package deliberately separates the render state (plain value
// structs assembled by the public API) from the functions that
// serialize it. Serialization happens in two steps: markup generation
// for the individual drawing commands, and template expansion for the
// surrounding picture and document structure.
package tikz

// Point is a single data coordinate with optional error bars and an
// optional point meta value for colormap or size mapping.
type Point struct {
	X, Y float64
	XErr float64
	YErr float64
	Meta float64
}

// Series is one \addplot command: an options string and its data.
type Series struct {
	Options  string
	Points   []Point
	ShowXErr bool
	ShowYErr bool
	ShowMeta bool
}

// Pin is a short annotation attached to a data coordinate.
type Pin struct {
	X, Y     float64
	Text     string
	Location string
	UseArrow bool
	Style    string
}

// Label is free text positioned in relative axis coordinates.
type Label struct {
	Text         string
	NodeLocation string
	X, Y         float64
	Style        string
}

// Line is a horizontal or vertical rule across the data rectangle.
type Line struct {
	Value   float64
	Options string
}

// Region is a closed filled polygon, used for shading between curves.
type Region struct {
	Color  string
	Points []Point
}

// Histogram2D cell rendering styles.
const (
	Hist2DGrayscale        = "bw"
	Hist2DGrayscaleInverse = "reverse_bw"
	Hist2DArea             = "area"
)

// Hist2D is a binned 2D histogram drawn as one filled cell per bin.
// Counts is indexed [ix][iy] with len(XEdges)-1 rows and len(YEdges)-1
// columns.
type Hist2D struct {
	Type   string
	Style  string
	XEdges []float64
	YEdges []float64
	Counts [][]float64
	Max    float64
}

// Colorbar describes the optional colormap legend.
type Colorbar struct {
	Label      string
	Horizontal bool
}

// Limits holds optional axis bounds. Nil means automatic.
type Limits struct {
	XMin, XMax *float64
	YMin, YMax *float64
	// Point meta (colormap) range.
	MMin, MMax *float64
	// Mark size range for scatter size mapping.
	SMin, SMax *float64
}

// Axis is the render state of one data rectangle. For stand-alone
// plots it describes the whole picture; in a grid it describes one
// panel.
type Axis struct {
	XMode, YMode string
	Polar        bool

	Title  string
	XLabel string
	YLabel string
	Width  string
	Height string

	Limits      Limits
	XTicks      []string
	YTicks      []string
	XTickLabels []string
	YTickLabels []string
	AxisEqual   bool
	Colormap    string
	Colorbar    *Colorbar
	AxisOptions string

	Series          []Series
	Hist2Ds         []Hist2D
	Regions         []Region
	HorizontalLines []Line
	VerticalLines   []Line
	Pins            []Pin
	Label           *Label
	Scalebar        *Label

	// Grid panel metadata; unused for stand-alone plots.
	Empty           bool
	ShowXTickLabels bool
	ShowYTickLabels bool
	XTickLabelPos   string
	YTickLabelPos   string
}

// Env returns the PGFPlots axis environment for the plot.
func (a *Axis) Env() string {
	if a.Polar {
		return "polaraxis"
	}
	return "axis"
}

// Grid is the render state of a multi-panel plot, drawn with the
// groupplots library. Panels are stored row-major.
type Grid struct {
	Rows, Columns int
	Width, Height string
	XMode, YMode  string

	XLabel string
	YLabel string

	Limits      Limits
	XTicks      []string
	YTicks      []string
	Colormap    string
	Colorbar    *Colorbar
	AxisOptions string

	Panels []*Axis
}
