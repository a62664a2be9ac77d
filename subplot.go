package texart

import (
	"fmt"
	"math"
	"strings"

	"github.com/texart/texart/internal/interpolate"
	"github.com/texart/texart/internal/tikz"
)

// Mark and line style sentinels. The zero value of the corresponding
// option field selects the default; these explicitly disable the
// feature.
const (
	// MarkNone draws a series without plot marks.
	MarkNone = "none"

	// LineNone draws a series with marks only, no connecting line.
	LineNone = "none"
)

// Defaults for series styling.
const (
	defaultMark      = "o"
	defaultLineStyle = "solid"
)

// SeriesOptions styles a single data series.
//
// Mark may be any plot mark accepted by TikZ (e.g. *, x, +, o, square,
// triangle); LineStyle any TikZ line style (e.g. solid, dashed, dotted,
// thick, or combinations like "red,thick,dashed"). Both are passed
// through as text.
type SeriesOptions struct {
	// Mark is the symbol marking each data point. Empty selects the
	// default circle; MarkNone disables marks.
	Mark string

	// LineStyle is the style of the connecting line. Empty selects
	// solid; LineNone plots marks only.
	LineStyle string

	// UseSteps draws a stepped plot (constant between points).
	UseSteps bool

	// MarkStyle holds TikZ mark options (e.g. "mark size=.75pt").
	MarkStyle string

	// XErr and YErr are optional per-point errors. Each must be empty
	// or match the data length.
	XErr []float64
	YErr []float64
}

// tikzOptions renders the options as a PGFPlots option string, in the
// fixed order mark, line, steps, mark options.
func (o SeriesOptions) tikzOptions() string {
	mark := o.Mark
	if mark == "" {
		mark = defaultMark
	}

	var opts []string
	if mark == MarkNone {
		opts = append(opts, "no markers")
	} else {
		opts = append(opts, "mark="+mark)
	}

	line := o.LineStyle
	if line == "" {
		line = defaultLineStyle
	}
	if line == LineNone {
		opts = append(opts, "only marks")
	} else {
		opts = append(opts, line)
	}

	if o.UseSteps {
		opts = append(opts, "const plot")
	}
	if o.MarkStyle != "" {
		opts = append(opts, "mark options={"+o.MarkStyle+"}")
	}
	return strings.Join(opts, ",")
}

// resolvedMark returns the effective plot mark.
func (o SeriesOptions) resolvedMark() string {
	if o.Mark == "" {
		return defaultMark
	}
	return o.Mark
}

// PinOptions configures a pin annotation.
type PinOptions struct {
	// Location places the pin text relative to the data point. Any
	// TikZ direction is allowed (above, below left, ...). Empty
	// selects a per-method default.
	Location string

	// X anchors the pin at this x-value of the most recent series,
	// interpolating the y-value between data points. Only used by
	// AddPin. When nil, RelativePosition is used instead.
	X *float64

	// UseArrow draws a connector between the data point and the text.
	UseArrow bool

	// RelativePosition places the pin at this fraction of the path arc
	// length, 0 = start, 1 = end. When nil, the location decides: 0
	// for "left", 1 for "right", 0.8 otherwise.
	RelativePosition *float64

	// Style holds optional TikZ styles for the pin (e.g. "red").
	Style string
}

// relativeNodeLocations maps label locations to anchors in relative
// axis coordinates.
var relativeNodeLocations = map[string]tikz.Label{
	"upper right": {NodeLocation: "below left", X: 1, Y: 1},
	"upper left":  {NodeLocation: "below right", X: 0, Y: 1},
	"lower left":  {NodeLocation: "above right", X: 0, Y: 0},
	"lower right": {NodeLocation: "above left", X: 1, Y: 0},
	"center":      {NodeLocation: "center", X: 0.5, Y: 0.5},
}

// Float returns a pointer to v, for the optional limit parameters.
func Float(v float64) *float64 { return &v }

// SubPlot accumulates data series, annotations and axis options for
// one data rectangle. It is embedded by Plot for stand-alone figures
// and by the panels of a MultiPlot; it is not used directly.
type SubPlot struct {
	xmode, ymode AxisMode
	radians      bool

	series  []tikz.Series
	hist2ds []tikz.Hist2D
	regions []tikz.Region
	hlines  []tikz.Line
	vlines  []tikz.Line
	pins    []tikz.Pin
	label   *tikz.Label

	title, xlabel, ylabel string
	limits                tikz.Limits
	xticks, yticks        []string
	xtickLabels           []string
	ytickLabels           []string
	axisEqual             bool
	axisOptions           string
	colormap              string
	colorbar              *tikz.Colorbar
	scalebarLocation      string
}

// Plot adds a data series.
//
// When the series uses a fillable mark (o, square, triangle, diamond,
// pentagon), a white background series is inserted before all others so
// that crossing lines do not show through open marks.
func (s *SubPlot) Plot(x, y []float64, opts SeriesOptions) error {
	if err := checkSeriesData(x, y, opts); err != nil {
		return err
	}
	x = s.angles(x)

	s.clearMarkBackground(x, y, opts.resolvedMark())
	s.series = append(s.series, makeSeries(x, y, opts.tikzOptions(), opts))
	return nil
}

// Scatter adds a marks-only data series.
func (s *SubPlot) Scatter(x, y []float64, opts SeriesOptions) error {
	opts.LineStyle = LineNone
	return s.Plot(x, y, opts)
}

// ScatterTable adds a scatter series colored by the point meta values
// c through the current colormap. Use SetMLimits to fix the colormap
// range and SetSLimits to scale mark sizes by meta value.
func (s *SubPlot) ScatterTable(x, y, c []float64, opts SeriesOptions) error {
	if err := checkSeriesData(x, y, opts); err != nil {
		return err
	}
	if len(c) != len(x) {
		return fmt.Errorf("%w: len(c)=%d, len(x)=%d", ErrDimensionMismatch, len(c), len(x))
	}
	x = s.angles(x)

	opts.LineStyle = LineNone
	options := opts.tikzOptions() + ", scatter, scatter src=explicit"
	series := makeSeries(x, y, options, opts)
	series.ShowMeta = true
	for i := range series.Points {
		series.Points[i].Meta = c[i]
	}
	s.series = append(s.series, series)
	return nil
}

// Histogram plots a pre-binned histogram as a stepped line. The counts
// and bin edges follow the usual convention: len(binEdges) must be
// len(counts)+1. Use Bin to produce both from raw data.
func (s *SubPlot) Histogram(counts, binEdges []float64, opts SeriesOptions) error {
	if len(counts) == 0 {
		return fmt.Errorf("%w: histogram needs at least one bin", ErrEmptyData)
	}
	if len(binEdges) != len(counts)+1 {
		return fmt.Errorf("%w: len(binEdges) should be len(counts)+1, got %d and %d",
			ErrInvalidHistogram, len(binEdges), len(counts))
	}

	// Repeat the last count so the final bin is drawn at full width.
	y := append(append([]float64(nil), counts...), counts[len(counts)-1])
	opts.Mark = MarkNone
	opts.UseSteps = true
	return s.Plot(binEdges, y, opts)
}

// Histogram2DType selects how 2D histogram cells are drawn.
type Histogram2DType string

// Supported 2D histogram cell renderings.
const (
	// Hist2DShaded fills cells with grayscale shades, black for the
	// minimum count and white for the maximum.
	Hist2DShaded Histogram2DType = Histogram2DType(tikz.Hist2DGrayscale)

	// Hist2DShadedReverse is Hist2DShaded with the shades reversed.
	Hist2DShadedReverse Histogram2DType = Histogram2DType(tikz.Hist2DGrayscaleInverse)

	// Hist2DArea draws filled squares whose area is proportional to
	// the count.
	Hist2DArea Histogram2DType = Histogram2DType(tikz.Hist2DArea)
)

// Histogram2D plots a pre-binned two-dimensional histogram. Counts is
// indexed [ix][iy] and must have len(xEdges)-1 rows of len(yEdges)-1
// values each. The axis limits are set to the edge ranges. Style holds
// optional TikZ styles applied to each cell; the shaded types override
// color styles.
func (s *SubPlot) Histogram2D(counts [][]float64, xEdges, yEdges []float64, typ Histogram2DType, style string) error {
	switch typ {
	case Hist2DShaded, Hist2DShadedReverse, Hist2DArea:
	default:
		return fmt.Errorf("%w: unsupported 2D histogram type %q", ErrInvalidHistogram, typ)
	}
	if len(counts) != len(xEdges)-1 {
		return fmt.Errorf("%w: %d count rows for %d x-edges", ErrInvalidHistogram, len(counts), len(xEdges))
	}
	maxCount := 0.0
	for _, row := range counts {
		if len(row) != len(yEdges)-1 {
			return fmt.Errorf("%w: %d count columns for %d y-edges", ErrInvalidHistogram, len(row), len(yEdges))
		}
		for _, c := range row {
			maxCount = math.Max(maxCount, c)
		}
	}

	s.hist2ds = append(s.hist2ds, tikz.Hist2D{
		Type:   string(typ),
		Style:  style,
		XEdges: xEdges,
		YEdges: yEdges,
		Counts: counts,
		Max:    maxCount,
	})
	s.SetXLimits(Float(xEdges[0]), Float(xEdges[len(xEdges)-1]))
	s.SetYLimits(Float(yEdges[0]), Float(yEdges[len(yEdges)-1]))
	return nil
}

// AddPin attaches a pin annotation to the most recent data series.
// With opts.X set, the pin anchors at that x-value, interpolating y
// between data points; otherwise opts.RelativePosition selects a point
// along the series path. The default location is "left".
func (s *SubPlot) AddPin(text string, opts PinOptions) error {
	if len(s.series) == 0 {
		return fmt.Errorf("%w: plot a data series before adding pins", ErrNoSeries)
	}
	if opts.Location == "" {
		opts.Location = "left"
	}

	x, y := seriesXY(s.series[len(s.series)-1])
	if opts.X != nil {
		px := s.angle(*opts.X)
		py := interpolate.At(px, x, y)
		s.addPinAt(px, py, text, opts)
		return nil
	}
	return s.addPinAlongPath(x, y, text, opts)
}

// AddPinAt places a pin at a fixed data coordinate.
func (s *SubPlot) AddPinAt(x, y float64, text string, opts PinOptions) {
	if opts.Location == "" {
		opts.Location = "above right"
	}
	s.addPinAt(s.angle(x), y, text, opts)
}

// AddPinAtXY places a pin along the path described by x and y. The
// anchor point sits at opts.RelativePosition of the cumulative arc
// length, computed by LocateOnPath with this plot's axis modes: 0 is
// the first point, 1 the last, values outside [0, 1] extend beyond the
// path ends. The default location is "above right".
func (s *SubPlot) AddPinAtXY(x, y []float64, text string, opts PinOptions) error {
	if opts.Location == "" {
		opts.Location = "above right"
	}
	return s.addPinAlongPath(s.angles(x), y, text, opts)
}

// addPinAlongPath resolves the relative position default and anchors
// the pin on the path. Coordinates have already been angle-converted.
func (s *SubPlot) addPinAlongPath(x, y []float64, text string, opts PinOptions) error {
	pos := 0.8
	switch {
	case opts.RelativePosition != nil:
		pos = *opts.RelativePosition
	case opts.Location == "left":
		pos = 0
	case opts.Location == "right":
		pos = 1
	}

	px, py, err := LocateOnPath(x, y, pos, s.xmode, s.ymode)
	if err != nil {
		return fmt.Errorf("placing pin: %w", err)
	}
	s.addPinAt(px, py, text, opts)
	return nil
}

func (s *SubPlot) addPinAt(x, y float64, text string, opts PinOptions) {
	s.pins = append(s.pins, tikz.Pin{
		X:        x,
		Y:        y,
		Text:     text,
		Location: opts.Location,
		UseArrow: opts.UseArrow,
		Style:    opts.Style,
	})
}

// SetLabel places a text label inside the plot. Location is one of
// "upper right", "upper left", "lower left", "lower right" or
// "center"; style holds optional TikZ styles for the text.
func (s *SubPlot) SetLabel(text, location, style string) error {
	base, ok := relativeNodeLocations[location]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}
	base.Text = text
	base.Style = style
	s.label = &base
	return nil
}

// ShadeRegion shades the area between the lower and upper bounds over
// x. An empty color selects lightgray.
func (s *SubPlot) ShadeRegion(x, lower, upper []float64, color string) error {
	if len(x) != len(lower) || len(x) != len(upper) {
		return fmt.Errorf("%w: len(x)=%d, len(lower)=%d, len(upper)=%d",
			ErrDimensionMismatch, len(x), len(lower), len(upper))
	}
	if color == "" {
		color = "lightgray"
	}
	x = s.angles(x)

	// Walk along the lower bound and back along the upper to close the
	// polygon.
	points := make([]tikz.Point, 0, 2*len(x))
	for i := range x {
		points = append(points, tikz.Point{X: x[i], Y: lower[i]})
	}
	for i := len(x) - 1; i >= 0; i-- {
		points = append(points, tikz.Point{X: x[i], Y: upper[i]})
	}
	s.regions = append(s.regions, tikz.Region{Color: color, Points: points})
	return nil
}

// DrawHorizontalLine draws a horizontal rule across the data rectangle
// at the given y-value. Linestyle holds TikZ styles (e.g. "dashed").
func (s *SubPlot) DrawHorizontalLine(y float64, linestyle string) {
	s.hlines = append(s.hlines, tikz.Line{Value: y, Options: linestyle})
}

// DrawVerticalLine draws a vertical rule across the data rectangle at
// the given x-value.
func (s *SubPlot) DrawVerticalLine(x float64, linestyle string) {
	s.vlines = append(s.vlines, tikz.Line{Value: s.angle(x), Options: linestyle})
}

// SetTitle sets the plot title.
func (s *SubPlot) SetTitle(text string) { s.title = text }

// SetXLabel sets the x-axis label.
func (s *SubPlot) SetXLabel(text string) { s.xlabel = text }

// SetYLabel sets the y-axis label.
func (s *SubPlot) SetYLabel(text string) { s.ylabel = text }

// SetXLimits sets the displayed x-range. Nil leaves a bound automatic.
func (s *SubPlot) SetXLimits(min, max *float64) {
	s.limits.XMin, s.limits.XMax = min, max
}

// SetYLimits sets the displayed y-range. Nil leaves a bound automatic.
func (s *SubPlot) SetYLimits(min, max *float64) {
	s.limits.YMin, s.limits.YMax = min, max
}

// SetMLimits sets the point meta (colormap) range. Meta values outside
// the range are clipped.
func (s *SubPlot) SetMLimits(min, max *float64) {
	s.limits.MMin, s.limits.MMax = min, max
}

// SetSLimits sets the mark sizes used for the smallest and largest
// point meta values in size-scaled scatter plots. Mark area grows
// linearly with meta value, so the stored sizes scale with the square
// root.
func (s *SubPlot) SetSLimits(min, max float64) error {
	if min <= 0 || max <= min {
		return fmt.Errorf("%w: need 0 < min < max, got %v and %v", ErrInvalidLimit, min, max)
	}
	s.limits.SMin = Float(math.Sqrt(min))
	s.limits.SMax = Float(math.Sqrt(max))
	return nil
}

// SetXTicks places the x-axis ticks at the given values.
func (s *SubPlot) SetXTicks(ticks []float64) { s.xticks = formatTicks(ticks) }

// SetYTicks places the y-axis ticks at the given values.
func (s *SubPlot) SetYTicks(ticks []float64) { s.yticks = formatTicks(ticks) }

// SetLogXTicks places x-axis ticks at the given powers of ten: [1, 2,
// 3] puts ticks at 10, 100 and 1000.
func (s *SubPlot) SetLogXTicks(exponents []int) { s.xticks = formatLogTicks(exponents) }

// SetLogYTicks places y-axis ticks at the given powers of ten.
func (s *SubPlot) SetLogYTicks(exponents []int) { s.yticks = formatLogTicks(exponents) }

// SetXTickLabels overrides the x-axis tick labels.
func (s *SubPlot) SetXTickLabels(labels []string) { s.xtickLabels = labels }

// SetYTickLabels overrides the y-axis tick labels.
func (s *SubPlot) SetYTickLabels(labels []string) { s.ytickLabels = labels }

// SetAxisEqual scales the axes so the unit vectors have equal length.
func (s *SubPlot) SetAxisEqual() { s.axisEqual = true }

// SetAxisOptions sets additional axis options as plain text, passed
// through to PGFPlots unchecked.
func (s *SubPlot) SetAxisOptions(text string) { s.axisOptions = text }

// SetColormap selects a PGFPlots colormap by name (e.g. hot, cool,
// viridis) for colored scatter plots.
func (s *SubPlot) SetColormap(name string) { s.colormap = name }

// SetColorbar shows a colorbar for the colormap range.
func (s *SubPlot) SetColorbar(label string, horizontal bool) {
	s.colorbar = &tikz.Colorbar{Label: label, Horizontal: horizontal}
}

// SetScalebar shows a small legend noting that mark area scales with
// the point meta value, at one of the SetLabel locations.
func (s *SubPlot) SetScalebar(location string) error {
	if _, ok := relativeNodeLocations[location]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}
	s.scalebarLocation = location
	return nil
}

// clearMarkBackground inserts a white, marks-only copy of the series
// before all others for marks with a fillable interior.
func (s *SubPlot) clearMarkBackground(x, y []float64, mark string) {
	var bg string
	switch mark {
	case "o":
		bg = "mark=*,mark options=white,only marks"
	case "square", "triangle", "diamond", "pentagon":
		bg = "mark=" + mark + "*,mark options=white,only marks"
	default:
		return
	}
	series := makeSeries(x, y, bg, SeriesOptions{})
	s.series = append([]tikz.Series{series}, s.series...)
}

// angle converts a single angular value to degrees on radian polar
// axes; all other plots pass values through.
func (s *SubPlot) angle(v float64) float64 {
	if s.radians {
		return v * 180 / math.Pi
	}
	return v
}

// angles converts a slice of angular values, copying only when a
// conversion applies.
func (s *SubPlot) angles(v []float64) []float64 {
	if !s.radians {
		return v
	}
	out := make([]float64, len(v))
	for i, e := range v {
		out[i] = e * 180 / math.Pi
	}
	return out
}

// buildAxis assembles the render state for this subplot.
func (s *SubPlot) buildAxis(width, height string, polar bool) *tikz.Axis {
	ax := &tikz.Axis{
		XMode:       s.xmode.String(),
		YMode:       s.ymode.String(),
		Polar:       polar,
		Title:       s.title,
		XLabel:      s.xlabel,
		YLabel:      s.ylabel,
		Width:       width,
		Height:      height,
		Limits:      s.limits,
		XTicks:      s.xticks,
		YTicks:      s.yticks,
		XTickLabels: s.xtickLabels,
		YTickLabels: s.ytickLabels,
		AxisEqual:   s.axisEqual,
		Colormap:    s.colormap,
		Colorbar:    s.colorbar,
		AxisOptions: s.axisOptions,

		Series:          s.series,
		Hist2Ds:         s.hist2ds,
		Regions:         s.regions,
		HorizontalLines: s.hlines,
		VerticalLines:   s.vlines,
		Pins:            s.pins,
		Label:           s.label,
	}
	if s.scalebarLocation != "" {
		bar := relativeNodeLocations[s.scalebarLocation]
		bar.Text = `area $\propto$ value`
		bar.Style = `draw, fill=white, font=\footnotesize`
		ax.Scalebar = &bar
	}
	return ax
}

// checkSeriesData validates data and error bar lengths.
func checkSeriesData(x, y []float64, opts SeriesOptions) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrDimensionMismatch, len(x), len(y))
	}
	if len(opts.XErr) != 0 && len(opts.XErr) != len(x) {
		return fmt.Errorf("%w: len(xerr)=%d, len(x)=%d", ErrDimensionMismatch, len(opts.XErr), len(x))
	}
	if len(opts.YErr) != 0 && len(opts.YErr) != len(y) {
		return fmt.Errorf("%w: len(yerr)=%d, len(y)=%d", ErrDimensionMismatch, len(opts.YErr), len(y))
	}
	return nil
}

// makeSeries assembles a render series from data and a prepared
// options string.
func makeSeries(x, y []float64, options string, opts SeriesOptions) tikz.Series {
	series := tikz.Series{
		Options:  options,
		Points:   make([]tikz.Point, len(x)),
		ShowXErr: len(opts.XErr) > 0,
		ShowYErr: len(opts.YErr) > 0,
	}
	for i := range x {
		p := tikz.Point{X: x[i], Y: y[i]}
		if series.ShowXErr {
			p.XErr = opts.XErr[i]
		}
		if series.ShowYErr {
			p.YErr = opts.YErr[i]
		}
		series.Points[i] = p
	}
	return series
}

// seriesXY extracts the data coordinates of a series.
func seriesXY(s tikz.Series) (x, y []float64) {
	x = make([]float64, len(s.Points))
	y = make([]float64, len(s.Points))
	for i, p := range s.Points {
		x[i], y[i] = p.X, p.Y
	}
	return x, y
}

func formatTicks(ticks []float64) []string {
	out := make([]string, len(ticks))
	for i, t := range ticks {
		out[i] = tikz.FormatFloat(t)
	}
	return out
}

func formatLogTicks(exponents []int) []string {
	out := make([]string, len(exponents))
	for i, e := range exponents {
		out[i] = fmt.Sprintf("1e%d", e)
	}
	return out
}
