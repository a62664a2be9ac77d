package tikz

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// expReplacer normalizes Go scientific notation ("1e+06", "1e-07") to
// the compact form PGFPlots parses without surprises ("1e6", "1e-7").
var expReplacer = strings.NewReplacer("e+0", "e", "e-0", "e-", "e+", "e")

// FormatFloat renders a coordinate value for PGFPlots.
func FormatFloat(v float64) string {
	return expReplacer.Replace(strconv.FormatFloat(v, 'g', -1, 64))
}

// coordinate renders one data point, with error bars and point meta
// when the series carries them.
func (s *Series) coordinate(p Point) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%s,%s)", FormatFloat(p.X), FormatFloat(p.Y))
	if s.ShowXErr || s.ShowYErr {
		fmt.Fprintf(&b, " +- (%s,%s)", FormatFloat(p.XErr), FormatFloat(p.YErr))
	}
	if s.ShowMeta {
		fmt.Fprintf(&b, " [%s]", FormatFloat(p.Meta))
	}
	return b.String()
}

// command renders the full \addplot command for the series.
func (s *Series) command() string {
	opts := s.Options
	if s.ShowXErr || s.ShowYErr {
		var dirs []string
		if s.ShowXErr {
			dirs = append(dirs, "x dir=both, x explicit")
		}
		if s.ShowYErr {
			dirs = append(dirs, "y dir=both, y explicit")
		}
		opts += ", error bars/.cd, " + strings.Join(dirs, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\addplot[%s] coordinates {%%\n", opts)
	for _, p := range s.Points {
		b.WriteString("  " + s.coordinate(p) + "\n")
	}
	b.WriteString("};")
	return b.String()
}

// command renders a shaded region as a filled, non-stroked plot.
func (r *Region) command() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\addplot[draw=none, fill=%s] coordinates {%%\n", r.Color)
	for _, p := range r.Points {
		fmt.Fprintf(&b, "  (%s,%s)\n", FormatFloat(p.X), FormatFloat(p.Y))
	}
	b.WriteString("};")
	return b.String()
}

// command renders a pin annotation using the TikZ pin mechanism. The
// pin edge is the connector between the data point and the text; it is
// suppressed when no arrow is requested.
func (p *Pin) command() string {
	edge := "pin edge={draw=none}"
	if p.UseArrow {
		edge = "pin edge={<-, solid}"
	}
	opts := "pin distance=2.5ex, " + edge
	if p.Style != "" {
		opts += ", " + p.Style
	}
	return fmt.Sprintf("\\node[coordinate, pin={[%s]%s:{%s}}] at (axis cs:%s,%s) {};",
		opts, p.Location, p.Text, FormatFloat(p.X), FormatFloat(p.Y))
}

// command renders a free-text label in relative axis coordinates.
func (l *Label) command() string {
	opts := l.NodeLocation
	if l.Style != "" {
		opts += ", " + l.Style
	}
	return fmt.Sprintf("\\node[%s] at (rel axis cs:%s,%s) {%s};",
		opts, FormatFloat(l.X), FormatFloat(l.Y), l.Text)
}

// hline renders a horizontal rule spanning the data rectangle.
func hline(l Line) string {
	v := FormatFloat(l.Value)
	return fmt.Sprintf("\\draw[%s] ({rel axis cs:0,0} |- {axis cs:0,%s}) -- ({rel axis cs:1,0} |- {axis cs:0,%s});",
		l.Options, v, v)
}

// vline renders a vertical rule spanning the data rectangle.
func vline(l Line) string {
	v := FormatFloat(l.Value)
	return fmt.Sprintf("\\draw[%s] ({rel axis cs:0,0} -| {axis cs:%s,0}) -- ({rel axis cs:0,1} -| {axis cs:%s,0});",
		l.Options, v, v)
}

// commands renders a 2D histogram as one filled cell per bin.
func (h *Hist2D) commands() []string {
	var out []string
	for ix := 0; ix < len(h.XEdges)-1; ix++ {
		for iy := 0; iy < len(h.YEdges)-1; iy++ {
			if cmd := h.cell(ix, iy); cmd != "" {
				out = append(out, cmd)
			}
		}
	}
	return out
}

// cell renders a single histogram bin, or "" for an empty cell that
// would be invisible anyway.
func (h *Hist2D) cell(ix, iy int) string {
	count := h.Counts[ix][iy]
	v := 0.0
	if h.Max > 0 {
		v = count / h.Max
	}

	x0, x1 := h.XEdges[ix], h.XEdges[ix+1]
	y0, y1 := h.YEdges[iy], h.YEdges[iy+1]

	style := h.Style
	switch h.Type {
	case Hist2DGrayscale:
		// Minimum count draws black, maximum white.
		shade := fmt.Sprintf("black!%d", int(math.Round((1-v)*100)))
		style = joinStyles(shade, style)
	case Hist2DGrayscaleInverse:
		shade := fmt.Sprintf("black!%d", int(math.Round(v*100)))
		style = joinStyles(shade, style)
	case Hist2DArea:
		if v == 0 {
			return ""
		}
		// Cell area proportional to the count: side scales with sqrt.
		hx := math.Sqrt(v) * (x1 - x0) / 2
		hy := math.Sqrt(v) * (y1 - y0) / 2
		cx, cy := (x0+x1)/2, (y0+y1)/2
		x0, x1 = cx-hx, cx+hx
		y0, y1 = cy-hy, cy+hy
		style = joinStyles("black", style)
	}

	return fmt.Sprintf("\\fill[%s] (axis cs:%s,%s) rectangle (axis cs:%s,%s);",
		style, FormatFloat(x0), FormatFloat(y0), FormatFloat(x1), FormatFloat(y1))
}

func joinStyles(styles ...string) string {
	var parts []string
	for _, s := range styles {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Body returns the drawing commands of the axis in paint order: shaded
// regions at the bottom, then histogram cells, data series, rules, pins
// and finally text labels.
func (a *Axis) Body() []string {
	var out []string
	for i := range a.Regions {
		out = append(out, a.Regions[i].command())
	}
	for i := range a.Hist2Ds {
		out = append(out, a.Hist2Ds[i].commands()...)
	}
	for i := range a.Series {
		out = append(out, a.Series[i].command())
	}
	for _, l := range a.HorizontalLines {
		out = append(out, hline(l))
	}
	for _, l := range a.VerticalLines {
		out = append(out, vline(l))
	}
	for i := range a.Pins {
		out = append(out, a.Pins[i].command())
	}
	if a.Label != nil {
		out = append(out, a.Label.command())
	}
	if a.Scalebar != nil {
		out = append(out, a.Scalebar.command())
	}
	return out
}
