package tikz

import (
	"fmt"
	"strings"
)

// Options returns the option list of the axis environment.
func (a *Axis) Options() []string {
	var o []string
	if a.Width != "" {
		o = append(o, "width="+a.Width)
	}
	if a.Height != "" {
		o = append(o, "height="+a.Height)
	}
	// Grid panels leave the modes empty; they inherit them from the
	// groupplot options.
	if !a.Polar && a.XMode != "" {
		o = append(o, "xmode="+a.XMode, "ymode="+a.YMode)
	}
	if a.Title != "" {
		o = append(o, "title={"+a.Title+"}")
	}
	if a.XLabel != "" {
		o = append(o, "xlabel={"+a.XLabel+"}")
	}
	if a.YLabel != "" {
		o = append(o, "ylabel={"+a.YLabel+"}")
	}
	o = append(o, a.Limits.options()...)
	o = append(o, tickOptions("x", a.XTicks, a.XTickLabels)...)
	o = append(o, tickOptions("y", a.YTicks, a.YTickLabels)...)
	if a.AxisEqual {
		o = append(o, "axis equal")
	}
	o = append(o, colormapOptions(a.Colormap, a.Colorbar)...)
	if a.AxisOptions != "" {
		o = append(o, a.AxisOptions)
	}
	return o
}

// PanelOptions returns the option list for one grid panel, combining
// the axis options with the grid-specific tick label handling. Grids
// hide tick labels by default since adjacent panels share axis lines.
func (a *Axis) PanelOptions() []string {
	if a.Empty {
		return []string{"group/empty plot"}
	}
	o := a.Options()
	if !a.ShowXTickLabels {
		o = append(o, "xticklabels={}")
	} else if a.XTickLabelPos != "" {
		o = append(o, "xticklabel pos="+a.XTickLabelPos)
	}
	if !a.ShowYTickLabels {
		o = append(o, "yticklabels={}")
	} else if a.YTickLabelPos != "" {
		o = append(o, "yticklabel pos="+a.YTickLabelPos)
	}
	return o
}

// Options returns the option list of the groupplot environment. The
// grid-wide options apply to every panel.
func (g *Grid) Options() []string {
	o := []string{fmt.Sprintf(
		"group style={group size=%d by %d, horizontal sep=0pt, vertical sep=0pt}",
		g.Columns, g.Rows)}
	if g.Width != "" {
		o = append(o, "width="+g.Width)
	}
	if g.Height != "" {
		o = append(o, "height="+g.Height)
	}
	o = append(o, "xmode="+g.XMode, "ymode="+g.YMode)
	o = append(o, g.Limits.options()...)
	o = append(o, tickOptions("x", g.XTicks, nil)...)
	o = append(o, tickOptions("y", g.YTicks, nil)...)
	o = append(o, colormapOptions(g.Colormap, g.Colorbar)...)
	if g.AxisOptions != "" {
		o = append(o, g.AxisOptions)
	}
	return o
}

func (l *Limits) options() []string {
	var o []string
	appendLimit := func(name string, v *float64) {
		if v != nil {
			o = append(o, name+"="+FormatFloat(*v))
		}
	}
	appendLimit("xmin", l.XMin)
	appendLimit("xmax", l.XMax)
	appendLimit("ymin", l.YMin)
	appendLimit("ymax", l.YMax)
	appendLimit("point meta min", l.MMin)
	appendLimit("point meta max", l.MMax)
	if l.SMin != nil && l.SMax != nil {
		// Map the normalized point meta (0-1000) onto the requested
		// mark size range for size-scaled scatter plots.
		o = append(o, fmt.Sprintf(
			"scatter/@pre marker code/.append style={/tikz/mark size={%s+(%s-%s)*\\pgfplotspointmetatransformed/1000}}",
			FormatFloat(*l.SMin), FormatFloat(*l.SMax), FormatFloat(*l.SMin)))
	}
	return o
}

func tickOptions(axis string, ticks, labels []string) []string {
	var o []string
	if len(ticks) > 0 {
		o = append(o, axis+"tick={"+strings.Join(ticks, ",")+"}")
	}
	if len(labels) > 0 {
		quoted := make([]string, len(labels))
		for i, l := range labels {
			quoted[i] = "{" + l + "}"
		}
		o = append(o, axis+"ticklabels={"+strings.Join(quoted, ",")+"}")
	}
	return o
}

func colormapOptions(colormap string, colorbar *Colorbar) []string {
	var o []string
	if colormap != "" {
		o = append(o, "colormap name="+colormap)
	}
	if colorbar != nil {
		o = append(o, "colorbar")
		if colorbar.Horizontal {
			o = append(o, "colorbar horizontal")
			if colorbar.Label != "" {
				o = append(o, "colorbar style={xlabel={"+colorbar.Label+"}}")
			}
		} else if colorbar.Label != "" {
			o = append(o, "colorbar style={ylabel={"+colorbar.Label+"}}")
		}
	}
	return o
}
