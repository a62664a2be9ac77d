package texart

import (
	"context"
	"fmt"

	"github.com/texart/texart/internal/tikz"
)

// MultiSubPlot is one panel of a MultiPlot: a SubPlot plus its grid
// position and tick-label visibility. Panels are created by
// NewMultiPlot and retrieved with SubPlotAt.
type MultiSubPlot struct {
	SubPlot
	row, column     int
	empty           bool
	showXTickLabels bool
	showYTickLabels bool
	xtickLabelPos   string
	ytickLabelPos   string
}

// SetEmpty keeps the panel completely empty: nothing is drawn, not
// even the axis rectangle.
func (p *MultiSubPlot) SetEmpty() { p.empty = true }

// ShowXTickLabels shows the x-axis tick labels for this panel. Panels
// hide tick labels by default because adjacent panels share axis
// lines.
func (p *MultiSubPlot) ShowXTickLabels() { p.showXTickLabels = true }

// ShowYTickLabels shows the y-axis tick labels for this panel.
func (p *MultiSubPlot) ShowYTickLabels() { p.showYTickLabels = true }

// SetXTickLabelPosition draws the x-axis tick labels at the "top" or
// "bottom" of the panel. Mostly useful for single-row grids.
func (p *MultiSubPlot) SetXTickLabelPosition(position string) error {
	// PGFPlots names the tick label sides after the axis orientation.
	switch position {
	case "top":
		p.xtickLabelPos = "right"
	case "bottom":
		p.xtickLabelPos = "left"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLocation, position)
	}
	return nil
}

// SetYTickLabelPosition draws the y-axis tick labels on the "left" or
// "right" of the panel. Mostly useful for single-column grids.
func (p *MultiSubPlot) SetYTickLabelPosition(position string) error {
	switch position {
	case "left", "right":
		p.ytickLabelPos = position
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLocation, position)
	}
	return nil
}

// MultiPlot is a grid of subplots rendered as one figure with the
// PGFPlots groupplots library. Panels may be left empty, and most
// per-panel settings have a ...ForAll variant taking a list of
// [row, column] cells, or nil for every panel.
type MultiPlot struct {
	rows, columns int
	width, height string
	xmode, ymode  AxisMode

	xlabel, ylabel string
	limits         tikz.Limits
	xticks, yticks []string
	colormap       string
	colorbar       *tikz.Colorbar
	axisOptions    string

	subplots []*MultiSubPlot
}

// NewMultiPlot creates a grid of rows by columns empty subplots.
func NewMultiPlot(rows, columns int, opts ...Option) *MultiPlot {
	cfg := newConfig(opts)
	m := &MultiPlot{
		rows:    rows,
		columns: columns,
		width:   cfg.width,
		height:  cfg.height,
		xmode:   cfg.xmode,
		ymode:   cfg.ymode,
	}
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			sp := &MultiSubPlot{row: row, column: column}
			sp.xmode, sp.ymode = cfg.xmode, cfg.ymode
			m.subplots = append(m.subplots, sp)
		}
	}
	return m
}

// SubPlotAt returns the panel at the given grid position.
func (m *MultiPlot) SubPlotAt(row, column int) (*MultiSubPlot, error) {
	if row < 0 || row >= m.rows || column < 0 || column >= m.columns {
		return nil, fmt.Errorf("%w: no subplot at (%d, %d) in a %dx%d grid",
			ErrUnknownLocation, row, column, m.rows, m.columns)
	}
	return m.subplots[row*m.columns+column], nil
}

// each applies fn to the listed cells, or to every panel when cells is
// nil.
func (m *MultiPlot) each(cells [][2]int, fn func(*MultiSubPlot) error) error {
	if cells == nil {
		for _, sp := range m.subplots {
			if err := fn(sp); err != nil {
				return err
			}
		}
		return nil
	}
	for _, cell := range cells {
		sp, err := m.SubPlotAt(cell[0], cell[1])
		if err != nil {
			return err
		}
		if err := fn(sp); err != nil {
			return err
		}
	}
	return nil
}

// SetEmpty keeps the panel at (row, column) completely empty.
func (m *MultiPlot) SetEmpty(row, column int) error {
	sp, err := m.SubPlotAt(row, column)
	if err != nil {
		return err
	}
	sp.SetEmpty()
	return nil
}

// SetEmptyForAll keeps all listed panels completely empty.
func (m *MultiPlot) SetEmptyForAll(cells [][2]int) error {
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.SetEmpty()
		return nil
	})
}

// SetTitle sets a title for one panel.
func (m *MultiPlot) SetTitle(row, column int, text string) error {
	sp, err := m.SubPlotAt(row, column)
	if err != nil {
		return err
	}
	sp.SetTitle(text)
	return nil
}

// SetLabel places a text label inside one panel; see SubPlot.SetLabel.
func (m *MultiPlot) SetLabel(row, column int, text, location, style string) error {
	sp, err := m.SubPlotAt(row, column)
	if err != nil {
		return err
	}
	return sp.SetLabel(text, location, style)
}

// ShowXTickLabelsForAll shows x-axis tick labels for the listed
// panels, or all panels when cells is nil.
func (m *MultiPlot) ShowXTickLabelsForAll(cells [][2]int) error {
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.ShowXTickLabels()
		return nil
	})
}

// ShowYTickLabelsForAll shows y-axis tick labels for the listed
// panels, or all panels when cells is nil.
func (m *MultiPlot) ShowYTickLabelsForAll(cells [][2]int) error {
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.ShowYTickLabels()
		return nil
	})
}

// SetXLimitsForAll sets the x-range of the listed panels, or of the
// whole grid when cells is nil.
func (m *MultiPlot) SetXLimitsForAll(cells [][2]int, min, max *float64) error {
	if cells == nil {
		m.limits.XMin, m.limits.XMax = min, max
		return nil
	}
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.SetXLimits(min, max)
		return nil
	})
}

// SetYLimitsForAll sets the y-range of the listed panels, or of the
// whole grid when cells is nil.
func (m *MultiPlot) SetYLimitsForAll(cells [][2]int, min, max *float64) error {
	if cells == nil {
		m.limits.YMin, m.limits.YMax = min, max
		return nil
	}
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.SetYLimits(min, max)
		return nil
	})
}

// SetMLimitsForAll sets the point meta (colormap) range of the listed
// panels, or of the whole grid when cells is nil. Set the grid-wide
// range when combining per-panel colormaps with a shared colorbar.
func (m *MultiPlot) SetMLimitsForAll(cells [][2]int, min, max *float64) error {
	if cells == nil {
		m.limits.MMin, m.limits.MMax = min, max
		return nil
	}
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.SetMLimits(min, max)
		return nil
	})
}

// SetSLimitsForAll sets the mark size range of the listed panels, or
// of the whole grid when cells is nil.
func (m *MultiPlot) SetSLimitsForAll(cells [][2]int, min, max float64) error {
	if cells == nil {
		// Stash through a scratch subplot to share the validation.
		var scratch SubPlot
		if err := scratch.SetSLimits(min, max); err != nil {
			return err
		}
		m.limits.SMin, m.limits.SMax = scratch.limits.SMin, scratch.limits.SMax
		return nil
	}
	return m.each(cells, func(sp *MultiSubPlot) error {
		return sp.SetSLimits(min, max)
	})
}

// SetXTicksForAll places x-axis ticks for the listed panels, or for
// the whole grid when cells is nil.
func (m *MultiPlot) SetXTicksForAll(cells [][2]int, ticks []float64) error {
	if cells == nil {
		m.xticks = formatTicks(ticks)
		return nil
	}
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.SetXTicks(ticks)
		return nil
	})
}

// SetYTicksForAll places y-axis ticks for the listed panels, or for
// the whole grid when cells is nil.
func (m *MultiPlot) SetYTicksForAll(cells [][2]int, ticks []float64) error {
	if cells == nil {
		m.yticks = formatTicks(ticks)
		return nil
	}
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.SetYTicks(ticks)
		return nil
	})
}

// SetLogXTicksForAll places x-axis ticks at powers of ten for the
// listed panels, or for the whole grid when cells is nil.
func (m *MultiPlot) SetLogXTicksForAll(cells [][2]int, exponents []int) error {
	if cells == nil {
		m.xticks = formatLogTicks(exponents)
		return nil
	}
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.SetLogXTicks(exponents)
		return nil
	})
}

// SetLogYTicksForAll places y-axis ticks at powers of ten for the
// listed panels, or for the whole grid when cells is nil.
func (m *MultiPlot) SetLogYTicksForAll(cells [][2]int, exponents []int) error {
	if cells == nil {
		m.yticks = formatLogTicks(exponents)
		return nil
	}
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.SetLogYTicks(exponents)
		return nil
	})
}

// SetXLabel sets a shared x-axis label, drawn on the bottom row.
func (m *MultiPlot) SetXLabel(text string) { m.xlabel = text }

// SetYLabel sets a shared y-axis label, drawn on the left column.
func (m *MultiPlot) SetYLabel(text string) { m.ylabel = text }

// SetSubPlotXLabel sets the x-axis label of one panel.
func (m *MultiPlot) SetSubPlotXLabel(row, column int, text string) error {
	sp, err := m.SubPlotAt(row, column)
	if err != nil {
		return err
	}
	sp.SetXLabel(text)
	return nil
}

// SetSubPlotYLabel sets the y-axis label of one panel.
func (m *MultiPlot) SetSubPlotYLabel(row, column int, text string) error {
	sp, err := m.SubPlotAt(row, column)
	if err != nil {
		return err
	}
	sp.SetYLabel(text)
	return nil
}

// SetScalebarForAll shows the mark-area scale legend for the listed
// panels, or all panels when cells is nil.
func (m *MultiPlot) SetScalebarForAll(cells [][2]int, location string) error {
	return m.each(cells, func(sp *MultiSubPlot) error {
		return sp.SetScalebar(location)
	})
}

// SetColorbar shows a colorbar attached to the last panel. Set
// grid-wide point meta limits so the colorbar is correct for all
// panels.
func (m *MultiPlot) SetColorbar(label string, horizontal bool) {
	if m.limits.MMin == nil || m.limits.MMax == nil {
		Logger().Warn("colorbar without grid-wide point meta limits; shared colorbar may not match all panels")
	}
	m.colorbar = &tikz.Colorbar{Label: label, Horizontal: horizontal}
}

// SetColormap selects a PGFPlots colormap by name for all panels.
func (m *MultiPlot) SetColormap(name string) { m.colormap = name }

// SetAxisOptions sets additional axis options as plain text for one
// panel.
func (m *MultiPlot) SetAxisOptions(row, column int, text string) error {
	sp, err := m.SubPlotAt(row, column)
	if err != nil {
		return err
	}
	sp.SetAxisOptions(text)
	return nil
}

// SetAxisOptionsForAll sets additional axis options for the listed
// panels, or for the whole grid when cells is nil.
func (m *MultiPlot) SetAxisOptionsForAll(cells [][2]int, text string) error {
	if cells == nil {
		m.axisOptions = text
		return nil
	}
	return m.each(cells, func(sp *MultiSubPlot) error {
		sp.SetAxisOptions(text)
		return nil
	})
}

// Render returns the grid as LaTeX markup for inclusion in a document
// that loads the tikz and pgfplots packages and the groupplots
// library.
func (m *MultiPlot) Render() (string, error) {
	return tikz.RenderGrid(m.buildGrid())
}

// RenderAsDocument returns the grid as a stand-alone LaTeX document.
func (m *MultiPlot) RenderAsDocument() (string, error) {
	return renderAsDocument(m)
}

// Save writes the grid as an includable LaTeX file.
func (m *MultiPlot) Save(path string) error {
	return saveRendered(m.Render, "tex", path)
}

// SaveAsDocument writes the grid as a stand-alone LaTeX file.
func (m *MultiPlot) SaveAsDocument(path string) error {
	return saveRendered(m.RenderAsDocument, "tex", path)
}

// SavePDF compiles the grid to a cropped PDF at path.
func (m *MultiPlot) SavePDF(ctx context.Context, path string) error {
	return savePDF(ctx, m, path)
}

// buildGrid assembles the render state for the whole grid. The shared
// axis labels land on the bottom-center and left-middle panels.
func (m *MultiPlot) buildGrid() *tikz.Grid {
	grid := &tikz.Grid{
		Rows:        m.rows,
		Columns:     m.columns,
		Width:       m.width,
		Height:      m.height,
		XMode:       m.xmode.String(),
		YMode:       m.ymode.String(),
		XLabel:      m.xlabel,
		YLabel:      m.ylabel,
		Limits:      m.limits,
		XTicks:      m.xticks,
		YTicks:      m.yticks,
		Colormap:    m.colormap,
		Colorbar:    m.colorbar,
		AxisOptions: m.axisOptions,
	}
	for _, sp := range m.subplots {
		// Panels never repeat the grid-wide size and modes.
		ax := sp.buildAxis("", "", false)
		ax.XMode, ax.YMode = "", ""
		ax.Empty = sp.empty
		ax.ShowXTickLabels = sp.showXTickLabels
		ax.ShowYTickLabels = sp.showYTickLabels
		ax.XTickLabelPos = sp.xtickLabelPos
		ax.YTickLabelPos = sp.ytickLabelPos

		if m.xlabel != "" && ax.XLabel == "" &&
			sp.row == m.rows-1 && sp.column == (m.columns-1)/2 {
			ax.XLabel = m.xlabel
		}
		if m.ylabel != "" && ax.YLabel == "" &&
			sp.column == 0 && sp.row == (m.rows-1)/2 {
			ax.YLabel = m.ylabel
		}
		grid.Panels = append(grid.Panels, ax)
	}
	return grid
}
