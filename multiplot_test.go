package texart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiPlotGrid(t *testing.T) {
	m := NewMultiPlot(2, 2)
	sp, err := m.SubPlotAt(0, 0)
	require.NoError(t, err)
	require.NoError(t, sp.Plot([]float64{0, 1}, []float64{0, 1}, SeriesOptions{Mark: MarkNone}))

	out, err := m.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "group size=2 by 2")
	assert.Equal(t, 4, strings.Count(out, "\\nextgroupplot"))
	assert.Contains(t, out, "(1,1)")
	// Panels hide tick labels by default.
	assert.Contains(t, out, "xticklabels={}")
	assert.Contains(t, out, "yticklabels={}")
}

func TestMultiPlotSubPlotAtBounds(t *testing.T) {
	m := NewMultiPlot(2, 3)

	for _, cell := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.SubPlotAt(cell[0], cell[1])
		require.ErrorIs(t, err, ErrUnknownLocation, "cell %v", cell)
	}
}

func TestMultiPlotEmptyPanel(t *testing.T) {
	m := NewMultiPlot(1, 2)
	require.NoError(t, m.SetEmpty(0, 1))

	out, err := m.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "group/empty plot")
}

func TestMultiPlotSharedLabels(t *testing.T) {
	m := NewMultiPlot(2, 3)
	m.SetXLabel("x [m]")
	m.SetYLabel("count")

	out, err := m.Render()
	require.NoError(t, err)
	// The shared labels appear exactly once: bottom-center panel for x,
	// left-middle panel for y.
	assert.Equal(t, 1, strings.Count(out, "xlabel={x [m]}"))
	assert.Equal(t, 1, strings.Count(out, "ylabel={count}"))
}

func TestMultiPlotPanelLabelWins(t *testing.T) {
	m := NewMultiPlot(1, 1)
	m.SetXLabel("shared")
	require.NoError(t, m.SetSubPlotXLabel(0, 0, "own"))

	out, err := m.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "xlabel={own}")
	assert.NotContains(t, out, "xlabel={shared}")
}

func TestMultiPlotGridLimitsAndTicks(t *testing.T) {
	m := NewMultiPlot(1, 2, WithLogY())
	require.NoError(t, m.SetXLimitsForAll(nil, Float(0), Float(10)))
	require.NoError(t, m.SetLogYTicksForAll(nil, []int{1, 3}))

	out, err := m.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "ymode=log")
	assert.Contains(t, out, "xmin=0")
	assert.Contains(t, out, "xmax=10")
	assert.Contains(t, out, "ytick={1e1,1e3}")
}

func TestMultiPlotPerPanelLimits(t *testing.T) {
	m := NewMultiPlot(1, 2)
	require.NoError(t, m.SetYLimitsForAll([][2]int{{0, 1}}, Float(-1), Float(1)))

	out, err := m.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "ymin=-1")

	err = m.SetYLimitsForAll([][2]int{{5, 5}}, Float(0), Float(1))
	require.ErrorIs(t, err, ErrUnknownLocation)
}

func TestMultiPlotTickLabelVisibility(t *testing.T) {
	m := NewMultiPlot(1, 2)
	require.NoError(t, m.ShowYTickLabelsForAll([][2]int{{0, 0}}))
	sp, err := m.SubPlotAt(0, 1)
	require.NoError(t, err)
	sp.ShowXTickLabels()
	require.NoError(t, sp.SetXTickLabelPosition("top"))

	out, err := m.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "xticklabel pos=right")
	// One panel shows y labels, the other hides them.
	assert.Equal(t, 1, strings.Count(out, "yticklabels={}"))
}

func TestTickLabelPositionValidation(t *testing.T) {
	m := NewMultiPlot(1, 1)
	sp, err := m.SubPlotAt(0, 0)
	require.NoError(t, err)

	require.ErrorIs(t, sp.SetXTickLabelPosition("sideways"), ErrUnknownLocation)
	require.ErrorIs(t, sp.SetYTickLabelPosition("above"), ErrUnknownLocation)
	require.NoError(t, sp.SetYTickLabelPosition("right"))
}

func TestMultiPlotColorbar(t *testing.T) {
	m := NewMultiPlot(1, 1)
	require.NoError(t, m.SetMLimitsForAll(nil, Float(0), Float(5)))
	m.SetColormap("hot")
	m.SetColorbar("N", false)

	out, err := m.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "colormap name=hot")
	assert.Contains(t, out, "colorbar")
	assert.Contains(t, out, "point meta max=5")
}

func TestMultiPlotRenderAsDocument(t *testing.T) {
	m := NewMultiPlot(1, 1)
	doc, err := m.RenderAsDocument()
	require.NoError(t, err)
	assert.Contains(t, doc, "\\usepgfplotslibrary{groupplots}")
	assert.Contains(t, doc, "\\begin{groupplot}")
}
