package tikz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestAxisOptions(t *testing.T) {
	a := Axis{
		XMode:  "log",
		YMode:  "normal",
		Width:  ".67\\linewidth",
		Title:  "Spectrum",
		XLabel: "f [Hz]",
	}
	got := a.Options()
	assert.Equal(t, []string{
		"width=.67\\linewidth",
		"xmode=log", "ymode=normal",
		"title={Spectrum}",
		"xlabel={f [Hz]}",
	}, got)
}

func TestAxisOptionsPolarOmitsModes(t *testing.T) {
	a := Axis{XMode: "normal", YMode: "normal", Polar: true}
	for _, o := range a.Options() {
		assert.NotContains(t, o, "xmode")
	}
	assert.Equal(t, "polaraxis", a.Env())
}

func TestAxisOptionsInheritedModes(t *testing.T) {
	// A grid panel leaves its modes empty and must not emit them.
	a := Axis{}
	assert.Empty(t, a.Options())
}

func TestLimitsOptions(t *testing.T) {
	l := Limits{
		XMin: floatPtr(0),
		XMax: floatPtr(10),
		YMax: floatPtr(1e6),
		MMin: floatPtr(2),
	}
	got := l.options()
	assert.Equal(t, []string{"xmin=0", "xmax=10", "ymax=1e6", "point meta min=2"}, got)
}

func TestLimitsMarkSizeMapping(t *testing.T) {
	l := Limits{SMin: floatPtr(1), SMax: floatPtr(3)}
	got := l.options()
	assert.Len(t, got, 1)
	assert.Contains(t, got[0], "scatter/@pre marker code")
	assert.Contains(t, got[0], "mark size={1+(3-1)*\\pgfplotspointmetatransformed/1000}")
}

func TestTickOptions(t *testing.T) {
	got := tickOptions("x", []string{"1", "2", "3"}, []string{"a", "b", "c"})
	assert.Equal(t, []string{
		"xtick={1,2,3}",
		"xticklabels={{a},{b},{c}}",
	}, got)

	assert.Empty(t, tickOptions("y", nil, nil))
}

func TestColormapOptions(t *testing.T) {
	got := colormapOptions("viridis", &Colorbar{Label: "count"})
	assert.Equal(t, []string{
		"colormap name=viridis",
		"colorbar",
		"colorbar style={ylabel={count}}",
	}, got)

	horizontal := colormapOptions("", &Colorbar{Horizontal: true, Label: "N"})
	assert.Equal(t, []string{
		"colorbar",
		"colorbar horizontal",
		"colorbar style={xlabel={N}}",
	}, horizontal)
}

func TestPanelOptions(t *testing.T) {
	a := Axis{}
	assert.Equal(t, []string{"xticklabels={}", "yticklabels={}"}, a.PanelOptions())

	a.ShowXTickLabels = true
	a.XTickLabelPos = "right"
	a.ShowYTickLabels = true
	assert.Equal(t, []string{"xticklabel pos=right"}, a.PanelOptions())

	empty := Axis{Empty: true}
	assert.Equal(t, []string{"group/empty plot"}, empty.PanelOptions())
}

func TestGridOptions(t *testing.T) {
	g := Grid{Rows: 2, Columns: 3, XMode: "normal", YMode: "log"}
	got := g.Options()
	assert.Equal(t, "group style={group size=3 by 2, horizontal sep=0pt, vertical sep=0pt}", got[0])
	assert.Contains(t, got, "xmode=normal")
	assert.Contains(t, got, "ymode=log")
}
