package texart

import "context"

// PolarPlot is a stand-alone polar plot. The x-values of every series
// are interpreted as angles, in degrees by default or in radians with
// [WithRadians]; the y-values are radii.
type PolarPlot struct {
	SubPlot
	width  string
	height string
}

// NewPolarPlot creates an empty polar plot.
func NewPolarPlot(opts ...Option) *PolarPlot {
	cfg := newConfig(opts)
	p := &PolarPlot{width: cfg.width, height: cfg.height}
	p.radians = cfg.radians
	return p
}

// Render returns the plot as LaTeX markup for inclusion in a document
// that loads the tikz and pgfplots packages and the polar library.
func (p *PolarPlot) Render() (string, error) {
	return renderPicture(&p.SubPlot, p.width, p.height, true)
}

// RenderAsDocument returns the plot as a stand-alone LaTeX document.
func (p *PolarPlot) RenderAsDocument() (string, error) {
	return renderAsDocument(p)
}

// Save writes the plot as an includable LaTeX file. A ".tex" extension
// is added when the path has none.
func (p *PolarPlot) Save(path string) error {
	return saveRendered(p.Render, "tex", path)
}

// SaveAsDocument writes the plot as a stand-alone LaTeX file.
func (p *PolarPlot) SaveAsDocument(path string) error {
	return saveRendered(p.RenderAsDocument, "tex", path)
}

// SavePDF renders the plot, compiles it with pdflatex and crops the
// result to the content bounding box. The context cancels the external
// tool invocations.
func (p *PolarPlot) SavePDF(ctx context.Context, path string) error {
	return savePDF(ctx, p, path)
}
