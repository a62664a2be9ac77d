package texart

import "context"

// DefaultWidth is the width of plots that do not set their own.
const DefaultWidth = `.67\linewidth`

// config collects constructor options shared by all plot types.
type config struct {
	width   string
	height  string
	xmode   AxisMode
	ymode   AxisMode
	radians bool
}

// Option configures a plot at construction time.
type Option func(*config)

// WithWidth sets the plot width as a TeX dimension (e.g. "8cm" or
// `.5\linewidth`).
func WithWidth(width string) Option {
	return func(c *config) { c.width = width }
}

// WithHeight sets the plot height as a TeX dimension. The default
// leaves the height to the PGFPlots golden-ratio sizing.
func WithHeight(height string) Option {
	return func(c *config) { c.height = height }
}

// WithLogX makes the x-axis logarithmic (a semilogx plot).
func WithLogX() Option {
	return func(c *config) { c.xmode = AxisLog }
}

// WithLogY makes the y-axis logarithmic (a semilogy plot).
func WithLogY() Option {
	return func(c *config) { c.ymode = AxisLog }
}

// WithLogAxes makes both axes logarithmic (a loglog plot).
func WithLogAxes() Option {
	return func(c *config) {
		c.xmode = AxisLog
		c.ymode = AxisLog
	}
}

// WithRadians makes a polar plot accept angles in radians instead of
// degrees. Ignored by non-polar plots.
func WithRadians() Option {
	return func(c *config) { c.radians = true }
}

func newConfig(opts []Option) config {
	cfg := config{width: DefaultWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Plot is a stand-alone 2D plot with a single data rectangle. Its
// SubPlot methods add data and annotations; the Render and Save
// methods serialize the accumulated state to LaTeX.
type Plot struct {
	SubPlot
	width  string
	height string
	polar  bool
}

// NewPlot creates an empty 2D plot.
func NewPlot(opts ...Option) *Plot {
	cfg := newConfig(opts)
	p := &Plot{width: cfg.width, height: cfg.height}
	p.xmode, p.ymode = cfg.xmode, cfg.ymode
	return p
}

// Render returns the plot as LaTeX markup for inclusion in a document
// that loads the tikz and pgfplots packages.
func (p *Plot) Render() (string, error) {
	return renderPicture(&p.SubPlot, p.width, p.height, p.polar)
}

// RenderAsDocument returns the plot as a stand-alone LaTeX document.
func (p *Plot) RenderAsDocument() (string, error) {
	return renderAsDocument(p)
}

// Save writes the plot as an includable LaTeX file. A ".tex" extension
// is added when the path has none.
func (p *Plot) Save(path string) error {
	return saveRendered(p.Render, "tex", path)
}

// SaveAsDocument writes the plot as a stand-alone LaTeX file.
func (p *Plot) SaveAsDocument(path string) error {
	return saveRendered(p.RenderAsDocument, "tex", path)
}

// SavePDF renders the plot, compiles it with pdflatex and crops the
// result to the content bounding box. The context cancels the external
// tool invocations.
func (p *Plot) SavePDF(ctx context.Context, path string) error {
	return savePDF(ctx, p, path)
}
