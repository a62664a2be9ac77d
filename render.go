package texart

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/texart/texart/internal/latex"
	"github.com/texart/texart/internal/tikz"
)

// Renderer is implemented by every plot type; it produces the
// includable LaTeX markup of the plot.
type Renderer interface {
	Render() (string, error)
}

// renderPicture renders one subplot as a stand-alone tikzpicture.
func renderPicture(s *SubPlot, width, height string, polar bool) (string, error) {
	return tikz.RenderPicture(s.buildAxis(width, height, polar))
}

// renderAsDocument wraps the rendered plot in a compilable document.
func renderAsDocument(r Renderer) (string, error) {
	body, err := r.Render()
	if err != nil {
		return "", err
	}
	return tikz.RenderDocument(body)
}

// saveRendered writes the output of render to path, adding the
// extension when the path has none.
func saveRendered(render func() (string, error), extension, path string) error {
	out, err := render()
	if err != nil {
		return err
	}
	path = addExtension(extension, path)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	Logger().Debug("saved plot", "path", path, "bytes", len(out))
	return nil
}

// savePDF compiles the plot to a cropped PDF at path.
func savePDF(ctx context.Context, r Renderer, path string) error {
	doc, err := renderAsDocument(r)
	if err != nil {
		return err
	}
	builder := latex.New(Logger())
	return builder.Build(ctx, doc, addExtension("pdf", path))
}

// addExtension appends the extension when the path carries none.
func addExtension(extension, path string) string {
	if strings.Contains(path, ".") {
		return path
	}
	return path + "." + extension
}
