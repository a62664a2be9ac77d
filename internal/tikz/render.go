package tikz

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("tikz").
	Funcs(template.FuncMap{
		"join":   strings.Join,
		"indent": indent,
	}).
	ParseFS(templateFS, "templates/*.tmpl"))

// pictureData is the render context for a stand-alone plot.
type pictureData struct {
	Env     string
	Options []string
	Body    []string
}

// gridData is the render context for a multi-panel plot.
type gridData struct {
	Options []string
	Panels  []panelData
}

type panelData struct {
	Options []string
	Body    []string
}

// RenderPicture renders a single axis as an includable tikzpicture.
func RenderPicture(a *Axis) (string, error) {
	data := pictureData{
		Env:     a.Env(),
		Options: a.Options(),
		Body:    a.Body(),
	}
	return render("plot.tmpl", data)
}

// RenderGrid renders a multi-panel plot as an includable tikzpicture
// using the groupplots library.
func RenderGrid(g *Grid) (string, error) {
	data := gridData{Options: g.Options()}
	for _, p := range g.Panels {
		data.Panels = append(data.Panels, panelData{
			Options: p.PanelOptions(),
			Body:    p.Body(),
		})
	}
	return render("multiplot.tmpl", data)
}

// RenderDocument wraps rendered plot markup in a stand-alone LaTeX
// document that loads the required TikZ and PGFPlots libraries.
func RenderDocument(body string) (string, error) {
	return render("document.tmpl", struct{ Body string }{Body: body})
}

func render(name string, data any) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return b.String(), nil
}

// indent prefixes every line of s with n spaces.
func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
