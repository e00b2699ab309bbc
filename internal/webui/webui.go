// Package webui serves the browser front end: a station picker, the
// itinerary page with its map, and a debug dump of the loaded network.
package webui

import (
	"embed"
	"html/template"
	"io"

	"cairometro/internal/app"
	"cairometro/internal/metro"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTitle = "🚇دليل مترو القاهرة"

// mapWriter draws the network with a path highlighted.
type mapWriter interface {
	WriteSVG(w io.Writer, path []metro.Station) error
}

type WebUI struct {
	*app.Application
	templates *template.Template
	maps      mapWriter
}

// New parses the embedded templates. It only fails if a template is broken.
func New(application *app.Application) (*WebUI, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &WebUI{
		Application: application,
		templates:   tmpl,
		maps:        application.Renderer,
	}, nil
}
