package webui

import (
	"net/http"

	"cairometro/internal/metro"
)

type indexData struct {
	Title    string
	Stations []metro.Station
	From     string
	To       string
}

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	webUI.render(w, r, http.StatusOK, "index.html", indexData{
		Title:    pageTitle,
		Stations: webUI.Planner.Stations(),
	})
}
