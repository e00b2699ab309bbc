package webui

import (
	"log/slog"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"cairometro/internal/logging"
)

type debugData struct {
	Title string
	Pre   string
	// Flush shows the cache flush button.
	Flush bool
}

var debugConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, title string, data interface{}, flush bool) {
	webUI.render(w, r, http.StatusOK, "debug_index.html", debugData{
		Title: title,
		Pre:   debugConfig.Sdump(data),
		Flush: flush,
	})
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string
	var flush bool

	network := webUI.Network

	switch dataType {
	case "lines":
		data = network.Lines()
		title = "Network - Lines"
	case "stations":
		data = network.AllStations()
		title = "Network - Stations"
	case "junctions":
		data = network.Junctions()
		title = "Network - Junctions"
	case "edges":
		data = network.Graph().Edges()
		title = "Network - Edges"
	case "cache":
		data = map[string]int{"cached_routes": webUI.CacheStats()}
		title = "Route Cache"
		flush = webUI.RouteCache != nil
	default:
		data = map[string]string{
			"error": "Please use one of the following: lines, stations, junctions, edges, cache.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, title, data, flush)
}

func (webUI *WebUI) debugFlushCacheHandler(w http.ResponseWriter, r *http.Request) {
	dropped := webUI.CacheStats()
	webUI.FlushRouteCache()
	logging.LogOperation(logging.FromContext(r.Context()), "route_cache_flushed",
		slog.Int("dropped", dropped),
		slog.String("component", "webui"))
	http.Redirect(w, r, "/debug/?dataType=cache", http.StatusSeeOther)
}
