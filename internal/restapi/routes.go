package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// endpoint applies the per-route middleware: API key validation and
// latency metrics.
func (api *RestAPI) endpoint(name string, h handlerFunc) http.Handler {
	return api.Metrics.Instrument(name, validateAPIKey(api, h))
}

// Router builds the httprouter tree for the metro API without the outer
// middleware chain.
func (api *RestAPI) Router() *httprouter.Router {
	router := httprouter.New()
	router.HandleMethodNotAllowed = true

	router.Handler(http.MethodGet, "/api/metro/stations.json", api.endpoint("stations", api.stationsHandler))
	router.Handler(http.MethodGet, "/api/metro/lines.json", api.endpoint("lines", api.linesHandler))
	router.Handler(http.MethodGet, "/api/metro/line/:id", api.endpoint("line", api.lineHandler))
	router.Handler(http.MethodGet, "/api/metro/station/:name", api.endpoint("station", api.stationHandler))
	router.Handler(http.MethodGet, "/api/metro/route.json", api.endpoint("route_json", api.routeHandler))
	router.Handler(http.MethodGet, "/api/metro/route.svg", api.endpoint("route_svg", api.routeSVGHandler))
	router.Handler(http.MethodGet, "/api/metro/network.svg", api.endpoint("network_svg", api.networkSVGHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return router
}

// Handler returns the API with its full middleware chain.
func (api *RestAPI) Handler() http.Handler {
	var h http.Handler = api.Router()
	h = CompressionMiddleware(h)
	if api.rateLimiter != nil {
		h = api.rateLimiter.Handler(h)
	}
	h = newCORS().Handler(h)
	h = securityHeaders(h)
	h = NewRequestLoggingMiddleware(api.Logger)(h)
	return h
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("/api/", api.Handler())
}
