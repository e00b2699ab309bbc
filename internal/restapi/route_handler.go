package restapi

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"cairometro/internal/logging"
	"cairometro/internal/models"
	"cairometro/internal/planner"
	"cairometro/internal/utils"
)

// planRoute validates the query and runs it. On failure the error response
// has already been written and ok is false.
func (api *RestAPI) planRoute(w http.ResponseWriter, r *http.Request) (route *planner.Route, ok bool) {
	from, to := utils.RouteQuery(r)
	if fieldErrors := utils.ValidateRouteParams(from, to); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return nil, false
	}

	route, err := api.FindRoute(from, to)
	var unknown *planner.UnknownStationError
	switch {
	case err == nil:
		return route, true
	case errors.As(err, &unknown):
		field := "to"
		if unknown.Name == from {
			field = "from"
		}
		api.validationErrorResponse(w, r, map[string][]string{
			field: {planner.Message(err)},
		})
	case errors.Is(err, planner.ErrNoPath):
		api.sendNoPath(w, r, planner.Message(err))
	default:
		api.serverErrorResponse(w, r, err)
	}
	return nil, false
}

func (api *RestAPI) routeHandler(w http.ResponseWriter, r *http.Request) {
	route, ok := api.planRoute(w, r)
	if !ok {
		return
	}

	refs := models.ReferencesFor(api.Network, models.RouteLineIDs(route))
	api.sendResponse(w, r, models.NewEntryResponse(models.NewRoute(route), refs))
}

func (api *RestAPI) routeSVGHandler(w http.ResponseWriter, r *http.Request) {
	route, ok := api.planRoute(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := api.Renderer.WriteSVG(&buf, route.Stations); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.Metrics.ObserveRender("route")
	api.sendSVG(w, r, buf.Bytes())
}

func (api *RestAPI) networkSVGHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := api.Renderer.WriteSVG(&buf, nil); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.Metrics.ObserveRender("network")
	api.sendSVG(w, r, buf.Bytes())
}

func (api *RestAPI) sendSVG(w http.ResponseWriter, r *http.Request, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=60")
	if _, err := w.Write(svg); err != nil {
		logging.FromContext(r.Context()).Debug("failed to write svg", slog.Any("error", err))
	}
}
