package webui

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"cairometro/internal/logging"
	"cairometro/internal/metro"
	"cairometro/internal/planner"
	"cairometro/internal/utils"
)

const (
	messageChooseStations = "يرجى اختيار محطة البداية ومحطة الوصول."
	messageMapUnavailable = "⚠️ تعذر رسم خريطة المسار."
)

type routeData struct {
	Title    string
	Stations []metro.Station
	From     string
	To       string
	Route    *planner.Route
	Lines    []string
	Message  string
	Map      template.HTML
}

func (webUI *WebUI) routeHandler(w http.ResponseWriter, r *http.Request) {
	from, to := utils.RouteQuery(r)
	data := routeData{
		Title:    pageTitle,
		Stations: webUI.Planner.Stations(),
		From:     from,
		To:       to,
	}

	if fieldErrors := utils.ValidateRouteParams(from, to); len(fieldErrors) > 0 {
		data.Message = validationMessage(from, to, fieldErrors)
		webUI.render(w, r, http.StatusBadRequest, "route.html", data)
		return
	}

	route, err := webUI.FindRoute(from, to)
	if err != nil {
		data.Message = planner.Message(err)
		webUI.render(w, r, routeErrorStatus(err), "route.html", data)
		return
	}
	data.Route = route
	data.Lines = strings.Split(route.Description, "\n")

	var svg bytes.Buffer
	if err := webUI.maps.WriteSVG(&svg, route.Stations); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render route map", err,
			slog.String("from", from),
			slog.String("to", to),
			slog.String("component", "webui"))
		data.Message = messageMapUnavailable
		webUI.render(w, r, http.StatusOK, "route.html", data)
		return
	}
	webUI.Metrics.ObserveRender("route")

	// The renderer escapes every label it writes.
	data.Map = template.HTML(inlineSVG(svg.String()))
	webUI.render(w, r, http.StatusOK, "route.html", data)
}

// inlineSVG drops the XML prolog so the document can sit inside HTML.
func inlineSVG(doc string) string {
	if i := strings.Index(doc, "<svg"); i > 0 {
		return doc[i:]
	}
	return doc
}

func routeErrorStatus(err error) int {
	switch {
	case errors.Is(err, planner.ErrUnknownStation):
		return http.StatusBadRequest
	case errors.Is(err, planner.ErrNoPath):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// validationMessage turns field errors into one rider-facing line. A name
// that fails validation can never match a station, so it is reported as
// unknown.
func validationMessage(from, to string, fieldErrors map[string][]string) string {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return messageChooseStations
	}
	name := to
	if _, bad := fieldErrors["from"]; bad {
		name = from
	}
	return planner.Message(&planner.UnknownStationError{Name: name})
}
