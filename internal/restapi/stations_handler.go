package restapi

import (
	"net/http"

	"cairometro/internal/metro"
	"cairometro/internal/models"
	"cairometro/internal/utils"
)

func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	stations := api.Planner.Stations()
	list := make([]models.Station, 0, len(stations))
	for _, s := range stations {
		list = append(list, models.NewStation(api.Network, s))
	}

	refs := models.ReferencesFor(api.Network, lineIDs(api.Network.Lines()))
	api.sendResponse(w, r, models.NewListResponse(list, refs))
}

func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	name := utils.ExtractIDFromParams(r, "name")
	if err := utils.ValidateStationName(name); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"name": {err.Error()},
		})
		return
	}

	station, ok := api.Network.Station(name)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	refs := models.ReferencesFor(api.Network, api.Network.LinesFor(station.ID))
	api.sendResponse(w, r, models.NewEntryResponse(models.NewStation(api.Network, station), refs))
}

func lineIDs(lines []metro.Line) []metro.LineID {
	ids := make([]metro.LineID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	return ids
}
