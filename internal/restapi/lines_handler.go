package restapi

import (
	"net/http"

	"cairometro/internal/metro"
	"cairometro/internal/models"
	"cairometro/internal/utils"
)

func (api *RestAPI) linesHandler(w http.ResponseWriter, r *http.Request) {
	lines := api.Network.Lines()
	list := make([]models.Line, 0, len(lines))
	for _, l := range lines {
		list = append(list, models.NewLine(l))
	}

	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences()))
}

func (api *RestAPI) lineHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	line, ok := api.Network.Line(metro.LineID(id))
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewLine(line), models.NewEmptyReferences()))
}
