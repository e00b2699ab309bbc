package restapi

import (
	"encoding/json"
	"net/http"

	"cairometro/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	if response.Code != 0 && response.Code != http.StatusOK {
		w.WriteHeader(response.Code)
	}
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewResponse(http.StatusNotFound, nil, "resource not found"))
}

// sendNoPath reports a query between two known but unconnected stations.
func (api *RestAPI) sendNoPath(w http.ResponseWriter, r *http.Request, text string) {
	api.sendResponse(w, r, models.NewResponse(http.StatusNotFound, nil, text))
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
