package app

import "net/http"

// RequestHasInvalidAPIKey checks the "key" query parameter. Requests always
// pass when no keys are configured.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	if !app.Config.RequiresAPIKey() {
		return false
	}
	key := r.URL.Query().Get("key")
	return app.IsInvalidAPIKey(key)
}

func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}

	for _, validKey := range app.Config.ApiKeys {
		if key == validKey {
			return false
		}
	}

	return true
}
