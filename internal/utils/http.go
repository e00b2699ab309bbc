package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a path parameter from the request context and
// removes a trailing ".json" extension.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)
	return strings.TrimSuffix(rawID, ".json")
}

// RouteQuery reads the from and to query parameters of a route request,
// stripped of markup and surrounding whitespace.
func RouteQuery(r *http.Request) (from, to string) {
	q := r.URL.Query()
	return SanitizeInput(q.Get("from")), SanitizeInput(q.Get("to"))
}
