package webui

import "net/http"

// SetWebUIRoutes registers the HTML pages on mux.
func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.Handle("GET /{$}", htmlSecurityHeaders(http.HandlerFunc(webUI.indexHandler)))
	mux.Handle("GET /route", htmlSecurityHeaders(http.HandlerFunc(webUI.routeHandler)))
	mux.Handle("GET /debug/", htmlSecurityHeaders(http.HandlerFunc(webUI.debugIndexHandler)))
	mux.Handle("POST /debug/cache/flush", htmlSecurityHeaders(http.HandlerFunc(webUI.debugFlushCacheHandler)))
}

// htmlSecurityHeaders allows the inline styles and SVG the pages use and
// nothing else.
func htmlSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; img-src 'self' data:; form-action 'self'; frame-ancestors 'none';")
		next.ServeHTTP(w, r)
	})
}
