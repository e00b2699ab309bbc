package webui

import (
	"bytes"
	"log/slog"
	"net/http"

	"cairometro/internal/logging"
)

// render executes the named template into a buffer first so a failing
// template never leaves a half-written page.
func (webUI *WebUI) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := webUI.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "template execution failed", err,
			slog.String("template", name),
			slog.String("component", "webui"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
