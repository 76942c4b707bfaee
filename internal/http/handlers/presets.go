package handlers

import (
	"net/http"

	"server/internal/flyer"
)

// ListPresets returns the static reference-template catalog.
func (a *App) ListPresets(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"presets": flyer.Presets})
}

// SuggestPreset scores the catalog against the event text and returns the
// best match, for pre-filling the preset picker.
func (a *App) SuggestPreset(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	theme := q.Get("theme")
	if theme == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "theme is required")
		return
	}
	preset := flyer.MatchPreset(theme, q.Get("dress_code"), q.Get("note"))
	a.json(w, http.StatusOK, map[string]any{"preset": preset})
}
