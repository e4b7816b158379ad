package api

import (
	"net/http"

	"github.com/erazemk/track/internal/app"
)

// PreferencesHandler reads and stores display preferences.
type PreferencesHandler struct {
	App *app.App
}

// Get handles GET /api/preferences. An unset language is reported as the
// one negotiated from Accept-Language.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.App.Preferences(r.Context())
	if err != nil {
		appError(w, err, "get preferences")
		return
	}
	prefs.Language = h.App.Language(r.Context(), r.Header.Get("Accept-Language"))
	jsonResponse(w, http.StatusOK, prefs)
}

// Update handles PUT /api/preferences.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req app.Preferences
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.App.SetPreferences(r.Context(), req); err != nil {
		appError(w, err, "save preferences")
		return
	}

	h.Get(w, r)
}
