package api

import (
	"net/http"

	"github.com/erazemk/track/internal/app"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(a *app.App) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{App: a}
	dataHandler := &DataHandler{App: a}
	prefsHandler := &PreferencesHandler{App: a}

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)
	mux.HandleFunc("PUT /api/items/{id}/image", itemsHandler.UploadImage)
	mux.HandleFunc("GET /api/items/{id}/image", itemsHandler.GetImage)
	mux.HandleFunc("GET /api/categories", itemsHandler.Categories)

	// Derived data.
	mux.HandleFunc("GET /api/statistics", dataHandler.Statistics)

	// CSV transfer.
	mux.HandleFunc("GET /api/export", dataHandler.Export)
	mux.HandleFunc("POST /api/import", dataHandler.Import)

	// Preferences.
	mux.HandleFunc("GET /api/preferences", prefsHandler.Get)
	mux.HandleFunc("PUT /api/preferences", prefsHandler.Update)

	return mux
}
