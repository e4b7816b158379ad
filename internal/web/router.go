package web

import (
	"net/http"

	"github.com/erazemk/track/internal/app"
	webembed "github.com/erazemk/track/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(a *app.App) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		App:       a,
		Templates: templates,
	}

	mux := http.NewServeMux()
	prefs := PreferencesMiddleware(a)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.Static))))

	mux.Handle("GET /{$}", prefs(http.HandlerFunc(s.Dashboard)))

	mux.Handle("GET /items/new", prefs(http.HandlerFunc(s.ItemNewPage)))
	mux.Handle("POST /items", prefs(http.HandlerFunc(s.ItemCreateSubmit)))
	mux.Handle("GET /items/{id}", prefs(http.HandlerFunc(s.ItemEditPage)))
	mux.Handle("POST /items/{id}", prefs(http.HandlerFunc(s.ItemUpdateSubmit)))
	mux.Handle("POST /items/{id}/delete", prefs(http.HandlerFunc(s.ItemDeleteSubmit)))
	mux.Handle("POST /items/{id}/image", prefs(http.HandlerFunc(s.ItemImageSubmit)))
	mux.HandleFunc("GET /items/{id}/image", s.ItemImageGet)

	mux.Handle("GET /search", prefs(http.HandlerFunc(s.SearchPage)))

	mux.Handle("GET /settings", prefs(http.HandlerFunc(s.SettingsPage)))
	mux.Handle("POST /settings", prefs(http.HandlerFunc(s.SettingsSubmit)))
	mux.Handle("GET /export", prefs(http.HandlerFunc(s.ExportDownload)))
	mux.Handle("POST /import", prefs(http.HandlerFunc(s.ImportSubmit)))

	return mux, nil
}
