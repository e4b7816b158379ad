package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/erazemk/track/internal/app"
	"github.com/erazemk/track/internal/csvcodec"
	"github.com/erazemk/track/internal/currency"
	"github.com/erazemk/track/internal/i18n"
)

type settingsPage struct {
	PageData
	Languages  []string
	Currencies []string
	ItemCount  int
}

func (s *Server) renderSettings(w http.ResponseWriter, status int, pd PageData) {
	s.Templates.RenderStatus(w, status, "settings.html", &settingsPage{
		PageData:   pd,
		Languages:  i18n.Languages,
		Currencies: currency.Common,
		ItemCount:  len(s.App.Items()),
	})
}

// SettingsPage handles GET /settings.
func (s *Server) SettingsPage(w http.ResponseWriter, r *http.Request) {
	s.renderSettings(w, http.StatusOK, s.page(r, "settings", "settings"))
}

// SettingsSubmit handles POST /settings.
func (s *Server) SettingsSubmit(w http.ResponseWriter, r *http.Request) {
	prefs := app.Preferences{
		Language: r.FormValue("language"),
		Currency: r.FormValue("currency"),
	}
	if err := s.App.SetPreferences(r.Context(), prefs); err != nil {
		pd := s.page(r, "settings", "settings")
		if !errors.Is(err, app.ErrInvalidPreference) {
			slog.Error("failed to save preferences", "error", err)
		}
		pd.Error = err.Error()
		s.renderSettings(w, http.StatusBadRequest, pd)
		return
	}

	slog.Info("preferences saved", "language", prefs.Language, "currency", prefs.Currency)
	http.Redirect(w, r, "/settings?flash=settingsSaved", http.StatusSeeOther)
}

// ExportDownload handles GET /export?lang=.
func (s *Server) ExportDownload(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if !i18n.Supported(lang) {
		lang = GetPreferences(r.Context()).Language
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", app.ExportFilename(s.App.Today())))
	err := s.App.Export(w, lang)
	if err == nil {
		return
	}

	w.Header().Del("Content-Disposition")
	pd := s.page(r, "settings", "settings")
	if errors.Is(err, app.ErrNoData) {
		pd.Error = i18n.T(pd.Lang, "noData")
	} else {
		slog.Error("failed to export items", "error", err)
		pd.Error = err.Error()
	}
	s.renderSettings(w, http.StatusNotFound, pd)
}

// ImportSubmit handles POST /import.
func (s *Server) ImportSubmit(w http.ResponseWriter, r *http.Request) {
	pd := s.page(r, "settings", "settings")

	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		pd.Error = i18n.T(pd.Lang, "importError")
		s.renderSettings(w, http.StatusBadRequest, pd)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		pd.Error = i18n.T(pd.Lang, "importError")
		s.renderSettings(w, http.StatusBadRequest, pd)
		return
	}
	defer file.Close()

	report, err := s.App.Import(r.Context(), file)
	switch {
	case err == nil:
		pd.Success = fmt.Sprintf(i18n.T(pd.Lang, "importSummary"), len(report.Imported), len(report.Errors))
	case errors.Is(err, app.ErrNoValidRows):
		pd.Error = i18n.T(pd.Lang, "importNoValid")
	case errors.Is(err, csvcodec.ErrEmptyFile):
		pd.Error = i18n.T(pd.Lang, "importError")
	default:
		slog.Error("failed to import items", "error", err)
		pd.Error = i18n.T(pd.Lang, "importError")
	}
	status := http.StatusOK
	if pd.Error != "" {
		status = http.StatusBadRequest
	}
	s.renderSettings(w, status, pd)
}
