package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"

	"github.com/erazemk/track/internal/app"
	"github.com/erazemk/track/internal/currency"
	"github.com/erazemk/track/internal/derive"
	"github.com/erazemk/track/internal/i18n"
	"github.com/erazemk/track/internal/model"
	webembed "github.com/erazemk/track/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

var notes = goldmark.New()

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"t":            i18n.T,
		"langName":     i18n.Name,
		"statusName":   i18n.StatusName,
		"categoryName": i18n.CategoryName,
		"money":        func(code string, d decimal.Decimal) string { return currency.Format(d, code) },
		"signedMoney": func(code string, d decimal.Decimal) string {
			if d.IsPositive() {
				return "+" + currency.Format(d, code)
			}
			return currency.Format(d, code)
		},
		"duration": func(lang string, days int) string {
			return derive.FormatUsageDuration(days, i18n.Units(lang))
		},
		"share": func(s derive.Statistics, st model.Status) string {
			return fmt.Sprintf("%.0f%%", s.Share(st)*100)
		},
		"joinTags": func(tags []string) string { return strings.Join(tags, ", ") },
		"markdown": func(s string) template.HTML {
			var buf bytes.Buffer
			if err := notes.Convert([]byte(s), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(s))
			}
			return template.HTML(buf.String())
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.Templates

	layoutBytes, err := fs.ReadFile(tfs, webembed.LayoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages, err := webembed.Pages()
	if err != nil {
		return nil, fmt.Errorf("listing page templates: %w", err)
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	ts.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus renders a template with the given status code.
func (ts *Templates) RenderStatus(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	// Render into a buffer so a template error does not leave half a page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title    string
	Lang     string
	Currency string
	Active   string
	Error    string
	Success  string
}

// Server holds all dependencies for page handlers.
type Server struct {
	App       *app.App
	Templates *Templates
}

// page builds the base page data for a request.
func (s *Server) page(r *http.Request, titleKey, active string) PageData {
	prefs := GetPreferences(r.Context())
	pd := PageData{
		Title:    i18n.T(prefs.Language, titleKey),
		Lang:     prefs.Language,
		Currency: prefs.Currency,
		Active:   active,
	}
	if key := r.URL.Query().Get("flash"); flashKeys[key] {
		pd.Success = i18n.T(prefs.Language, key)
	}
	return pd
}

// flashKeys are the messages a redirect may ask the next page to show.
var flashKeys = map[string]bool{
	"addSuccess":    true,
	"editSuccess":   true,
	"deleteSuccess": true,
	"settingsSaved": true,
}
