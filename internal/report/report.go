// Package report renders the collection statistics as Markdown.
package report

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/erazemk/track/internal/currency"
	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/derive"
	"github.com/erazemk/track/internal/i18n"
	"github.com/erazemk/track/internal/model"
)

//go:embed templates/*.md
var templates embed.FS

// Options select the language, currency and date of a report.
type Options struct {
	Lang     string
	Currency string
	Date     date.Date
}

type statisticsData struct {
	Date     date.Date
	Stats    derive.Statistics
	Statuses []model.Status
}

// Statistics writes the Markdown statistics report for s.
func Statistics(w io.Writer, s derive.Statistics, opts Options) error {
	if opts.Currency == "" {
		opts.Currency = currency.Default
	}

	tmpl, err := template.New("statistics.md").Funcs(funcs(s, opts)).ParseFS(templates, "templates/statistics.md")
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}

	data := statisticsData{Date: opts.Date, Stats: s, Statuses: model.Statuses}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

func funcs(s derive.Statistics, opts Options) template.FuncMap {
	money := func(d decimal.Decimal) string { return escape(currency.Format(d, opts.Currency)) }
	return template.FuncMap{
		"t":     func(key string) string { return i18n.T(opts.Lang, key) },
		"money": money,
		"signed": func(d decimal.Decimal) string {
			if d.IsPositive() {
				return "+" + money(d)
			}
			return money(d)
		},
		"status":   func(st model.Status) string { return i18n.StatusName(opts.Lang, st) },
		"category": func(c string) string { return escape(i18n.CategoryName(opts.Lang, c)) },
		"share":    func(st model.Status) string { return fmt.Sprintf("%.0f%%", s.Share(st)*100) },
	}
}

// escape keeps user text from breaking table cells.
func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
