// Package i18n holds the user-facing strings in every supported language.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/erazemk/track/internal/csvcodec"
	"github.com/erazemk/track/internal/derive"
	"github.com/erazemk/track/internal/model"
)

// Supported languages.
const (
	English = "en"
	Chinese = "zh"
)

// Default is used when no preference is known.
const Default = English

// Languages lists the supported language codes.
var Languages = []string{English, Chinese}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// Supported reports whether lang is one of Languages.
func Supported(lang string) bool {
	return lang == English || lang == Chinese
}

// Match picks the best supported language for an Accept-Language header.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, i, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Languages[i]
}

// Name returns the language's own name for itself.
func Name(lang string) string {
	if lang == Chinese {
		return "中文"
	}
	return "English"
}

// T returns the string for key in lang, falling back to English and then
// to the key itself.
func T(lang, key string) string {
	if s, ok := messages[lang][key]; ok {
		return s
	}
	if s, ok := messages[English][key]; ok {
		return s
	}
	return key
}

// StatusName returns the display name of a status.
func StatusName(lang string, st model.Status) string {
	return T(lang, string(st))
}

// CSVLabels returns the column titles and status labels for CSV files.
func CSVLabels(lang string) csvcodec.Labels {
	if lang == Chinese {
		return csvcodec.Labels{
			Columns: [csvcodec.NumColumns]string{"物品名称", "购买日期", "购买价格", "分类", "标签", "状态", "卖出价格", "备注"},
			Status: map[model.Status]string{
				model.StatusActive:  "服役中",
				model.StatusRetired: "已退役",
				model.StatusSold:    "已卖出",
			},
		}
	}
	return csvcodec.Labels{
		Columns: [csvcodec.NumColumns]string{"Item Name", "Purchase Date", "Price", "Category", "Tags", "Status", "Sold Price", "Notes"},
		Status: map[model.Status]string{
			model.StatusActive:  "Active",
			model.StatusRetired: "Retired",
			model.StatusSold:    "Sold",
		},
	}
}

// AllCSVLabels returns the label sets of every language, for reading files
// written in any of them.
func AllCSVLabels() []csvcodec.Labels {
	out := make([]csvcodec.Labels, 0, len(Languages))
	for _, lang := range Languages {
		out = append(out, CSVLabels(lang))
	}
	return out
}

// Units returns the duration unit names for lang.
func Units(lang string) derive.Units {
	if lang == Chinese {
		return derive.Units{Year: "年", Years: "年", Month: "月", Months: "月", Day: "天", Days: "天"}
	}
	return derive.Units{Year: "year", Years: "years", Month: "month", Months: "months", Day: "day", Days: "days"}
}

// CategoryName returns the display name of a category key.
func CategoryName(lang, category string) string {
	if category == "" || category == derive.Uncategorized {
		return T(lang, "uncategorized")
	}
	return category
}
