// Package web embeds the page templates and static assets of the tracker.
package web

import (
	"embed"
	"io/fs"
	"path"
	"slices"
)

// LayoutTemplate is the template every page is rendered inside.
const LayoutTemplate = "layout.html"

//go:embed static/*.css templates/*.html
var content embed.FS

var (
	// Templates holds the HTML templates, the layout included.
	Templates = mustSub("templates")
	// Static holds the assets served under /static/.
	Static = mustSub("static")
)

// Pages lists the page templates in name order, without the layout.
func Pages() ([]string, error) {
	names, err := fs.Glob(Templates, "*.html")
	if err != nil {
		return nil, err
	}
	names = slices.DeleteFunc(names, func(n string) bool { return path.Base(n) == LayoutTemplate })
	slices.Sort(names)
	return names, nil
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(content, dir)
	if err != nil {
		panic("web: " + err.Error())
	}
	return sub
}
