// Package web holds the HTML views rendered by the handlers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every embedded view. Templates are addressed by file name,
// e.g. "index.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"fullName": fullName,
	}).ParseFS(templatesFS, "templates/*.html"))
}

func fullName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}
