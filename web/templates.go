// Package web holds the server-side HTML templates, embedded into the binary.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

// Templates parses every embedded template. Page templates are addressed by their
// {{define}} name (author_list, author_detail, author_form, error).
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.tmpl")
}
