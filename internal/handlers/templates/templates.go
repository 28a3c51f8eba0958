// Package templates renders the comparison page.
package templates

import (
	"embed"
	"html/template"
	"io"
)

//go:embed page.html.tmpl
var files embed.FS

var page = template.Must(template.ParseFS(files, "page.html.tmpl"))

// Row is one stat line in a table.
type Row struct {
	Name  string
	Value string
}

// Table is one player's rendered stat table.
type Table struct {
	PlayerName string
	Rows       []Row
}

// ComparePage is the full page model.
type ComparePage struct {
	FirstPlayerName  string
	SecondPlayerName string
	Loading          bool
	ErrorMessage     string
	CanCompare       bool
	ButtonLabel      string
	Tables           []Table
}

// RenderCompare writes the comparison page.
func RenderCompare(w io.Writer, data ComparePage) error {
	return page.ExecuteTemplate(w, "page.html.tmpl", data)
}
