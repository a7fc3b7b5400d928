// Package web holds the embedded HTML templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates parses every page. Pages register themselves under their
// path-style name, e.g. "cruises/index.html".
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*/*.html")
}

// Static is the tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
