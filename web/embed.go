package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

// Assets holds the game page template and its static files, compiled into
// the binary so the server ships as a single artifact.
//
//go:embed templates/*.tmpl static/*
var Assets embed.FS

// StaticFS exposes the static/ subtree for mounting under /static.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		// Only possible if the embed layout changes; serve nothing.
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(Assets, "templates/*.tmpl"))
}
