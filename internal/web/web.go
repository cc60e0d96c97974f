// Package web serves the embedded single-page UI.
package web

import (
	"embed"
	"fmt"
	"net/http"
)

//go:embed static/index.html
var staticFiles embed.FS

// Handler returns the handler for the page. The page is read from the
// embedded filesystem once, at startup.
func Handler() (http.Handler, error) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded page: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}), nil
}
