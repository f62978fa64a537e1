package handlers

import (
	"net/http"
	"path/filepath"
)

// NewIndexHandler returns an HTTP handler serving the static landing page
// from the given directory.
// @Summary Landing page
// @Description Serves the static landing page.
// @Tags static
// @Produce html
// @Success 200 {string} string "Landing page"
// @Router / [get]
func NewIndexHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}
