// Package site serves the embedded scouting dashboard.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded dashboard at / on mux. API routes registered
// with more specific patterns take precedence.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("GET /", NewRootHandler())
}

// RootHandler serves the dashboard page and its assets.
type RootHandler struct {
	files http.Handler
}

// NewRootHandler creates a new root handler
func NewRootHandler() *RootHandler {
	return &RootHandler{files: http.FileServer(FS())}
}

// ServeHTTP serves the embedded files; / maps to index.html.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	h.files.ServeHTTP(w, r)
}
