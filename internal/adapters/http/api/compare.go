package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/okian/scout/internal/domain/compare"
)

// CompareDependencies defines the interface for the comparison view.
type CompareDependencies interface {
	Compare(ctx context.Context, a, b string) (compare.Comparison, error)
	RadarPNG(ctx context.Context, w io.Writer, a, b string) error
}

// CompareHandler handles two-player comparisons.
type CompareHandler struct {
	deps CompareDependencies
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(deps CompareDependencies) *CompareHandler {
	return &CompareHandler{deps: deps}
}

// HandleCompare handles GET /compare?a=&b= requests.
func (h *CompareHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare"
	a, b, ok := pair(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrMissingParam))
		return
	}
	cmp, err := h.deps.Compare(r.Context(), a, b)
	if err != nil {
		fail(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// HandleRadar handles GET /compare/radar.png?a=&b= requests.
func (h *CompareHandler) HandleRadar(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare_radar"
	a, b, ok := pair(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrMissingParam))
		return
	}
	// Render into a buffer so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.deps.RadarPNG(r.Context(), &buf, a, b); err != nil {
		fail(r.Context(), w, op, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func pair(r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	a, b := strings.TrimSpace(q.Get("a")), strings.TrimSpace(q.Get("b"))
	return a, b, a != "" && b != ""
}
