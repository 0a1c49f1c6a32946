package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/scoring"
)

// maxRatingBody bounds the size of a POST /ratings body.
const maxRatingBody = 64 << 10

// RatingsDependencies defines the interface for rating operations.
type RatingsDependencies interface {
	SubmitRating(ctx context.Context, form scoring.Form) (model.Rating, error)
	Ratings(ctx context.Context, player string) ([]model.Rating, error)
	RatingScale() []int
}

// RatingsHandler handles rating submission and listing.
type RatingsHandler struct {
	deps RatingsDependencies
}

// NewRatingsHandler creates a new ratings handler.
func NewRatingsHandler(deps RatingsDependencies) *RatingsHandler {
	return &RatingsHandler{deps: deps}
}

// HandlePost handles POST /ratings requests.
func (h *RatingsHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_rating"
	var form scoring.Form
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRatingBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, ErrBadRequest, err))
		return
	}

	rating, err := h.deps.SubmitRating(r.Context(), form)
	if err != nil {
		fail(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{
		Message: "Valoración guardada correctamente.",
		Data:    rating,
	})
}

// HandleList handles GET /ratings?player= requests.
func (h *RatingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_ratings"
	ratings, err := h.deps.Ratings(r.Context(), r.URL.Query().Get("player"))
	if err != nil {
		fail(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}

// HandleScale handles GET /ratings/scale requests.
func (h *RatingsHandler) HandleScale(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]int{"scale": h.deps.RatingScale()})
}
