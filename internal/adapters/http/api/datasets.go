package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/scout/internal/domain/types"
)

// DatasetsDependencies defines the interface for dataset selection.
type DatasetsDependencies interface {
	Datasets() types.Datasets
	Info() types.SessionInfo
	SelectDataset(ctx context.Context, name string) (types.SessionInfo, error)
}

// DatasetsHandler handles dataset listing and selection.
type DatasetsHandler struct {
	deps DatasetsDependencies
}

// NewDatasetsHandler creates a new datasets handler.
func NewDatasetsHandler(deps DatasetsDependencies) *DatasetsHandler {
	return &DatasetsHandler{deps: deps}
}

type datasetsResponse struct {
	types.Datasets
	Session types.SessionInfo `json:"session"`
}

type selectRequest struct {
	Dataset string `json:"dataset"`
}

// HandleList handles GET /datasets requests.
func (h *DatasetsHandler) HandleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, datasetsResponse{Datasets: h.deps.Datasets(), Session: h.deps.Info()})
}

// HandleSelect handles POST /datasets/select requests.
func (h *DatasetsHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	const op = "api.select_dataset"
	var req selectRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRatingBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, ErrBadRequest, err))
		return
	}
	if req.Dataset == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrMissingParam))
		return
	}
	info, err := h.deps.SelectDataset(r.Context(), req.Dataset)
	if err != nil {
		fail(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
