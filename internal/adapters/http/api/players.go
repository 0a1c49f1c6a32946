package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/types"
)

// PlayersDependencies defines the interface for player lookups.
type PlayersDependencies interface {
	Players(ctx context.Context) ([]string, error)
	Player(ctx context.Context, name string) ([]model.PlayerRecord, error)
	Search(ctx context.Context, query string) ([]string, error)
	Info() types.SessionInfo
}

// PlayersHandler handles player list, lookup and search requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

type playersResponse struct {
	Players []string `json:"players"`
	// Message is set when the dataset could not be loaded.
	Message string `json:"message,omitempty"`
}

// HandleList handles GET /players requests. A dataset without the name
// column yields an empty list plus the session message rather than an error.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	names, err := h.deps.Players(r.Context())
	info := h.deps.Info()
	resp := playersResponse{Players: names, Message: info.Message}
	if err != nil {
		if resp.Message == "" {
			resp.Message = err.Error()
		}
		resp.Players = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /players/{name} requests.
func (h *PlayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	rows, err := h.deps.Player(r.Context(), name)
	if err != nil {
		fail(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleSearch handles GET /players/search?q= requests.
func (h *PlayersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_players"
	names, err := h.deps.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		fail(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, playersResponse{Players: names})
}
