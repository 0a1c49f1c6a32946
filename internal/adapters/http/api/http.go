// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	PlayersDependencies
	RatingsDependencies
	LeaderboardDependencies
	FiltersDependencies
	CompareDependencies
	DatasetsDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	playersHandler     *PlayersHandler
	ratingsHandler     *RatingsHandler
	leaderboardHandler *LeaderboardHandler
	filtersHandler     *FiltersHandler
	compareHandler     *CompareHandler
	datasetsHandler    *DatasetsHandler
	dashboardHandler   *dashboardHandler
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// leaderboard limit accepted from clients.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		playersHandler:     NewPlayersHandler(deps),
		ratingsHandler:     NewRatingsHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLimit),
		filtersHandler:     NewFiltersHandler(deps),
		compareHandler:     NewCompareHandler(deps),
		datasetsHandler:    NewDatasetsHandler(deps),
		dashboardHandler:   newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /players", MetricsMiddleware(s.playersHandler.HandleList, "players"))
	mux.HandleFunc("GET /players/search", MetricsMiddleware(s.playersHandler.HandleSearch, "players_search"))
	mux.HandleFunc("GET /players/{name}", MetricsMiddleware(s.playersHandler.HandleGet, "player"))

	mux.HandleFunc("GET /ratings", MetricsMiddleware(s.ratingsHandler.HandleList, "ratings"))
	mux.HandleFunc("POST /ratings", MetricsMiddleware(s.ratingsHandler.HandlePost, "ratings"))
	mux.HandleFunc("GET /ratings/scale", MetricsMiddleware(s.ratingsHandler.HandleScale, "ratings_scale"))
	mux.HandleFunc("GET /leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))

	mux.HandleFunc("GET /filters/options", MetricsMiddleware(s.filtersHandler.HandleOptions, "filter_options"))
	mux.HandleFunc("GET /filters", MetricsMiddleware(s.filtersHandler.HandleFilter, "filters"))
	mux.HandleFunc("POST /report", MetricsMiddleware(s.filtersHandler.HandleReport, "report"))

	mux.HandleFunc("GET /compare", MetricsMiddleware(s.compareHandler.HandleCompare, "compare"))
	mux.HandleFunc("GET /compare/radar.png", MetricsMiddleware(s.compareHandler.HandleRadar, "compare_radar"))

	mux.HandleFunc("GET /datasets", MetricsMiddleware(s.datasetsHandler.HandleList, "datasets"))
	mux.HandleFunc("POST /datasets/select", MetricsMiddleware(s.datasetsHandler.HandleSelect, "datasets_select"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// messageResponse carries a user-facing confirmation next to the payload.
type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// fail classifies err by its kind, writes the matching response and logs
// server-side failures.
func fail(ctx context.Context, w http.ResponseWriter, op string, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Get().Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
	}
	writeError(w, status, code, err)
}

// classify maps error kinds to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, model.ErrInvalidLimit):
		return http.StatusBadRequest, "limit_exceeded"
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrMissingParam), errors.Is(err, ErrInvalidNumber):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, model.ErrPlayerNotFound), errors.Is(err, model.ErrUnknownDataset):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, model.ErrMissingColumn):
		return http.StatusConflict, "column_unavailable"
	case errors.Is(err, model.ErrDataSource):
		return http.StatusServiceUnavailable, "data_source_error"
	case errors.Is(err, model.ErrStorage):
		return http.StatusInternalServerError, "storage_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// NewKind returns an API error of the given kind.
func NewKind(op string, kind error) error {
	return model.NewKind(op, kind)
}

// Wrap tags err with the API operation, keeping its kind.
func Wrap(op string, kind, err error) error {
	return model.WrapKind(op, kind, err)
}
