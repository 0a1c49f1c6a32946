package api

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/types"
)

// FiltersDependencies defines the interface for the filters and data view.
type FiltersDependencies interface {
	FilterOptions(ctx context.Context) types.FilterOptions
	Filter(ctx context.Context, c filter.Criteria) []model.PlayerRecord
	ExportReport(ctx context.Context, c filter.Criteria) (types.ReportResult, error)
}

// FiltersHandler handles filter options, filtering and report export.
type FiltersHandler struct {
	deps FiltersDependencies
}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler(deps FiltersDependencies) *FiltersHandler {
	return &FiltersHandler{deps: deps}
}

type filterResponse struct {
	Count int                  `json:"count"`
	Rows  []model.PlayerRecord `json:"rows"`
}

// HandleOptions handles GET /filters/options requests.
func (h *FiltersHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.FilterOptions(r.Context()))
}

// HandleFilter handles GET /filters?team=&position=&age_min=&age_max=&q_min=&q_max= requests.
func (h *FiltersHandler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	const op = "api.filter"
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, ErrInvalidNumber, err))
		return
	}
	rows := h.deps.Filter(r.Context(), c)
	writeJSON(w, http.StatusOK, filterResponse{Count: len(rows), Rows: rows})
}

// HandleReport handles POST /report requests using the same query as /filters.
func (h *FiltersHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_report"
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, ErrInvalidNumber, err))
		return
	}
	res, err := h.deps.ExportReport(r.Context(), c)
	if err != nil {
		fail(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Informe exportado como '" + res.Path + "'",
		Data:    res,
	})
}

// parseCriteria reads filter criteria from query parameters. A range is
// applied when either of its bounds is given; the missing bound is open.
func parseCriteria(q url.Values) (filter.Criteria, error) {
	c := filter.Criteria{
		Team:     q.Get("team"),
		Position: q.Get("position"),
	}
	var err error
	if c.Age, err = parseRange(q, "age_min", "age_max"); err != nil {
		return filter.Criteria{}, err
	}
	if c.Qualification, err = parseRange(q, "q_min", "q_max"); err != nil {
		return filter.Criteria{}, err
	}
	return c, nil
}

func parseRange(q url.Values, minKey, maxKey string) (*types.Bounds, error) {
	minStr, maxStr := q.Get(minKey), q.Get(maxKey)
	if minStr == "" && maxStr == "" {
		return nil, nil
	}
	b := types.Bounds{Min: math.Inf(-1), Max: math.Inf(1)}
	if minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return nil, err
		}
		b.Min = v
	}
	if maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return nil, err
		}
		b.Max = v
	}
	return &b, nil
}
