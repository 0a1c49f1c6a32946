// Package compare builds the side-by-side view of two players.
package compare

import (
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/ranking"
	"github.com/okian/scout/internal/domain/search"
)

// MinRadarAxes is the fewest metrics a radar chart is drawn with.
const MinRadarAxes = 3

// Side is one player's half of a comparison.
type Side struct {
	Name  string               `json:"name"`
	Found bool                 `json:"found"`
	Rows  []model.PlayerRecord `json:"rows"`
	// Totals sums each available metric over the player's rows; null cells
	// count as zero.
	Totals  map[string]float64 `json:"totals"`
	Ratings []model.Rating     `json:"ratings"`
}

// Values returns the totals in the order of metrics.
func (s Side) Values(metrics []string) []float64 {
	out := make([]float64, len(metrics))
	for i, m := range metrics {
		out[i] = s.Totals[m]
	}
	return out
}

// Comparison is the result of comparing two players.
type Comparison struct {
	// Metrics lists the comparison metrics present in the dataset.
	Metrics        []string `json:"metrics"`
	RadarAvailable bool     `json:"radar_available"`
	A              Side     `json:"a"`
	B              Side     `json:"b"`
}

// Compare collects rows, metric totals and rating histories for players a
// and b. Metrics whose columns are missing are left out; the radar is only
// available with at least MinRadarAxes metrics.
func Compare(ds *model.Dataset, ratings []model.Rating, a, b string) Comparison {
	metrics := AvailableMetrics(ds)
	return Comparison{
		Metrics:        metrics,
		RadarAvailable: len(metrics) >= MinRadarAxes,
		A:              side(ds, ratings, metrics, a),
		B:              side(ds, ratings, metrics, b),
	}
}

// AvailableMetrics returns the comparison metrics present in ds.
func AvailableMetrics(ds *model.Dataset) []string {
	out := make([]string, 0, len(model.Metrics))
	for _, m := range model.Metrics {
		if ds.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// Totals sums metrics over rows, treating null values as zero.
func Totals(rows []model.PlayerRecord, metrics []string) map[string]float64 {
	totals := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		totals[m] = 0
	}
	for _, r := range rows {
		for _, m := range metrics {
			if v, ok := r.Metric(m); ok {
				totals[m] += v
			}
		}
	}
	return totals
}

func side(ds *model.Dataset, ratings []model.Rating, metrics []string, name string) Side {
	rows := search.Lookup(ds, name)
	return Side{
		Name:    name,
		Found:   len(rows) > 0,
		Rows:    rows,
		Totals:  Totals(rows, metrics),
		Ratings: ranking.History(ratings, name),
	}
}
