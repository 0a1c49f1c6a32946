// Package filter narrows a player dataset by team, position, age and
// qualification.
package filter

import (
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/types"
)

// Sentinels that disable the team and position dimensions.
const (
	AllTeams     = "Todos"
	AllPositions = "Todas"
	All          = "all"
)

// Slider defaults used when a range column is absent or has no values.
var (
	DefaultAgeBounds           = types.Bounds{Min: 10, Max: 40}
	DefaultQualificationBounds = types.Bounds{Min: 0, Max: 10}
)

// Criteria selects rows. Nil ranges are not applied.
type Criteria struct {
	Team          string
	Position      string
	Age           *types.Bounds
	Qualification *types.Bounds
}

// IsAll reports whether v is one of the "no filtering" sentinels.
func IsAll(v string) bool {
	switch v {
	case "", AllTeams, AllPositions, All:
		return true
	}
	return false
}

// predicate keeps a row when it returns true.
type predicate func(model.PlayerRecord) bool

// Apply returns the rows of ds matching c, in their original order. The
// input is never modified. A dimension whose column is missing from the
// dataset is skipped; a null value in a present range column fails the range.
func Apply(ds *model.Dataset, c Criteria) []model.PlayerRecord {
	if ds == nil {
		return []model.PlayerRecord{}
	}

	var preds []predicate
	if !IsAll(c.Team) && ds.Has(model.ColumnTeam) {
		team := c.Team
		preds = append(preds, func(p model.PlayerRecord) bool { return p.Club == team })
	}
	if !IsAll(c.Position) && ds.Has(model.ColumnPosition) {
		pos := c.Position
		preds = append(preds, func(p model.PlayerRecord) bool { return p.Position == pos })
	}
	if c.Age != nil && ds.Has(model.ColumnAge) {
		b := *c.Age
		preds = append(preds, func(p model.PlayerRecord) bool { return p.Age != nil && b.Contains(*p.Age) })
	}
	if c.Qualification != nil && ds.Has(model.ColumnQualification) {
		b := *c.Qualification
		preds = append(preds, func(p model.PlayerRecord) bool {
			return p.Qualification != nil && b.Contains(*p.Qualification)
		})
	}

	out := make([]model.PlayerRecord, 0, len(ds.Rows))
rows:
	for _, row := range ds.Rows {
		for _, keep := range preds {
			if !keep(row) {
				continue rows
			}
		}
		out = append(out, row)
	}
	return out
}

// Options derives the filter choices for ds: distinct teams and positions in
// first-seen order and the slider bounds of the range columns.
func Options(ds *model.Dataset) types.FilterOptions {
	opts := types.FilterOptions{
		Teams:         []string{},
		Positions:     []string{},
		Age:           DefaultAgeBounds,
		Qualification: DefaultQualificationBounds,
		Available: map[string]bool{
			model.ColumnTeam:          ds.Has(model.ColumnTeam),
			model.ColumnPosition:      ds.Has(model.ColumnPosition),
			model.ColumnAge:           ds.Has(model.ColumnAge),
			model.ColumnQualification: ds.Has(model.ColumnQualification),
		},
	}
	if ds == nil {
		return opts
	}

	if ds.Has(model.ColumnTeam) {
		opts.Teams = distinct(ds.Rows, func(p model.PlayerRecord) string { return p.Club })
	}
	if ds.Has(model.ColumnPosition) {
		opts.Positions = distinct(ds.Rows, func(p model.PlayerRecord) string { return p.Position })
	}
	if ds.Has(model.ColumnAge) {
		if b, ok := bounds(ds.Rows, func(p model.PlayerRecord) *float64 { return p.Age }); ok {
			opts.Age = b
		}
	}
	if ds.Has(model.ColumnQualification) {
		if b, ok := bounds(ds.Rows, func(p model.PlayerRecord) *float64 { return p.Qualification }); ok {
			opts.Qualification = b
		}
	}
	return opts
}

func distinct(rows []model.PlayerRecord, field func(model.PlayerRecord) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range rows {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func bounds(rows []model.PlayerRecord, field func(model.PlayerRecord) *float64) (types.Bounds, bool) {
	var b types.Bounds
	found := false
	for _, r := range rows {
		v := field(r)
		if v == nil {
			continue
		}
		if !found {
			b = types.Bounds{Min: *v, Max: *v}
			found = true
			continue
		}
		if *v < b.Min {
			b.Min = *v
		}
		if *v > b.Max {
			b.Max = *v
		}
	}
	return b, found
}
