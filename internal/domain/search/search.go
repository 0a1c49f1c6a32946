// Package search looks players up by name.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/okian/scout/internal/domain/model"
)

// Names returns the distinct non-empty player names of ds in first-seen
// order. It is empty when the name column is missing.
func Names(ds *model.Dataset) []string {
	out := make([]string, 0)
	if !ds.Has(model.ColumnName) {
		return out
	}
	seen := make(map[string]struct{}, len(ds.Rows))
	for _, r := range ds.Rows {
		if r.Name == "" {
			continue
		}
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		out = append(out, r.Name)
	}
	return out
}

// Lookup returns every row whose name equals name exactly.
func Lookup(ds *model.Dataset, name string) []model.PlayerRecord {
	out := make([]model.PlayerRecord, 0)
	if !ds.Has(model.ColumnName) || name == "" {
		return out
	}
	for _, r := range ds.Rows {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out
}

// Search returns the distinct names containing query, ignoring case and
// accents. An empty query matches every name.
func Search(ds *model.Dataset, query string) []string {
	names := Names(ds)
	q := Fold(query)
	if q == "" {
		return names
	}
	out := make([]string, 0)
	for _, n := range names {
		if strings.Contains(Fold(n), q) {
			out = append(out, n)
		}
	}
	return out
}

// Fold lower-cases s, strips combining marks and trims surrounding space,
// so "  Jéssica " and "jessica" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
