// Package types contains common types used across the application
package types

import "time"

// Entry represents a leaderboard entry
type Entry struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Mean  float64 `json:"mean_score"`
	Count int     `json:"count"`
	Photo string  `json:"photo"`
}

// Bounds is an inclusive numeric interval.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the bounds, inclusive.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// FilterOptions lists the choices offered by the filters view.
type FilterOptions struct {
	Teams         []string `json:"teams"`
	Positions     []string `json:"positions"`
	Age           Bounds   `json:"age"`
	Qualification Bounds   `json:"qualification"`
	// Available reports per column whether the dataset carries it.
	Available map[string]bool `json:"available"`
}

// SessionInfo describes the dataset selected for the current session.
type SessionInfo struct {
	Dataset  string    `json:"dataset"`
	Path     string    `json:"path"`
	Players  int       `json:"players"`
	Columns  []string  `json:"columns"`
	Message  string    `json:"message,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Datasets describes the selectable datasets.
type Datasets struct {
	Available []string `json:"available"`
	Selected  string   `json:"selected"`
}

// ReportResult describes a written PDF report.
type ReportResult struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}
