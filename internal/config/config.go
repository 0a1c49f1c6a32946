// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and SCOUT_* env vars.
// - Validation failures wrap ErrInvalidConfig.
package config

import "path/filepath"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is the directory holding the selectable spreadsheets.
	DataDir string `koanf:"data_dir"`

	// Datasets lists the spreadsheet file names offered for selection.
	Datasets []string `koanf:"datasets"`

	// Dataset is the file selected at startup; defaults to the first entry
	// of Datasets.
	Dataset string `koanf:"dataset"`

	// RatingsDB is the SQLite file holding the ratings table.
	RatingsDB string `koanf:"ratings_db"`

	// ReportPath is the fixed file name the PDF report is written to.
	ReportPath string `koanf:"report_path"`

	// LeaderboardSize is the default number of leaderboard entries.
	LeaderboardSize int `koanf:"leaderboard_size"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// DatasetCacheSize bounds the number of memoized datasets.
	DatasetCacheSize int `koanf:"dataset_cache_size"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":9080",
		DataDir:  "data",
		Datasets: []string{
			"Seguimiento Jugadoras TOTALES Temporada 2023-2024.xlsx",
			"Fotos Jugadoras Temporada 2023-2024.xlsx",
		},
		RatingsDB:           "jugadoras.db",
		ReportPath:          "informe_jugadoras.pdf",
		LeaderboardSize:     10,
		MaxLeaderboardLimit: 100,
		DatasetCacheSize:    8,
	}
}

// SelectedDataset returns the startup dataset file name.
func (c *Config) SelectedDataset() string {
	if c.Dataset != "" {
		return c.Dataset
	}
	if len(c.Datasets) > 0 {
		return c.Datasets[0]
	}
	return ""
}

// DatasetPath resolves a dataset file name against DataDir.
func (c *Config) DatasetPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
