package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	envPrefix     = "SCOUT_"
	envConfigFile = "SCOUT_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SCOUT_CONFIG is set
//  3. env (prefix SCOUT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// Map env keys like SCOUT_RATINGS_DB -> ratings_db (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	// Slices decode into the existing backing array; drop the defaults so a
	// configured list replaces them instead of overlaying them.
	if k.Exists("datasets") {
		cfg.Datasets = nil
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the service cannot start without.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.RatingsDB) == "":
		return fmt.Errorf("%w: ratings_db must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.ReportPath) == "":
		return fmt.Errorf("%w: report_path must not be empty", ErrInvalidConfig)
	case c.LeaderboardSize < 1:
		return fmt.Errorf("%w: leaderboard_size must be at least 1", ErrInvalidConfig)
	case c.MaxLeaderboardLimit < c.LeaderboardSize:
		return fmt.Errorf("%w: max_leaderboard_limit must not be below leaderboard_size", ErrInvalidConfig)
	}
	return nil
}
