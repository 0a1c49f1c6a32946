// Package service provides the scouting use cases behind the HTTP API. It
// owns the session (the selected dataset) and the ratings store.
package service

import (
	"context"
	"sync"

	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/adapters/spreadsheet"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Default configuration values.
const (
	defaultLeaderboardSize     = 10
	defaultMaxLeaderboardLimit = 100
	defaultReportPath          = "informe_jugadoras.pdf"
	defaultDatasetCacheSize    = 8
)

// Service implements the API dependencies for the scouting dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	loader    spreadsheet.Loader
	validator *scoring.Validator

	// Configuration
	dataDir             string
	datasets            []string
	initialDataset      string
	reportPath          string
	leaderboardSize     int
	maxLeaderboardLimit int

	// State
	started bool
	session *Session

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the ratings store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLoader sets the dataset loader. The default memoizes file reads.
func WithLoader(loader spreadsheet.Loader) Option {
	return func(s *Service) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// WithValidator sets the rating form validator.
func WithValidator(v *scoring.Validator) Option {
	return func(s *Service) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithDatasets sets the directory and file names of the selectable datasets.
func WithDatasets(dataDir string, names ...string) Option {
	return func(s *Service) {
		s.dataDir = dataDir
		s.datasets = append([]string(nil), names...)
	}
}

// WithInitialDataset selects the dataset loaded at start. Defaults to the
// first selectable dataset.
func WithInitialDataset(name string) Option {
	return func(s *Service) {
		s.initialDataset = name
	}
}

// WithReportPath sets the file the PDF report is written to.
func WithReportPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.reportPath = path
		}
	}
}

// WithLeaderboardSize sets the number of entries returned when no limit is given.
func WithLeaderboardSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.leaderboardSize = n
		}
	}
}

// WithMaxLeaderboardLimit caps the limit accepted by Leaderboard.
func WithMaxLeaderboardLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLeaderboardLimit = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		loader:              spreadsheet.NewCachedLoader(spreadsheet.FileLoader{}, defaultDatasetCacheSize),
		validator:           scoring.NewValidator(),
		reportPath:          defaultReportPath,
		leaderboardSize:     defaultLeaderboardSize,
		maxLeaderboardLimit: defaultMaxLeaderboardLimit,
		logger:              nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.maxLeaderboardLimit < s.leaderboardSize {
		s.maxLeaderboardLimit = s.leaderboardSize
	}

	return s
}

// Start prepares the ratings store and loads the initial dataset. A dataset
// that cannot be read does not fail Start; the session then carries an empty
// dataset and a message for the user.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		return ErrNoStore
	}

	s.logger.Info(ctx, "starting scouting service...")

	if err := s.store.Initialize(ctx); err != nil {
		s.logger.Error(ctx, "failed to initialize ratings store", logger.Error(err))
		return err
	}
	s.refreshRatingsGauge(ctx)

	name := s.initialDataset
	if name == "" && len(s.datasets) > 0 {
		name = s.datasets[0]
	}
	s.session = s.loadSession(ctx, name)

	s.started = true
	s.logger.Info(ctx, "scouting service started",
		logger.String("dataset", s.session.Dataset.Source),
		logger.Int("players", s.session.Dataset.Len()),
		logger.Int("leaderboardSize", s.leaderboardSize),
	)

	return nil
}

// Stop releases memoized datasets and marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping scouting service...")

	if p, ok := s.loader.(interface{ Purge(context.Context) }); ok {
		p.Purge(ctx)
	}

	s.started = false
	s.logger.Info(ctx, "scouting service stopped")
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"datasets":        s.datasets,
		"leaderboardSize": s.leaderboardSize,
		"reportPath":      s.reportPath,
	}

	if s.started {
		stats["dataset"] = s.session.Name
		stats["players"] = s.session.Dataset.Len()
		stats["columns"] = s.session.Dataset.Columns
		stats["loadedAt"] = s.session.LoadedAt
		if s.session.Message != "" {
			stats["message"] = s.session.Message
		}
		if n, err := s.store.Count(ctx); err == nil {
			stats["ratings"] = n
			metrics.UpdateRatingsTotal(n)
		}
		metrics.UpdatePlayersLoaded(s.session.Dataset.Len())
	}

	return stats
}

// refreshRatingsGauge updates the stored ratings gauge; failures are only logged.
func (s *Service) refreshRatingsGauge(ctx context.Context) {
	n, err := s.store.Count(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to count ratings", logger.Error(err))
		return
	}
	metrics.UpdateRatingsTotal(n)
}
