package seedratings

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	filePermission      = 0600
)

// Run seeds the service with ratings and verifies the leaderboard. It
// returns ErrMismatch when the served leaderboard differs from the one
// computed from GET /ratings.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
	}
	log := logger.Named("seed")

	log.Info(ctx, "starting rating seed run",
		logger.String("runID", stats.RunID),
		logger.String("baseURL", config.BaseURL),
		logger.Int("ratings", config.NumRatings),
		logger.Int("workers", config.Workers),
		logger.Int("topN", config.TopN))

	client := newHTTPClient(config.BaseURL, config.Timeout)

	// Step 1: Fetch the players of the selected dataset
	players, err := client.players(ctx)
	if err != nil {
		return stats, fmt.Errorf("player retrieval failed: %w", err)
	}
	stats.PlayersAvailable = len(players)

	// Step 2: Generate ratings
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	forms := generateRatings(rand.New(rand.NewSource(seed)), players, config.NumRatings, config.Scout, stats.RunID) //nolint:gosec // test data
	stats.RatingsGenerated = len(forms)

	// Step 3: Submit concurrently
	workers := config.Workers
	if workers < 1 {
		workers = 1
	}
	submitRatings(ctx, client, workers, forms, stats)

	// Step 4: Fetch leaderboard and the stored ratings
	leaderboard, err := client.leaderboard(ctx, config.TopN)
	if err != nil {
		return stats, fmt.Errorf("leaderboard retrieval failed: %w", err)
	}
	stats.LeaderboardEntries = len(leaderboard)

	ratings, err := client.ratings(ctx)
	if err != nil {
		return stats, fmt.Errorf("ratings retrieval failed: %w", err)
	}
	if stored := countRun(ratings, stats.RunID); stored != stats.RatingsSuccessful {
		log.Warn(ctx, "stored ratings differ from accepted submissions",
			logger.Int("stored", stored), logger.Int("accepted", stats.RatingsSuccessful))
	}

	// Step 5: Verify
	mismatches := verifyLeaderboard(ratings, leaderboard, config.TopN)
	stats.Mismatches = len(mismatches)
	for _, m := range mismatches {
		log.Warn(ctx, "leaderboard mismatch", logger.String("detail", m.String()))
	}
	if config.Verbose {
		displayTopPerformers(ctx, leaderboard)
	}

	if config.OutputFile != "" {
		if err := saveRatingsToFile(ctx, config.OutputFile, forms); err != nil {
			log.Warn(ctx, "failed to save ratings to file", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if len(mismatches) > 0 {
		return stats, fmt.Errorf("%w: %d positions differ", ErrMismatch, len(mismatches))
	}
	log.Info(ctx, "seed run completed successfully")
	return stats, nil
}

// saveRatingsToFile writes the submitted forms as a JSON array.
func saveRatingsToFile(ctx context.Context, filename string, forms []scoring.Form) error {
	if len(forms) == 0 {
		return ErrNothingToSave
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(forms, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ratings: %w", err)
	}
	if err := os.WriteFile(filename, data, filePermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	logger.Get().Info(ctx, "ratings saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var successRate, ratingsPerSecond float64

	if stats.RatingsSubmitted > 0 {
		successRate = float64(stats.RatingsSuccessful) / float64(stats.RatingsSubmitted) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		ratingsPerSecond = float64(stats.RatingsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.String("runID", stats.RunID),
		logger.Int("playersAvailable", stats.PlayersAvailable),
		logger.Int("ratingsGenerated", stats.RatingsGenerated),
		logger.Int("ratingsSubmitted", stats.RatingsSubmitted),
		logger.Int("ratingsSuccessful", stats.RatingsSuccessful),
		logger.Int("ratingsRejected", stats.RatingsRejected),
		logger.Int("ratingsFailed", stats.RatingsFailed),
		logger.Int("leaderboardEntries", stats.LeaderboardEntries),
		logger.Int("mismatches", stats.Mismatches),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("ratingsPerSecond", ratingsPerSecond))
}
