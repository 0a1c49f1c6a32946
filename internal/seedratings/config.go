// Package seedratings seeds a running scouting service with random ratings
// and verifies its leaderboard against a locally computed one.
package seedratings

import "time"

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumRatings int           // Number of ratings to submit
	TopN       int           // Number of leaderboard entries to verify
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	Scout      string        // Scout name written on every rating
	Seed       int64         // Random seed; 0 picks one from the clock
	OutputFile string        // Output file for submitted ratings
	Verbose    bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	RunID              string
	PlayersAvailable   int
	RatingsGenerated   int
	RatingsSubmitted   int
	RatingsSuccessful  int
	RatingsRejected    int
	RatingsFailed      int
	LeaderboardEntries int
	Mismatches         int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
