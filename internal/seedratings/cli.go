package seedratings

import (
	"fmt"
	"io"
	"os"

	"github.com/okian/scout/pkg/logger"
)

// SetupLogging initializes the logger writing to stdout and, when logFile
// is set, also to that file.
func SetupLogging(logFile string, verbose bool) error {
	var w io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermission)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, file)
	}
	if err := logger.InitWithWriter(w); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the seed tool.
func ShowHelp() {
	os.Stdout.WriteString(`Scouting Rating Seed Tool
=========================

Submits random ratings to a running scouting service and checks that its
leaderboard matches the mean scores of the stored ratings.

Usage:
  go run ./cmd/seed-ratings [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -ratings int
        Number of ratings to submit (default 500)
  -top int
        Number of leaderboard entries to verify (default 10)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -scout string
        Scout name written on every rating (default "seed")
  -seed int
        Random seed; 0 uses the clock
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Write the submitted ratings to this JSON file
  -log string
        Also write logs to this file
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  go run ./cmd/seed-ratings -ratings 2000 -workers 8
  go run ./cmd/seed-ratings -url http://localhost:8080 -top 20 -verbose
`)
}
