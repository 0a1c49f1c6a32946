package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/scout/internal/seedratings"
)

// Default configuration constants.
const (
	defaultNumRatings = 500
	defaultTopN       = 10
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numRatings = flag.Int("ratings", defaultNumRatings, "Number of ratings to submit")
		topN       = flag.Int("top", defaultTopN, "Number of leaderboard entries to verify")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		scout      = flag.String("scout", "seed", "Scout name written on every rating")
		seed       = flag.Int64("seed", 0, "Random seed; 0 uses the clock")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Write the submitted ratings to this JSON file")
		logFile    = flag.String("log", "", "Also write logs to this file")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seedratings.ShowHelp()
		return
	}

	if err := seedratings.SetupLogging(*logFile, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seedratings.Config{
		BaseURL:    *baseURL,
		NumRatings: *numRatings,
		TopN:       *topN,
		Workers:    *workers,
		Timeout:    *timeout,
		Scout:      *scout,
		Seed:       *seed,
		OutputFile: *outputFile,
		Verbose:    *verbose,
	}

	if _, err := seedratings.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seed run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
