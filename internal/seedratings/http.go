package seedratings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/internal/domain/types"
	"github.com/okian/scout/pkg/logger"
)

// HTTPClient wraps http.Client with a timeout and JSON helpers.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// getJSON performs a GET request and decodes a 200 response into v.
func (c *HTTPClient) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %w: %d", path, ErrUnexpectedCode, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}

// postJSON performs a POST request with a JSON body and returns the status code.
func (c *HTTPClient) postJSON(ctx context.Context, path string, body any) (int, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func (c *HTTPClient) players(ctx context.Context) ([]string, error) {
	var resp struct {
		Players []string `json:"players"`
		Message string   `json:"message"`
	}
	if err := c.getJSON(ctx, "/players", &resp); err != nil {
		return nil, err
	}
	if len(resp.Players) == 0 {
		if resp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrNoPlayers, resp.Message)
		}
		return nil, ErrNoPlayers
	}
	return resp.Players, nil
}

func (c *HTTPClient) leaderboard(ctx context.Context, limit int) ([]types.Entry, error) {
	var entries []types.Entry
	err := c.getJSON(ctx, "/leaderboard?limit="+strconv.Itoa(limit), &entries)
	return entries, err
}

func (c *HTTPClient) ratings(ctx context.Context) ([]model.Rating, error) {
	var ratings []model.Rating
	err := c.getJSON(ctx, "/ratings", &ratings)
	return ratings, err
}

// submitRatings posts forms concurrently using a worker pool.
func submitRatings(ctx context.Context, client *HTTPClient, workers int, forms []scoring.Form, stats *Stats) {
	log := logger.Named("seed")
	log.Info(ctx, "submitting ratings", logger.Int("ratings", len(forms)), logger.Int("workers", workers))

	var successful, rejected, failed, submitted int64

	formChan := make(chan scoring.Form, workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for form := range formChan {
				atomic.AddInt64(&submitted, 1)
				switch submitOne(ctx, client, form) {
				case resultSuccess:
					atomic.AddInt64(&successful, 1)
				case resultRejected:
					atomic.AddInt64(&rejected, 1)
				default:
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	go func() {
		defer close(formChan)
		for _, form := range forms {
			select {
			case <-ctx.Done():
				return
			case formChan <- form:
			}
		}
	}()

	wg.Wait()

	stats.RatingsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.RatingsSuccessful = int(atomic.LoadInt64(&successful))
	stats.RatingsRejected = int(atomic.LoadInt64(&rejected))
	stats.RatingsFailed = int(atomic.LoadInt64(&failed))

	log.Info(ctx, "rating submission completed",
		logger.Int("successful", stats.RatingsSuccessful),
		logger.Int("rejected", stats.RatingsRejected),
		logger.Int("failed", stats.RatingsFailed))
}

// submitOne submits a single rating and classifies the outcome.
func submitOne(ctx context.Context, client *HTTPClient, form scoring.Form) string {
	code, err := client.postJSON(ctx, "/ratings", form)
	switch {
	case err != nil:
		logger.Get().Debug(ctx, "rating submission failed", logger.Error(err))
		return resultFailed
	case code == http.StatusCreated:
		return resultSuccess
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return resultRejected
	default:
		return resultFailed
	}
}
