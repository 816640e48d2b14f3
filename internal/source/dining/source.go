package dining

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	SourceID   = "dining"
	SourceName = "Campus Dining API"
)

var ErrInvalidResponse = errors.New("invalid response format from dining API")

// Config holds upstream API configuration.
type Config struct {
	URL            string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches the full eatery list from the campus dining API.
type Source struct {
	httpClient     *http.Client
	url            string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new dining API source.
func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:            cfg.URL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchEateries fetches and validates every raw eatery. Any transport or
// shape error fails the whole call.
func (s *Source) FetchEateries(ctx context.Context) ([]RawEatery, error) {
	if s.url == "" {
		return nil, errors.New("dining API url is not configured")
	}

	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx)
		if err == nil || errors.Is(err, ErrInvalidResponse) {
			break
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(resp); err != nil {
		return nil, err
	}

	s.logger.Debug("fetched eateries", "count", len(resp.Data.Eateries))
	return resp.Data.Eateries, nil
}

func (s *Source) doRequest(ctx context.Context) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "DiningSync/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w: %w", ErrInvalidResponse, err)
	}

	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

// Validate checks the structural shape of a response before transformation.
func Validate(resp *APIResponse) error {
	if resp == nil || resp.Data == nil || resp.Data.Eateries == nil {
		return fmt.Errorf("%w: missing data.eateries", ErrInvalidResponse)
	}
	for i, e := range resp.Data.Eateries {
		if e.ID <= 0 {
			return fmt.Errorf("%w: eatery at index %d has no positive id", ErrInvalidResponse, i)
		}
		if e.Name == "" {
			return fmt.Errorf("%w: eatery %d has no name", ErrInvalidResponse, e.ID)
		}
	}
	return nil
}
