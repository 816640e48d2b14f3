package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dining_sync/internal/domain"
)

const (
	DefaultHeader        = "X-Cache-Secret"
	DefaultRemoteTimeout = 30 * time.Second
	RefreshPath          = "/internal/cache"
)

type RemoteConfig struct {
	ServerURL string
	Header    string
	Secret    string
	Timeout   time.Duration
}

// RefreshRequest is the body of a cache refresh call.
type RefreshRequest struct {
	Eateries []domain.Eatery `json:"eateries"`
}

type RefreshResponse struct {
	OK    bool   `json:"ok"`
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// RemoteRefresher pushes published eateries to a serving process.
type RemoteRefresher struct {
	url    string
	header string
	secret string
	client *http.Client
	logger *slog.Logger
}

func NewRemoteRefresher(cfg RemoteConfig, logger *slog.Logger) *RemoteRefresher {
	if cfg.Header == "" {
		cfg.Header = DefaultHeader
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultRemoteTimeout
	}
	return &RemoteRefresher{
		url:    strings.TrimRight(cfg.ServerURL, "/") + RefreshPath,
		header: cfg.Header,
		secret: cfg.Secret,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.With("component", "remote_refresher"),
	}
}

func (r *RemoteRefresher) Refresh(ctx context.Context, eateries []domain.Eatery) error {
	body, err := json.Marshal(RefreshRequest{Eateries: eateries})
	if err != nil {
		return fmt.Errorf("marshal eateries: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(r.header, r.secret)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status: %d %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out RefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		r.logger.Warn("cache refresh response not understood", "error", err)
		return nil
	}

	r.logger.Info("server cache refreshed", "tag", out.Tag, "count", out.Count, "bytes", len(body))
	return nil
}
