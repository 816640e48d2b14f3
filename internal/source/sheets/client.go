// Package sheets ingests community fridge donations from a Google Sheets range.
// Every failure here degrades to an empty result.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dining_sync/internal/source"
)

const (
	DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	DefaultRange   = "A2:M"
	FreeFood       = "Free Food"
	approved       = "Yes"

	colEmail    = 1
	colItem     = 4
	colApproval = 11
	minColumns  = 5
)

type Config struct {
	BaseURL        string
	SheetID        string
	APIKey         string
	ApprovedEmails string
	Range          string
	Timeout        time.Duration
}

type Client struct {
	httpClient *http.Client
	cfg        Config
	approved   map[string]struct{}
	logger     *slog.Logger
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Range == "" {
		cfg.Range = DefaultRange
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	emails := make(map[string]struct{})
	for _, e := range strings.Split(cfg.ApprovedEmails, ",") {
		if e = strings.TrimSpace(e); e != "" {
			emails[e] = struct{}{}
		}
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		approved:   emails,
		logger:     logger.With("source", "sheets"),
	}
}

// FetchDiningItems returns approved donation rows as dining items.
func (c *Client) FetchDiningItems(ctx context.Context) []source.DiningItem {
	switch {
	case c.cfg.APIKey == "":
		c.logger.Info("sheets api key not set, skipping fridge update")
		return nil
	case c.cfg.SheetID == "":
		c.logger.Info("sheet id not set, skipping fridge update")
		return nil
	case len(c.approved) == 0:
		c.logger.Info("approved emails not set, skipping fridge update")
		return nil
	}

	rows, err := c.fetchRows(ctx)
	if err != nil {
		c.logger.Warn("failed to fetch fridge rows", "error", err)
		return nil
	}
	c.logger.Debug("fetched fridge rows", "rows", len(rows))

	return c.filter(rows)
}

func (c *Client) fetchRows(ctx context.Context) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		url.PathEscape(c.cfg.SheetID),
		url.PathEscape(c.cfg.Range),
		url.QueryEscape(c.cfg.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if body.Values == nil {
		return nil, fmt.Errorf("no values in response")
	}
	return body.Values, nil
}

func (c *Client) filter(rows [][]string) []source.DiningItem {
	items := make([]source.DiningItem, 0, len(rows))
	for _, row := range rows {
		if len(row) < minColumns {
			continue
		}
		email := strings.TrimSpace(row[colEmail])
		name := strings.TrimSpace(row[colItem])
		if email == "" || name == "" {
			continue
		}
		if _, ok := c.approved[email]; !ok {
			continue
		}
		if len(row) > colApproval && row[colApproval] != approved {
			continue
		}
		items = append(items, source.DiningItem{
			Descr:        name,
			Category:     FreeFood,
			Item:         name,
			ShowCategory: true,
		})
	}
	return items
}
