// Package api serves the cached eatery snapshot over HTTP and accepts pushed
// snapshots from the syncer.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dining_sync/internal/cache"
	"dining_sync/internal/domain"
	"dining_sync/internal/notify"
)

const (
	DefaultMaxBodyBytes = 20 << 20
	MaxDays             = 14
)

// StoreRefresher repopulates a cold cache from the database.
type StoreRefresher interface {
	RefreshFromStore(ctx context.Context) (*cache.Snapshot, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	SecretHeader string
	Secret       string
	MaxBodyBytes int64
	Location     *time.Location
}

type Handler struct {
	cache     *cache.Cache
	refresher StoreRefresher
	db        Pinger
	opts      Options
	now       func() time.Time
	logger    *slog.Logger
}

// NewHandler builds the handler. refresher and db may be nil, in which case a
// cold cache is reported as unavailable and health skips the database.
func NewHandler(c *cache.Cache, refresher StoreRefresher, db Pinger, opts Options, logger *slog.Logger) *Handler {
	if opts.SecretHeader == "" {
		opts.SecretHeader = cache.DefaultHeader
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Handler{
		cache:     c,
		refresher: refresher,
		db:        db,
		opts:      opts,
		now:       time.Now,
		logger:    logger.With("component", "api"),
	}
}

// snapshot returns the current snapshot, loading it from the store when cold.
func (h *Handler) snapshot(ctx context.Context) (*cache.Snapshot, error) {
	snap, err := h.cache.Get()
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, cache.ErrCold) || h.refresher == nil {
		return nil, err
	}

	h.logger.Info("cache cold, loading from store")
	return h.refresher.RefreshFromStore(ctx)
}

// window is [midnight today, midnight today+days) in the configured timezone.
func (h *Handler) window(days int) (time.Time, time.Time) {
	now := h.now().In(h.opts.Location)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.opts.Location)
	return from, from.AddDate(0, 0, days)
}

func parseDays(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > MaxDays {
		return 0, errors.New("days must be an integer between 1 and 14")
	}
	return days, nil
}

// withinWindow copies eateries keeping only events overlapping [from, to).
func withinWindow(eateries []domain.Eatery, from, to time.Time) []domain.Eatery {
	out := make([]domain.Eatery, len(eateries))
	for i, e := range eateries {
		events := make([]domain.Event, 0, len(e.Events))
		for _, ev := range e.Events {
			if ev.Start.Before(to) && ev.End.After(from) {
				events = append(events, ev)
			}
		}
		e.Events = events
		out[i] = e
	}
	return out
}

func (h *Handler) ListEateries(c *gin.Context) {
	days, err := parseDays(c.Query("days"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	snap, err := h.snapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load snapshot", "error", err)
		respondError(c, http.StatusServiceUnavailable, CodeCacheUnavailable, "eatery data is not available yet")
		return
	}

	etag := `"` + snap.Tag + `"`
	if days > 0 {
		etag = `W/"` + snap.Tag + "-d" + strconv.Itoa(days) + `"`
	}
	c.Header("ETag", etag)
	if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return
	}

	eateries := snap.Eateries
	if days > 0 {
		from, to := h.window(days)
		eateries = withinWindow(eateries, from, to)
	}
	c.JSON(http.StatusOK, gin.H{"eateries": eateries})
}

func (h *Handler) GetEatery(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "id must be an integer")
		return
	}

	snap, err := h.snapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load snapshot", "error", err)
		respondError(c, http.StatusServiceUnavailable, CodeCacheUnavailable, "eatery data is not available yet")
		return
	}

	eatery, ok := snap.Find(id)
	if !ok {
		respondError(c, http.StatusNotFound, CodeNotFound, "eatery not found")
		return
	}
	c.JSON(http.StatusOK, eatery)
}

type MatchRequest struct {
	Items []string `json:"items" binding:"required,min=1"`
	Days  int      `json:"days" binding:"omitempty,min=1,max=14"`
}

type MatchResponse struct {
	Matches []domain.FavoriteMatch `json:"matches"`
}

func (h *Handler) MatchFavorites(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}
	if req.Days == 0 {
		req.Days = 1
	}

	snap, err := h.snapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load snapshot", "error", err)
		respondError(c, http.StatusServiceUnavailable, CodeCacheUnavailable, "eatery data is not available yet")
		return
	}

	from, to := h.window(req.Days)
	matches := notify.Match(notify.ServedItems(snap.Eateries, from, to), req.Items)
	if matches == nil {
		matches = []domain.FavoriteMatch{}
	}
	c.JSON(http.StatusOK, MatchResponse{Matches: matches})
}

// RefreshCache replaces the served snapshot with a pushed eatery list.
func (h *Handler) RefreshCache(c *gin.Context) {
	if h.opts.Secret == "" || c.GetHeader(h.opts.SecretHeader) != h.opts.Secret {
		respondError(c, http.StatusUnauthorized, CodeUnauthorized, "invalid cache secret")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxBodyBytes)

	var req cache.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "request body too large")
			return
		}
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}
	if req.Eateries == nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "eateries is required")
		return
	}
	if err := validateEateries(req.Eateries); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	snap := h.cache.Set(req.Eateries)
	h.logger.Info("cache refreshed", "tag", snap.Tag, "count", len(snap.Eateries))
	c.JSON(http.StatusOK, cache.RefreshResponse{OK: true, Tag: snap.Tag, Count: len(snap.Eateries)})
}

type HealthResponse struct {
	Status      string     `json:"status"`
	Database    string     `json:"database"`
	CacheTag    string     `json:"cacheTag,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CacheAge    string     `json:"cacheAge,omitempty"`
}

func (h *Handler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Database: "skipped"}
	status := http.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Warn("database ping failed", "error", err)
			resp.Database = "unreachable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		} else {
			resp.Database = "ok"
		}
	}

	if snap, err := h.cache.Get(); err == nil {
		published := snap.PublishedAt
		resp.CacheTag = snap.Tag
		resp.PublishedAt = &published
		resp.CacheAge = h.now().Sub(published).Truncate(time.Second).String()
	} else {
		resp.CacheAge = "cold"
	}

	c.JSON(status, resp)
}
