package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dining_sync/internal/domain"
)

type EateryReader interface {
	ListAll(ctx context.Context) ([]domain.Eatery, error)
}

// Target receives every published eatery list.
type Target interface {
	Refresh(ctx context.Context, eateries []domain.Eatery) error
}

// Publisher reads the committed eateries back from the store, stores them in
// the local cache and pushes them to every remote target.
type Publisher struct {
	reader  EateryReader
	cache   *Cache
	targets []Target
	logger  *slog.Logger
}

func NewPublisher(reader EateryReader, cache *Cache, logger *slog.Logger, targets ...Target) *Publisher {
	return &Publisher{
		reader:  reader,
		cache:   cache,
		targets: targets,
		logger:  logger.With("component", "cache_publisher"),
	}
}

func (p *Publisher) Cache() *Cache {
	return p.cache
}

// Publish fails if the read-back or any target fails. The local cache is
// updated before the targets are tried.
func (p *Publisher) Publish(ctx context.Context) (*Snapshot, error) {
	snap, err := p.RefreshFromStore(ctx)
	if err != nil {
		return nil, err
	}

	for _, target := range p.targets {
		start := time.Now()
		if err := target.Refresh(ctx, snap.Eateries); err != nil {
			p.logger.Error("cache target refresh failed",
				"target", fmt.Sprintf("%T", target),
				"error", err,
				"elapsed", time.Since(start),
			)
			return snap, fmt.Errorf("refresh %T: %w", target, err)
		}
	}

	p.logger.Info("cache published",
		"tag", snap.Tag,
		"count", len(snap.Eateries),
		"targets", len(p.targets),
	)
	return snap, nil
}

// RefreshFromStore repopulates only the local cache.
func (p *Publisher) RefreshFromStore(ctx context.Context) (*Snapshot, error) {
	eateries, err := p.reader.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read eateries: %w", err)
	}
	return p.cache.Set(eateries), nil
}
