package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"dining_sync/internal/cache"
	"dining_sync/internal/domain"
	"dining_sync/internal/source"
	"dining_sync/internal/source/dining"
	"dining_sync/internal/source/static"
)

type UpstreamSource interface {
	ID() string
	Name() string
	FetchEateries(ctx context.Context) ([]dining.RawEatery, error)
}

type StaticSource interface {
	Load() ([]static.RawEatery, error)
}

type FridgeSource interface {
	FetchDiningItems(ctx context.Context) []source.DiningItem
}

type EateryStore interface {
	DeleteAll(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, eateries []domain.Eatery) (int, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CachePublisher interface {
	Publish(ctx context.Context) (*cache.Snapshot, error)
}

type Publisher interface {
	PublishRefreshed(ctx context.Context, stats *domain.SyncStats) error
	Close() error
}
