package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dining_sync/internal/domain"
	"dining_sync/internal/transform"
)

const DefaultBatchSize = 10

type Options struct {
	BatchSize int
	FridgeID  int64
}

// SyncService runs one scrape-transform-merge-load-publish pass.
type SyncService struct {
	upstream    UpstreamSource
	static      StaticSource
	fridge      FridgeSource
	transformer *transform.Transformer
	runner      *transform.Runner
	eateries    EateryStore
	txManager   TransactionManager
	cache       CachePublisher
	publisher   Publisher
	logger      *slog.Logger
	opts        Options
}

// NewSyncService wires the pipeline. fridge and publisher may be nil.
func NewSyncService(
	upstream UpstreamSource,
	static StaticSource,
	fridge FridgeSource,
	transformer *transform.Transformer,
	runner *transform.Runner,
	eateries EateryStore,
	txManager TransactionManager,
	cache CachePublisher,
	publisher Publisher,
	logger *slog.Logger,
	opts Options,
) *SyncService {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	return &SyncService{
		upstream:    upstream,
		static:      static,
		fridge:      fridge,
		transformer: transformer,
		runner:      runner,
		eateries:    eateries,
		txManager:   txManager,
		cache:       cache,
		publisher:   publisher,
		logger:      logger.With("source", upstream.ID()),
		opts:        opts,
	}
}

// Sync returns the run's stats even on failure; the error is a *StageError.
// Nothing is written unless every upstream eatery transformed.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	stats := &domain.SyncStats{RunID: uuid.NewString(), Stage: domain.StageIdle}
	logger := s.logger.With("run_id", stats.RunID)

	fail := func(stage domain.Stage, err error) (*domain.SyncStats, error) {
		stats.Stage = domain.StageFailed
		stats.Duration = time.Since(startTime)
		logger.Error("sync failed",
			"stage", stage,
			"error", err,
			"elapsed", stats.Duration,
		)
		return stats, &StageError{Stage: stage, Err: err}
	}

	logger.Info("starting sync", "source_name", s.upstream.Name())

	stats.Stage = domain.StageFetchingSources

	t := time.Now()
	staticRaw, err := s.static.Load()
	if err != nil {
		return fail(domain.StageFetchingSources, fmt.Errorf("load static eateries: %w", err))
	}
	stats.StaticLoaded = len(staticRaw)
	stats.Timings.Static = time.Since(t)

	if s.fridge != nil {
		t = time.Now()
		items := s.fridge.FetchDiningItems(ctx)
		stats.FridgeItems = len(items)
		if transform.SpliceFridge(staticRaw, s.opts.FridgeID, items) {
			logger.Info("fridge items updated", "count", len(items))
		} else {
			logger.Info("fridge keeps seed items", "fetched", len(items))
		}
		stats.Timings.Fridge = time.Since(t)
	}

	t = time.Now()
	upstreamRaw, err := s.upstream.FetchEateries(ctx)
	if err != nil {
		return fail(domain.StageFetchingSources, fmt.Errorf("fetch eateries: %w", err))
	}
	stats.APIFetched = len(upstreamRaw)
	stats.Timings.APIFetch = time.Since(t)

	logger.Info("sources fetched",
		"static", stats.StaticLoaded,
		"fridge_items", stats.FridgeItems,
		"upstream", stats.APIFetched,
	)

	stats.Stage = domain.StageTransforming
	t = time.Now()

	staticEateries, skipped := s.transformer.TransformStatic(staticRaw)
	stats.StaticSkipped = skipped
	for _, sk := range skipped {
		logger.Warn("static eatery skipped", "name", sk.Name, "reason", sk.Reason)
	}

	upstreamEateries, err := s.runner.TransformAll(ctx, upstreamRaw)
	if err != nil {
		return fail(domain.StageTransforming, err)
	}
	stats.Transformed = len(staticEateries) + len(upstreamEateries)
	stats.Timings.Transform = time.Since(t)

	stats.Stage = domain.StageMerging
	merged := transform.Merge(staticEateries, upstreamEateries)
	stats.Overrides = merged.Overrides
	for _, o := range merged.Overrides {
		logger.Info("upstream eatery overrides static",
			"cornell_id", o.CornellID,
			"static_name", o.StaticName,
			"upstream_name", o.UpstreamName,
		)
	}

	stats.Stage = domain.StageLoading
	t = time.Now()
	inserted, err := s.load(ctx, merged.Eateries)
	stats.Timings.Database = time.Since(t)
	if err != nil {
		return fail(domain.StageLoading, err)
	}
	stats.Inserted = inserted
	logger.Info("eateries loaded", "inserted", inserted, "duration", stats.Timings.Database)

	stats.Stage = domain.StagePublishing
	t = time.Now()
	snap, err := s.cache.Publish(ctx)
	stats.Timings.Publish = time.Since(t)
	if err != nil {
		return fail(domain.StagePublishing, fmt.Errorf("publish cache: %w", err))
	}
	stats.Published = len(snap.Eateries)
	stats.CacheTag = snap.Tag

	stats.Stage = domain.StageIdle
	stats.Duration = time.Since(startTime)

	if s.publisher != nil {
		if err := s.publisher.PublishRefreshed(ctx, stats); err != nil {
			logger.Warn("failed to publish refresh event", "error", err)
		}
	}

	logger.Info("sync completed",
		"static_loaded", stats.StaticLoaded,
		"static_skipped", len(stats.StaticSkipped),
		"fridge_items", stats.FridgeItems,
		"api_fetched", stats.APIFetched,
		"transformed", stats.Transformed,
		"overrides", len(stats.Overrides),
		"inserted", stats.Inserted,
		"published", stats.Published,
		"cache_tag", stats.CacheTag,
		"static_duration", stats.Timings.Static,
		"fridge_duration", stats.Timings.Fridge,
		"api_duration", stats.Timings.APIFetch,
		"transform_duration", stats.Timings.Transform,
		"db_duration", stats.Timings.Database,
		"publish_duration", stats.Timings.Publish,
		"duration", stats.Duration,
	)

	return stats, nil
}

// load replaces every stored eatery inside one transaction, in fixed-size batches.
func (s *SyncService) load(ctx context.Context, eateries []domain.Eatery) (int, error) {
	inserted := 0
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		deleted, err := s.eateries.DeleteAll(txCtx)
		if err != nil {
			return fmt.Errorf("clear eateries: %w", err)
		}
		s.logger.Debug("cleared eateries", "deleted", deleted)

		for start := 0; start < len(eateries); start += s.opts.BatchSize {
			end := min(start+s.opts.BatchSize, len(eateries))
			n, err := s.eateries.CreateBatch(txCtx, eateries[start:end])
			inserted += n
			if err != nil {
				return fmt.Errorf("insert batch %d-%d: %w", start, end, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
