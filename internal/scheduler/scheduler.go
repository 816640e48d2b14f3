package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"dining_sync/internal/domain"
)

var ErrAlreadyRunning = errors.New("sync already running")

const DefaultRunTimeout = 10 * time.Minute

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

type Config struct {
	Spec       string
	Location   *time.Location
	RunTimeout time.Duration
	RunOnStart bool
}

type Scheduler struct {
	syncer Syncer
	guard  *RunGuard
	cron   *cron.Cron
	cfg    Config
	logger *slog.Logger
	ctx    context.Context
}

func NewScheduler(syncer Syncer, guard *RunGuard, cfg Config, logger *slog.Logger) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.RunTimeout == 0 {
		cfg.RunTimeout = DefaultRunTimeout
	}
	logger = logger.With("component", "scheduler")

	c := cron.New(
		cron.WithLocation(cfg.Location),
		cron.WithChain(cron.Recover(cronLogger{logger})),
	)

	s := &Scheduler{
		syncer: syncer,
		guard:  guard,
		cron:   c,
		cfg:    cfg,
		logger: logger,
		ctx:    context.Background(),
	}

	if _, err := c.AddFunc(cfg.Spec, func() { _, _ = s.RunNow(s.ctx) }); err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", cfg.Spec, err)
	}
	return s, nil
}

// AddJob schedules an extra task on the same clock. Overlapping runs of the
// job are skipped.
func (s *Scheduler) AddJob(name, spec string, fn func(ctx context.Context) error) error {
	job := cron.NewChain(cron.SkipIfStillRunning(cronLogger{s.logger})).Then(cron.FuncJob(func() {
		start := time.Now()
		if err := fn(s.ctx); err != nil {
			s.logger.Error("job failed", "job", name, "error", err, "duration", time.Since(start))
			return
		}
		s.logger.Info("job completed", "job", name, "duration", time.Since(start))
	}))

	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("parse schedule %q for %s: %w", spec, name, err)
	}
	return nil
}

// Start blocks until ctx is canceled, then waits for running jobs.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx = ctx
	s.cron.Start()
	s.logger.Info("scheduler started",
		"spec", s.cfg.Spec,
		"timezone", s.cfg.Location.String(),
		"jobs", len(s.cron.Entries()),
	)

	if s.cfg.RunOnStart {
		_, _ = s.RunNow(ctx)
	}

	<-ctx.Done()
	stopped := s.cron.Stop()
	<-stopped.Done()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

// RunNow runs the pipeline immediately unless a run is already in flight.
func (s *Scheduler) RunNow(ctx context.Context) (*domain.SyncStats, error) {
	if !s.guard.TryAcquire() {
		s.logger.Warn("sync trigger skipped, previous run still in progress")
		return nil, ErrAlreadyRunning
	}
	defer s.guard.Release()

	syncCtx, cancel := context.WithTimeout(ctx, s.cfg.RunTimeout)
	defer cancel()

	stats, err := s.syncer.Sync(syncCtx)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return stats, err
	}
	return stats, nil
}

func (s *Scheduler) Next() time.Time {
	var next time.Time
	for _, e := range s.cron.Entries() {
		if next.IsZero() || (!e.Next.IsZero() && e.Next.Before(next)) {
			next = e.Next
		}
	}
	return next
}

type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
