package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dining_sync/internal/domain"
)

type syncerFunc func(ctx context.Context) (*domain.SyncStats, error)

func (f syncerFunc) Sync(ctx context.Context) (*domain.SyncStats, error) { return f(ctx) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunGuard(t *testing.T) {
	var g RunGuard

	assert.True(t, g.TryAcquire())
	assert.True(t, g.Running())
	assert.False(t, g.TryAcquire())

	g.Release()
	assert.False(t, g.Running())
	assert.True(t, g.TryAcquire())
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := NewScheduler(syncerFunc(nil), &RunGuard{}, Config{Spec: "every tuesday"}, discardLogger())
	assert.Error(t, err)
}

func TestScheduler_RunNowSkipsOverlappingRuns(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls atomic.Int32

	syncer := syncerFunc(func(ctx context.Context) (*domain.SyncStats, error) {
		calls.Add(1)
		close(started)
		<-release
		return &domain.SyncStats{Stage: domain.StageIdle}, nil
	})

	s, err := NewScheduler(syncer, &RunGuard{}, Config{Spec: "0 7,19 * * *"}, discardLogger())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.RunNow(context.Background())
		assert.NoError(t, err)
	}()

	<-started
	_, err = s.RunNow(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestScheduler_GuardIsShared(t *testing.T) {
	guard := &RunGuard{}
	s, err := NewScheduler(syncerFunc(func(ctx context.Context) (*domain.SyncStats, error) {
		t.Fatal("sync must not run while the guard is held")
		return nil, nil
	}), guard, Config{Spec: "@hourly"}, discardLogger())
	require.NoError(t, err)

	require.True(t, guard.TryAcquire())
	_, err = s.RunNow(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestScheduler_RunNowAppliesTimeoutAndReleases(t *testing.T) {
	guard := &RunGuard{}
	boom := errors.New("boom")
	s, err := NewScheduler(syncerFunc(func(ctx context.Context) (*domain.SyncStats, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		return &domain.SyncStats{Stage: domain.StageFailed}, boom
	}), guard, Config{Spec: "@hourly", RunTimeout: time.Minute}, discardLogger())
	require.NoError(t, err)

	stats, err := s.RunNow(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.StageFailed, stats.Stage)
	assert.False(t, guard.Running())
}

func TestScheduler_StartRunsOnStartAndStops(t *testing.T) {
	ran := make(chan struct{}, 1)
	s, err := NewScheduler(syncerFunc(func(ctx context.Context) (*domain.SyncStats, error) {
		ran <- struct{}{}
		return &domain.SyncStats{}, nil
	}), &RunGuard{}, Config{Spec: "0 7,19 * * *", RunOnStart: true, Location: time.UTC}, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("run on start did not happen")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_AddJob(t *testing.T) {
	s, err := NewScheduler(syncerFunc(nil), &RunGuard{}, Config{Spec: "0 7,19 * * *", Location: time.UTC}, discardLogger())
	require.NoError(t, err)

	assert.NoError(t, s.AddJob("notify", "0 8,17 * * *", func(ctx context.Context) error { return nil }))
	assert.Error(t, s.AddJob("broken", "61 * * * *", func(ctx context.Context) error { return nil }))
	assert.Len(t, s.cron.Entries(), 2)
}
