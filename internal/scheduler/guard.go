package scheduler

import "sync/atomic"

// RunGuard admits one pipeline run at a time. Triggers arriving while a run
// is in flight are rejected, never queued.
type RunGuard struct {
	running atomic.Bool
}

func (g *RunGuard) TryAcquire() bool {
	return g.running.CompareAndSwap(false, true)
}

func (g *RunGuard) Release() {
	g.running.Store(false)
}

func (g *RunGuard) Running() bool {
	return g.running.Load()
}
