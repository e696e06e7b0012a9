package service

import (
	"context"
	"sync"
	"time"

	"github.com/vetward/vetward/internal/netstate"
)

type clientSyncJob struct {
	engine  SyncEngine
	monitor *netstate.Monitor

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that drains the queue whenever
// connectivity is regained, with a slow fallback ticker as a safety net. The
// job is idle until Start is called.
func NewClientSyncJob(engine SyncEngine, monitor *netstate.Monitor) SyncJob {
	return &clientSyncJob{engine: engine, monitor: monitor}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that calls SyncAll when the monitor
// reports an offline-to-online transition and there is queued work, and on
// every fallback tick. If interval is zero or negative it defaults to
// 5 minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	changes := j.monitor.Changes()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case online := <-changes:
				if online && j.engine.PendingCount() > 0 {
					_, _ = j.engine.SyncAll(jobCtx)
				}
			case <-t.C:
				_, _ = j.engine.SyncAll(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
