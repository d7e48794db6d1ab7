// ABOUTME: Refresh worker keeps the aggregation snapshot warm on a cron schedule
// ABOUTME: Runs one refresh at start-up and then every interval, never overlapping runs

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"bevtrends-api/core/interfaces"
)

// Refresher recomputes and stores the unconditioned aggregation
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// RefreshWorker schedules snapshot refreshes
type RefreshWorker struct {
	refresher Refresher
	logger    interfaces.Logger
	interval  time.Duration
	cron      *cron.Cron

	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool
	busy    sync.Mutex
	wg      sync.WaitGroup
}

// NewRefreshWorker creates a worker that refreshes every interval
func NewRefreshWorker(refresher Refresher, logger interfaces.Logger, interval time.Duration) (*RefreshWorker, error) {
	if refresher == nil {
		return nil, fmt.Errorf("refresher cannot be nil")
	}
	if interval < time.Second {
		return nil, fmt.Errorf("refresh interval must be at least 1 second, got %v", interval)
	}

	w := &RefreshWorker{
		refresher: refresher,
		logger:    logger,
		interval:  interval,
		cron:      cron.New(),
	}

	schedule := fmt.Sprintf("@every %s", interval)
	if _, err := w.cron.AddFunc(schedule, w.runScheduled); err != nil {
		return nil, fmt.Errorf("failed to schedule refresh: %w", err)
	}
	return w, nil
}

// Start begins the schedule and triggers an immediate refresh
func (w *RefreshWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrWorkerAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.ctx, w.cancel = ctx, cancel
	w.running = true
	w.cron.Start()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.RunOnce(ctx)
	}()

	if w.logger != nil {
		w.logger.Info("Refresh worker started", map[string]interface{}{
			"interval": w.interval.String(),
		})
	}
	return nil
}

// Stop halts the schedule and waits for an in-flight refresh to finish
func (w *RefreshWorker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return ErrWorkerNotRunning
	}
	w.running = false
	w.cancel()
	w.mu.Unlock()

	<-w.cron.Stop().Done()
	w.wg.Wait()

	if w.logger != nil {
		w.logger.Info("Refresh worker stopped", nil)
	}
	return nil
}

// RunOnce refreshes the snapshot unless a refresh is already running.
// It reports whether a refresh was performed.
func (w *RefreshWorker) RunOnce(ctx context.Context) bool {
	if !w.busy.TryLock() {
		if w.logger != nil {
			w.logger.Debug("Refresh skipped, previous run still in progress", nil)
		}
		return false
	}
	defer w.busy.Unlock()

	start := time.Now()
	n, err := w.refresher.Refresh(ctx)
	if w.logger == nil {
		return true
	}
	if err != nil {
		w.logger.Error("Snapshot refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
		return true
	}
	w.logger.Info("Snapshot refreshed", map[string]interface{}{
		"items":       n,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return true
}

func (w *RefreshWorker) runScheduled() {
	w.mu.Lock()
	ctx := w.ctx
	w.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}
	w.RunOnce(ctx)
}

// Common worker errors
var (
	ErrWorkerNotRunning     = &WorkerError{Message: "refresh worker is not running"}
	ErrWorkerAlreadyRunning = &WorkerError{Message: "refresh worker is already running"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
