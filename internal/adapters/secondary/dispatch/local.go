package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

const defaultJobTimeout = 5 * time.Minute

// JobRunner processes one report job to completion
type JobRunner interface {
	ProcessSession(ctx context.Context, sessionID uuid.UUID) error
}

// LocalDispatcher runs report jobs on an in-process worker pool. Used when
// no broker is configured; single-instance deployments only.
type LocalDispatcher struct {
	runner JobRunner
	jobs   chan uuid.UUID
	wg     sync.WaitGroup
	cancel context.CancelFunc
	log    *slog.Logger

	closeOnce sync.Once
}

// NewLocalDispatcher starts workers goroutines draining the job channel
func NewLocalDispatcher(runner JobRunner, workers int, queueSize int, log *slog.Logger) *LocalDispatcher {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 64
	}

	ctx, cancel := context.WithCancel(context.Background())

	d := &LocalDispatcher{
		runner: runner,
		jobs:   make(chan uuid.UUID, queueSize),
		cancel: cancel,
		log:    log,
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx, i)
	}

	log.Info("local dispatcher started", "workers", workers, "queue_size", queueSize)

	return d
}

// DispatchReportJob queues the session for processing. Fails fast when the
// queue is full instead of blocking the request handler.
func (d *LocalDispatcher) DispatchReportJob(ctx context.Context, sessionID uuid.UUID) error {
	select {
	case d.jobs <- sessionID:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("dispatch queue is full")
	}
}

func (d *LocalDispatcher) worker(ctx context.Context, id int) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case sessionID, ok := <-d.jobs:
			if !ok {
				return
			}

			jobCtx, cancel := context.WithTimeout(ctx, defaultJobTimeout)
			if err := d.runner.ProcessSession(jobCtx, sessionID); err != nil {
				d.log.Error("report job failed",
					"error", err,
					"session_id", sessionID,
					"worker", id,
				)
			}
			cancel()
		}
	}
}

// Close stops the workers and drains nothing further
func (d *LocalDispatcher) Close() error {
	d.closeOnce.Do(func() {
		d.cancel()
		close(d.jobs)
	})
	d.wg.Wait()
	return nil
}
