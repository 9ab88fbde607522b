// ABOUTME: Recheck worker periodically re-dispatches rank checks for all jobs
// ABOUTME: Provides a managed background loop with graceful start and stop

package workers

import (
	"context"
	"sync"
	"time"

	"keyword-intel-api/core/interfaces"
	"keyword-intel-api/core/recheck"
)

// RecheckWorkerConfig holds configuration for the recheck worker
type RecheckWorkerConfig struct {
	// Interval between full dispatch sweeps
	Interval time.Duration
}

// DefaultRecheckWorkerConfig returns the default worker configuration
func DefaultRecheckWorkerConfig() RecheckWorkerConfig {
	return RecheckWorkerConfig{
		Interval: 6 * time.Hour,
	}
}

// RecheckWorker drives periodic rank rechecks across every stored job
type RecheckWorker struct {
	jobs     interfaces.JobStorage
	dispatch *recheck.Service
	logger   interfaces.Logger
	interval time.Duration
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	running  bool
}

// NewRecheckWorker creates a new recheck worker
func NewRecheckWorker(jobs interfaces.JobStorage, dispatch *recheck.Service, logger interfaces.Logger, config RecheckWorkerConfig) *RecheckWorker {
	ctx, cancel := context.WithCancel(context.Background())

	if config.Interval <= 0 {
		config.Interval = DefaultRecheckWorkerConfig().Interval
	}

	return &RecheckWorker{
		jobs:     jobs,
		dispatch: dispatch,
		logger:   logger,
		interval: config.Interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the background sweep loop
func (rw *RecheckWorker) Start() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.running {
		return nil
	}

	rw.wg.Add(1)
	go rw.run()

	rw.running = true
	return nil
}

// Stop stops the worker gracefully
func (rw *RecheckWorker) Stop() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if !rw.running {
		return nil
	}

	rw.cancel()
	rw.wg.Wait()

	rw.running = false
	return nil
}

// run is the main sweep loop
func (rw *RecheckWorker) run() {
	defer rw.wg.Done()

	ticker := time.NewTicker(rw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rw.sweep()
		case <-rw.ctx.Done():
			return
		}
	}
}

// sweep dispatches one recheck per stored job. Individual failures are
// logged and do not stop the sweep.
func (rw *RecheckWorker) sweep() {
	jobs, err := rw.jobs.ListAll(rw.ctx)
	if err != nil {
		rw.logger.Error("recheck sweep failed to list jobs", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	dispatched := 0
	for _, job := range jobs {
		if rw.ctx.Err() != nil {
			return
		}
		if err := rw.dispatch.Dispatch(rw.ctx, job.ID); err != nil {
			rw.logger.Warn("recheck dispatch failed", map[string]interface{}{
				"job_id": job.ID,
				"error":  err.Error(),
			})
			continue
		}
		dispatched++
	}

	rw.logger.Info("recheck sweep completed", map[string]interface{}{
		"jobs":       len(jobs),
		"dispatched": dispatched,
	})
}
