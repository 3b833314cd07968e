// Package worker provides a bounded pool for running independent tasks concurrently.
//
// A Pool limits the number of goroutines running tasks at once through a semaphore, collects the
// errors returned by tasks, and stops starting new tasks once its context is cancelled.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/testsel/testsel/internal/errors"
)

// Task represents a unit of work that can be executed.
type Task func(ctx context.Context) error

// Pool manages concurrent task execution with a configurable number of workers.
type Pool struct {
	ctx         context.Context
	semaphore   chan struct{}
	allErrors   *errors.MultiError
	wg          sync.WaitGroup
	allErrorsMu sync.Mutex
	maxWorkers  int
	isStopping  atomic.Bool
	skipped     atomic.Int64
}

// NewWorkerPool creates a new worker pool with the specified maximum number of concurrent workers.
// Values below one are treated as one.
func NewWorkerPool(ctx context.Context, maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	return &Pool{
		ctx:        ctx,
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
		allErrors:  &errors.MultiError{},
	}
}

// MaxWorkers returns the concurrency limit.
func (wp *Pool) MaxWorkers() int {
	return wp.maxWorkers
}

// appendError safely appends an error to allErrors
func (wp *Pool) appendError(err error) {
	if err == nil {
		return
	}

	wp.allErrorsMu.Lock()
	wp.allErrors = wp.allErrors.Append(err)
	wp.allErrorsMu.Unlock()
}

// Submit schedules the task to run when a worker is available.
// It returns false if the pool is stopping and the task was not accepted.
func (wp *Pool) Submit(task Task) bool {
	if wp.isStopping.Load() {
		return false
	}

	wp.wg.Add(1)

	go func() {
		defer wp.wg.Done()

		select {
		case wp.semaphore <- struct{}{}:
		case <-wp.ctx.Done():
			wp.skipped.Add(1)
			return
		}

		defer func() { <-wp.semaphore }()

		if wp.ctx.Err() != nil {
			wp.skipped.Add(1)
			return
		}

		wp.appendError(task(wp.ctx))
	}()

	return true
}

// Wait blocks until all submitted tasks are completed and returns the collected errors.
// If tasks were skipped because the context was cancelled, the context error is included.
func (wp *Pool) Wait() error {
	wp.wg.Wait()

	if wp.skipped.Load() > 0 {
		wp.appendError(wp.ctx.Err())
	}

	wp.allErrorsMu.Lock()
	defer wp.allErrorsMu.Unlock()

	return wp.allErrors.ErrorOrNil()
}

// Stop prevents new task submissions. Tasks already submitted still run.
func (wp *Pool) Stop() {
	wp.isStopping.Store(true)
}

// IsStopping returns whether the pool no longer accepts tasks.
func (wp *Pool) IsStopping() bool {
	return wp.isStopping.Load()
}

// Skipped returns the number of submitted tasks that never ran because the context was cancelled.
func (wp *Pool) Skipped() int64 {
	return wp.skipped.Load()
}
