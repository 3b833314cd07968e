package worker_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testsel/testsel/internal/errors"
	"github.com/testsel/testsel/internal/worker"
)

func TestAllTasksCompleteWithoutErrors(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(t.Context(), 5)
	defer wp.Stop()

	var counter int32

	for range 10 {
		wp.Submit(func(context.Context) error {
			atomic.AddInt32(&counter, 1)
			return nil
		})
	}

	require.NoError(t, wp.Wait())
	assert.Equal(t, int32(10), atomic.LoadInt32(&counter))
}

func TestSomeTasksReturnErrors(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(t.Context(), 3)
	defer wp.Stop()

	var successCount int32

	for i := range 10 {
		wp.Submit(func(context.Context) error {
			if i%2 == 0 {
				return errors.New("mock error")
			}

			atomic.AddInt32(&successCount, 1)

			return nil
		})
	}

	err := wp.Wait()
	require.Error(t, err)

	var multiErr *errors.MultiError
	require.ErrorAs(t, err, &multiErr)
	assert.Equal(t, 5, multiErr.Len())
	assert.Equal(t, int32(5), atomic.LoadInt32(&successCount))
}

func TestConcurrencyIsBounded(t *testing.T) {
	t.Parallel()

	const maxWorkers = 2

	wp := worker.NewWorkerPool(t.Context(), maxWorkers)

	var running, peak int32

	for range 20 {
		wp.Submit(func(context.Context) error {
			current := atomic.AddInt32(&running, 1)
			defer atomic.AddInt32(&running, -1)

			for {
				old := atomic.LoadInt32(&peak)
				if current <= old || atomic.CompareAndSwapInt32(&peak, old, current) {
					break
				}
			}

			return nil
		})
	}

	require.NoError(t, wp.Wait())
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(maxWorkers))
}

func TestStopRejectsNewTasks(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(t.Context(), 2)
	wp.Stop()

	assert.True(t, wp.IsStopping())
	assert.False(t, wp.Submit(func(context.Context) error { return nil }))
	require.NoError(t, wp.Wait())
}

func TestCancelledContextSkipsTasks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	wp := worker.NewWorkerPool(ctx, 1)

	var counter int32

	for range 5 {
		wp.Submit(func(context.Context) error {
			atomic.AddInt32(&counter, 1)
			return nil
		})
	}

	err := wp.Wait()
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), atomic.LoadInt32(&counter))
	assert.Equal(t, int64(5), wp.Skipped())
}

func TestZeroWorkersDefaultsToOne(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, worker.NewWorkerPool(t.Context(), 0).MaxWorkers())
}
