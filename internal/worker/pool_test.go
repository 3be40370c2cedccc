package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamyashpreet99/pitchside/internal/worker"
)

type countJob struct {
	runs  *int32
	block chan struct{}
}

func (j *countJob) Name() string { return "count" }

func (j *countJob) Run(ctx context.Context) error {
	if j.block != nil {
		select {
		case <-j.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	atomic.AddInt32(j.runs, 1)
	return nil
}

func TestPoolRunsJobs(t *testing.T) {
	pool := worker.NewPool(2, 8)
	pool.Start(context.Background())

	var runs int32
	for i := 0; i < 5; i++ {
		require.NoError(t, pool.TrySubmit(&countJob{runs: &runs}))
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) == 5
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
}

func TestPoolTrySubmitRejectsWhenFull(t *testing.T) {
	pool := worker.NewPool(1, 1)
	// Not started: nothing drains the queue.
	var runs int32
	require.NoError(t, pool.TrySubmit(&countJob{runs: &runs}))

	err := pool.TrySubmit(&countJob{runs: &runs})
	assert.ErrorIs(t, err, worker.ErrQueueFull)
	assert.Equal(t, 1, pool.QueueSize())
}

func TestPoolStopWaitsForWorkers(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start(context.Background())

	var runs int32
	block := make(chan struct{})
	require.NoError(t, pool.TrySubmit(&countJob{runs: &runs, block: block}))
	close(block)

	pool.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
}
