package jobs

import (
	"context"

	"github.com/iamyashpreet99/pitchside/internal/worker"
)

// SimulationRunner executes one queued simulation batch to completion.
// Declared here so the queue does not import the services package.
type SimulationRunner interface {
	RunSimulation(ctx context.Context, simulationID int64) error
}

type simulationJob struct {
	runner       SimulationRunner
	simulationID int64
}

func (j *simulationJob) Name() string { return "run_simulation" }

func (j *simulationJob) Run(ctx context.Context) error {
	return j.runner.RunSimulation(ctx, j.simulationID)
}

// WorkerQueue implements JobQueue on top of a worker pool
type WorkerQueue struct {
	pool   *worker.Pool
	runner SimulationRunner
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, runner SimulationRunner) JobQueue {
	return &WorkerQueue{pool: pool, runner: runner}
}

func (q *WorkerQueue) EnqueueSimulation(simulationID int64) error {
	return q.pool.TrySubmit(&simulationJob{runner: q.runner, simulationID: simulationID})
}
