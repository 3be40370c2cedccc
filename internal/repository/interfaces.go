// Package repository defines the persistence interfaces. Implementations
// live in subpackages; services depend only on these interfaces.
package repository

import (
	"context"

	"github.com/iamyashpreet99/pitchside/internal/models"
)

// MatchRecordRepository stores finished match summaries.
type MatchRecordRepository interface {
	Insert(ctx context.Context, rec models.MatchRecord) (int64, error)
	Get(ctx context.Context, id int64) (*models.MatchRecord, error)
	List(ctx context.Context, filter models.MatchRecordFilter) ([]models.MatchRecord, error)
	Count(ctx context.Context, filter models.MatchRecordFilter) (int, error)
}

// SimulationRepository stores queued simulation batches and their results.
type SimulationRepository interface {
	Insert(ctx context.Context, rec models.SimulationRecord) (int64, error)
	Get(ctx context.Context, id int64) (*models.SimulationRecord, error)
	List(ctx context.Context, limit, offset int) ([]models.SimulationRecord, error)
	MarkRunning(ctx context.Context, id int64) error
	Complete(ctx context.Context, rec models.SimulationRecord) error
	Fail(ctx context.Context, id int64, reason string) error
}
