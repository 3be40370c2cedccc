package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iamyashpreet99/pitchside/internal/logger"
	"github.com/iamyashpreet99/pitchside/internal/models"
	"github.com/iamyashpreet99/pitchside/internal/repository"
)

type simulationRepository struct {
	db *sql.DB
}

// NewSimulationRepository creates a new SimulationRepository implementation
func NewSimulationRepository(db *sql.DB) repository.SimulationRepository {
	return &simulationRepository{db: db}
}

func (r *simulationRepository) Insert(ctx context.Context, rec models.SimulationRecord) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("sim_repo")
	log.Debug("inserting simulation: %s vs %s, matches=%d", rec.PlayerTeam, rec.OpponentTeam, rec.Matches)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO simulations (player_team, opponent_team, format, difficulty, matches, status)
VALUES (?, ?, ?, ?, ?, ?)
`, rec.PlayerTeam, rec.OpponentTeam, rec.Format, rec.Difficulty, rec.Matches, models.SimulationPending)
	if err != nil {
		log.Error("failed to insert simulation: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get simulation id: %v", err)
		return 0, err
	}
	log.Debug("simulation inserted: id=%d", id)
	return id, nil
}

func (r *simulationRepository) Get(ctx context.Context, id int64) (*models.SimulationRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("sim_repo")
	log.Debug("getting simulation: id=%d", id)

	var rec models.SimulationRecord
	err := r.db.QueryRowContext(ctx, `
SELECT id, player_team, opponent_team, format, difficulty, matches, status,
       wins, ties, losses, avg_runs, avg_target, error, created_at, finished_at
FROM simulations
WHERE id = ?
`, id).Scan(&rec.ID, &rec.PlayerTeam, &rec.OpponentTeam, &rec.Format, &rec.Difficulty, &rec.Matches, &rec.Status,
		&rec.Wins, &rec.Ties, &rec.Losses, &rec.AvgRuns, &rec.AvgTarget, &rec.Error, &rec.CreatedAt, &rec.FinishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("simulation not found: id=%d", id)
		} else {
			log.Error("failed to get simulation: %v", err)
		}
		return nil, err
	}
	return &rec, nil
}

func (r *simulationRepository) List(ctx context.Context, limit, offset int) ([]models.SimulationRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("sim_repo")

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, player_team, opponent_team, format, difficulty, matches, status,
       wins, ties, losses, avg_runs, avg_target, error, created_at, finished_at
FROM simulations
ORDER BY created_at DESC
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		log.Error("failed to list simulations: %v", err)
		return nil, err
	}
	defer rows.Close()

	var recs []models.SimulationRecord
	for rows.Next() {
		var rec models.SimulationRecord
		if err := rows.Scan(&rec.ID, &rec.PlayerTeam, &rec.OpponentTeam, &rec.Format, &rec.Difficulty, &rec.Matches, &rec.Status,
			&rec.Wins, &rec.Ties, &rec.Losses, &rec.AvgRuns, &rec.AvgTarget, &rec.Error, &rec.CreatedAt, &rec.FinishedAt); err != nil {
			log.Error("failed to scan simulation row: %v", err)
			return nil, err
		}
		recs = append(recs, rec)
	}
	log.Debug("found %d simulations", len(recs))
	return recs, rows.Err()
}

func (r *simulationRepository) MarkRunning(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("sim_repo")
	log.Debug("marking simulation running: id=%d", id)

	_, err := r.db.ExecContext(ctx, `UPDATE simulations SET status = ? WHERE id = ?`, models.SimulationRunning, id)
	if err != nil {
		log.Error("failed to mark simulation running: %v", err)
	}
	return err
}

func (r *simulationRepository) Complete(ctx context.Context, rec models.SimulationRecord) error {
	log := logger.FromContext(ctx).WithPrefix("sim_repo")
	log.Debug("completing simulation: id=%d, wins=%d, ties=%d, losses=%d", rec.ID, rec.Wins, rec.Ties, rec.Losses)

	_, err := r.db.ExecContext(ctx, `
UPDATE simulations
SET status = ?, wins = ?, ties = ?, losses = ?, avg_runs = ?, avg_target = ?, finished_at = CURRENT_TIMESTAMP
WHERE id = ?
`, models.SimulationCompleted, rec.Wins, rec.Ties, rec.Losses, rec.AvgRuns, rec.AvgTarget, rec.ID)
	if err != nil {
		log.Error("failed to complete simulation: %v", err)
	}
	return err
}

func (r *simulationRepository) Fail(ctx context.Context, id int64, reason string) error {
	log := logger.FromContext(ctx).WithPrefix("sim_repo")
	log.Debug("failing simulation: id=%d, reason=%s", id, reason)

	_, err := r.db.ExecContext(ctx, `
UPDATE simulations
SET status = ?, error = ?, finished_at = CURRENT_TIMESTAMP
WHERE id = ?
`, models.SimulationFailed, reason, id)
	if err != nil {
		log.Error("failed to fail simulation: %v", err)
	}
	return err
}
