package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/iamyashpreet99/pitchside/internal/logger"
	"github.com/iamyashpreet99/pitchside/internal/models"
	"github.com/iamyashpreet99/pitchside/internal/repository"
)

type matchRecordRepository struct {
	db *sql.DB
}

// NewMatchRecordRepository creates a new MatchRecordRepository implementation
func NewMatchRecordRepository(db *sql.DB) repository.MatchRecordRepository {
	return &matchRecordRepository{db: db}
}

func (r *matchRecordRepository) Insert(ctx context.Context, rec models.MatchRecord) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("match_repo")
	log.Debug("inserting match record: %s vs %s, result=%s", rec.PlayerTeam, rec.OpponentTeam, rec.Result)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO match_results (
    player_team, opponent_team, format, difficulty, target, runs, wickets, overs, result, man_of_the_match, played_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, rec.PlayerTeam, rec.OpponentTeam, rec.Format, rec.Difficulty, rec.Target, rec.Runs, rec.Wickets, rec.Overs, rec.Result, rec.ManOfTheMatch, rec.PlayedAt)
	if err != nil {
		log.Error("failed to insert match record: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get match record id: %v", err)
		return 0, err
	}
	log.Debug("match record inserted: id=%d", id)
	return id, nil
}

func (r *matchRecordRepository) Get(ctx context.Context, id int64) (*models.MatchRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("match_repo")
	log.Debug("getting match record: id=%d", id)

	var rec models.MatchRecord
	err := r.db.QueryRowContext(ctx, `
SELECT id, player_team, opponent_team, format, difficulty, target, runs, wickets, overs, result, man_of_the_match, played_at, created_at
FROM match_results
WHERE id = ?
`, id).Scan(&rec.ID, &rec.PlayerTeam, &rec.OpponentTeam, &rec.Format, &rec.Difficulty, &rec.Target, &rec.Runs, &rec.Wickets, &rec.Overs, &rec.Result, &rec.ManOfTheMatch, &rec.PlayedAt, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("match record not found: id=%d", id)
		} else {
			log.Error("failed to get match record: %v", err)
		}
		return nil, err
	}
	return &rec, nil
}

func matchRecordFilterWhere(query squirrel.SelectBuilder, filter models.MatchRecordFilter) squirrel.SelectBuilder {
	if filter.Team != "" {
		query = query.Where(squirrel.Eq{"player_team": filter.Team})
	}
	if filter.Result != "" {
		query = query.Where(squirrel.Eq{"result": filter.Result})
	}
	if filter.Format != "" {
		query = query.Where(squirrel.Eq{"format": filter.Format})
	}
	return query
}

func (r *matchRecordRepository) List(ctx context.Context, filter models.MatchRecordFilter) ([]models.MatchRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("match_repo")
	log.Debug("listing match records: team=%s, result=%s, format=%s", filter.Team, filter.Result, filter.Format)

	query := sqlBuilder.Select(
		"id", "player_team", "opponent_team", "format", "difficulty", "target",
		"runs", "wickets", "overs", "result", "man_of_the_match", "played_at", "created_at",
	).From("match_results")
	query = matchRecordFilterWhere(query, filter)
	query = query.OrderBy("played_at DESC")

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list match records: %v", err)
		return nil, err
	}
	defer rows.Close()

	var recs []models.MatchRecord
	for rows.Next() {
		var rec models.MatchRecord
		if err := rows.Scan(&rec.ID, &rec.PlayerTeam, &rec.OpponentTeam, &rec.Format, &rec.Difficulty, &rec.Target, &rec.Runs, &rec.Wickets, &rec.Overs, &rec.Result, &rec.ManOfTheMatch, &rec.PlayedAt, &rec.CreatedAt); err != nil {
			log.Error("failed to scan match record row: %v", err)
			return nil, err
		}
		recs = append(recs, rec)
	}
	log.Debug("found %d match records", len(recs))
	return recs, rows.Err()
}

func (r *matchRecordRepository) Count(ctx context.Context, filter models.MatchRecordFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("match_repo")

	query := sqlBuilder.Select("COUNT(*)").From("match_results")
	query = matchRecordFilterWhere(query, filter)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count match records: %v", err)
		return 0, err
	}
	return count, nil
}
