package services

import (
	"context"
	"time"

	"github.com/iamyashpreet99/pitchside/internal/autoplay"
	"github.com/iamyashpreet99/pitchside/internal/engine"
	"github.com/iamyashpreet99/pitchside/internal/errors"
	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/logger"
	"github.com/iamyashpreet99/pitchside/internal/models"
	"github.com/iamyashpreet99/pitchside/internal/repository"
)

// CreateSimulationParams is a requested Monte-Carlo batch.
type CreateSimulationParams struct {
	PlayerTeamID   string `json:"player_team_id"`
	OpponentTeamID string `json:"opponent_team_id"`
	Format         string `json:"format"`
	Difficulty     string `json:"difficulty"`
	Matches        int    `json:"matches"`
}

const maxSimulationMatches = 10000

// SimulationService queues and runs batches of auto-played matches. It also
// implements jobs.SimulationRunner so the worker pool can execute batches.
type SimulationService interface {
	CreateSimulation(ctx context.Context, params CreateSimulationParams) (*models.SimulationRecord, error)
	GetSimulation(ctx context.Context, id int64) (*models.SimulationRecord, error)
	ListSimulations(ctx context.Context, limit, offset int) ([]models.SimulationRecord, error)
	RunSimulation(ctx context.Context, simulationID int64) error
}

type simulationService struct {
	store *gamedata.Store
	sims  repository.SimulationRepository
	seed  func() int64
}

// NewSimulationService creates a new SimulationService
func NewSimulationService(store *gamedata.Store, sims repository.SimulationRepository) SimulationService {
	return &simulationService{
		store: store,
		sims:  sims,
		seed:  func() int64 { return time.Now().UnixNano() },
	}
}

func (s *simulationService) CreateSimulation(ctx context.Context, params CreateSimulationParams) (*models.SimulationRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating simulation: %s vs %s, matches=%d", params.PlayerTeamID, params.OpponentTeamID, params.Matches)

	if _, err := models.ParseFormat(params.Format); err != nil {
		return nil, errors.NewValidationError("format", err.Error())
	}
	if _, err := models.ParseDifficulty(params.Difficulty); err != nil {
		return nil, errors.NewValidationError("difficulty", err.Error())
	}
	if params.Matches <= 0 || params.Matches > maxSimulationMatches {
		return nil, errors.NewValidationError("matches", "must be between 1 and 10000")
	}
	if params.PlayerTeamID == params.OpponentTeamID {
		return nil, errors.NewInvalidSetupError("player and opponent team must differ")
	}
	if _, err := s.store.Team(params.PlayerTeamID); err != nil {
		return nil, errors.NewInvalidSetupError(err.Error())
	}
	if _, err := s.store.Team(params.OpponentTeamID); err != nil {
		return nil, errors.NewInvalidSetupError(err.Error())
	}

	rec := models.SimulationRecord{
		PlayerTeam:   params.PlayerTeamID,
		OpponentTeam: params.OpponentTeamID,
		Format:       params.Format,
		Difficulty:   params.Difficulty,
		Matches:      params.Matches,
		Status:       models.SimulationPending,
	}
	id, err := s.sims.Insert(ctx, rec)
	if err != nil {
		log.Error("failed to insert simulation: %v", err)
		return nil, errors.NewInternalError(err)
	}
	rec.ID = id
	log.Info("simulation queued: id=%d", id)
	return &rec, nil
}

func (s *simulationService) GetSimulation(ctx context.Context, id int64) (*models.SimulationRecord, error) {
	rec, err := s.sims.Get(ctx, id)
	if err != nil {
		return nil, errors.NewNotFoundError("simulation", id)
	}
	return rec, nil
}

func (s *simulationService) ListSimulations(ctx context.Context, limit, offset int) ([]models.SimulationRecord, error) {
	recs, err := s.sims.List(ctx, limit, offset)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list simulations: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return recs, nil
}

// RunSimulation executes one queued batch on a worker. Every match gets a
// fresh seeded generator, so batches are independent of each other.
func (s *simulationService) RunSimulation(ctx context.Context, simulationID int64) error {
	log := logger.FromContext(ctx).WithField("simulation_id", simulationID)
	ctx = logger.NewContext(ctx, log)

	rec, err := s.sims.Get(ctx, simulationID)
	if err != nil {
		log.Error("simulation not found: %v", err)
		return err
	}

	format, err := models.ParseFormat(rec.Format)
	if err != nil {
		_ = s.sims.Fail(ctx, simulationID, err.Error())
		return err
	}
	difficulty, err := models.ParseDifficulty(rec.Difficulty)
	if err != nil {
		_ = s.sims.Fail(ctx, simulationID, err.Error())
		return err
	}

	if err := s.sims.MarkRunning(ctx, simulationID); err != nil {
		return err
	}
	log.Info("running simulation: %d matches of %s vs %s", rec.Matches, rec.PlayerTeam, rec.OpponentTeam)
	start := time.Now()

	var totalRuns, totalTarget int
	for i := 0; i < rec.Matches; i++ {
		if ctx.Err() != nil {
			_ = s.sims.Fail(ctx, simulationID, ctx.Err().Error())
			return ctx.Err()
		}

		match, err := engine.NewMatch(s.store, rec.PlayerTeam, rec.OpponentTeam, format, difficulty, engine.Options{
			Rand: engine.NewRand(s.seed()),
		})
		if err != nil {
			log.Error("failed to set up match %d: %v", i+1, err)
			_ = s.sims.Fail(ctx, simulationID, err.Error())
			return err
		}

		if err := autoplay.PlayInnings(match, engine.NewRand(s.seed())); err != nil {
			log.Error("match %d aborted: %v", i+1, err)
			_ = s.sims.Fail(ctx, simulationID, err.Error())
			return err
		}

		res := match.Result()
		switch res.Result {
		case "win":
			rec.Wins++
		case "tie":
			rec.Ties++
		default:
			rec.Losses++
		}
		totalRuns += res.Achieved
		totalTarget += res.Target
	}

	rec.AvgRuns = float64(totalRuns) / float64(rec.Matches)
	rec.AvgTarget = float64(totalTarget) / float64(rec.Matches)
	if err := s.sims.Complete(ctx, *rec); err != nil {
		log.Error("failed to store simulation results: %v", err)
		return err
	}
	log.Info("simulation completed in %v: wins=%d, ties=%d, losses=%d", time.Since(start), rec.Wins, rec.Ties, rec.Losses)
	return nil
}
