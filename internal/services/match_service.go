package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/iamyashpreet99/pitchside/internal/engine"
	"github.com/iamyashpreet99/pitchside/internal/errors"
	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/logger"
	"github.com/iamyashpreet99/pitchside/internal/models"
	"github.com/iamyashpreet99/pitchside/internal/repository"
)

// CreateMatchParams is the raw match setup as it arrives from a client.
type CreateMatchParams struct {
	PlayerTeamID   string `json:"player_team_id"`
	OpponentTeamID string `json:"opponent_team_id"`
	Format         string `json:"format"`
	Difficulty     string `json:"difficulty"`
}

// MatchService owns the live match sessions and persists finished matches.
type MatchService interface {
	CreateMatch(ctx context.Context, params CreateMatchParams) (string, *models.MatchState, error)
	State(ctx context.Context, sessionID string) (*models.MatchState, error)
	StartDelivery(ctx context.Context, sessionID string) (*models.Delivery, error)
	SelectShot(ctx context.Context, sessionID, shotID string) (bool, error)
	StartPowerHold(ctx context.Context, sessionID string) (bool, error)
	StopPowerHold(ctx context.Context, sessionID string) error
	Poll(ctx context.Context, sessionID string) (*models.PollState, error)
	LastOutcome(ctx context.Context, sessionID string) (*models.Outcome, error)
	Result(ctx context.Context, sessionID string) (*models.MatchResult, *models.ManOfTheMatch, error)
	Snapshot(ctx context.Context, sessionID string) (*models.MatchSnapshot, error)
	Restore(ctx context.Context, snap *models.MatchSnapshot) (string, *models.MatchState, error)
	EndSession(ctx context.Context, sessionID string) error
	ListRecords(ctx context.Context, filter models.MatchRecordFilter) ([]models.MatchRecord, int, error)
}

type matchService struct {
	store        *gamedata.Store
	records      repository.MatchRecordRepository
	resolveDelay time.Duration
	sessionLimit int

	mu       sync.RWMutex
	sessions map[string]*engine.Match
}

// NewMatchService creates a new MatchService
func NewMatchService(store *gamedata.Store, records repository.MatchRecordRepository, resolveDelay time.Duration, sessionLimit int) MatchService {
	if sessionLimit <= 0 {
		sessionLimit = 256
	}
	return &matchService{
		store:        store,
		records:      records,
		resolveDelay: resolveDelay,
		sessionLimit: sessionLimit,
		sessions:     map[string]*engine.Match{},
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func (s *matchService) CreateMatch(ctx context.Context, params CreateMatchParams) (string, *models.MatchState, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating match: %s vs %s, format=%s, difficulty=%s",
		params.PlayerTeamID, params.OpponentTeamID, params.Format, params.Difficulty)

	format, err := models.ParseFormat(params.Format)
	if err != nil {
		return "", nil, errors.NewValidationError("format", err.Error())
	}
	difficulty, err := models.ParseDifficulty(params.Difficulty)
	if err != nil {
		return "", nil, errors.NewValidationError("difficulty", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) >= s.sessionLimit {
		log.Warn("session limit reached: %d", s.sessionLimit)
		return "", nil, errors.NewBadRequestError("too many active matches, finish or end one first")
	}

	sessionID := newSessionID()
	match, err := engine.NewMatch(s.store, params.PlayerTeamID, params.OpponentTeamID, format, difficulty, engine.Options{
		ShotResolveDelay: s.resolveDelay,
		OnMatchEnd:       func() { s.persistResult(sessionID) },
	})
	if err != nil {
		if stderrors.Is(err, engine.ErrSameTeam) || stderrors.Is(err, gamedata.ErrNotFound) {
			return "", nil, errors.NewInvalidSetupError(err.Error())
		}
		log.Error("failed to create match: %v", err)
		return "", nil, errors.NewInternalError(err)
	}

	s.sessions[sessionID] = match
	log.Info("match created: session=%s, target=%d", sessionID, match.State().Target)
	return sessionID, match.State(), nil
}

func (s *matchService) get(sessionID string) (*engine.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("match", sessionID)
	}
	return match, nil
}

func (s *matchService) State(ctx context.Context, sessionID string) (*models.MatchState, error) {
	match, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return match.State(), nil
}

func (s *matchService) StartDelivery(ctx context.Context, sessionID string) (*models.Delivery, error) {
	match, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	d, err := match.StartDelivery()
	if err != nil {
		logger.FromContext(ctx).Error("failed to start delivery: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return d, nil
}

func (s *matchService) SelectShot(ctx context.Context, sessionID, shotID string) (bool, error) {
	match, err := s.get(sessionID)
	if err != nil {
		return false, err
	}
	ok, err := match.SelectShot(shotID)
	if err != nil {
		if stderrors.Is(err, gamedata.ErrNotFound) {
			return false, errors.NewNotFoundError("shot", shotID)
		}
		logger.FromContext(ctx).Error("failed to select shot: %v", err)
		return false, errors.NewInternalError(err)
	}
	return ok, nil
}

func (s *matchService) StartPowerHold(ctx context.Context, sessionID string) (bool, error) {
	match, err := s.get(sessionID)
	if err != nil {
		return false, err
	}
	return match.StartPowerHold(), nil
}

func (s *matchService) StopPowerHold(ctx context.Context, sessionID string) error {
	match, err := s.get(sessionID)
	if err != nil {
		return err
	}
	match.StopPowerHold()
	return nil
}

func (s *matchService) Poll(ctx context.Context, sessionID string) (*models.PollState, error) {
	match, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	ps := match.Poll()
	return &ps, nil
}

func (s *matchService) LastOutcome(ctx context.Context, sessionID string) (*models.Outcome, error) {
	match, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return match.LastOutcome(), nil
}

func (s *matchService) Result(ctx context.Context, sessionID string) (*models.MatchResult, *models.ManOfTheMatch, error) {
	match, err := s.get(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if match.Active() {
		return nil, nil, errors.NewConflictError("match is still in progress")
	}
	return match.Result(), match.ManOfTheMatch(), nil
}

func (s *matchService) Snapshot(ctx context.Context, sessionID string) (*models.MatchSnapshot, error) {
	match, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	snap, err := match.Snapshot()
	if err != nil {
		if stderrors.Is(err, engine.ErrDeliveryInFlight) {
			return nil, errors.NewBadRequestError("cannot snapshot while a delivery is in flight")
		}
		logger.FromContext(ctx).Error("failed to snapshot match: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return snap, nil
}

func (s *matchService) Restore(ctx context.Context, snap *models.MatchSnapshot) (string, *models.MatchState, error) {
	log := logger.FromContext(ctx)
	log.Debug("restoring match: %s vs %s", snap.PlayerTeamID, snap.OpponentTeamID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) >= s.sessionLimit {
		return "", nil, errors.NewBadRequestError("too many active matches, finish or end one first")
	}

	sessionID := newSessionID()
	match, err := engine.RestoreMatch(s.store, snap, engine.Options{
		ShotResolveDelay: s.resolveDelay,
		OnMatchEnd:       func() { s.persistResult(sessionID) },
	})
	if err != nil {
		if stderrors.Is(err, engine.ErrSameTeam) || stderrors.Is(err, gamedata.ErrNotFound) {
			return "", nil, errors.NewInvalidSetupError(err.Error())
		}
		return "", nil, errors.NewBadRequestError(err.Error())
	}

	s.sessions[sessionID] = match
	log.Info("match restored: session=%s", sessionID)
	return sessionID, match.State(), nil
}

func (s *matchService) EndSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return errors.NewNotFoundError("match", sessionID)
	}
	delete(s.sessions, sessionID)
	logger.FromContext(ctx).Info("match session ended: session=%s", sessionID)
	return nil
}

func (s *matchService) ListRecords(ctx context.Context, filter models.MatchRecordFilter) ([]models.MatchRecord, int, error) {
	log := logger.FromContext(ctx)

	records, err := s.records.List(ctx, filter)
	if err != nil {
		log.Error("failed to list match records: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	count, err := s.records.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count match records: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	return records, count, nil
}

// persistResult runs on the engine's end-of-match hook and writes the
// finished match to storage. The session stays in memory so the client can
// still fetch the result screen; EndSession removes it.
func (s *matchService) persistResult(sessionID string) {
	log := logger.Default().WithPrefix("match-end").WithField("session", sessionID)
	ctx := logger.NewContext(context.Background(), log)

	match, err := s.get(sessionID)
	if err != nil {
		log.Warn("finished match no longer tracked")
		return
	}

	state := match.State()
	result := match.Result()
	rec := models.MatchRecord{
		PlayerTeam:   state.PlayerTeam,
		OpponentTeam: state.OpponentTeam,
		Format:       string(state.Format),
		Difficulty:   string(state.Difficulty),
		Target:       state.Target,
		Runs:         state.Runs,
		Wickets:      state.Wickets,
		Overs:        oversString(state.Overs, state.Balls),
		Result:       result.Result,
		PlayedAt:     time.Now(),
	}
	if mom := match.ManOfTheMatch(); mom != nil {
		rec.ManOfTheMatch = mom.Name
	}

	id, err := s.records.Insert(ctx, rec)
	if err != nil {
		log.Error("failed to persist match result: %v", err)
		return
	}
	log.Info("match result persisted: record_id=%d, result=%s", id, result.Result)
}

func oversString(overs, balls int) string {
	return fmt.Sprintf("%d.%d", overs, balls)
}
