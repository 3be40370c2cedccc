package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iamyashpreet99/pitchside/internal/errors"
	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/models"
	"github.com/iamyashpreet99/pitchside/internal/services"
	"github.com/iamyashpreet99/pitchside/internal/testutil/mocks"
)

func newMatchService(t *testing.T, limit int) (services.MatchService, *mocks.MockMatchRecordRepository) {
	t.Helper()
	store, err := gamedata.Load()
	require.NoError(t, err)
	records := new(mocks.MockMatchRecordRepository)
	return services.NewMatchService(store, records, 0, limit), records
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func validParams() services.CreateMatchParams {
	return services.CreateMatchParams{
		PlayerTeamID:   "india",
		OpponentTeamID: "australia",
		Format:         "T20",
		Difficulty:     "Medium",
	}
}

func TestCreateMatch(t *testing.T) {
	svc, _ := newMatchService(t, 16)

	sessionID, state, err := svc.CreateMatch(context.Background(), validParams())
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.True(t, state.Active)
	assert.Greater(t, state.Target, 0)
	assert.Equal(t, "India", state.PlayerTeam)
	assert.Equal(t, "Australia", state.OpponentTeam)
	assert.Equal(t, 20, state.TotalOvers)

	fetched, err := svc.State(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, state.Target, fetched.Target)
}

func TestCreateMatchValidation(t *testing.T) {
	svc, _ := newMatchService(t, 16)
	ctx := context.Background()

	params := validParams()
	params.Format = "T10"
	_, _, err := svc.CreateMatch(ctx, params)
	assertAppErrorCode(t, err, errors.ErrCodeValidation)

	params = validParams()
	params.Difficulty = "Impossible"
	_, _, err = svc.CreateMatch(ctx, params)
	assertAppErrorCode(t, err, errors.ErrCodeValidation)

	params = validParams()
	params.OpponentTeamID = "india"
	_, _, err = svc.CreateMatch(ctx, params)
	assertAppErrorCode(t, err, errors.ErrCodeInvalidSetup)

	params = validParams()
	params.OpponentTeamID = "narnia"
	_, _, err = svc.CreateMatch(ctx, params)
	assertAppErrorCode(t, err, errors.ErrCodeInvalidSetup)
}

func TestSessionLimit(t *testing.T) {
	svc, _ := newMatchService(t, 2)
	ctx := context.Background()

	_, _, err := svc.CreateMatch(ctx, validParams())
	require.NoError(t, err)
	_, _, err = svc.CreateMatch(ctx, validParams())
	require.NoError(t, err)

	_, _, err = svc.CreateMatch(ctx, validParams())
	assertAppErrorCode(t, err, errors.ErrCodeBadRequest)
}

func TestUnknownSession(t *testing.T) {
	svc, _ := newMatchService(t, 16)
	ctx := context.Background()

	_, err := svc.State(ctx, "missing")
	assertAppErrorCode(t, err, errors.ErrCodeNotFound)

	_, err = svc.Poll(ctx, "missing")
	assertAppErrorCode(t, err, errors.ErrCodeNotFound)

	err = svc.EndSession(ctx, "missing")
	assertAppErrorCode(t, err, errors.ErrCodeNotFound)
}

func TestEndSession(t *testing.T) {
	svc, _ := newMatchService(t, 16)
	ctx := context.Background()

	sessionID, _, err := svc.CreateMatch(ctx, validParams())
	require.NoError(t, err)

	require.NoError(t, svc.EndSession(ctx, sessionID))

	_, err = svc.State(ctx, sessionID)
	assertAppErrorCode(t, err, errors.ErrCodeNotFound)
}

func TestSnapshotAndRestoreThroughService(t *testing.T) {
	svc, _ := newMatchService(t, 16)
	ctx := context.Background()

	sessionID, state, err := svc.CreateMatch(ctx, validParams())
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, state.Target, snap.Target)

	restoredID, restored, err := svc.Restore(ctx, snap)
	require.NoError(t, err)
	assert.NotEqual(t, sessionID, restoredID)
	assert.Equal(t, state.Target, restored.Target)
	assert.Equal(t, state.Striker, restored.Striker)

	snap.Striker = "Nobody"
	_, _, err = svc.Restore(ctx, snap)
	assertAppErrorCode(t, err, errors.ErrCodeBadRequest)
}

func TestListRecords(t *testing.T) {
	svc, records := newMatchService(t, 16)
	ctx := context.Background()

	filter := models.MatchRecordFilter{Team: "India"}
	records.On("List", mock.Anything, filter).Return([]models.MatchRecord{{ID: 1, PlayerTeam: "India"}}, nil)
	records.On("Count", mock.Anything, filter).Return(1, nil)

	recs, count, err := svc.ListRecords(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, 1, count)
	records.AssertExpectations(t)
}
