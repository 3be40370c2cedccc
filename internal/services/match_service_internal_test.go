package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iamyashpreet99/pitchside/internal/engine"
	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/models"
	"github.com/iamyashpreet99/pitchside/internal/testutil/mocks"
)

// The end-of-match hook must write exactly one record with the final score.
func TestPersistResultOnMatchEnd(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	records := new(mocks.MockMatchRecordRepository)
	svc := NewMatchService(store, records, 0, 16).(*matchService)

	inserted := make(chan models.MatchRecord, 1)
	records.On("Insert", mock.Anything, mock.AnythingOfType("models.MatchRecord")).
		Run(func(args mock.Arguments) {
			inserted <- args.Get(1).(models.MatchRecord)
		}).
		Return(int64(1), nil)

	// A one-run target ends the match on the first scoring ball.
	sessionID := newSessionID()
	match, err := engine.NewMatch(store, "india", "australia", models.FormatT20, models.DifficultyMedium, engine.Options{
		Rand:       &cycleSixes{},
		Target:     1,
		OnMatchEnd: func() { svc.persistResult(sessionID) },
	})
	require.NoError(t, err)
	svc.mu.Lock()
	svc.sessions[sessionID] = match
	svc.mu.Unlock()

	_, err = match.PlayBall("loft", models.TimingPerfect, 0)
	require.NoError(t, err)
	require.False(t, match.Active())

	select {
	case rec := <-inserted:
		require.Equal(t, "India", rec.PlayerTeam)
		require.Equal(t, "Australia", rec.OpponentTeam)
		require.Equal(t, "win", rec.Result)
		require.Equal(t, 1, rec.Target)
		require.Equal(t, 6, rec.Runs)
		require.Equal(t, "0.1", rec.Overs)
		require.Equal(t, "Rohit Sharma", rec.ManOfTheMatch)
	case <-time.After(time.Second):
		t.Fatal("match record was never persisted")
	}

	// The session stays available for the result screen.
	_, err = svc.State(context.Background(), sessionID)
	require.NoError(t, err)
}

// cycleSixes scripts a fast delivery and a boundary draw on every ball.
type cycleSixes struct{ n int }

func (r *cycleSixes) Float64() float64 {
	r.n++
	if r.n%2 == 1 {
		return 0.0
	}
	return 0.99
}

func (r *cycleSixes) Intn(n int) int { return 0 }
