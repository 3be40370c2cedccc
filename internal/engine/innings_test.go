package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamyashpreet99/pitchside/internal/engine"
	"github.com/iamyashpreet99/pitchside/internal/models"
)

// A 0.95 draw is a six on every first-innings ball, so a full T20 innings
// posts 720 and sets 721.
func TestFirstInningsAllSixes(t *testing.T) {
	store := newTestStore(t)
	rng := &cycleRand{floats: []float64{0.95}}

	m, err := engine.NewMatch(store, "india", "australia", models.FormatT20, models.DifficultyMedium, engine.Options{Rand: rng})
	require.NoError(t, err)

	state := m.State()
	assert.Equal(t, 721, state.Target)

	res := m.Result()
	require.NotNil(t, res.OpponentScore)
	assert.Equal(t, "Australia", res.OpponentScore.Team)
	assert.Equal(t, 720, res.OpponentScore.Runs)
	assert.Equal(t, 0, res.OpponentScore.Wickets)
	assert.Equal(t, "20.0", res.OpponentScore.Overs)
}

// A 0.1 draw is a wicket on every ball; ten of them close the innings early
// with the total on zero.
func TestFirstInningsAllOut(t *testing.T) {
	store := newTestStore(t)
	rng := &cycleRand{floats: []float64{0.1}}

	m, err := engine.NewMatch(store, "india", "australia", models.FormatT20, models.DifficultyMedium, engine.Options{Rand: rng})
	require.NoError(t, err)

	assert.Equal(t, 1, m.State().Target)

	res := m.Result()
	require.NotNil(t, res.OpponentScore)
	assert.Equal(t, 0, res.OpponentScore.Runs)
	assert.Equal(t, 10, res.OpponentScore.Wickets)
	assert.Equal(t, "1.4", res.OpponentScore.Overs)
}

// The difficulty multiplier scales the posted total before the target is
// fixed one above it.
func TestFirstInningsDifficultyScaling(t *testing.T) {
	store := newTestStore(t)

	// A 0.8 draw is a four on every ball: 480 before scaling.
	for _, diff := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		rng := &cycleRand{floats: []float64{0.8}}
		m, err := engine.NewMatch(store, "india", "australia", models.FormatT20, diff, engine.Options{Rand: rng})
		require.NoError(t, err)

		want := int(float64(480)*diff.Multiplier()) + 1
		assert.Equal(t, want, m.State().Target, "difficulty %s", diff)
	}
}

// A preset target skips the generated innings entirely.
func TestPresetTargetSkipsFirstInnings(t *testing.T) {
	store := newTestStore(t)
	m, err := engine.NewMatch(store, "india", "australia", models.FormatT20, models.DifficultyMedium, engine.Options{
		Rand:   engine.NewRand(1),
		Target: 135,
	})
	require.NoError(t, err)

	assert.Equal(t, 135, m.State().Target)
	assert.Nil(t, m.Result().OpponentScore)
}

func TestFormatSetsInningsLength(t *testing.T) {
	store := newTestStore(t)
	for _, tc := range []struct {
		format models.Format
		overs  int
	}{
		{models.FormatT20, 20},
		{models.FormatODI, 50},
		{models.FormatTest, 90},
	} {
		rng := &cycleRand{floats: []float64{0.5, 0.9}} // alternating draws keep runs flowing
		m, err := engine.NewMatch(store, "india", "australia", tc.format, models.DifficultyMedium, engine.Options{Rand: rng})
		require.NoError(t, err)
		assert.Equal(t, tc.overs, m.State().TotalOvers)
	}
}
