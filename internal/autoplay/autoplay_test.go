package autoplay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamyashpreet99/pitchside/internal/autoplay"
	"github.com/iamyashpreet99/pitchside/internal/engine"
	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/models"
)

func TestChooseShotIsAlwaysAKnownShot(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	known := map[string]bool{}
	for _, s := range store.Shots() {
		known[s.ID] = true
	}

	rng := engine.NewRand(3)
	for _, rate := range []float64{0, 4, 7, 12} {
		for _, wickets := range []int{10, 5, 2, 1} {
			for i := 0; i < 50; i++ {
				shot := autoplay.ChooseShot(rate, wickets, rng)
				assert.True(t, known[shot], "rate=%v wickets=%v shot=%q", rate, wickets, shot)
			}
		}
	}
}

func TestChooseShotTailBlocks(t *testing.T) {
	rng := engine.NewRand(9)
	for i := 0; i < 100; i++ {
		shot := autoplay.ChooseShot(12, 1, rng)
		assert.Contains(t, []string{"defense", "drive"}, shot)
	}
}

func TestSampleTimingDistribution(t *testing.T) {
	rng := engine.NewRand(4)
	counts := map[models.TimingGrade]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[autoplay.SampleTiming(rng)]++
	}

	assert.InDelta(t, 0.20, float64(counts[models.TimingPerfect])/n, 0.02)
	assert.InDelta(t, 0.50, float64(counts[models.TimingGood])/n, 0.02)
	assert.InDelta(t, 0.15, float64(counts[models.TimingEarly])/n, 0.02)
	assert.InDelta(t, 0.15, float64(counts[models.TimingLate])/n, 0.02)
}

func TestSamplePowerRange(t *testing.T) {
	rng := engine.NewRand(6)
	for i := 0; i < 1000; i++ {
		p := autoplay.SamplePower(rng)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
	}
}

func TestPlayInningsCompletesChase(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	for seed := int64(1); seed <= 5; seed++ {
		m, err := engine.NewMatch(store, "india", "australia", models.FormatT20, models.DifficultyMedium, engine.Options{
			Rand: engine.NewRand(seed),
		})
		require.NoError(t, err)

		require.NoError(t, autoplay.PlayInnings(m, engine.NewRand(seed+100)))
		assert.False(t, m.Active())

		res := m.Result()
		assert.Contains(t, []string{"win", "tie", "loss"}, res.Result)
	}
}
