package engine_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamyashpreet99/pitchside/internal/engine"
	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/models"
)

// scriptRand pops draws from fixed queues, falling back to neutral values
// once a queue runs dry.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// cycleRand repeats its draw sequences forever.
type cycleRand struct {
	floats []float64
	fi     int
	ints   []int
	ii     int
}

func (r *cycleRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *cycleRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T) *gamedata.Store {
	t.Helper()
	store, err := gamedata.Load()
	require.NoError(t, err)
	return store
}

func TestNewMatchRejectsBadSetup(t *testing.T) {
	store := newTestStore(t)

	_, err := engine.NewMatch(store, "india", "india", models.FormatT20, models.DifficultyMedium, engine.Options{})
	assert.ErrorIs(t, err, engine.ErrSameTeam)

	_, err = engine.NewMatch(store, "india", "narnia", models.FormatT20, models.DifficultyMedium, engine.Options{})
	assert.ErrorIs(t, err, gamedata.ErrNotFound)
}

// A chase of 120 where every ball is a lofted six off a fast delivery: the
// target falls on the 20th ball with the score on exactly 120.
func TestChaseWonWithScriptedSixes(t *testing.T) {
	store := newTestStore(t)
	var ended int32
	// Per ball: one draw picks the bowling type (0.0 is fast) and one
	// resolves the outcome (0.99 lands in the boundary band, and loft is
	// always six).
	rng := &cycleRand{floats: []float64{0.0, 0.99}, ints: []int{0}}

	m, err := engine.NewMatch(store, "india", "australia", models.FormatT20, models.DifficultyMedium, engine.Options{
		Rand:       rng,
		Target:     120,
		OnMatchEnd: func() { atomic.AddInt32(&ended, 1) },
	})
	require.NoError(t, err)

	balls := 0
	for m.Active() {
		out, err := m.PlayBall("loft", models.TimingPerfect, 0)
		require.NoError(t, err)
		assert.Equal(t, models.OutcomeSix, out.Type)
		assert.Equal(t, 6, out.Runs)
		balls++
		require.LessOrEqual(t, balls, 120)
	}

	assert.Equal(t, 20, balls)

	state := m.State()
	assert.Equal(t, 120, state.Runs)
	assert.Equal(t, 0, state.Wickets)
	assert.Equal(t, 3, state.Overs)
	assert.Equal(t, 2, state.Balls)
	assert.False(t, state.Active)

	// No strike ever changes hands on an even-run ball, so the opener
	// carries the whole chase.
	opener := state.BatterStats["Rohit Sharma"]
	assert.Equal(t, 120, opener.Runs)
	assert.Equal(t, 20, opener.Balls)
	assert.Equal(t, 20, opener.Sixes)
	assert.InDelta(t, 600.0, opener.StrikeRate, 0.001)

	require.Len(t, state.OverHistory, 3)
	for i, over := range state.OverHistory {
		assert.Equal(t, i+1, over.Over)
		assert.Equal(t, 36, over.Runs)
		assert.Equal(t, 0, over.Wickets)
	}

	res := m.Result()
	assert.Equal(t, "win", res.Result)
	assert.Equal(t, 120, res.Achieved)
	require.NotNil(t, res.PlayerScore)
	assert.Equal(t, "3.2", res.PlayerScore.Overs)
	assert.Nil(t, res.OpponentScore)

	mom := m.ManOfTheMatch()
	require.NotNil(t, mom)
	assert.Equal(t, "Rohit Sharma", mom.Name)
	assert.Equal(t, "India", mom.Team)

	_, err = m.PlayBall("loft", models.TimingPerfect, 0)
	assert.ErrorIs(t, err, engine.ErrMatchOver)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&ended) == 1
	}, time.Second, 5*time.Millisecond, "end hook should fire exactly once")
}

// An all-out collapse: a 0.0 outcome draw is always inside the wicket band,
// so ten balls end the innings without a run.
func TestChaseLostToCollapse(t *testing.T) {
	store := newTestStore(t)
	rng := &cycleRand{floats: []float64{0.0, 0.0}, ints: []int{0}}

	m, err := engine.NewMatch(store, "india", "australia", models.FormatT20, models.DifficultyMedium, engine.Options{
		Rand:   rng,
		Target: 150,
	})
	require.NoError(t, err)

	balls := 0
	for m.Active() {
		out, err := m.PlayBall("defense", models.TimingGood, 0)
		require.NoError(t, err)
		assert.Equal(t, models.OutcomeWicket, out.Type)
		assert.Equal(t, "bowled", out.WicketKind)
		balls++
		require.LessOrEqual(t, balls, 20)
	}

	assert.Equal(t, 10, balls)

	state := m.State()
	assert.Equal(t, 0, state.Runs)
	assert.Equal(t, 10, state.Wickets)
	assert.Equal(t, 1, state.Overs)
	assert.Equal(t, 4, state.Balls)
	assert.False(t, state.Active)

	dismissed := 0
	ballsFaced := 0
	for _, st := range state.BatterStats {
		if st.Out {
			dismissed++
		}
		ballsFaced += st.Balls
	}
	assert.Equal(t, 10, dismissed)
	assert.Equal(t, 10, ballsFaced)

	res := m.Result()
	assert.Equal(t, "loss", res.Result)
	assert.Nil(t, m.ManOfTheMatch())
}

// Full seeded chases hold the bookkeeping invariants regardless of how the
// match plays out.
func TestChaseInvariants(t *testing.T) {
	store := newTestStore(t)
	shots := []string{"drive", "cut", "defense", "pull", "sweep", "loft"}

	for seed := int64(1); seed <= 8; seed++ {
		m, err := engine.NewMatch(store, "england", "pakistan", models.FormatT20, models.DifficultyMedium, engine.Options{
			Rand: engine.NewRand(seed),
		})
		require.NoError(t, err)

		for i := 0; m.Active(); i++ {
			_, err := m.PlayBall(shots[i%len(shots)], models.TimingGood, 30)
			require.NoError(t, err)
			require.Less(t, i, 200, "seed %d: chase did not terminate", seed)
		}

		state := m.State()
		assert.LessOrEqual(t, state.Wickets, 10, "seed %d", seed)
		assert.LessOrEqual(t, state.Overs, 20, "seed %d", seed)

		runs, balls := 0, 0
		for _, st := range state.BatterStats {
			runs += st.Runs
			balls += st.Balls
		}
		assert.Equal(t, state.Runs, runs, "seed %d: batter runs must add up to the total", seed)
		assert.Equal(t, state.Overs*6+state.Balls, balls, "seed %d: batter balls must add up to balls bowled", seed)

		wickets := 0
		for _, st := range state.BowlerStats {
			wickets += st.Wickets
		}
		assert.Equal(t, state.Wickets, wickets, "seed %d", seed)

		res := m.Result()
		switch {
		case state.Runs >= state.Target:
			assert.Equal(t, "win", res.Result, "seed %d", seed)
		case state.Runs == state.Target-1 && state.Wickets < 10:
			assert.Equal(t, "tie", res.Result, "seed %d", seed)
		default:
			assert.Equal(t, "loss", res.Result, "seed %d", seed)
		}
	}
}

func TestRequiredRunRate(t *testing.T) {
	store := newTestStore(t)
	m, err := engine.NewMatch(store, "india", "australia", models.FormatT20, models.DifficultyMedium, engine.Options{
		Rand:   engine.NewRand(1),
		Target: 120,
	})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, m.RequiredRunRate(), 0.001)
}
