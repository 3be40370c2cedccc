package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamyashpreet99/pitchside/internal/gamedata"
)

func TestLoadEmbeddedData(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(store.Teams()), 2)
	assert.NotEmpty(t, store.Shots())
	assert.NotEmpty(t, store.BowlingTypes())
	assert.NotEmpty(t, store.FieldPositions())
}

func TestTeamLookup(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	team, err := store.Team("india")
	require.NoError(t, err)
	assert.Equal(t, "india", team.ID)
	require.GreaterOrEqual(t, len(team.Players), 2)
	assert.Equal(t, "Rohit Sharma", team.Players[0].Name)

	_, err = store.Team("narnia")
	assert.ErrorIs(t, err, gamedata.ErrNotFound)
}

func TestShotLookup(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	shot, err := store.Shot("loft")
	require.NoError(t, err)
	assert.Equal(t, "loft", shot.ID)

	_, err = store.Shot("scoop")
	assert.ErrorIs(t, err, gamedata.ErrNotFound)
}

func TestBowlingLookup(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	for _, id := range []string{"fast", "medium", "spin", "yorker", "bouncer", "slower"} {
		profile, err := store.Bowling(id)
		require.NoError(t, err, "bowling type %s", id)
		assert.Equal(t, id, profile.ID)
	}

	_, err = store.Bowling("doosra")
	assert.ErrorIs(t, err, gamedata.ErrNotFound)
}

func TestEveryTeamCanFieldASide(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	for _, team := range store.Teams() {
		bowlers := 0
		for _, p := range team.Players {
			if p.Bowling >= gamedata.MinBowlingRating {
				bowlers++
			}
		}
		assert.GreaterOrEqual(t, len(team.Players), 2, "team %s squad too small", team.ID)
		assert.GreaterOrEqual(t, bowlers, 1, "team %s has no eligible bowler", team.ID)
	}
}

func TestCommentaryBanks(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	for _, kind := range []string{"dot", "single", "boundary", "six", "wicket"} {
		assert.NotEmpty(t, store.CommentaryBank(kind), "empty bank for %s", kind)
	}
	assert.Empty(t, store.CommentaryBank("no-such-kind"))
}

func TestLookupsReturnCopies(t *testing.T) {
	store, err := gamedata.Load()
	require.NoError(t, err)

	teams := store.Teams()
	teams[0].ID = "mutated"

	again, err := store.Team("india")
	require.NoError(t, err)
	assert.Equal(t, "india", again.ID)
}
