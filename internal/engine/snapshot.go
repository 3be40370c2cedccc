package engine

import (
	"fmt"

	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/models"
)

// Snapshot captures the full serializable engine state. It refuses to run
// while a delivery is in flight; a snapshot always sits on a ball boundary.
func (m *Match) Snapshot() (*models.MatchSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delivery != nil {
		return nil, ErrDeliveryInFlight
	}

	batters := make(map[string]models.BatterInningsStats, len(m.batterStats))
	for name, st := range m.batterStats {
		batters[name] = *st
	}
	bowlers := make(map[string]models.BowlerStats, len(m.bowlerStats))
	for name, st := range m.bowlerStats {
		bowlers[name] = *st
	}

	return &models.MatchSnapshot{
		PlayerTeamID:   m.playerTeam.ID,
		OpponentTeamID: m.opponentTeam.ID,
		Format:         m.format,
		Difficulty:     m.difficulty,
		Target:         m.target,
		Runs:           m.runs,
		Wickets:        m.wickets,
		Overs:          m.overs,
		Balls:          m.balls,
		Striker:        m.playerSquad[m.strikerIdx].Name,
		NonStriker:     m.playerSquad[m.nonStrikerIdx].Name,
		Bowler:         m.bowler.Name,
		BowlerIndex:    m.bowlerIdx,
		BatterStats:    batters,
		BowlerStats:    bowlers,
		LastSixBalls:   append([]string(nil), m.lastSix...),
		OverHistory:    append([]models.OverEntry(nil), m.overHistory...),
		MatchHistory:   append([]models.InningsLine(nil), m.matchHistory...),
		Active:         m.active,
	}, nil
}

// RestoreMatch rebuilds a Match from a snapshot against the current
// reference data. Player names in the snapshot must still exist on their
// teams.
func RestoreMatch(store *gamedata.Store, snap *models.MatchSnapshot, opts Options) (*Match, error) {
	m, err := newBareMatch(store, snap.PlayerTeamID, snap.OpponentTeamID, snap.Format, snap.Difficulty, opts)
	if err != nil {
		return nil, err
	}
	if err := validateSnapshotCounters(snap, m.totalOvers); err != nil {
		return nil, err
	}

	m.target = snap.Target
	m.runs = snap.Runs
	m.wickets = snap.Wickets
	m.overs = snap.Overs
	m.balls = snap.Balls
	m.active = snap.Active

	strikerIdx, ok := squadIndex(m.playerSquad, snap.Striker)
	if !ok {
		return nil, fmt.Errorf("engine: striker %q not on team %s", snap.Striker, snap.PlayerTeamID)
	}
	nonStrikerIdx, ok := squadIndex(m.playerSquad, snap.NonStriker)
	if !ok {
		return nil, fmt.Errorf("engine: non-striker %q not on team %s", snap.NonStriker, snap.PlayerTeamID)
	}
	m.strikerIdx = strikerIdx
	m.nonStrikerIdx = nonStrikerIdx

	bowlerIdx, ok := squadIndex(m.opponentSquad, snap.Bowler)
	if !ok {
		return nil, fmt.Errorf("engine: bowler %q not on team %s", snap.Bowler, snap.OpponentTeamID)
	}
	m.bowler = m.opponentSquad[bowlerIdx]
	rotation := len(EligibleBowlers(m.opponentSquad))
	if rotation > maxRotationBowlers {
		rotation = maxRotationBowlers
	}
	if snap.BowlerIndex < 0 || snap.BowlerIndex >= rotation {
		return nil, fmt.Errorf("engine: bowler index %d out of range", snap.BowlerIndex)
	}
	m.bowlerIdx = snap.BowlerIndex

	for name, st := range snap.BatterStats {
		s := st
		m.batterStats[name] = &s
	}
	for name, st := range snap.BowlerStats {
		s := st
		m.bowlerStats[name] = &s
	}

	m.lastSix = append([]string(nil), snap.LastSixBalls...)
	m.overHistory = append([]models.OverEntry(nil), snap.OverHistory...)
	m.matchHistory = append([]models.InningsLine(nil), snap.MatchHistory...)
	return m, nil
}

// validateSnapshotCounters rejects snapshots whose score counters could not
// have come from a legal match.
func validateSnapshotCounters(snap *models.MatchSnapshot, totalOvers int) error {
	if snap.Target < 1 {
		return fmt.Errorf("engine: snapshot target %d out of range", snap.Target)
	}
	if snap.Runs < 0 {
		return fmt.Errorf("engine: snapshot runs %d out of range", snap.Runs)
	}
	if snap.Wickets < 0 || snap.Wickets > 10 {
		return fmt.Errorf("engine: snapshot wickets %d out of range", snap.Wickets)
	}
	if snap.Balls < 0 || snap.Balls > 5 {
		return fmt.Errorf("engine: snapshot balls %d out of range", snap.Balls)
	}
	if snap.Overs < 0 || snap.Overs > totalOvers {
		return fmt.Errorf("engine: snapshot overs %d out of range for a %d over match", snap.Overs, totalOvers)
	}
	return nil
}

func squadIndex(squad []models.Player, name string) (int, bool) {
	for i, p := range squad {
		if p.Name == name {
			return i, true
		}
	}
	return 0, false
}
