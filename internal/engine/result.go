package engine

import (
	"github.com/iamyashpreet99/pitchside/internal/models"
)

// Result summarizes the chase. A win means the target was reached, a tie
// means the side finished exactly one short with wickets in hand, anything
// else is a loss. Valid whether or not the match has ended.
func (m *Match) Result() *models.MatchResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	verdict := "loss"
	switch {
	case m.target > 0 && m.runs >= m.target:
		verdict = "win"
	case m.target > 0 && m.runs == m.target-1 && m.wickets < 10:
		verdict = "tie"
	}

	res := &models.MatchResult{
		Result:   verdict,
		Target:   m.target,
		Achieved: m.runs,
	}
	for _, line := range m.matchHistory {
		l := line
		switch line.Team {
		case m.playerTeam.Name:
			res.PlayerScore = &l
		case m.opponentTeam.Name:
			res.OpponentScore = &l
		}
	}
	return res
}

// ManOfTheMatch picks the chasing side's top scorer, breaking ties by
// batting order. It returns nil when nobody scored.
func (m *Match) ManOfTheMatch() *models.ManOfTheMatch {
	m.mu.Lock()
	defer m.mu.Unlock()

	best := 0
	var pick *models.ManOfTheMatch
	for _, p := range m.playerSquad {
		st := m.batterStats[p.Name]
		if st == nil || st.Runs <= best {
			continue
		}
		best = st.Runs
		pick = &models.ManOfTheMatch{Name: p.Name, Team: m.playerTeam.Name, Stats: *st}
	}
	return pick
}
