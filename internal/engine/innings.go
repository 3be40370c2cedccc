package engine

import (
	"fmt"

	"github.com/iamyashpreet99/pitchside/internal/models"
)

// generateFirstInningsLocked plays the opponent's innings ball by ball with
// a coarse outcome table, scales the total by the difficulty multiplier and
// fixes the chase target one run above it.
func (m *Match) generateFirstInningsLocked() {
	runs := 0
	wickets := 0
	overs := 0
	balls := 0

	for ball := 0; ball < m.totalOvers*6; ball++ {
		if wickets >= 10 {
			break
		}
		r := m.rng.Float64()
		switch {
		case r < 0.15:
			wickets++
		case r < 0.4:
			// dot
		case r < 0.7:
			if m.rng.Float64() < 0.7 {
				runs++
			} else {
				runs += 2
			}
		case r < 0.9:
			runs += 4
		default:
			runs += 6
		}
		if balls == 5 {
			overs++
			balls = 0
		} else {
			balls++
		}
	}

	runs = int(float64(runs) * m.difficulty.Multiplier())
	m.target = runs + 1
	m.matchHistory = append(m.matchHistory, models.InningsLine{
		Team:    m.opponentTeam.Name,
		Runs:    runs,
		Wickets: wickets,
		Overs:   fmt.Sprintf("%d.%d", overs, balls),
	})
}
