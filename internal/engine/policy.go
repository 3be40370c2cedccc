package engine

import (
	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/models"
)

// maxRotationBowlers caps how many of the eligible bowlers take part in the
// end-of-over rotation.
const maxRotationBowlers = 5

// ShouldSwapStrike reports whether the batters cross after a ball. Mid-over
// they cross on odd runs only. At the end of an over the original game also
// crosses them on a dot ball, so over-end crossing triggers on odd or zero
// runs. That asymmetry is kept and isolated here.
func ShouldSwapStrike(runs int, overEnd bool) bool {
	if overEnd {
		return runs%2 == 1 || runs == 0
	}
	return runs%2 == 1
}

// EligibleBowlers filters a squad down to the players rated well enough to
// bowl, preserving squad order.
func EligibleBowlers(squad []models.Player) []models.Player {
	var out []models.Player
	for _, p := range squad {
		if p.Bowling >= gamedata.MinBowlingRating {
			out = append(out, p)
		}
	}
	return out
}

// NextBowlerIndex advances the end-of-over rotation over at most
// maxRotationBowlers of the eligible bowlers.
func NextBowlerIndex(current, eligible int) int {
	n := eligible
	if n > maxRotationBowlers {
		n = maxRotationBowlers
	}
	if n <= 0 {
		return 0
	}
	return (current + 1) % n
}
