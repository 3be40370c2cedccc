package engine

import (
	"github.com/iamyashpreet99/pitchside/internal/models"
)

// Chances are the per-ball outcome probabilities after every adjustment,
// clamped non-negative and renormalized to sum to one.
type Chances struct {
	Boundary float64
	Wicket   float64
	Run      float64
	Dot      float64
}

func timingFactor(grade models.TimingGrade) float64 {
	switch grade {
	case models.TimingPerfect:
		return 1.3
	case models.TimingGood:
		return 1.1
	case models.TimingEarly:
		return 0.7
	case models.TimingLate:
		return 0.8
	default:
		return 1.0
	}
}

// ShotChances combines a shot's base chances with the timing grade, the
// batter-versus-bowler skill gap, the delivery type and the power meter.
// Timing scales boundary and run chances up and wicket and dot chances down
// in the same ratio. Each chance is clamped at zero before the whole vector
// is renormalized; a degenerate all-zero vector collapses to a certain dot.
func ShotChances(shot models.ShotProfile, batter, bowler models.Player, grade models.TimingGrade, deliveryType string, power int) Chances {
	f := timingFactor(grade)
	c := Chances{
		Boundary: shot.BoundaryChance * f,
		Wicket:   shot.WicketChance / f,
		Run:      shot.RunChance * f,
		Dot:      shot.DotChance / f,
	}

	skill := float64(batter.Batting-bowler.Bowling) / 100
	c.Boundary += 0.1 * skill
	c.Wicket -= 0.05 * skill
	c.Run += 0.05 * skill
	c.Dot -= 0.1 * skill

	switch deliveryType {
	case "yorker", "bouncer":
		c.Wicket += 0.1
		c.Boundary -= 0.1
	case "spin":
		c.Wicket += 0.05
		c.Dot += 0.1
	}

	if power > 50 {
		c.Boundary += 0.15
		c.Wicket += 0.1
	}

	c.Boundary = clampZero(c.Boundary)
	c.Wicket = clampZero(c.Wicket)
	c.Run = clampZero(c.Run)
	c.Dot = clampZero(c.Dot)

	total := c.Boundary + c.Wicket + c.Run + c.Dot
	if total <= 0 {
		return Chances{Dot: 1}
	}
	c.Boundary /= total
	c.Wicket /= total
	c.Run /= total
	c.Dot /= total
	return c
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

var wicketKinds = [...]string{"bowled", "caught", "lbw", "stumped", "run out"}

// resolveOutcome draws one ball from the adjusted chance vector. The cumulative
// order is wicket, dot, run, boundary. A run ball always consumes both of its
// extra draws so the draw count per branch stays fixed; the three-run upgrade
// only applies when the two-run draw misses. The loft shot short-circuits the
// six check without consuming a draw.
func resolveOutcome(shot models.ShotProfile, batter, bowler models.Player, grade models.TimingGrade, deliveryType string, power int, rng Rand, comment func(kind string) string) *models.Outcome {
	c := ShotChances(shot, batter, bowler, grade, deliveryType, power)
	r := rng.Float64()

	var out *models.Outcome
	switch {
	case r < c.Wicket:
		kind := wicketKinds[rng.Intn(len(wicketKinds))]
		out = &models.Outcome{Type: models.OutcomeWicket, WicketKind: kind, Commentary: comment("wicket")}
	case r < c.Wicket+c.Dot:
		out = &models.Outcome{Type: models.OutcomeDot, Commentary: comment("dot")}
	case r < c.Wicket+c.Dot+c.Run:
		two, three := rng.Float64(), rng.Float64()
		runs := 1
		if two < 0.3 {
			runs = 2
		} else if three < 0.1 {
			runs = 3
		}
		out = &models.Outcome{Type: models.OutcomeRun, Runs: runs, Commentary: comment("single")}
	default:
		if shot.ID == "loft" || rng.Float64() < 0.4 || power > 70 {
			out = &models.Outcome{Type: models.OutcomeSix, Runs: 6, Commentary: comment("six")}
		} else {
			out = &models.Outcome{Type: models.OutcomeFour, Runs: 4, Commentary: comment("boundary")}
		}
	}
	out.Timing = grade
	out.Shot = shot.Name
	return out
}
