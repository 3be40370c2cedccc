// Package autoplay bats out a chase without a human. It picks shots from
// the match situation the way a reasonable batter would and samples timing
// and power from fixed distributions, which makes it the driver for batch
// simulations.
package autoplay

import (
	"github.com/iamyashpreet99/pitchside/internal/engine"
	"github.com/iamyashpreet99/pitchside/internal/models"
)

// ChooseShot picks a shot for the current ball. The tail blocks, a steep
// required rate swings hard, and a gentle chase rotates the strike.
func ChooseShot(requiredRate float64, wicketsLeft int, rng engine.Rand) string {
	r := rng.Float64()
	switch {
	case wicketsLeft <= 2:
		if r < 0.7 {
			return "defense"
		}
		return "drive"
	case requiredRate > 9:
		switch {
		case r < 0.4:
			return "loft"
		case r < 0.7:
			return "pull"
		default:
			return "cut"
		}
	case requiredRate > 6:
		switch {
		case r < 0.4:
			return "drive"
		case r < 0.7:
			return "cut"
		default:
			return "sweep"
		}
	default:
		switch {
		case r < 0.4:
			return "defense"
		case r < 0.8:
			return "drive"
		default:
			return "cut"
		}
	}
}

// SampleTiming draws a timing grade: a fifth perfect, half good and the
// rest split between early and late.
func SampleTiming(rng engine.Rand) models.TimingGrade {
	r := rng.Float64()
	switch {
	case r < 0.20:
		return models.TimingPerfect
	case r < 0.70:
		return models.TimingGood
	case r < 0.85:
		return models.TimingEarly
	default:
		return models.TimingLate
	}
}

// SamplePower draws a power level; one ball in four is a charged swing.
func SamplePower(rng engine.Rand) int {
	if rng.Float64() < 0.25 {
		return 60 + rng.Intn(41)
	}
	return rng.Intn(40)
}

// PlayInnings bats the chase to completion.
func PlayInnings(m *engine.Match, rng engine.Rand) error {
	for m.Active() {
		state := m.State()
		shot := ChooseShot(state.RequiredRunRate, 10-state.Wickets, rng)
		if _, err := m.PlayBall(shot, SampleTiming(rng), SamplePower(rng)); err != nil {
			return err
		}
	}
	return nil
}
