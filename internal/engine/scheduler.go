package engine

import (
	"time"

	"github.com/iamyashpreet99/pitchside/internal/models"
)

const (
	// WindowDuration is how long the timing window stays open after the
	// ball becomes playable.
	WindowDuration = 300 * time.Millisecond

	minWindowDelay    = 500 * time.Millisecond
	windowDelaySpread = time.Second

	powerStep = 2
	maxPower  = 100
)

// ClassifyTiming grades a shot sample against the window opening instant.
// Samples before the window are early and samples past its close are late.
// Inside the window the middle 40 percent is perfect, the rest good.
func ClassifyTiming(sample, windowStart time.Time) models.TimingGrade {
	if sample.Before(windowStart) {
		return models.TimingEarly
	}
	if sample.After(windowStart.Add(WindowDuration)) {
		return models.TimingLate
	}
	pos := float64(sample.Sub(windowStart)) / float64(WindowDuration)
	if pos < 0.3 || pos > 0.7 {
		return models.TimingGood
	}
	return models.TimingPerfect
}

// StartDelivery makes the bowler run in. It picks a delivery type from the
// match situation, resets shot and power state, and schedules the timing
// window to open after a randomized run-up. It returns nil with no error
// when the match is over or a ball is already in flight, so pollers can
// call it idempotently.
func (m *Match) StartDelivery() (*models.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active || m.delivery != nil {
		return nil, nil
	}

	m.shotTaken = false
	m.powerLevel = 0
	m.powerHold = false

	prof, err := m.store.Bowling(m.selectBowlingTypeLocked())
	if err != nil {
		return nil, err
	}

	now := m.now()
	delay := minWindowDelay + time.Duration(m.rng.Float64()*float64(windowDelaySpread))
	m.windowOpen = now.Add(delay)
	m.delivery = &models.Delivery{
		Type:     prof.ID,
		Name:     prof.Name,
		Speed:    prof.Speed,
		Swing:    prof.Swing,
		Accuracy: prof.Accuracy,
		IssuedAt: now,
	}
	d := *m.delivery
	return &d, nil
}

// selectBowlingTypeLocked is the bowling side's strategy. A steep required
// rate or the death overs bring out attacking deliveries, a near-finished
// batting card brings containment, otherwise the attack mixes it up.
func (m *Match) selectBowlingTypeLocked() string {
	rrr := m.requiredRunRateLocked()
	// Overs left counts part-overs, so the death-overs switch flips mid-over.
	oversLeft := float64(m.totalOvers) - (float64(m.overs) + float64(m.balls)/6)
	wicketsLeft := 10 - m.wickets

	r := m.rng.Float64()
	switch {
	case rrr > 10 || oversLeft < 3:
		switch {
		case r < 0.4:
			return "yorker"
		case r < 0.7:
			return "bouncer"
		default:
			return "fast"
		}
	case wicketsLeft <= 2:
		switch {
		case r < 0.5:
			return "spin"
		case r < 0.8:
			return "slower"
		default:
			return "medium"
		}
	default:
		switch {
		case r < 0.3:
			return "fast"
		case r < 0.6:
			return "medium"
		case r < 0.85:
			return "spin"
		default:
			if m.rng.Float64() < 0.5 {
				return "yorker"
			}
			return "slower"
		}
	}
}

func (m *Match) inputOpenLocked() bool {
	return m.active && m.delivery != nil && !m.now().Before(m.windowOpen)
}

// SelectShot commits the batter to a shot. The call is ignored (false, nil)
// when no ball is playable yet or a shot was already taken this ball, so a
// double-tap cannot double-resolve. The timing grade is fixed at the moment
// of selection; the outcome applies after the configured resolve delay.
func (m *Match) SelectShot(shotID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.inputOpenLocked() || m.shotTaken {
		return false, nil
	}
	shot, err := m.store.Shot(shotID)
	if err != nil {
		return false, err
	}

	m.shotTaken = true
	m.powerHold = false
	grade := ClassifyTiming(m.now(), m.windowOpen)
	power := m.powerLevel

	if m.resolveDelay <= 0 {
		m.resolveShotLocked(shot, grade, power)
		return true, nil
	}
	time.AfterFunc(m.resolveDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.resolveShotLocked(shot, grade, power)
	})
	return true, nil
}

func (m *Match) resolveShotLocked(shot models.ShotProfile, grade models.TimingGrade, power int) {
	if !m.active || m.delivery == nil {
		return
	}
	batter := m.playerSquad[m.strikerIdx]
	out := resolveOutcome(shot, batter, m.bowler, grade, m.delivery.Type, power, m.rng, m.commentLocked)
	m.delivery = nil
	m.shotTaken = false
	m.powerLevel = 0
	m.applyOutcomeLocked(out)
	m.lastOutcome = out
}

// StartPowerHold begins charging the power meter; it reports whether the
// hold was accepted.
func (m *Match) StartPowerHold() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.inputOpenLocked() || m.shotTaken {
		return false
	}
	m.powerHold = true
	return true
}

// StopPowerHold releases the power meter, freezing its level for the shot.
func (m *Match) StopPowerHold() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.powerHold = false
}

// UpdatePower advances the meter one tick while held and returns its level.
func (m *Match) UpdatePower() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickPowerLocked()
	return m.powerLevel
}

func (m *Match) tickPowerLocked() {
	if m.powerHold && m.inputOpenLocked() && !m.shotTaken {
		m.powerLevel += powerStep
		if m.powerLevel > maxPower {
			m.powerLevel = maxPower
		}
	}
}

// Poll reports the realtime ball state for a client tick, advancing the
// power meter if it is being held.
func (m *Match) Poll() models.PollState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickPowerLocked()
	ps := models.PollState{
		Active:           m.active,
		DeliveryInFlight: m.delivery != nil,
		InputOpen:        m.inputOpenLocked() && !m.shotTaken,
		PowerLevel:       m.powerLevel,
	}
	if ps.InputOpen {
		ps.Timing = ClassifyTiming(m.now(), m.windowOpen)
	}
	return ps
}
