// Package engine implements the match-simulation core: the per-ball outcome
// model, the delivery scheduler with its timing window, the match state
// machine for a second-innings run chase, and the result summarizer.
//
// A Match is an explicitly constructed session object; there is no hidden
// process-wide state. Randomness and the clock are injected so that outcome
// sequences are reproducible.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/models"
)

// Rand is the source of randomness for the engine. Injecting it keeps
// outcome sequences reproducible in tests.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded Rand backed by math/rand.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

var (
	// ErrSameTeam rejects a match where a team would play itself.
	ErrSameTeam = errors.New("engine: player and opponent team must differ")
	// ErrMatchOver is returned by headless play once the match is inactive.
	ErrMatchOver = errors.New("engine: match is over")
	// ErrDeliveryInFlight is returned when an operation needs the ball to be dead.
	ErrDeliveryInFlight = errors.New("engine: delivery already in flight")
)

// Options configure a Match.
type Options struct {
	// Rand supplies randomness; defaults to a time-seeded generator.
	Rand Rand
	// Now supplies the clock; defaults to time.Now.
	Now func() time.Time
	// ShotResolveDelay is the pause between shot selection and outcome
	// application, letting presentation feedback play out. Zero resolves
	// synchronously.
	ShotResolveDelay time.Duration
	// Target presets the chase target and skips the first-innings
	// simulation when positive.
	Target int
	// OnMatchEnd is invoked exactly once, on its own goroutine, when the
	// match goes inactive.
	OnMatchEnd func()
}

// Match is one second-innings run chase. All exported methods are safe for
// concurrent use; internally a single mutex serializes every transition, so
// the single-delivery and single-shot invariants hold under any interleaving.
type Match struct {
	mu  sync.Mutex
	rng Rand
	now func() time.Time

	store        *gamedata.Store
	resolveDelay time.Duration
	onMatchEnd   func()

	playerTeam   models.Team
	opponentTeam models.Team
	format       models.Format
	difficulty   models.Difficulty
	totalOvers   int
	target       int

	playerSquad   []models.Player
	opponentSquad []models.Player

	runs    int
	wickets int
	overs   int
	balls   int

	strikerIdx    int
	nonStrikerIdx int
	bowler        models.Player
	bowlerIdx     int

	batterStats  map[string]*models.BatterInningsStats
	bowlerStats  map[string]*models.BowlerStats
	lastSix      []string
	overHistory  []models.OverEntry
	matchHistory []models.InningsLine

	active bool

	// ball state
	delivery    *models.Delivery
	windowOpen  time.Time
	shotTaken   bool
	powerLevel  int
	powerHold   bool
	lastOutcome *models.Outcome
}

// NewMatch validates the setup, builds both squads, simulates the first
// innings to fix the chase target, and leaves the match ready for its first
// delivery.
func NewMatch(store *gamedata.Store, playerTeamID, opponentTeamID string, format models.Format, difficulty models.Difficulty, opts Options) (*Match, error) {
	m, err := newBareMatch(store, playerTeamID, opponentTeamID, format, difficulty, opts)
	if err != nil {
		return nil, err
	}
	if opts.Target > 0 {
		m.target = opts.Target
	} else {
		m.generateFirstInningsLocked()
	}
	m.active = true
	return m, nil
}

func newBareMatch(store *gamedata.Store, playerTeamID, opponentTeamID string, format models.Format, difficulty models.Difficulty, opts Options) (*Match, error) {
	if playerTeamID == opponentTeamID {
		return nil, ErrSameTeam
	}
	playerTeam, err := store.Team(playerTeamID)
	if err != nil {
		return nil, err
	}
	opponentTeam, err := store.Team(opponentTeamID)
	if err != nil {
		return nil, err
	}

	m := &Match{
		rng:          opts.Rand,
		now:          opts.Now,
		store:        store,
		resolveDelay: opts.ShotResolveDelay,
		onMatchEnd:   opts.OnMatchEnd,
		playerTeam:   playerTeam,
		opponentTeam: opponentTeam,
		format:       format,
		difficulty:   difficulty,
		totalOvers:   format.TotalOvers(),
		batterStats:  map[string]*models.BatterInningsStats{},
		bowlerStats:  map[string]*models.BowlerStats{},
	}
	if m.rng == nil {
		m.rng = NewRand(time.Now().UnixNano())
	}
	if m.now == nil {
		m.now = time.Now
	}

	m.playerSquad = append([]models.Player(nil), playerTeam.Players...)
	m.opponentSquad = append([]models.Player(nil), opponentTeam.Players...)
	if len(m.playerSquad) < 2 {
		return nil, fmt.Errorf("engine: team %s has fewer than two batters", playerTeamID)
	}

	for _, p := range m.playerSquad {
		m.batterStats[p.Name] = &models.BatterInningsStats{}
	}
	for _, p := range m.opponentSquad {
		if p.Bowling >= gamedata.MinBowlingRating {
			m.bowlerStats[p.Name] = &models.BowlerStats{}
		}
	}

	eligible := EligibleBowlers(m.opponentSquad)
	if len(eligible) == 0 {
		return nil, fmt.Errorf("engine: team %s has no eligible bowler", opponentTeamID)
	}
	m.strikerIdx = 0
	m.nonStrikerIdx = 1
	m.bowlerIdx = 0
	m.bowler = eligible[0]
	return m, nil
}

// applyOutcomeLocked is the central state transition. The statement order
// mirrors the original game: over bookkeeping and bowler rotation happen
// before batter and bowler stats are updated, so an over's final ball is
// charged to the incoming bowler and credited to the post-crossing striker.
func (m *Match) applyOutcomeLocked(out *models.Outcome) {
	m.runs += out.Runs

	m.balls++
	overEnd := false
	if m.balls >= 6 {
		m.balls = 0
		m.overs++
		overEnd = true
		scored := m.runs
		for _, e := range m.overHistory {
			scored -= e.Runs
		}
		m.overHistory = append(m.overHistory, models.OverEntry{Over: m.overs, Runs: scored, Wickets: m.wickets})
		m.rotateBowlerLocked()
	}
	if ShouldSwapStrike(out.Runs, overEnd) {
		m.strikerIdx, m.nonStrikerIdx = m.nonStrikerIdx, m.strikerIdx
	}

	m.lastSix = append(m.lastSix, ballSymbol(out))
	if len(m.lastSix) > 6 {
		m.lastSix = m.lastSix[1:]
	}

	batter := m.playerSquad[m.strikerIdx]
	st := m.batterStats[batter.Name]
	if out.Type == models.OutcomeWicket {
		m.wickets++
		st.Balls++
		st.Out = true
		st.HowOut = out.WicketKind
		st.StrikeRate = float64(st.Runs) / float64(st.Balls) * 100
		if m.wickets < 10 {
			if next, ok := m.nextBatterLocked(); ok {
				m.strikerIdx = next
			}
		}
	} else {
		st.Runs += out.Runs
		st.Balls++
		if out.Type == models.OutcomeFour {
			st.Fours++
		}
		if out.Type == models.OutcomeSix {
			st.Sixes++
		}
		st.StrikeRate = float64(st.Runs) / float64(st.Balls) * 100
	}

	if bs, ok := m.bowlerStats[m.bowler.Name]; ok {
		bs.Runs += out.Runs
		if out.Type == models.OutcomeWicket {
			bs.Wickets++
		}
		if m.balls == 0 {
			bs.Overs++
		}
		if bs.Overs > 0 {
			bs.Economy = float64(bs.Runs) / float64(bs.Overs)
		} else {
			bs.Economy = 0
		}
	}

	if m.wickets >= 10 || m.overs >= m.totalOvers || (m.target > 0 && m.runs >= m.target) {
		m.endMatchLocked()
	}
}

// nextBatterLocked finds the next not-out squad member who is neither at
// the crease nor the batter just dismissed.
func (m *Match) nextBatterLocked() (int, bool) {
	for i, p := range m.playerSquad {
		if i == m.strikerIdx || i == m.nonStrikerIdx {
			continue
		}
		if st := m.batterStats[p.Name]; st != nil && st.Out {
			continue
		}
		return i, true
	}
	return 0, false
}

func (m *Match) rotateBowlerLocked() {
	eligible := EligibleBowlers(m.opponentSquad)
	m.bowlerIdx = NextBowlerIndex(m.bowlerIdx, len(eligible))
	m.bowler = eligible[m.bowlerIdx]
}

// endMatchLocked freezes the match exactly once and records the chasing line.
func (m *Match) endMatchLocked() {
	m.active = false
	m.delivery = nil
	m.matchHistory = append(m.matchHistory, models.InningsLine{
		Team:    m.playerTeam.Name,
		Runs:    m.runs,
		Wickets: m.wickets,
		Overs:   fmt.Sprintf("%d.%d", m.overs, m.balls),
	})
	if m.onMatchEnd != nil {
		go m.onMatchEnd()
	}
}

func (m *Match) requiredRunRateLocked() float64 {
	if m.target == 0 {
		return 0
	}
	ballsLeft := (m.totalOvers-m.overs)*6 - m.balls
	if ballsLeft <= 0 {
		return 0
	}
	return float64(m.target-m.runs) / float64(ballsLeft) * 6
}

// RequiredRunRate returns the run rate needed from the remaining balls, or
// zero when no target is set or no balls remain.
func (m *Match) RequiredRunRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requiredRunRateLocked()
}

// Active reports whether the chase is still live.
func (m *Match) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// LastOutcome returns the most recently resolved outcome, or nil.
func (m *Match) LastOutcome() *models.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastOutcome == nil {
		return nil
	}
	out := *m.lastOutcome
	return &out
}

// State returns a copy of the live match state for presentation.
func (m *Match) State() *models.MatchState {
	m.mu.Lock()
	defer m.mu.Unlock()

	batters := make(map[string]models.BatterInningsStats, len(m.batterStats))
	for name, st := range m.batterStats {
		batters[name] = *st
	}
	bowlers := make(map[string]models.BowlerStats, len(m.bowlerStats))
	for name, st := range m.bowlerStats {
		bowlers[name] = *st
	}

	state := &models.MatchState{
		PlayerTeam:       m.playerTeam.Name,
		OpponentTeam:     m.opponentTeam.Name,
		Format:           m.format,
		Difficulty:       m.difficulty,
		Target:           m.target,
		Runs:             m.runs,
		Wickets:          m.wickets,
		Overs:            m.overs,
		Balls:            m.balls,
		TotalOvers:       m.totalOvers,
		RequiredRunRate:  m.requiredRunRateLocked(),
		Striker:          m.playerSquad[m.strikerIdx].Name,
		NonStriker:       m.playerSquad[m.nonStrikerIdx].Name,
		Bowler:           m.bowler.Name,
		LastSixBalls:     append([]string(nil), m.lastSix...),
		OverHistory:      append([]models.OverEntry(nil), m.overHistory...),
		BatterStats:      batters,
		BowlerStats:      bowlers,
		Active:           m.active,
		DeliveryInFlight: m.delivery != nil,
		InputOpen:        m.inputOpenLocked() && !m.shotTaken,
		PowerLevel:       m.powerLevel,
	}
	if m.lastOutcome != nil {
		out := *m.lastOutcome
		state.LastOutcome = &out
	}
	return state
}

// PlayBall plays one complete delivery without the realtime timing window:
// the bowling side picks a delivery, the given shot is resolved with the
// supplied timing grade and power, and the outcome is applied. Used by
// headless play (batch simulations, scripted tests).
func (m *Match) PlayBall(shotID string, grade models.TimingGrade, power int) (*models.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return nil, ErrMatchOver
	}
	if m.delivery != nil {
		return nil, ErrDeliveryInFlight
	}
	shot, err := m.store.Shot(shotID)
	if err != nil {
		return nil, err
	}
	deliveryType := m.selectBowlingTypeLocked()
	batter := m.playerSquad[m.strikerIdx]
	out := resolveOutcome(shot, batter, m.bowler, grade, deliveryType, power, m.rng, m.commentLocked)
	m.applyOutcomeLocked(out)
	m.lastOutcome = out
	res := *out
	return &res, nil
}

func (m *Match) commentLocked(kind string) string {
	bank := m.store.CommentaryBank(kind)
	if len(bank) == 0 {
		return gamedata.CommentaryPlaceholder
	}
	return bank[m.rng.Intn(len(bank))]
}

func ballSymbol(out *models.Outcome) string {
	switch {
	case out.Type == models.OutcomeWicket:
		return "W"
	case out.Type == models.OutcomeSix:
		return "6"
	case out.Type == models.OutcomeFour:
		return "4"
	case out.Runs > 0:
		return strconv.Itoa(out.Runs)
	default:
		return "."
	}
}
