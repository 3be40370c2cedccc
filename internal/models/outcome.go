package models

import "time"

// OutcomeType classifies the result of one delivery.
type OutcomeType string

const (
	OutcomeWicket OutcomeType = "wicket"
	OutcomeDot    OutcomeType = "dot"
	OutcomeRun    OutcomeType = "run"
	OutcomeFour   OutcomeType = "four"
	OutcomeSix    OutcomeType = "six"
)

// TimingGrade classifies when the shot was played relative to the timing window.
type TimingGrade string

const (
	TimingEarly   TimingGrade = "early"
	TimingLate    TimingGrade = "late"
	TimingGood    TimingGrade = "good"
	TimingPerfect TimingGrade = "perfect"
)

// Outcome is the resolved result of one delivery.
type Outcome struct {
	Type       OutcomeType `json:"type"`
	Runs       int         `json:"runs"`
	WicketKind string      `json:"wicket_kind,omitempty"`
	Timing     TimingGrade `json:"timing"`
	Shot       string      `json:"shot"`
	Commentary string      `json:"commentary"`
}

// Delivery is the ephemeral per-ball record of a ball in flight.
type Delivery struct {
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	Speed    int       `json:"speed"`
	Swing    float64   `json:"swing"`
	Accuracy float64   `json:"accuracy"`
	IssuedAt time.Time `json:"issued_at"`
}
