package models

import "time"

// MatchRecord is the persisted summary of a finished match.
type MatchRecord struct {
	ID            int64     `json:"id"`
	PlayerTeam    string    `json:"player_team"`
	OpponentTeam  string    `json:"opponent_team"`
	Format        string    `json:"format"`
	Difficulty    string    `json:"difficulty"`
	Target        int       `json:"target"`
	Runs          int       `json:"runs"`
	Wickets       int       `json:"wickets"`
	Overs         string    `json:"overs"`
	Result        string    `json:"result"`
	ManOfTheMatch string    `json:"man_of_the_match,omitempty"`
	PlayedAt      time.Time `json:"played_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// MatchRecordFilter narrows match record listings.
type MatchRecordFilter struct {
	Team   string
	Result string
	Format string
	Limit  int
	Offset int
}

// Simulation statuses.
const (
	SimulationPending   = "pending"
	SimulationRunning   = "running"
	SimulationCompleted = "completed"
	SimulationFailed    = "failed"
)

// SimulationRecord is a queued Monte-Carlo batch of auto-played matches.
type SimulationRecord struct {
	ID           int64      `json:"id"`
	PlayerTeam   string     `json:"player_team"`
	OpponentTeam string     `json:"opponent_team"`
	Format       string     `json:"format"`
	Difficulty   string     `json:"difficulty"`
	Matches      int        `json:"matches"`
	Status       string     `json:"status"`
	Wins         int        `json:"wins"`
	Ties         int        `json:"ties"`
	Losses       int        `json:"losses"`
	AvgRuns      float64    `json:"avg_runs"`
	AvgTarget    float64    `json:"avg_target"`
	Error        string     `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
