package models

// OverEntry records the runs scored in one completed over and the
// cumulative wicket count when it closed.
type OverEntry struct {
	Over    int `json:"over"`
	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
}

// InningsLine is one team's recorded innings summary.
type InningsLine struct {
	Team    string `json:"team"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Overs   string `json:"overs"`
}

// MatchState is a read-only view of a live (or finished) chase,
// shaped for the presentation layer.
type MatchState struct {
	PlayerTeam       string                        `json:"player_team"`
	OpponentTeam     string                        `json:"opponent_team"`
	Format           Format                        `json:"format"`
	Difficulty       Difficulty                    `json:"difficulty"`
	Target           int                           `json:"target"`
	Runs             int                           `json:"runs"`
	Wickets          int                           `json:"wickets"`
	Overs            int                           `json:"overs"`
	Balls            int                           `json:"balls"`
	TotalOvers       int                           `json:"total_overs"`
	RequiredRunRate  float64                       `json:"required_run_rate"`
	Striker          string                        `json:"striker"`
	NonStriker       string                        `json:"non_striker"`
	Bowler           string                        `json:"bowler"`
	LastSixBalls     []string                      `json:"last_six_balls"`
	OverHistory      []OverEntry                   `json:"over_history"`
	BatterStats      map[string]BatterInningsStats `json:"batter_stats"`
	BowlerStats      map[string]BowlerStats        `json:"bowler_stats"`
	Active           bool                          `json:"active"`
	DeliveryInFlight bool                          `json:"delivery_in_flight"`
	InputOpen        bool                          `json:"input_open"`
	PowerLevel       int                           `json:"power_level"`
	LastOutcome      *Outcome                      `json:"last_outcome,omitempty"`
}

// MatchSnapshot is the serializable full engine state, captured between
// deliveries. Restoring it with identical injected random draws reproduces
// identical subsequent transitions.
type MatchSnapshot struct {
	PlayerTeamID   string                        `json:"player_team_id"`
	OpponentTeamID string                        `json:"opponent_team_id"`
	Format         Format                        `json:"format"`
	Difficulty     Difficulty                    `json:"difficulty"`
	Target         int                           `json:"target"`
	Runs           int                           `json:"runs"`
	Wickets        int                           `json:"wickets"`
	Overs          int                           `json:"overs"`
	Balls          int                           `json:"balls"`
	Striker        string                        `json:"striker"`
	NonStriker     string                        `json:"non_striker"`
	Bowler         string                        `json:"bowler"`
	BowlerIndex    int                           `json:"bowler_index"`
	BatterStats    map[string]BatterInningsStats `json:"batter_stats"`
	BowlerStats    map[string]BowlerStats        `json:"bowler_stats"`
	LastSixBalls   []string                      `json:"last_six_balls"`
	OverHistory    []OverEntry                   `json:"over_history"`
	MatchHistory   []InningsLine                 `json:"match_history"`
	Active         bool                          `json:"active"`
}

// MatchResult is the final verdict of a chase.
type MatchResult struct {
	Result        string       `json:"result"` // win, tie or loss
	PlayerScore   *InningsLine `json:"player_score,omitempty"`
	OpponentScore *InningsLine `json:"opponent_score,omitempty"`
	Target        int          `json:"target"`
	Achieved      int          `json:"achieved"`
}

// ManOfTheMatch names the chasing batter with the highest score.
type ManOfTheMatch struct {
	Name  string             `json:"name"`
	Team  string             `json:"team"`
	Stats BatterInningsStats `json:"stats"`
}

// PollState is the periodic tick response for the presentation loop.
type PollState struct {
	Active           bool        `json:"active"`
	DeliveryInFlight bool        `json:"delivery_in_flight"`
	InputOpen        bool        `json:"input_open"`
	Timing           TimingGrade `json:"timing,omitempty"`
	PowerLevel       int         `json:"power_level"`
}
