package models

// BatterInningsStats accumulates one batter's innings. Frozen once Out is set.
type BatterInningsStats struct {
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
	Out        bool    `json:"out"`
	HowOut     string  `json:"how_out,omitempty"`
}

// BowlerStats accumulates one bowler's spell. Overs increment when an over completes.
type BowlerStats struct {
	Overs   int     `json:"overs"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Economy float64 `json:"economy"`
}
