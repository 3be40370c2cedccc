package models

// Player is immutable reference data describing one squad member.
type Player struct {
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Batting int    `json:"batting" yaml:"batting"`
	Bowling int    `json:"bowling" yaml:"bowling"`
	Avatar  string `json:"avatar" yaml:"avatar"`
}

// Team is an ordered squad; the player list order is the batting order.
type Team struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Emblem  string   `json:"emblem" yaml:"emblem"`
	Players []Player `json:"players" yaml:"players"`
}

// FieldPosition is a named fielding spot with normalized pitch coordinates.
// The engine never reads these; they are passed through to the presentation layer.
type FieldPosition struct {
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}
