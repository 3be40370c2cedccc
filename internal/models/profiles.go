package models

// ShotProfile holds the four base outcome chances for a shot type.
// The chances sum to a fixed baseline and are renormalized per delivery.
type ShotProfile struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	Safe           bool    `json:"safe" yaml:"safe"`
	BoundaryChance float64 `json:"boundary_chance" yaml:"boundary"`
	WicketChance   float64 `json:"wicket_chance" yaml:"wicket"`
	RunChance      float64 `json:"run_chance" yaml:"run"`
	DotChance      float64 `json:"dot_chance" yaml:"dot"`
}

// DeliveryProfile describes a bowling type.
type DeliveryProfile struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Speed    int     `json:"speed" yaml:"speed"`
	Swing    float64 `json:"swing" yaml:"swing"`
	Accuracy float64 `json:"accuracy" yaml:"accuracy"`
}
