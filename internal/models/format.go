package models

import "fmt"

// Format is a match format determining innings length.
type Format string

const (
	FormatT20  Format = "T20"
	FormatODI  Format = "ODI"
	FormatTest Format = "Test"
)

// TotalOvers returns the innings length for the format.
func (f Format) TotalOvers() int {
	switch f {
	case FormatT20:
		return 20
	case FormatODI:
		return 50
	default:
		return 90
	}
}

// ParseFormat parses a match format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatT20, FormatODI, FormatTest:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown match format %q", s)
}

// Difficulty scales the first-innings target.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Multiplier returns the first-innings score scaling factor for the tier.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.85
	case DifficultyHard:
		return 1.15
	default:
		return 1.0
	}
}

// ParseDifficulty parses a difficulty tier string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}
