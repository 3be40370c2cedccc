// Package gamedata loads the embedded reference tables the engine plays
// against: squads, shot profiles, bowling types, commentary banks and
// field positions. All of it is read-only after Load.
package gamedata

import (
	"embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iamyashpreet99/pitchside/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ErrNotFound is returned when a team, shot or bowling type is not present
// in the reference tables. Missing reference data is never papered over
// with a default.
var ErrNotFound = errors.New("gamedata: not found")

// MinBowlingRating is the bowling rating threshold for a squad member to
// be considered an eligible bowler.
const MinBowlingRating = 70

// CommentaryPlaceholder stands in when a phrase bank is unexpectedly empty.
const CommentaryPlaceholder = "..."

// Store holds the loaded reference tables.
type Store struct {
	teams      []models.Team
	teamsByID  map[string]int
	shots      []models.ShotProfile
	shotsByID  map[string]int
	bowling    []models.DeliveryProfile
	bowlByID   map[string]int
	commentary map[string][]string
	fields     []models.FieldPosition
}

type teamsFile struct {
	Teams []models.Team `yaml:"teams"`
}

type shotsFile struct {
	Shots []models.ShotProfile `yaml:"shots"`
}

type bowlingFile struct {
	Bowling []models.DeliveryProfile `yaml:"bowling"`
}

type commentaryFile struct {
	Commentary map[string][]string `yaml:"commentary"`
}

type fieldsFile struct {
	Fields []models.FieldPosition `yaml:"fields"`
}

// Load parses the embedded reference tables and validates them.
func Load() (*Store, error) {
	s := &Store{
		teamsByID:  map[string]int{},
		shotsByID:  map[string]int{},
		bowlByID:   map[string]int{},
		commentary: map[string][]string{},
	}

	var tf teamsFile
	if err := readYAML("data/teams.yaml", &tf); err != nil {
		return nil, err
	}
	s.teams = tf.Teams
	for i, t := range s.teams {
		s.teamsByID[t.ID] = i
	}

	var sf shotsFile
	if err := readYAML("data/shots.yaml", &sf); err != nil {
		return nil, err
	}
	s.shots = sf.Shots
	for i, sh := range s.shots {
		s.shotsByID[sh.ID] = i
	}

	var bf bowlingFile
	if err := readYAML("data/bowling.yaml", &bf); err != nil {
		return nil, err
	}
	s.bowling = bf.Bowling
	for i, b := range s.bowling {
		s.bowlByID[b.ID] = i
	}

	var cf commentaryFile
	if err := readYAML("data/commentary.yaml", &cf); err != nil {
		return nil, err
	}
	s.commentary = cf.Commentary

	var ff fieldsFile
	if err := readYAML("data/fields.yaml", &ff); err != nil {
		return nil, err
	}
	s.fields = ff.Fields

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func readYAML(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("gamedata: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("gamedata: parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) validate() error {
	if len(s.teams) < 2 {
		return fmt.Errorf("gamedata: need at least two teams, have %d", len(s.teams))
	}
	for _, t := range s.teams {
		if len(t.Players) < 2 {
			return fmt.Errorf("gamedata: team %s needs at least two batters", t.ID)
		}
		bowlers := 0
		for _, p := range t.Players {
			if p.Batting < 0 || p.Batting > 100 || p.Bowling < 0 || p.Bowling > 100 {
				return fmt.Errorf("gamedata: team %s player %s has a rating outside 0-100", t.ID, p.Name)
			}
			if p.Bowling >= MinBowlingRating {
				bowlers++
			}
		}
		if bowlers == 0 {
			return fmt.Errorf("gamedata: team %s has no eligible bowler (rating >= %d)", t.ID, MinBowlingRating)
		}
	}
	for _, sh := range s.shots {
		if sh.BoundaryChance < 0 || sh.WicketChance < 0 || sh.RunChance < 0 || sh.DotChance < 0 {
			return fmt.Errorf("gamedata: shot %s has a negative base chance", sh.ID)
		}
	}
	if len(s.bowling) == 0 {
		return fmt.Errorf("gamedata: no bowling types defined")
	}
	return nil
}

// Teams returns all teams in table order.
func (s *Store) Teams() []models.Team {
	out := make([]models.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// Team looks up a team by identifier.
func (s *Store) Team(id string) (models.Team, error) {
	i, ok := s.teamsByID[id]
	if !ok {
		return models.Team{}, fmt.Errorf("team %q: %w", id, ErrNotFound)
	}
	return s.teams[i], nil
}

// Shots returns all shot profiles in table order.
func (s *Store) Shots() []models.ShotProfile {
	out := make([]models.ShotProfile, len(s.shots))
	copy(out, s.shots)
	return out
}

// Shot looks up a shot profile by identifier.
func (s *Store) Shot(id string) (models.ShotProfile, error) {
	i, ok := s.shotsByID[id]
	if !ok {
		return models.ShotProfile{}, fmt.Errorf("shot %q: %w", id, ErrNotFound)
	}
	return s.shots[i], nil
}

// BowlingTypes returns all delivery profiles in table order.
func (s *Store) BowlingTypes() []models.DeliveryProfile {
	out := make([]models.DeliveryProfile, len(s.bowling))
	copy(out, s.bowling)
	return out
}

// Bowling looks up a delivery profile by identifier.
func (s *Store) Bowling(id string) (models.DeliveryProfile, error) {
	i, ok := s.bowlByID[id]
	if !ok {
		return models.DeliveryProfile{}, fmt.Errorf("bowling type %q: %w", id, ErrNotFound)
	}
	return s.bowling[i], nil
}

// CommentaryBank returns the phrase bank for an outcome kind. Unlike the
// other lookups an unknown or empty bank is not an error; callers fall back
// to CommentaryPlaceholder.
func (s *Store) CommentaryBank(kind string) []string {
	return s.commentary[kind]
}

// FieldPositions returns the named field positions.
func (s *Store) FieldPositions() []models.FieldPosition {
	out := make([]models.FieldPosition, len(s.fields))
	copy(out, s.fields)
	return out
}
