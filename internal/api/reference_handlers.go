package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iamyashpreet99/pitchside/internal/errors"
)

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{"teams": s.Store.Teams()})
}

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	team, err := s.Store.Team(id)
	if err != nil {
		handleError(w, r, errors.NewNotFoundError("team", id))
		return
	}
	respondJSON(w, r, http.StatusOK, team)
}

func (s *Server) handleShots(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{"shots": s.Store.Shots()})
}

func (s *Server) handleBowlingTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{"bowling_types": s.Store.BowlingTypes()})
}

func (s *Server) handleFieldPositions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{"field_positions": s.Store.FieldPositions()})
}
