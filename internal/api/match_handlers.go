package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iamyashpreet99/pitchside/internal/logger"
	"github.com/iamyashpreet99/pitchside/internal/models"
	"github.com/iamyashpreet99/pitchside/internal/services"
)

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var params services.CreateMatchParams
	if !decodeJSON(w, r, &params) {
		return
	}

	sessionID, state, err := s.Matches.CreateMatch(r.Context(), params)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{
		"session_id": sessionID,
		"state":      state,
	})
}

func (s *Server) handleMatchState(w http.ResponseWriter, r *http.Request) {
	state, err := s.Matches.State(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, state)
}

func (s *Server) handleEndMatch(w http.ResponseWriter, r *http.Request) {
	if err := s.Matches.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStartDelivery(w http.ResponseWriter, r *http.Request) {
	delivery, err := s.Matches.StartDelivery(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	// A nil delivery means the ball is already live or the match is over;
	// clients poll for the actual ball state either way.
	respondJSON(w, r, http.StatusOK, map[string]any{
		"started":  delivery != nil,
		"delivery": delivery,
	})
}

func (s *Server) handleSelectShot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ShotID string `json:"shot_id"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	accepted, err := s.Matches.SelectShot(r.Context(), chi.URLParam(r, "id"), body.ShotID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"accepted": accepted})
}

func (s *Server) handleStartPowerHold(w http.ResponseWriter, r *http.Request) {
	holding, err := s.Matches.StartPowerHold(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"holding": holding})
}

func (s *Server) handleStopPowerHold(w http.ResponseWriter, r *http.Request) {
	if err := s.Matches.StopPowerHold(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePoll(w http.ResponseWriter, r *http.Request) {
	poll, err := s.Matches.Poll(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, poll)
}

func (s *Server) handleLastOutcome(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.Matches.LastOutcome(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	// Nil until the first ball of the session resolves.
	respondJSON(w, r, http.StatusOK, map[string]any{"outcome": outcome})
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	result, mom, err := s.Matches.Result(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"result":           result,
		"man_of_the_match": mom,
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Matches.Snapshot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleRestoreMatch(w http.ResponseWriter, r *http.Request) {
	var snap models.MatchSnapshot
	if !decodeJSON(w, r, &snap) {
		return
	}

	sessionID, state, err := s.Matches.Restore(r.Context(), &snap)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{
		"session_id": sessionID,
		"state":      state,
	})
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.MatchRecordFilter{
		Team:   q.Get("team"),
		Result: q.Get("result"),
		Format: q.Get("format"),
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	records, total, err := s.Matches.ListRecords(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Debug("listed %d of %d match records", len(records), total)
	respondJSON(w, r, http.StatusOK, map[string]any{
		"results": records,
		"total":   total,
	})
}
