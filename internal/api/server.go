// Package api exposes the match engine over a JSON HTTP API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/jobs"
	"github.com/iamyashpreet99/pitchside/internal/logger"
	"github.com/iamyashpreet99/pitchside/internal/services"
	"github.com/iamyashpreet99/pitchside/internal/worker"
)

type Server struct {
	Store       *gamedata.Store
	Matches     services.MatchService
	Simulations services.SimulationService
	Queue       jobs.JobQueue
	SimPool     *worker.Pool
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromContext(r.Context()).Warn("invalid request body: %v", err)
		respondJSON(w, r, http.StatusBadRequest, map[string]any{
			"error": map[string]any{
				"code":    "BAD_REQUEST",
				"message": "invalid JSON body",
			},
		})
		return false
	}
	return true
}
