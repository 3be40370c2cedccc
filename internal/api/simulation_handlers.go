package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iamyashpreet99/pitchside/internal/errors"
	"github.com/iamyashpreet99/pitchside/internal/logger"
	"github.com/iamyashpreet99/pitchside/internal/services"
)

func (s *Server) handleCreateSimulation(w http.ResponseWriter, r *http.Request) {
	var params services.CreateSimulationParams
	if !decodeJSON(w, r, &params) {
		return
	}

	rec, err := s.Simulations.CreateSimulation(r.Context(), params)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Queue.EnqueueSimulation(rec.ID); err != nil {
		logger.FromContext(r.Context()).Warn("failed to enqueue simulation %d: %v", rec.ID, err)
		handleError(w, r, errors.NewBadRequestError("simulation queue is full, try again later"))
		return
	}

	respondJSON(w, r, http.StatusAccepted, rec)
}

func (s *Server) handleGetSimulation(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid simulation id"))
		return
	}

	rec, err := s.Simulations.GetSimulation(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, rec)
}

func (s *Server) handleListSimulations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	recs, err := s.Simulations.ListSimulations(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"simulations": recs})
}
