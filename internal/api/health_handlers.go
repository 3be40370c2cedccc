package api

import (
	"net/http"
)

// handleHealth is a liveness probe reporting process state and the
// simulation backlog.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if s.SimPool != nil {
		body["simulation_queue"] = s.SimPool.QueueSize()
	}
	respondJSON(w, r, http.StatusOK, body)
}
