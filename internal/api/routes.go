package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/teams", s.handleTeams)
		r.Get("/teams/{id}", s.handleTeam)
		r.Get("/shots", s.handleShots)
		r.Get("/bowling", s.handleBowlingTypes)
		r.Get("/fields", s.handleFieldPositions)

		r.Post("/matches", s.handleCreateMatch)
		r.Post("/matches/restore", s.handleRestoreMatch)
		r.Route("/matches/{id}", func(r chi.Router) {
			r.Get("/", s.handleMatchState)
			r.Delete("/", s.handleEndMatch)
			r.Post("/delivery", s.handleStartDelivery)
			r.Post("/shot", s.handleSelectShot)
			r.Post("/power/start", s.handleStartPowerHold)
			r.Post("/power/stop", s.handleStopPowerHold)
			r.Post("/poll", s.handlePoll)
			r.Get("/outcome", s.handleLastOutcome)
			r.Get("/result", s.handleResult)
			r.Get("/snapshot", s.handleSnapshot)
		})

		r.Get("/results", s.handleListResults)

		r.Post("/simulations", s.handleCreateSimulation)
		r.Get("/simulations", s.handleListSimulations)
		r.Get("/simulations/{id}", s.handleGetSimulation)
	})

	return r
}
