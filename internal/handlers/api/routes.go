package api

import (
	"github.com/go-chi/chi/v5"
)

func addRoutes(r chi.Router, cfg *Config) {
	games := cfg.GameService
	drafts := cfg.DraftService

	r.Get("/healthz", handleHealth(cfg.HealthChecks))
	r.Get("/images", handleListImages(games))

	r.Post("/sessions", handleStartSession(games))
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", handleGetSession(games))
		r.Post("/end", handleEndSession(games, drafts))
		r.Get("/next", handleNextImage(games))
		r.Get("/progress", handleProgress(games))
		r.Get("/summary", handleSummary(games))

		r.Post("/guesses", handleConfirmGuess(games))
		r.Get("/guesses/{imageID}", handleGetGuess(games))

		r.Get("/drafts/{imageID}", handleGetDrafts(drafts))
		r.Post("/drafts/{imageID}", handleAddDraft(drafts))
	})
}
