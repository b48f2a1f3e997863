package api

import (
	"net/http"

	"github.com/KirkDiggler/pinpoint/internal/services/game"
	"github.com/go-chi/chi/v5"
)

// coordinates are pointers so a missing field is told apart from zero
type confirmGuessRequest struct {
	ImageID   string   `json:"imageId"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func handleConfirmGuess(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req confirmGuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ImageID == "" || req.Latitude == nil || req.Longitude == nil {
			writeError(w, http.StatusUnprocessableEntity, "imageId, latitude and longitude are required")
			return
		}

		output, err := games.ConfirmGuess(r.Context(), &game.ConfirmGuessInput{
			ImageID:   req.ImageID,
			SessionID: chi.URLParam(r, "sessionID"),
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, output.Guess)
	}
}

func handleGetGuess(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := games.FindGuess(r.Context(), &game.FindGuessInput{
			SessionID: chi.URLParam(r, "sessionID"),
			ImageID:   chi.URLParam(r, "imageID"),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if output.Guess == nil {
			writeError(w, http.StatusNotFound, "guess not found")
			return
		}

		writeJSON(w, http.StatusOK, output.Guess)
	}
}
