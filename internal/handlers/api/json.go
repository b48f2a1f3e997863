package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KirkDiggler/pinpoint/internal/services/draft"
	"github.com/KirkDiggler/pinpoint/internal/services/game"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service errors onto status codes
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, game.ErrImageNotFound), errors.Is(err, game.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrSessionClosed), errors.Is(err, game.ErrDuplicateGuess):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrInvalidInput), errors.Is(err, draft.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, game.ErrStorageUnavailable):
		log.Error().Err(err).Str("path", r.URL.Path).Msg("storage unavailable")
		writeError(w, http.StatusServiceUnavailable, game.ErrStorageUnavailable.Error())
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
