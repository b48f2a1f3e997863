package api

import (
	"net/http"

	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/KirkDiggler/pinpoint/internal/services/draft"
	"github.com/KirkDiggler/pinpoint/internal/services/game"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type endSessionResponse struct {
	Session      *models.GameSession `json:"session"`
	AlreadyEnded bool                `json:"alreadyEnded"`
}

type nextImageResponse struct {
	Image    *models.AnonymousImage `json:"image"`
	Complete bool                   `json:"complete"`
}

type progressResponse struct {
	*models.SessionProgress
	Complete bool `json:"complete"`
}

type imagesResponse struct {
	Images []*models.AnonymousImage `json:"images"`
}

func handleListImages(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := games.ListImages(r.Context(), &game.ListImagesInput{})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, imagesResponse{Images: output.Images})
	}
}

func handleStartSession(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := games.StartNewSession(r.Context(), &game.StartNewSessionInput{})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, output.Session)
	}
}

func handleGetSession(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := games.FindSession(r.Context(), &game.FindSessionInput{
			SessionID: chi.URLParam(r, "sessionID"),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if output.Session == nil {
			writeError(w, http.StatusNotFound, game.ErrSessionNotFound.Error())
			return
		}

		writeJSON(w, http.StatusOK, output.Session)
	}
}

// handleEndSession ends the session and wipes its drafts
func handleEndSession(games game.Service, drafts draft.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionID")

		output, err := games.EndSession(r.Context(), &game.EndSessionInput{
			SessionID: sessionID,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		err = drafts.ClearSessionDrafts(r.Context(), &draft.ClearSessionDraftsInput{
			SessionID: sessionID,
		})
		if err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear drafts")
		}

		writeJSON(w, http.StatusOK, endSessionResponse{
			Session:      output.Session,
			AlreadyEnded: output.AlreadyEnded,
		})
	}
}

func handleNextImage(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := games.GetNextImage(r.Context(), &game.GetNextImageInput{
			SessionID: chi.URLParam(r, "sessionID"),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, nextImageResponse{
			Image:    output.Image,
			Complete: output.Complete,
		})
	}
}

func handleProgress(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := games.GetSessionProgress(r.Context(), &game.GetSessionProgressInput{
			SessionID: chi.URLParam(r, "sessionID"),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, progressResponse{
			SessionProgress: output.Progress,
			Complete:        output.Progress.Complete(),
		})
	}
}

func handleSummary(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := games.GetSessionSummary(r.Context(), &game.GetSessionSummaryInput{
			SessionID: chi.URLParam(r, "sessionID"),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, output.Summary)
	}
}
