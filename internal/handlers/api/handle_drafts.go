package api

import (
	"net/http"

	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/KirkDiggler/pinpoint/internal/services/draft"
	"github.com/go-chi/chi/v5"
)

type addDraftRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type draftsResponse struct {
	Draft  *models.DraftGuess   `json:"draft,omitempty"`
	Drafts []*models.DraftGuess `json:"drafts"`
}

func handleGetDrafts(drafts draft.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := drafts.GetDrafts(r.Context(), &draft.GetDraftsInput{
			SessionID: chi.URLParam(r, "sessionID"),
			ImageID:   chi.URLParam(r, "imageID"),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, draftsResponse{Drafts: output.Drafts})
	}
}

func handleAddDraft(drafts draft.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addDraftRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Latitude == nil || req.Longitude == nil {
			writeError(w, http.StatusUnprocessableEntity, "latitude and longitude are required")
			return
		}

		output, err := drafts.AddDraft(r.Context(), &draft.AddDraftInput{
			SessionID: chi.URLParam(r, "sessionID"),
			ImageID:   chi.URLParam(r, "imageID"),
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, draftsResponse{
			Draft:  output.Draft,
			Drafts: output.Drafts,
		})
	}
}
