package draft

import (
	"github.com/KirkDiggler/pinpoint/internal/common/clock"
	"github.com/KirkDiggler/pinpoint/internal/common/uuid"
	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/KirkDiggler/pinpoint/internal/repositories/kv"
)

// MaxDraftsPerImage is how many drafts are kept for one session and image
const MaxDraftsPerImage = 3

// Config holds configuration for the draft service
type Config struct {
	// Store is the client-local key-value store
	Store kv.Store

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

type AddDraftInput struct {
	SessionID string
	ImageID   string
	Latitude  float64
	Longitude float64
}

type AddDraftOutput struct {
	// Draft is the entry that was added
	Draft *models.DraftGuess

	// Drafts is the buffer after the add, oldest first
	Drafts []*models.DraftGuess
}

type GetDraftsInput struct {
	SessionID string
	ImageID   string
}

type GetDraftsOutput struct {
	Drafts []*models.DraftGuess
}

type ClearSessionDraftsInput struct {
	SessionID string
}
