package session

import (
	"time"

	"github.com/KirkDiggler/pinpoint/internal/models"
)

type CreateSessionInput struct {
	Session *models.GameSession
}

type GetSessionInput struct {
	SessionID string
}

type EndSessionInput struct {
	SessionID string
	EndedAt   time.Time
}

type EndSessionOutput struct {
	// Session is the stored session after the call
	Session *models.GameSession

	// AlreadyEnded is true when the session had been ended by an earlier call
	AlreadyEnded bool
}
