package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pinpoint/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/pinpoint/internal/models"
)

// Repository defines the interface for game session persistence
type Repository interface {
	// CreateSession persists a new session, failing with ErrSessionExists on an ID collision
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error)

	// EndSession sets the end time of a session unless it is already set
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}
