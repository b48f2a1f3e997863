package game

import (
	"github.com/KirkDiggler/pinpoint/internal/common/clock"
	"github.com/KirkDiggler/pinpoint/internal/common/uuid"
	"github.com/KirkDiggler/pinpoint/internal/models"
	catalogRepo "github.com/KirkDiggler/pinpoint/internal/repositories/catalog"
	guessRepo "github.com/KirkDiggler/pinpoint/internal/repositories/guess"
	sessionRepo "github.com/KirkDiggler/pinpoint/internal/repositories/session"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	GuessRepo   guessRepo.Repository
	CatalogRepo catalogRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartNewSessionInput defines the input for starting a session
type StartNewSessionInput struct {
}

// StartNewSessionOutput defines the output for starting a session
type StartNewSessionOutput struct {
	Session *models.GameSession
}

// EndSessionInput defines the input for ending a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput defines the output for ending a session
type EndSessionOutput struct {
	Session *models.GameSession

	// AlreadyEnded is true when the session was closed by an earlier call
	AlreadyEnded bool
}

// FindSessionInput defines the input for looking up a session
type FindSessionInput struct {
	SessionID string
}

// FindSessionOutput defines the output for looking up a session
type FindSessionOutput struct {
	// Session is nil when no session has the requested ID
	Session *models.GameSession
}

// ConfirmGuessInput defines the input for confirming a guess
type ConfirmGuessInput struct {
	ImageID   string
	SessionID string
	Longitude float64
	Latitude  float64
}

// ConfirmGuessOutput defines the output for confirming a guess
type ConfirmGuessOutput struct {
	Guess *models.Guess
}

// FindGuessInput defines the input for looking up a confirmed guess
type FindGuessInput struct {
	SessionID string
	ImageID   string
}

// FindGuessOutput defines the output for looking up a confirmed guess
type FindGuessOutput struct {
	// Guess is nil when the image has not been guessed in the session
	Guess *models.Guess
}

type ListImagesInput struct {
}

type ListImagesOutput struct {
	Images []*models.AnonymousImage
}

// GetNextImageInput defines the input for finding the next image to play
type GetNextImageInput struct {
	SessionID string
}

// GetNextImageOutput defines the output for finding the next image to play
type GetNextImageOutput struct {
	// Image is nil when Complete is true
	Image *models.AnonymousImage

	// Complete is true when every catalog image has a confirmed guess
	Complete bool
}

type GetSessionProgressInput struct {
	SessionID string
}

type GetSessionProgressOutput struct {
	Progress *models.SessionProgress
}

type GetSessionSummaryInput struct {
	SessionID string
}

type GetSessionSummaryOutput struct {
	Summary *models.SessionSummary
}
