package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pinpoint/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// StartNewSession creates a new active session
	StartNewSession(ctx context.Context, input *StartNewSessionInput) (*StartNewSessionOutput, error)

	// EndSession closes a session. Ending an ended session changes nothing.
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// FindSession looks up a session, returning a nil session when it does not exist
	FindSession(ctx context.Context, input *FindSessionInput) (*FindSessionOutput, error)

	// ConfirmGuess scores and records the single guess allowed per session and image
	ConfirmGuess(ctx context.Context, input *ConfirmGuessInput) (*ConfirmGuessOutput, error)

	// FindGuess returns the confirmed guess for an image, nil when there is none
	FindGuess(ctx context.Context, input *FindGuessInput) (*FindGuessOutput, error)

	// ListImages returns the catalog in order without answers
	ListImages(ctx context.Context, input *ListImagesInput) (*ListImagesOutput, error)

	// GetNextImage returns the first catalog image the session has not guessed yet
	GetNextImage(ctx context.Context, input *GetNextImageInput) (*GetNextImageOutput, error)

	// GetSessionProgress counts confirmed guesses against the catalog size
	GetSessionProgress(ctx context.Context, input *GetSessionProgressInput) (*GetSessionProgressOutput, error)

	// GetSessionSummary returns every guess of a session with totals
	GetSessionSummary(ctx context.Context, input *GetSessionSummaryInput) (*GetSessionSummaryOutput, error)
}
