package guess

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pinpoint/internal/repositories/guess Repository

import (
	"context"

	"github.com/KirkDiggler/pinpoint/internal/models"
)

// Repository defines the interface for confirmed guess persistence
type Repository interface {
	// CreateGuess stores a guess unless one already exists for the same
	// session and image, in which case it returns ErrGuessExists. The check
	// and the write are a single atomic step.
	CreateGuess(ctx context.Context, input *CreateGuessInput) error

	// GetGuess retrieves the guess for a session and image
	GetGuess(ctx context.Context, input *GetGuessInput) (*models.Guess, error)

	// ListGuesses returns every guess of a session ordered by creation time, then ID
	ListGuesses(ctx context.Context, input *ListGuessesInput) (*ListGuessesOutput, error)

	// CountGuesses returns the number of guesses in a session
	CountGuesses(ctx context.Context, input *CountGuessesInput) (*CountGuessesOutput, error)
}
