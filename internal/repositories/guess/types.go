package guess

import (
	"errors"

	"github.com/KirkDiggler/pinpoint/internal/models"
)

var (
	// ErrGuessNotFound is returned when no guess exists for a session and image
	ErrGuessNotFound = errors.New("guess not found")

	// ErrGuessExists is returned when the session already has a guess for the image
	ErrGuessExists = errors.New("guess already exists for this image")
)

type CreateGuessInput struct {
	Guess *models.Guess
}

type GetGuessInput struct {
	SessionID string
	ImageID   string
}

type ListGuessesInput struct {
	SessionID string
}

type ListGuessesOutput struct {
	Guesses []*models.Guess
}

type CountGuessesInput struct {
	SessionID string
}

type CountGuessesOutput struct {
	Count int
}

func validateCreate(input *CreateGuessInput) error {
	if input == nil || input.Guess == nil {
		return errors.New("input and guess cannot be nil")
	}
	if input.Guess.ID == "" {
		return errors.New("guess ID cannot be empty")
	}
	if input.Guess.SessionID == "" || input.Guess.ImageID == "" {
		return errors.New("session ID and image ID cannot be empty")
	}
	return nil
}

func validateGet(input *GetGuessInput) error {
	if input == nil || input.SessionID == "" || input.ImageID == "" {
		return errors.New("session ID and image ID cannot be empty")
	}
	return nil
}
