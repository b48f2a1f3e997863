package game

import "fmt"

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrImageNotFound      GameError = "image not found"
	ErrSessionNotFound    GameError = "session not found"
	ErrSessionClosed      GameError = "session has ended"
	ErrDuplicateGuess     GameError = "image already guessed in this session"
	ErrStorageUnavailable GameError = "storage unavailable"
	ErrInvalidInput       GameError = "invalid input"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilSessionRepo     GameError = "session repository cannot be nil"
	ErrNilGuessRepo       GameError = "guess repository cannot be nil"
	ErrNilCatalogRepo     GameError = "catalog repository cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)

// storageError marks an unexpected repository failure while keeping the cause reachable
func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}

func invalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
