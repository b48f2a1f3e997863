package session

import "errors"

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned when creating a session whose ID is taken
	ErrSessionExists = errors.New("session already exists")
)

func validateCreate(input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if input.Session.StartedAt.IsZero() {
		return errors.New("session start time cannot be zero")
	}
	return nil
}

func validateEnd(input *EndSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}
	if input.EndedAt.IsZero() {
		return errors.New("end time cannot be zero")
	}
	return nil
}
