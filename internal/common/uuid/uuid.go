package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/pinpoint/internal/common/uuid UUID

// UUID generates identifiers for sessions, guesses and drafts
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random (v4) UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// IsValid reports whether s is a well-formed UUID
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
