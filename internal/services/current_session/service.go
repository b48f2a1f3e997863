package current_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/pinpoint/internal/common/uuid"
	"github.com/KirkDiggler/pinpoint/internal/repositories/kv"
	"github.com/rs/zerolog/log"
)

// Key prefix for a client's current session ID
const keyPrefix = "current-session:"

var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilStore         = errors.New("store cannot be nil")
	ErrInvalidClientID  = errors.New("client ID cannot be empty")
	ErrInvalidSessionID = errors.New("session ID must be a UUID")
)

// Config holds configuration for the current session service
type Config struct {
	// Store is the client-local key-value store
	Store kv.Store
}

// Service remembers which session each client is playing. It is convenience
// state owned by the surfaces, so reads never fail: anything missing or
// unreadable means the client has no current session.
type Service struct {
	store kv.Store
}

// New creates a new current session service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	return &Service{store: cfg.Store}, nil
}

func key(clientID string) string {
	return keyPrefix + clientID
}

// Get returns the client's current session ID, if any
func (s *Service) Get(ctx context.Context, clientID string) (string, bool) {
	if clientID == "" {
		return "", false
	}

	sessionID, err := s.store.Get(ctx, key(clientID))
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Warn().Err(err).Str("client_id", clientID).Msg("failed to read current session")
		}
		return "", false
	}

	if !uuid.IsValid(sessionID) {
		log.Warn().Str("client_id", clientID).Msg("removing malformed current session")
		if err := s.store.Remove(ctx, key(clientID)); err != nil {
			log.Warn().Err(err).Str("client_id", clientID).Msg("failed to remove malformed current session")
		}
		return "", false
	}

	return sessionID, true
}

// Set makes sessionID the client's current session
func (s *Service) Set(ctx context.Context, clientID, sessionID string) error {
	if clientID == "" {
		return ErrInvalidClientID
	}

	if !uuid.IsValid(sessionID) {
		return ErrInvalidSessionID
	}

	if err := s.store.Set(ctx, key(clientID), sessionID); err != nil {
		return fmt.Errorf("failed to set current session: %w", err)
	}

	return nil
}

// Clear forgets the client's current session
func (s *Service) Clear(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrInvalidClientID
	}

	if err := s.store.Remove(ctx, key(clientID)); err != nil {
		return fmt.Errorf("failed to clear current session: %w", err)
	}

	return nil
}
