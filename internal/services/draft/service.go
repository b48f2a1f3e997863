package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/pinpoint/internal/common/clock"
	"github.com/KirkDiggler/pinpoint/internal/common/uuid"
	"github.com/KirkDiggler/pinpoint/internal/geo"
	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/KirkDiggler/pinpoint/internal/repositories/kv"
	"github.com/rs/zerolog/log"
)

// Key prefix for a session's draft document
const draftKeyPrefix = "draft-guess:"

// document maps image IDs to their drafts, oldest first
type document map[string][]*models.DraftGuess

type service struct {
	// mu serializes read-modify-write cycles on draft documents
	mu sync.Mutex

	store         kv.Store
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new draft service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		store:         cfg.Store,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

// AddDraft appends a draft for the session and image
func (s *service) AddDraft(ctx context.Context, input *AddDraftInput) (*AddDraftOutput, error) {
	if input == nil || input.SessionID == "" || input.ImageID == "" {
		return nil, fmt.Errorf("%w: session ID and image ID are required", ErrInvalidInput)
	}

	coordinate := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := coordinate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx, input.SessionID)

	draft := &models.DraftGuess{
		ID:        s.uuidGenerator.NewUUID(),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		CreatedAt: s.clock.Now(),
	}

	drafts := append(doc[input.ImageID], draft)
	if len(drafts) > MaxDraftsPerImage {
		drafts = drafts[len(drafts)-MaxDraftsPerImage:]
	}
	doc[input.ImageID] = drafts

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal drafts: %w", err)
	}

	if err := s.store.Set(ctx, draftKey(input.SessionID), string(raw)); err != nil {
		return nil, fmt.Errorf("failed to save drafts: %w", err)
	}

	return &AddDraftOutput{
		Draft:  draft,
		Drafts: drafts,
	}, nil
}

// GetDrafts returns the drafts for an image. Unreadable state reads as empty.
func (s *service) GetDrafts(ctx context.Context, input *GetDraftsInput) (*GetDraftsOutput, error) {
	if input == nil || input.SessionID == "" || input.ImageID == "" {
		return nil, fmt.Errorf("%w: session ID and image ID are required", ErrInvalidInput)
	}

	drafts := s.load(ctx, input.SessionID)[input.ImageID]
	if drafts == nil {
		drafts = []*models.DraftGuess{}
	}

	return &GetDraftsOutput{Drafts: drafts}, nil
}

// ClearSessionDrafts removes the whole draft document of a session
func (s *service) ClearSessionDrafts(ctx context.Context, input *ClearSessionDraftsInput) error {
	if input == nil || input.SessionID == "" {
		return fmt.Errorf("%w: session ID is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, draftKey(input.SessionID)); err != nil {
		return fmt.Errorf("failed to clear drafts: %w", err)
	}

	return nil
}

// load reads the draft document of a session, falling back to an empty one
func (s *service) load(ctx context.Context, sessionID string) document {
	raw, err := s.store.Get(ctx, draftKey(sessionID))
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to read drafts, starting empty")
		}
		return document{}
	}

	doc := document{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("discarding corrupt drafts")
		return document{}
	}

	return doc
}
