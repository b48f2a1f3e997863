package game

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/pinpoint/internal/common/clock"
	"github.com/KirkDiggler/pinpoint/internal/common/uuid"
	"github.com/KirkDiggler/pinpoint/internal/geo"
	"github.com/KirkDiggler/pinpoint/internal/models"
	catalogRepo "github.com/KirkDiggler/pinpoint/internal/repositories/catalog"
	guessRepo "github.com/KirkDiggler/pinpoint/internal/repositories/guess"
	sessionRepo "github.com/KirkDiggler/pinpoint/internal/repositories/session"
	"github.com/KirkDiggler/pinpoint/internal/scoring"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	guessRepo     guessRepo.Repository
	catalogRepo   catalogRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.GuessRepo == nil {
		return nil, ErrNilGuessRepo
	}

	if cfg.CatalogRepo == nil {
		return nil, ErrNilCatalogRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		guessRepo:     cfg.GuessRepo,
		catalogRepo:   cfg.CatalogRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// StartNewSession creates a new active session. Other sessions are left alone.
func (s *service) StartNewSession(ctx context.Context, input *StartNewSessionInput) (*StartNewSessionOutput, error) {
	session := &models.GameSession{
		ID:        s.uuidGenerator.NewUUID(),
		StartedAt: s.clock.Now(),
	}

	err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, storageError("create session", err)
	}

	log.Info().Str("session_id", session.ID).Msg("session started")

	return &StartNewSessionOutput{Session: session}, nil
}

// EndSession stamps the end time of a session the first time it is called
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, invalidInput("session ID is required")
	}

	result, err := s.sessionRepo.EndSession(ctx, &sessionRepo.EndSessionInput{
		SessionID: input.SessionID,
		EndedAt:   s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, storageError("end session", err)
	}

	if result.AlreadyEnded {
		log.Debug().Str("session_id", input.SessionID).Msg("session was already ended")
	} else {
		log.Info().Str("session_id", input.SessionID).Msg("session ended")
	}

	return &EndSessionOutput{
		Session:      result.Session,
		AlreadyEnded: result.AlreadyEnded,
	}, nil
}

// FindSession looks up a session without treating absence as an error
func (s *service) FindSession(ctx context.Context, input *FindSessionInput) (*FindSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, invalidInput("session ID is required")
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &FindSessionOutput{}, nil
		}
		return nil, storageError("get session", err)
	}

	return &FindSessionOutput{Session: session}, nil
}

// ConfirmGuess validates, scores and stores a guess. Preconditions are checked
// in order: image exists, session exists, session is active, image not yet
// guessed. Nothing is stored when any of them fails.
func (s *service) ConfirmGuess(ctx context.Context, input *ConfirmGuessInput) (*ConfirmGuessOutput, error) {
	if input == nil || input.SessionID == "" || input.ImageID == "" {
		return nil, invalidInput("session ID and image ID are required")
	}

	guessed := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := guessed.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	image, err := s.catalogRepo.GetImageByID(ctx, &catalogRepo.GetImageByIDInput{
		ImageID: input.ImageID,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrImageNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, storageError("get image", err)
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !session.Active() {
		return nil, ErrSessionClosed
	}

	// Fast path only, the insert below is what actually enforces uniqueness
	existing, err := s.guessRepo.GetGuess(ctx, &guessRepo.GetGuessInput{
		SessionID: input.SessionID,
		ImageID:   input.ImageID,
	})
	if err == nil && existing != nil {
		return nil, ErrDuplicateGuess
	}
	if err != nil && !errors.Is(err, guessRepo.ErrGuessNotFound) {
		return nil, storageError("get guess", err)
	}

	truth := geo.Coordinate{Latitude: image.Latitude, Longitude: image.Longitude}
	distance := geo.DistanceMeters(guessed, truth)

	guess := &models.Guess{
		ID:             s.uuidGenerator.NewUUID(),
		SessionID:      input.SessionID,
		ImageID:        input.ImageID,
		Longitude:      input.Longitude,
		Latitude:       input.Latitude,
		ImageLongitude: image.Longitude,
		ImageLatitude:  image.Latitude,
		Score:          scoring.Score(distance),
		DistanceMeters: distance,
		CreatedAt:      s.clock.Now(),
	}

	err = s.guessRepo.CreateGuess(ctx, &guessRepo.CreateGuessInput{
		Guess: guess,
	})
	if err != nil {
		if errors.Is(err, guessRepo.ErrGuessExists) {
			return nil, ErrDuplicateGuess
		}
		return nil, storageError("create guess", err)
	}

	log.Info().
		Str("session_id", guess.SessionID).
		Str("image_id", guess.ImageID).
		Int("score", guess.Score).
		Float64("distance_meters", guess.DistanceMeters).
		Msg("guess confirmed")

	return &ConfirmGuessOutput{Guess: guess}, nil
}

// FindGuess returns the confirmed guess for an image in a session
func (s *service) FindGuess(ctx context.Context, input *FindGuessInput) (*FindGuessOutput, error) {
	if input == nil || input.SessionID == "" || input.ImageID == "" {
		return nil, invalidInput("session ID and image ID are required")
	}

	guess, err := s.guessRepo.GetGuess(ctx, &guessRepo.GetGuessInput{
		SessionID: input.SessionID,
		ImageID:   input.ImageID,
	})
	if err != nil {
		if errors.Is(err, guessRepo.ErrGuessNotFound) {
			return &FindGuessOutput{}, nil
		}
		return nil, storageError("get guess", err)
	}

	return &FindGuessOutput{Guess: guess}, nil
}

// ListImages returns the anonymous catalog
func (s *service) ListImages(ctx context.Context, input *ListImagesInput) (*ListImagesOutput, error) {
	images, err := s.catalogRepo.GetAllImages(ctx, &catalogRepo.GetAllImagesInput{})
	if err != nil {
		return nil, storageError("list images", err)
	}

	return &ListImagesOutput{Images: images.Images}, nil
}

// GetNextImage returns the first image in catalog order without a confirmed guess
func (s *service) GetNextImage(ctx context.Context, input *GetNextImageInput) (*GetNextImageOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, invalidInput("session ID is required")
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	images, err := s.catalogRepo.GetAllImages(ctx, &catalogRepo.GetAllImagesInput{})
	if err != nil {
		return nil, storageError("list images", err)
	}

	guesses, err := s.guessRepo.ListGuesses(ctx, &guessRepo.ListGuessesInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, storageError("list guesses", err)
	}

	guessed := make(map[string]bool, len(guesses.Guesses))
	for _, g := range guesses.Guesses {
		guessed[g.ImageID] = true
	}

	for _, image := range images.Images {
		if !guessed[image.ID] {
			return &GetNextImageOutput{Image: image}, nil
		}
	}

	return &GetNextImageOutput{Complete: true}, nil
}

// GetSessionProgress counts confirmed guesses against the catalog size
func (s *service) GetSessionProgress(ctx context.Context, input *GetSessionProgressInput) (*GetSessionProgressOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, invalidInput("session ID is required")
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	imageCount, err := s.catalogRepo.GetImageCount(ctx, &catalogRepo.GetImageCountInput{})
	if err != nil {
		return nil, storageError("count images", err)
	}

	guessCount, err := s.guessRepo.CountGuesses(ctx, &guessRepo.CountGuessesInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, storageError("count guesses", err)
	}

	return &GetSessionProgressOutput{
		Progress: &models.SessionProgress{
			SessionID:  input.SessionID,
			ImageCount: imageCount.Count,
			GuessCount: guessCount.Count,
		},
	}, nil
}

// GetSessionSummary aggregates every guess of a session. A session without
// guesses has a total score and average distance of zero.
func (s *service) GetSessionSummary(ctx context.Context, input *GetSessionSummaryInput) (*GetSessionSummaryOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, invalidInput("session ID is required")
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	listed, err := s.guessRepo.ListGuesses(ctx, &guessRepo.ListGuessesInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, storageError("list guesses", err)
	}

	guesses := make([]*models.Guess, len(listed.Guesses))
	copy(guesses, listed.Guesses)
	sort.SliceStable(guesses, func(i, j int) bool {
		if guesses[i].CreatedAt.Equal(guesses[j].CreatedAt) {
			return guesses[i].ID < guesses[j].ID
		}
		return guesses[i].CreatedAt.Before(guesses[j].CreatedAt)
	})

	meta := models.SummaryMeta{
		GameStartedAt: session.StartedAt,
		GameEndedAt:   session.EndedAt,
	}

	var totalDistance float64
	for _, g := range guesses {
		meta.TotalScore += g.Score
		totalDistance += g.DistanceMeters
	}
	if len(guesses) > 0 {
		meta.AverageDistance = totalDistance / float64(len(guesses))
	}

	return &GetSessionSummaryOutput{
		Summary: &models.SessionSummary{
			SessionID: input.SessionID,
			Guesses:   guesses,
			Meta:      meta,
		},
	}, nil
}

// getSession loads a session, mapping absence to ErrSessionNotFound
func (s *service) getSession(ctx context.Context, sessionID string) (*models.GameSession, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, storageError("get session", err)
	}

	return session, nil
}
