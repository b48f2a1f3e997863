package guess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for guess documents
	guessKeyPrefix = "guess:"

	// Key prefix for the session+image claim that enforces one guess per image
	claimKeyPrefix = "guess_claim:"

	// Key prefix for the per-session guess index, scored by creation time
	sessionGuessesKeyPrefix = "session_guesses:"
)

// createGuessScript claims the session+image pair and writes the guess in one
// step. Returns 0 when the pair was already claimed.
//
// KEYS: claim, guess, session index
// ARGV: guess ID, guess JSON, created-at micros
var createGuessScript = redis.NewScript(`
if redis.call('SETNX', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2])
redis.call('ZADD', KEYS[3], ARGV[3], ARGV[1])
return 1
`)

// Config holds configuration for the Redis guess repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guess repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func guessKey(guessID string) string {
	return fmt.Sprintf("%s%s", guessKeyPrefix, guessID)
}

func claimKey(sessionID, imageID string) string {
	return fmt.Sprintf("%s%s:%s", claimKeyPrefix, sessionID, imageID)
}

func sessionGuessesKey(sessionID string) string {
	return fmt.Sprintf("%s%s", sessionGuessesKeyPrefix, sessionID)
}

// CreateGuess atomically stores a guess in Redis
func (r *redisRepository) CreateGuess(ctx context.Context, input *CreateGuessInput) error {
	if err := validateCreate(input); err != nil {
		return err
	}

	g := input.Guess
	guessJSON, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal guess: %w", err)
	}

	created, err := createGuessScript.Run(ctx, r.client,
		[]string{claimKey(g.SessionID, g.ImageID), guessKey(g.ID), sessionGuessesKey(g.SessionID)},
		g.ID, guessJSON, g.CreatedAt.UnixMicro(),
	).Int64()
	if err != nil {
		return fmt.Errorf("failed to create guess: %w", err)
	}
	if created == 0 {
		return ErrGuessExists
	}

	return nil
}

// GetGuess retrieves the guess for a session and image from Redis
func (r *redisRepository) GetGuess(ctx context.Context, input *GetGuessInput) (*models.Guess, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	guessID, err := r.client.Get(ctx, claimKey(input.SessionID, input.ImageID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGuessNotFound
		}
		return nil, fmt.Errorf("failed to get guess claim: %w", err)
	}

	guessJSON, err := r.client.Get(ctx, guessKey(guessID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGuessNotFound
		}
		return nil, fmt.Errorf("failed to get guess: %w", err)
	}

	var g models.Guess
	if err := json.Unmarshal(guessJSON, &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guess: %w", err)
	}

	return &g, nil
}

// ListGuesses retrieves every guess of a session from Redis
func (r *redisRepository) ListGuesses(ctx context.Context, input *ListGuessesInput) (*ListGuessesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	// Members with equal scores come back in lexical order, which gives the ID tie-break
	guessIDs, err := r.client.ZRange(ctx, sessionGuessesKey(input.SessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list guess IDs: %w", err)
	}

	guesses := make([]*models.Guess, 0, len(guessIDs))
	if len(guessIDs) == 0 {
		return &ListGuessesOutput{Guesses: guesses}, nil
	}

	keys := make([]string, len(guessIDs))
	for i, id := range guessIDs {
		keys[i] = guessKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get guesses: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("guess %s is missing from the index", guessIDs[i])
		}

		var g models.Guess
		if err := json.Unmarshal([]byte(raw), &g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal guess: %w", err)
		}
		guesses = append(guesses, &g)
	}

	return &ListGuessesOutput{Guesses: guesses}, nil
}

// CountGuesses returns the size of the session's guess index
func (r *redisRepository) CountGuesses(ctx context.Context, input *CountGuessesInput) (*CountGuessesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	count, err := r.client.ZCard(ctx, sessionGuessesKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count guesses: %w", err)
	}

	return &CountGuessesOutput{Count: int(count)}, nil
}
