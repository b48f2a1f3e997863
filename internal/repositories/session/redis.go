package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for session hashes
	sessionKeyPrefix = "session:"

	fieldStartedAt = "started_at"
	fieldEndedAt   = "ended_at"
)

// endSessionScript sets ended_at only on an existing session that has none.
// Returns -1 when the session is missing, 0 when it was already ended and 1
// when this call ended it.
var endSessionScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
return redis.call('HSETNX', KEYS[1], ARGV[1], ARGV[2])
`)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis hashes
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID)
}

// CreateSession persists a new session to Redis
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if err := validateCreate(input); err != nil {
		return err
	}

	key := sessionKey(input.Session.ID)

	// HSETNX doubles as the existence check, so creation is a single atomic step
	created, err := r.client.HSetNX(ctx, key, fieldStartedAt, input.Session.StartedAt.UnixMicro()).Result()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if !created {
		return ErrSessionExists
	}

	if input.Session.EndedAt != nil {
		if err := r.client.HSet(ctx, key, fieldEndedAt, input.Session.EndedAt.UnixMicro()).Err(); err != nil {
			return fmt.Errorf("failed to set session end: %w", err)
		}
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	return sessionFromHash(input.SessionID, fields)
}

// EndSession atomically sets the end time of a session in Redis
func (r *redisRepository) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if err := validateEnd(input); err != nil {
		return nil, err
	}

	result, err := endSessionScript.Run(ctx, r.client,
		[]string{sessionKey(input.SessionID)},
		fieldEndedAt, input.EndedAt.UnixMicro(),
	).Int64()
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	if result < 0 {
		return nil, ErrSessionNotFound
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	return &EndSessionOutput{
		Session:      session,
		AlreadyEnded: result == 0,
	}, nil
}

func sessionFromHash(sessionID string, fields map[string]string) (*models.GameSession, error) {
	startedAt, err := parseMicros(fields[fieldStartedAt])
	if err != nil {
		return nil, fmt.Errorf("failed to parse session start: %w", err)
	}

	session := &models.GameSession{
		ID:        sessionID,
		StartedAt: startedAt,
	}

	if raw, ok := fields[fieldEndedAt]; ok {
		endedAt, err := parseMicros(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse session end: %w", err)
		}
		session.EndedAt = &endedAt
	}

	return session, nil
}

func parseMicros(raw string) (time.Time, error) {
	micros, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMicro(micros).UTC(), nil
}
