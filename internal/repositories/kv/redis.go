package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Default namespace for client-local keys
const defaultNamespace = "local:"

// Config holds configuration for the Redis key-value store
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Namespace is prepended to every key, defaults to "local:"
	Namespace string

	// TTL expires values that are not written again, zero keeps them forever
	TTL time.Duration
}

// redisStore implements Store on top of plain Redis strings
type redisStore struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

// NewRedis creates a new Redis-backed key-value store
func NewRedis(cfg *Config) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.TTL < 0 {
		return nil, errors.New("ttl cannot be negative")
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &redisStore{
		client:    cfg.RedisClient,
		namespace: namespace,
		ttl:       cfg.TTL,
	}, nil
}

func (r *redisStore) key(key string) string {
	return r.namespace + key
}

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (r *redisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (r *redisStore) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
