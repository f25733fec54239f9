package storage

import (
	"context"
	"errors"
)

var (
	// ErrInvalidRedisURL is returned when the Redis connection URL cannot be parsed.
	ErrInvalidRedisURL = errors.New("invalid redis connection URL")

	// ErrRedisNotReady is returned when the Redis server cannot be reached
	// after the configured number of retry attempts.
	ErrRedisNotReady = errors.New("redis connection is not ready")
)

// Storage is a key-value storage medium with UTF-8 text values.
// Implementations must provide atomic per-key reads and writes; no
// cross-key transactional guarantees are required.
type Storage interface {
	// Get returns the value stored under key. The boolean reports whether
	// the key was present; an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key. Removing an absent key
	// is not an error.
	Remove(ctx context.Context, key string) error

	// Keys returns all keys that start with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
