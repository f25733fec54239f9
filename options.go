package securestore

import (
	"errors"

	"github.com/securestore/securestore-go/storage"
)

var errNilStorage = errors.New("storage medium is nil")

// clientConfig holds configuration for the client.
type clientConfig struct {
	prefix         string
	params         DerivationParams
	sessionStorage storage.Storage
}

// Option configures the client.
type Option func(*clientConfig)

// WithPrefix sets the namespace prefix prepended to every stored key.
// Default: "securestore_".
func WithPrefix(prefix string) Option {
	return func(c *clientConfig) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithIterations sets the PBKDF2 iteration count for new envelopes.
// Existing envelopes decrypt with the count they were written with.
// Default: 100,000.
func WithIterations(iterations int) Option {
	return func(c *clientConfig) {
		if iterations > 0 {
			c.params.Iterations = iterations
		}
	}
}

// WithKeyLength sets the derived key length in bytes for new envelopes.
// Default: 32 (AES-256).
func WithKeyLength(keyLength int) Option {
	return func(c *clientConfig) {
		if keyLength > 0 {
			c.params.KeyLength = keyLength
		}
	}
}

// WithSessionStorage replaces the medium behind the session store.
// Default: a fresh in-process memory medium.
func WithSessionStorage(s storage.Storage) Option {
	return func(c *clientConfig) {
		if s != nil {
			c.sessionStorage = s
		}
	}
}
