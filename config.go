package securestore

import (
	"context"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/securestore/securestore-go/storage"
)

// Config holds environment-driven settings for NewFromEnv. The durable
// medium is Redis when SECURESTORE_REDIS_URL is set, otherwise a JSON file
// at SECURESTORE_FILE.
type Config struct {
	// Prefix is the namespace prefix for stored keys.
	Prefix string `env:"SECURESTORE_PREFIX" envDefault:"securestore_"`
	// Iterations is the PBKDF2 iteration count for new envelopes.
	Iterations int `env:"SECURESTORE_KDF_ITERATIONS" envDefault:"100000"`
	// KeyLength is the derived key length in bytes for new envelopes.
	KeyLength int `env:"SECURESTORE_KDF_KEY_LENGTH" envDefault:"32"`
	// FilePath is the path of the file-backed durable medium.
	FilePath string `env:"SECURESTORE_FILE" envDefault:"securestore.json"`
	// Redis configures the Redis-backed durable medium. Used only when
	// Redis.ConnectionURL is non-empty.
	Redis storage.RedisConfig
}

var defaultEnvLoaded sync.Once

// LoadConfig reads configuration from the environment, loading a .env file
// first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// NewFromEnv builds a client from environment configuration. The context
// bounds the Redis connection phase when Redis is configured.
func NewFromEnv(ctx context.Context) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(ctx, cfg)
}

// NewFromConfig builds a client from an explicit Config.
func NewFromConfig(ctx context.Context, cfg Config) (*Client, error) {
	var durable storage.Storage

	if cfg.Redis.ConnectionURL != "" {
		client, err := storage.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		durable = storage.NewRedis(client)
	} else {
		file, err := storage.NewFile(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		durable = file
	}

	return New(durable,
		WithPrefix(cfg.Prefix),
		WithIterations(cfg.Iterations),
		WithKeyLength(cfg.KeyLength),
	)
}
