package lru

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultCapacity is the capacity used when LRU_CAPACITY is not set.
const DefaultCapacity = 1000

var (
	ErrLoadingEnvFile = errors.New("lru: failed to load env file")
	ErrParsingConfig  = errors.New("lru: failed to parse config")
	ErrInvalidConfig  = errors.New("lru: invalid config")
)

// Config describes a cache loaded from the environment.
type Config struct {
	Capacity int `env:"LRU_CAPACITY" envDefault:"1000"`
}

// LoadConfig reads Config from environment variables.
// Any files given are loaded into the environment first with godotenv;
// variables that are already set take precedence.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a usable cache.
func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative, got %d", ErrInvalidConfig, c.Capacity)
	}
	return nil
}

// NewFromConfig creates a cache sized by cfg.
func NewFromConfig[V Bytes](cfg Config, opts ...Option[V]) *Cache[V] {
	return New(cfg.Capacity, opts...)
}
