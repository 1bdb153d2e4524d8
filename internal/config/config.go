package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"ad-rewards/internal/config/configs"
)

// Storage backends for the ledger.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// Storage selects the ledger backend: "memory" or "postgres". The
	// memory backend loses all state on restart.
	Storage string `env:"STORAGE" envDefault:"memory"`

	// SeedDemo inserts a handful of demo ads on startup.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Telegram  configs.Telegram  `envPrefix:"TELEGRAM_"`
	RateLimit configs.RateLimit `envPrefix:"RATE_LIMIT_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned. All fields are loaded
// with their specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot express.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit burst must be positive, got %d", c.RateLimit.Burst)
	}
	return nil
}
