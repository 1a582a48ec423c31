package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"campaign-manager/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// used in log output.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Storage selects the persistence backend and slot name.
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// File configures the file backend.
	File configs.File `envPrefix:"FILE_"`

	// Psql configures the PostgreSQL backend.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the Redis backend.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// SQLite configures the SQLite backend.
	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	// SeedDemo adds demo campaigns on startup when the store is empty.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

// Load reads configuration from environment variables into a Config. The
// file named by ENV_FILE (default ".env") is loaded first when it exists;
// variables already present in the environment win over the file. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := loadDotEnv(); err != nil {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Storage.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
