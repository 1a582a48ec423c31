package configs

import (
	"fmt"
	"strings"
	"time"
)

// Backend names a SlotStorage implementation.
type Backend string

const (
	BackendFile     Backend = "file"
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
	BackendSQLite   Backend = "sqlite"
)

// Storage selects where the campaign slot lives. Slot is the single named
// key the campaign sequence is written under.
type Storage struct {
	Backend Backend `env:"BACKEND" envDefault:"file"`
	Slot    string  `env:"SLOT" envDefault:"campaigns"`
}

// Validate normalises the backend name and rejects unknown ones.
func (c *Storage) Validate() error {
	c.Backend = Backend(strings.ToLower(strings.TrimSpace(string(c.Backend))))
	switch c.Backend {
	case BackendFile, BackendMemory, BackendPostgres, BackendRedis, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
	if strings.TrimSpace(c.Slot) == "" {
		return fmt.Errorf("storage slot name is required")
	}
	return nil
}

// File configures the file backend. Each slot is stored as <Dir>/<slot>.json.
type File struct {
	Dir string `env:"DIR" envDefault:"./data"`
}

// SQLite configures the embedded SQLite backend.
type SQLite struct {
	Path string `env:"PATH" envDefault:"./data/campaigns.db"`
}

// Redis configures the Redis backend and its connection retry policy.
type Redis struct {
	Addr           string        `env:"ADDRESS" envDefault:"localhost:6379"`
	User           string        `env:"USER"`
	Password       string        `env:"PASSWORD"`
	DB             int           `env:"DB" envDefault:"0"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"30s"`
	RetryInterval  time.Duration `env:"RETRY_INTERVAL" envDefault:"1s"`
	MaxWait        time.Duration `env:"MAX_WAIT" envDefault:"5s"`
	PingTimeout    time.Duration `env:"PING_TIMEOUT" envDefault:"2s"`
}
