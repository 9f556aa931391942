package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string        `env:"PORT,           default=8080"`
	Env           string        `env:"ENV,            default=development"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=12h"`
	SessionFile   string        `env:"SESSION_FILE,   default=data/sessions.json"`

	Backend BackendConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	URL     string        `env:"CLINIC_API_URL,     default=http://localhost:3000/api"`
	Timeout time.Duration `env:"CLINIC_API_TIMEOUT, default=15s"`
}

// RedisConfig selects the Redis session store when Addr is set; with an
// empty Addr the gateway falls back to the file store at SessionFile.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
