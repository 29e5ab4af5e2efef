package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

type envConfig struct {
	Port            string        `env:"PORT"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	StoreDriver     string        `env:"STORE_DRIVER"`
	DBMaxOpenConns  int           `env:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns  int           `env:"DB_MAX_IDLE_CONNS"`
	LogLevel        string        `env:"LOG_LEVEL"`
	LogFormat       string        `env:"LOG_FORMAT"`
	ClientURL       string        `env:"CLIENT_URL"`
	AllowedOrigins  string        `env:"ALLOWED_ORIGINS"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// loadEnv overlays environment variables onto cfg. Unset variables keep the
// current values.
func loadEnv(cfg *Config) error {
	e := envConfig(*cfg)

	if err := envdecode.Decode(&e); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("failed to decode environment: %w", err)
	}

	*cfg = Config(e)

	return nil
}
