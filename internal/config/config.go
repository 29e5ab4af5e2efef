// Package config handles configuration for the rentals server,
// including defaults, a YAML overlay, environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/monocle-dev/rentals/internal/types"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds runtime settings for the rentals server.
//
// Fields:
//   - Port: TCP port the HTTP server listens on.
//   - DatabaseURL: PostgreSQL DSN. There is no default; it must be configured
//     whenever StoreDriver is "postgres".
//   - StoreDriver: "postgres" or "memory".
//   - DBMaxOpenConns / DBMaxIdleConns: database/sql pool sizing.
//   - LogLevel / LogFormat: logrus level and "json" or "text".
//   - ClientURL: origin of the deployed frontend, added to the CORS defaults.
//   - AllowedOrigins: comma separated CORS origins added to the defaults, "*" allows any.
//   - RateLimitRPS / RateLimitBurst: per-client token bucket, RPS <= 0 disables it.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	Port            string        `yaml:"port"`
	DatabaseURL     string        `yaml:"database_url"`
	StoreDriver     string        `yaml:"store_driver"`
	DBMaxOpenConns  int           `yaml:"db_max_open_conns"`
	DBMaxIdleConns  int           `yaml:"db_max_idle_conns"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	ClientURL       string        `yaml:"client_url"`
	AllowedOrigins  string        `yaml:"allowed_origins"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Port = "4000"
	c.DatabaseURL = ""
	c.StoreDriver = StorePostgres
	c.DBMaxOpenConns = 10
	c.DBMaxIdleConns = 5
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.ClientURL = ""
	c.AllowedOrigins = ""
	c.RateLimitRPS = 20
	c.RateLimitBurst = 40
	c.ShutdownTimeout = 10 * time.Second
}

// Load builds a Config by applying defaults, then the YAML file named by
// -c/-config, then environment variables and finally explicitly set flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	flags, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	if flags.configFile != "" {
		if err := loadFile(cfg, flags.configFile); err != nil {
			return nil, err
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}

	flags.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case StorePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres store"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown store driver %q", c.StoreDriver))
	}

	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}

	if c.DBMaxOpenConns < 0 || c.DBMaxIdleConns < 0 {
		errs = append(errs, errors.New("database pool sizes must not be negative"))
	}

	for _, origin := range c.Origins() {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Errorf("invalid CORS origin %q", origin))
		}
	}

	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Origins returns the CORS allow-list.
func (c *Config) Origins() []string {
	return types.AllowedOrigins(c.ClientURL, c.AllowedOrigins)
}
