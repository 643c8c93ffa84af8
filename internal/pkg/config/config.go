// Package config loads the application configuration from an optional YAML
// file, then applies environment variable overrides. A missing file is not an
// error; every field has a usable default so the binary starts with no
// configuration at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	env "pressdesk/pkg/config"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// ServerConfig holds the HTTP listener settings. RequestTimeout bounds a
// single handler's execution and must stay below WriteTimeout so the 503
// reaches the client; zero disables the per-request cutoff.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig selects and parameterizes the storage backend.
// Driver is "sqlite" or "postgres". Path is the SQLite file; DSN is the
// PostgreSQL connection string.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

// AuthConfig holds the JWT settings for the write endpoints.
type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
}

// RateLimitConfig bounds per-client request rates.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			RequestTimeout:  8 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "pressdesk.db",
		},
		Auth: AuthConfig{
			Secret:   "local-dev-secret",
			TokenTTL: time.Hour,
			Username: "editor",
			Password: "editor",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 50,
			Burst:             100,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (or
// CONFIG_PATH when path is empty), and finally environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("Load: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("Load: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	recordLoad()
	return cfg, nil
}

// applyEnv lets individual settings be overridden without a config file.
func (c *Config) applyEnv() {
	c.Server.Addr = env.GetEnvString("SERVER_ADDR", c.Server.Addr)
	c.Server.ReadTimeout = env.GetEnvDuration("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = env.GetEnvDuration("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.RequestTimeout = env.GetEnvDuration("SERVER_REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.ShutdownTimeout = env.GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)

	c.Database.Driver = env.GetEnvString("DATABASE_DRIVER", c.Database.Driver)
	c.Database.Path = env.GetEnvString("DATABASE_PATH", c.Database.Path)
	c.Database.DSN = env.GetEnvString("DATABASE_DSN", c.Database.DSN)

	c.Auth.Secret = env.GetEnvString("AUTH_SECRET", c.Auth.Secret)
	c.Auth.TokenTTL = env.GetEnvDuration("AUTH_TOKEN_TTL", c.Auth.TokenTTL)
	c.Auth.Username = env.GetEnvString("AUTH_USERNAME", c.Auth.Username)
	c.Auth.Password = env.GetEnvString("AUTH_PASSWORD", c.Auth.Password)

	c.RateLimit.Enabled = env.GetEnvBool("RATELIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.Burst = env.GetEnvInt("RATELIMIT_BURST", c.RateLimit.Burst)
	if rps := env.GetEnvInt("RATELIMIT_RPS", int(c.RateLimit.RequestsPerSecond)); rps >= 0 {
		c.RateLimit.RequestsPerSecond = float64(rps)
	}
}
