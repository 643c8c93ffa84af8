package config

import "fmt"

// Validate rejects configurations the server cannot safely run with.
// Errors name the offending field so operators can fix the file or the
// environment variable directly.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path: required for the sqlite driver")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn: required for the postgres driver")
		}
	default:
		return fmt.Errorf("database.driver: unknown driver %q", c.Database.Driver)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr: must not be empty")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("auth.secret: must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl: must be positive")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("ratelimit.requests_per_second: must be positive when enabled")
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("ratelimit.burst: must be positive when enabled")
		}
	}
	return nil
}
