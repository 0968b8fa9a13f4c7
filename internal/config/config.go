package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all environment-driven settings. DATABASE_URL and
// DATABASE_NAME deliberately have no defaults: their absence is surfaced by
// the GET /test diagnostic endpoint rather than enforced at startup.
type Config struct {
	Port string `env:"PORT, default=8000"`

	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseName string `env:"DATABASE_NAME"`

	RedisAddr   string `env:"REDIS_ADDR, default=localhost:6379"`
	KafkaBroker string `env:"KAFKA_BROKER"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MongoURI returns the connection string, falling back to a local instance
// when DATABASE_URL is unset.
func (c *Config) MongoURI() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "mongodb://localhost:27017"
}

// MongoDatabase returns the database name, defaulting when DATABASE_NAME is
// unset.
func (c *Config) MongoDatabase() string {
	if c.DatabaseName != "" {
		return c.DatabaseName
	}
	return "hrms"
}
