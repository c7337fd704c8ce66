package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment
// variables. Defaults are suitable for development only.
type Config struct {
	Port                 int    `envconfig:"PORT" default:"8001"`
	LogLevel             string `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL          string `envconfig:"DATABASE_URL" default:""`
	JWTSecret            string `envconfig:"JWT_SECRET" default:"secret_key_for_jwt_tokens_change_in_production"`
	JWTAlgorithm         string `envconfig:"JWT_ALGORITHM" default:"HS256"`
	TokenLifetimeMinutes int    `envconfig:"TOKEN_LIFETIME_MINUTES" default:"43200"`
	BcryptCost           int    `envconfig:"BCRYPT_COST" default:"12"`
	QueryTimeoutMS       int    `envconfig:"QUERY_TIMEOUT_MS" default:"3000"`
	AllowedOrigins       string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	Version              string `envconfig:"VERSION" default:"dev"`
	SeedFixtures         bool   `envconfig:"SEED_FIXTURES" default:"true"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TokenLifetime returns the bearer token lifetime as a duration.
func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.TokenLifetimeMinutes) * time.Minute
}

// QueryTimeout returns the primary-store per-operation timeout.
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutMS) * time.Millisecond
}
