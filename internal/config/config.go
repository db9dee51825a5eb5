// Package config loads application configuration from environment variables
// with sensible defaults for local development.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrMissingMongoURI indicates no MongoDB connection string is configured.
	ErrMissingMongoURI = errors.New("missing mongo uri")

	// ErrMissingJWTSecret indicates no token signing secret is configured.
	ErrMissingJWTSecret = errors.New("missing jwt secret")
)

// Environment values recognized in Config.Environment.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config stores application configuration.
// SECURITY: JWTSecret is sensitive and must never be logged.
type Config struct {
	Port            string   `mapstructure:"port"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	ReadTimeout     int      `mapstructure:"read_timeout"`     // seconds
	WriteTimeout    int      `mapstructure:"write_timeout"`    // seconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // seconds

	MongoURI string `mapstructure:"mongo_uri"`
	MongoDB  string `mapstructure:"mongo_db"`

	JWTSecret string `mapstructure:"jwt_secret"`

	// Environment controls cookie security attributes: production sets
	// Secure + SameSite=None so the session cookie survives the
	// cross-site frontend, anything else uses SameSite=Strict.
	Environment string `mapstructure:"app_env"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load reads configuration from environment variables.
// Every key has a default except the signing secret, which is required
// in production.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "5000")
	v.SetDefault("cors_origins", []string{"http://localhost:5173"})
	v.SetDefault("read_timeout", 15)
	v.SetDefault("write_timeout", 15)
	v.SetDefault("shutdown_timeout", 30)
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "shareSurplus")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("app_env", EnvDevelopment)
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Viper reads CORS_ORIGINS from the environment as a single string;
	// split it so production can list several origins.
	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required settings are present and consistent.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return ErrMissingMongoURI
	}
	if c.JWTSecret == "" {
		if c.IsProduction() {
			return ErrMissingJWTSecret
		}
		// Dev fallback so the server starts out of the box.
		c.JWTSecret = "SECRET"
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// IsProduction reports whether the server runs with production cookie policy.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}
