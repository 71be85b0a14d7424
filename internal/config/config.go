package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const insecureJWTSecret = "supersecretkey"

type Config struct {
	Env            string         `yaml:"env"`
	Addr           string         `yaml:"addr"`
	JWTSecret      string         `yaml:"jwt_secret"`
	APITimeout     time.Duration  `yaml:"timeout"`
	DatabasePath   string         `yaml:"database_path"`
	MigrateOnStart bool           `yaml:"migrate_on_start"`
	TokenDuration  time.Duration  `yaml:"token_duration"`
	LogLevel       string         `yaml:"log_level"`
	Listings       ListingsConfig `yaml:"listings"`
	Cache          CacheConfig    `yaml:"cache"`
}

type ListingsConfig struct {
	// RequireLogoURL makes logoURL part of the required-field check. It
	// defaults to true; set it to false to accept submissions without a logo
	// and store the default logo for them instead.
	RequireLogoURL bool `yaml:"require_logo_url"`
}

// CacheConfig configures the optional Redis cache in front of listing reads.
// An empty RedisURL disables it.
type CacheConfig struct {
	RedisURL      string        `yaml:"redis_url"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
}

func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	tokenDuration := 1 * time.Hour

	cfg := &Config{
		Env:            getEnv("JOBBOARD_ENV", "development"),
		Addr:           getEnv("JOBBOARD_ADDR", ":8080"),
		JWTSecret:      getEnv("JOBBOARD_JWT_SECRET", insecureJWTSecret),
		APITimeout:     apiTimeout,
		DatabasePath:   getEnv("JOBBOARD_DATABASE_PATH", "jobboard.db"),
		MigrateOnStart: true,
		TokenDuration:  tokenDuration,
		LogLevel:       getEnv("JOBBOARD_LOG_LEVEL", "info"),
		Listings: ListingsConfig{
			RequireLogoURL: true,
		},
		Cache: CacheConfig{
			RedisURL: getEnv("JOBBOARD_REDIS_URL", ""),
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks required settings and fills defaults for optional ones.
// The built-in JWT secret is only accepted when Env is "development".
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.DatabasePath == "" {
		return errors.New("database_path is required")
	}
	if c.JWTSecret == "" {
		return errors.New("jwt_secret is required")
	}
	if c.JWTSecret == insecureJWTSecret && c.Env != "development" {
		return fmt.Errorf("jwt_secret uses the built-in default; set JOBBOARD_JWT_SECRET for env %q", c.Env)
	}
	if c.APITimeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.TokenDuration <= 0 {
		c.TokenDuration = time.Hour
	}
	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		c.Cache.TTL = 5 * time.Minute
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
