// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	Store         string `env:"LK_STORE"          envDefault:"sqlite"`
	DBPath        string `env:"LK_DB_PATH"`
	RedisAddr     string `env:"LK_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"LK_REDIS_PASSWORD"`
	RedisDB       int    `env:"LK_REDIS_DB"       envDefault:"0"`
	LogLevel      string `env:"LK_LOG_LEVEL"      envDefault:"warn"`
	LogFormat     string `env:"LK_LOG_FORMAT"     envDefault:"console"`
	Timezone      string `env:"LK_TIMEZONE"`
}

// Load reads envFiles (default ".env") if present, then parses the environment.
// Variables already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("LK_STORE must be %q or %q, got %q", StoreSQLite, StoreRedis, c.Store)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LK_LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; empty means the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("LK_TIMEZONE: %w", err)
	}
	return loc, nil
}
