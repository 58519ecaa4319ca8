package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/Seanld/lottie"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from LOTTIE_* environment variables, optionally set in a .env file.
type Config struct {
	ForceTrimMode lottie.TrimMode `envconfig:"FORCE_TRIM_MODE"`
	LogLevel      string          `envconfig:"LOG_LEVEL" default:"warn"`
	LogFile       string          `envconfig:"LOG_FILE"`
	Workers       int             `envconfig:"WORKERS" default:"0"`
	CacheTTL      time.Duration   `envconfig:"CACHE_TTL" default:"5m"`
}

// LoadConfig loads the .env file at path if it exists and then reads the environment.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("lottie", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
