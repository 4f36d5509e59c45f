// Package config loads server configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the api server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`
	// DBPath is the SQLite battle-report database path.
	DBPath string `env:"DB_PATH" envDefault:"battles.db"`
	// MaxDuelTicks caps duel simulations requested over the API.
	MaxDuelTicks int `env:"MAX_DUEL_TICKS" envDefault:"600"`
	// ReportLimit caps the report listing page size.
	ReportLimit int `env:"REPORT_LIMIT" envDefault:"50"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
