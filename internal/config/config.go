// apps/go-server/internal/config/config.go
//
// Typed server configuration from environment variables.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath       string `env:"DB_PATH" envDefault:"./data/progress.db"`
	LevelsDir    string `env:"LEVELS_DIR"` // empty: embedded packs
	JWTSecret    string `env:"JWT_SECRET" envDefault:"local_dev_secret"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Parse loads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
