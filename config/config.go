package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment at startup.
// A missing required variable is a startup failure, never a request-time one.
type Config struct {
	Port        int           `env:"PORT,required"`
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" envDefault:"10s"`

	DBHost           string `env:"DB_HOST" envDefault:"localhost"`
	DBPort           int    `env:"DB_PORT" envDefault:"5432"`
	DBName           string `env:"DB_NAME,required"`
	DBUser           string `env:"DB_USER,required"`
	DBPassword       string `env:"DB_PASSWORD,required"`
	DBMaxConnections int    `env:"DB_MAX_CONNECTIONS" envDefault:"50"`
}

var dotenvLoaded sync.Once

// Load parses the process environment into a Config, after loading a .env
// file if one is present (its absence is fine).
func Load() (Config, error) {
	dotenvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}
