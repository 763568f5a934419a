package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config only tunes presentation and shuffling. The rules are fixed.
type Config struct {
	ShortPause  time.Duration `env:"TWENTYONE_SHORT_PAUSE" envDefault:"1s"`
	LongPause   time.Duration `env:"TWENTYONE_LONG_PAUSE" envDefault:"2s"`
	ClearScreen bool          `env:"TWENTYONE_CLEAR_SCREEN" envDefault:"true"`

	// 0 picks a fresh random seed on every start.
	Seed int64 `env:"TWENTYONE_SEED" envDefault:"0"`

	History bool `env:"TWENTYONE_HISTORY" envDefault:"true"`
}

func Load() (*Config, error) {
	// .env is optional
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ShortPause < 0 || cfg.LongPause < 0 {
		return nil, fmt.Errorf("pauses must not be negative")
	}

	return cfg, nil
}
