package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	DataPath       string   `env:"DATA_PATH" envDefault:"hockey-union.db"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	SeedDemoData   bool     `env:"SEED_DEMO_DATA" envDefault:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
