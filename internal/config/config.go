package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr    string     `env:"HTTP_ADDR" envDefault:":8080"`
	DataAPIAddr string     `env:"DATA_API_ADDR" envDefault:":3000"`
	DataAPIURL  string     `env:"DATA_API_URL" envDefault:"http://localhost:3000/api"`
	DBPath      string     `env:"DB_PATH" envDefault:"data/mundiales.db"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
