package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// DatabaseURL selects postgres when set; otherwise the server
	// runs against a local sqlite file.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"invoices.db"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8000"`
}

func Load() (*Config, error) {
	// .env is optional, for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
