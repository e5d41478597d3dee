package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	coreerrors "github.com/moonread/catalog-bot/internal/core/errors"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"local"`
	BotToken string `env:"BOT_TOKEN,required"`

	// Catalog
	CatalogPath           string        `env:"CATALOG_PATH" envDefault:"titles_and_links_alphabetical.csv"`
	CatalogReloadInterval time.Duration `env:"CATALOG_RELOAD_INTERVAL" envDefault:"0s"`

	// Presentation
	SearchMaxResults int    `env:"SEARCH_MAX_RESULTS" envDefault:"20"`
	BrowseMaxResults int    `env:"BROWSE_MAX_RESULTS" envDefault:"30"`
	SupportContact   string `env:"SUPPORT_CONTACT" envDefault:"@moonreadteam"`

	// Transport
	PollTimeout        int     `env:"POLL_TIMEOUT" envDefault:"60"`
	SendPartsPerSecond float64 `env:"SEND_PARTS_PER_SECOND" envDefault:"20"`

	HealthPort int `env:"HEALTH_PORT" envDefault:"8080"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the bot cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("%w: CATALOG_PATH must not be empty", coreerrors.ErrInvalidInput)
	}

	if c.SearchMaxResults <= 0 {
		return fmt.Errorf("%w: SEARCH_MAX_RESULTS must be positive, got %d", coreerrors.ErrInvalidInput, c.SearchMaxResults)
	}

	if c.BrowseMaxResults <= 0 {
		return fmt.Errorf("%w: BROWSE_MAX_RESULTS must be positive, got %d", coreerrors.ErrInvalidInput, c.BrowseMaxResults)
	}

	if c.CatalogReloadInterval < 0 {
		return fmt.Errorf("%w: CATALOG_RELOAD_INTERVAL must not be negative", coreerrors.ErrInvalidInput)
	}

	if c.SendPartsPerSecond <= 0 {
		return fmt.Errorf("%w: SEND_PARTS_PER_SECOND must be positive", coreerrors.ErrInvalidInput)
	}

	return nil
}
