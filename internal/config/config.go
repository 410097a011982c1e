package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultDatabaseURL = "postgres://localhost:5432/livefeedback?sslmode=disable"

type Config struct {
	Token             string
	Secret            string
	DatabaseURL       string
	GuildID           string
	Locale            string
	Timezone          string
	HTTPAddr          string
	ConfirmationToken string
}

// Load reads the configuration from the environment and validates it.
// .env is read first unless LIVEFEEDBACK_DOCKER=true.
func Load() (*Config, error) {
	if os.Getenv("LIVEFEEDBACK_DOCKER") != "true" {
		// .env is optional when the environment already provides the variables.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Token:             os.Getenv("TOKEN"),
		Secret:            os.Getenv("SECRET"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GuildID:           os.Getenv("GUILD_ID"),
		Locale:            os.Getenv("LOCALE"),
		Timezone:          os.Getenv("TIMEZONE"),
		HTTPAddr:          os.Getenv("HTTP_ADDR"),
		ConfirmationToken: os.Getenv("CONFIRMATION_TOKEN"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks required values and fills defaults.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required")
	}

	if strings.TrimSpace(c.Secret) == "" {
		return fmt.Errorf("config: SECRET is required")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild id (digits only)")
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		c.DatabaseURL = defaultDatabaseURL
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.Locale == "" {
		c.Locale = "en"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.ConfirmationToken == "" {
		c.ConfirmationToken = "YES"
	}

	return nil
}
