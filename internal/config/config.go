// Package config reads settings from the environment, an optional
// config.yml and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Application environments.
const (
	Development = "development"
	Test        = "test"
	Production  = "production"
)

type Config struct {
	AppEnv    string
	Port      string
	StaticDir string
	Storage   Storage
	SMTP      SMTP
	// ContactDelay is waited before a contact message is accepted.
	ContactDelay time.Duration
}

type Storage struct {
	Driver   string
	DSN      string
	CacheTTL time.Duration
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

// Enabled reports whether credentials are set.
func (s SMTP) Enabled() bool {
	return s.Username != "" && s.Password != ""
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == Production
}

// Load builds a Config. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_ENV", Development)
	v.SetDefault("PORT", "8080")
	v.SetDefault("STATIC_DIR", "")
	v.SetDefault("STORAGE_DRIVER", "sqlite")
	v.SetDefault("STORAGE_DSN", "portfolio.db")
	v.SetDefault("STORAGE_CACHE_TTL", "0s")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("TO_EMAIL", "")
	v.SetDefault("CONTACT_DELAY", "0s")

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		AppEnv:    v.GetString("APP_ENV"),
		Port:      v.GetString("PORT"),
		StaticDir: v.GetString("STATIC_DIR"),
		Storage: Storage{
			Driver:   v.GetString("STORAGE_DRIVER"),
			DSN:      v.GetString("STORAGE_DSN"),
			CacheTTL: v.GetDuration("STORAGE_CACHE_TTL"),
		},
		SMTP: SMTP{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
			To:       v.GetString("TO_EMAIL"),
		},
		ContactDelay: v.GetDuration("CONTACT_DELAY"),
	}

	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.SMTP.Username
	}
	if cfg.Storage.CacheTTL < 0 || cfg.ContactDelay < 0 {
		return nil, errors.New("durations must not be negative")
	}

	return cfg, nil
}
