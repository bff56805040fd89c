package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds widget configuration.
type Config struct {
	FeedURL          string        `env:"WIDGET_FEED_URL"`
	PageSize         int           `env:"WIDGET_PAGE_SIZE"`
	SearchEndpoint   string        `env:"WIDGET_SEARCH_ENDPOINT"`
	AffiliateTag     string        `env:"WIDGET_AFFILIATE_TAG"`
	PlaceholderImage string        `env:"WIDGET_PLACEHOLDER_IMAGE"`
	CurrencySuffix   string        `env:"WIDGET_CURRENCY_SUFFIX"`
	ToastDuration    time.Duration `env:"WIDGET_TOAST_DURATION"`
	Timeout          time.Duration `env:"WIDGET_TIMEOUT"`
	UserAgent        string        `env:"WIDGET_USER_AGENT"`
	ListenAddr       string        `env:"WIDGET_LISTEN_ADDR"`
	MetricsAddr      string        `env:"WIDGET_METRICS_ADDR"`
	Verbose          bool          `env:"WIDGET_VERBOSE"`
}

// DefaultConfig returns sensible defaults for a locally hosted feed.
func DefaultConfig() *Config {
	return &Config{
		FeedURL:          "http://localhost:8000/products.json",
		PageSize:         12,
		SearchEndpoint:   "https://www.amazon.com/s",
		AffiliateTag:     "catalog-widget-21",
		PlaceholderImage: "https://via.placeholder.com/300x200?text=No+Image",
		CurrencySuffix:   "",
		ToastDuration:    3 * time.Second,
		Timeout:          10 * time.Second,
		UserAgent:        "go-catalog-widget/1.0",
		ListenAddr:       ":8080",
		MetricsAddr:      "",
		Verbose:          false,
	}
}

// Load builds a Config from defaults overridden by environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.FeedURL == "" {
		return fmt.Errorf("feed URL cannot be empty")
	}
	parsed, err := url.Parse(c.FeedURL)
	if err != nil {
		return fmt.Errorf("invalid feed URL: %w", err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("feed URL must include a host")
	}

	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive")
	}

	if c.SearchEndpoint == "" {
		return fmt.Errorf("search endpoint cannot be empty")
	}
	endpoint, err := url.Parse(c.SearchEndpoint)
	if err != nil {
		return fmt.Errorf("invalid search endpoint: %w", err)
	}
	if endpoint.Host == "" {
		return fmt.Errorf("search endpoint must include a host")
	}

	if c.AffiliateTag == "" {
		return fmt.Errorf("affiliate tag cannot be empty")
	}
	if c.PlaceholderImage == "" {
		return fmt.Errorf("placeholder image cannot be empty")
	}
	if c.ToastDuration <= 0 {
		return fmt.Errorf("toast duration must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}

	return nil
}
