package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "empty feed url",
			mutate: func(cfg *Config) {
				cfg.FeedURL = ""
			},
			wantErr: "feed URL",
		},
		{
			name: "feed url without host",
			mutate: func(cfg *Config) {
				cfg.FeedURL = "http://"
			},
			wantErr: "feed URL",
		},
		{
			name: "zero page size",
			mutate: func(cfg *Config) {
				cfg.PageSize = 0
			},
			wantErr: "page size",
		},
		{
			name: "empty search endpoint",
			mutate: func(cfg *Config) {
				cfg.SearchEndpoint = ""
			},
			wantErr: "search endpoint",
		},
		{
			name: "search endpoint without host",
			mutate: func(cfg *Config) {
				cfg.SearchEndpoint = "https://"
			},
			wantErr: "search endpoint",
		},
		{
			name: "empty affiliate tag",
			mutate: func(cfg *Config) {
				cfg.AffiliateTag = ""
			},
			wantErr: "affiliate tag",
		},
		{
			name: "empty placeholder image",
			mutate: func(cfg *Config) {
				cfg.PlaceholderImage = ""
			},
			wantErr: "placeholder image",
		},
		{
			name: "negative toast duration",
			mutate: func(cfg *Config) {
				cfg.ToastDuration = -time.Second
			},
			wantErr: "toast duration",
		},
		{
			name: "negative timeout",
			mutate: func(cfg *Config) {
				cfg.Timeout = -1 * time.Second
			},
			wantErr: "timeout",
		},
		{
			name: "empty listen address",
			mutate: func(cfg *Config) {
				cfg.ListenAddr = ""
			},
			wantErr: "listen address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("WIDGET_FEED_URL", "http://feeds.example.test/products.json")
	t.Setenv("WIDGET_PAGE_SIZE", "5")
	t.Setenv("WIDGET_TOAST_DURATION", "1500ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FeedURL != "http://feeds.example.test/products.json" {
		t.Fatalf("feed url = %q", cfg.FeedURL)
	}
	if cfg.PageSize != 5 {
		t.Fatalf("page size = %d, want 5", cfg.PageSize)
	}
	if cfg.ToastDuration != 1500*time.Millisecond {
		t.Fatalf("toast duration = %v", cfg.ToastDuration)
	}
	if cfg.SearchEndpoint != DefaultConfig().SearchEndpoint {
		t.Fatalf("untouched field changed: %q", cfg.SearchEndpoint)
	}
}
