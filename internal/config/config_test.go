package config

import (
	"testing"
	"time"
)

func TestConfig_DemoDelay(t *testing.T) {
	tests := []struct {
		name  string
		delay string
		want  time.Duration
	}{
		{name: "unset uses default", delay: "", want: 500 * time.Millisecond},
		{name: "valid duration", delay: "2s", want: 2 * time.Second},
		{name: "zero is allowed", delay: "0s", want: 0},
		{name: "invalid falls back", delay: "soon", want: 500 * time.Millisecond},
		{name: "negative falls back", delay: "-1s", want: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Demo.Delay = tt.delay
			if got := cfg.DemoDelay(); got != tt.want {
				t.Errorf("DemoDelay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.PlaceholderImageURL != DefaultPlaceholderImageURL {
		t.Errorf("PlaceholderImageURL = %q, want %q", cfg.PlaceholderImageURL, DefaultPlaceholderImageURL)
	}
	if cfg.Demo.Query != DefaultDemoQuery {
		t.Errorf("Demo.Query = %q, want %q", cfg.Demo.Query, DefaultDemoQuery)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, DefaultUserAgent)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("APP_BASE_URL", "http://localhost:1234/")
	t.Setenv("APP_DEMO_QUERY", "friends")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.BaseURL != "http://localhost:1234" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL)
	}
	if cfg.Demo.Query != "friends" {
		t.Errorf("Demo.Query = %q, want %q", cfg.Demo.Query, "friends")
	}
}

func TestGetUserAgent_FallsBackToDefault(t *testing.T) {
	orig := globalConfig
	t.Cleanup(func() { globalConfig = orig })

	globalConfig = nil
	if got := GetUserAgent(); got != DefaultUserAgent {
		t.Errorf("GetUserAgent() = %q, want %q", got, DefaultUserAgent)
	}

	globalConfig = &Config{UserAgent: "custom/1.0"}
	if got := GetUserAgent(); got != "custom/1.0" {
		t.Errorf("GetUserAgent() = %q, want %q", got, "custom/1.0")
	}
}
