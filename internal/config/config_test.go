package config

import (
	"testing"
	"time"
)

func TestSpringConfig_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		config   SpringConfig
		expected string
	}{
		{
			name: "default layout",
			config: SpringConfig{
				BaseURL:  "http://localhost:19090",
				AjaxPath: "/enomix/common/ajaxHandler.ex",
			},
			expected: "http://localhost:19090/enomix/common/ajaxHandler.ex",
		},
		{
			name: "production host",
			config: SpringConfig{
				BaseURL:  "https://helpdesk.example.com",
				AjaxPath: "/enomix/common/ajaxHandler.ex",
			},
			expected: "https://helpdesk.example.com/enomix/common/ajaxHandler.ex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.Endpoint()
			if got != tt.expected {
				t.Errorf("Endpoint() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SPRING_BASE_URL", "SPRING_AJAX_PATH",
		"SPRING_DOMAIN_ID", "GATEWAY_TIMEOUT", "SESSION_ID", "ENV_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.ServerPort != 3000 {
		t.Errorf("ServerPort = %d, want 3000", cfg.ServerPort)
	}
	if cfg.Spring.BaseURL != "http://localhost:19090" {
		t.Errorf("Spring.BaseURL = %q, want default", cfg.Spring.BaseURL)
	}
	if cfg.Spring.DomainID != "NODE0000000001" {
		t.Errorf("Spring.DomainID = %q, want NODE0000000001", cfg.Spring.DomainID)
	}
	if cfg.Spring.Timeout != 60*time.Second {
		t.Errorf("Spring.Timeout = %v, want 60s", cfg.Spring.Timeout)
	}
	if cfg.Session.SettingsFile != ".env" {
		t.Errorf("Session.SettingsFile = %q, want .env", cfg.Session.SettingsFile)
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("SPRING_BASE_URL", "http://10.0.0.5:8080")
	t.Setenv("SESSION_ID", "1kymf8yzu71xdb0cbxpzuffxb")
	t.Setenv("GATEWAY_TIMEOUT", "30s")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Spring.BaseURL != "http://10.0.0.5:8080" {
		t.Errorf("Spring.BaseURL = %q", cfg.Spring.BaseURL)
	}
	if cfg.Session.InitialToken != "1kymf8yzu71xdb0cbxpzuffxb" {
		t.Errorf("Session.InitialToken = %q", cfg.Session.InitialToken)
	}
	if cfg.Spring.Timeout != 30*time.Second {
		t.Errorf("Spring.Timeout = %v, want 30s", cfg.Spring.Timeout)
	}
}
