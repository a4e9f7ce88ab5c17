package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"3000"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Upstream Spring backend
	Spring SpringConfig

	// Session token persistence
	Session SessionConfig

	// Server timeouts. Write/idle are generous because SSE connections stay
	// open for the lifetime of an MCP session.
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"28800s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"28800s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SpringConfig holds connection settings for the Enomix Spring backend.
type SpringConfig struct {
	// BaseURL is the backend origin, e.g. "http://localhost:19090".
	BaseURL string `env:"SPRING_BASE_URL" envDefault:"http://localhost:19090"`

	// AjaxPath is the single RPC endpoint every command is POSTed to.
	AjaxPath string `env:"SPRING_AJAX_PATH" envDefault:"/enomix/common/ajaxHandler.ex"`

	// DomainID is sent with every command.
	DomainID string `env:"SPRING_DOMAIN_ID" envDefault:"NODE0000000001"`

	// Timeout is the single fixed request timeout. No retries.
	Timeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"60s"`
}

// Endpoint returns the full URL of the backend RPC endpoint.
func (s *SpringConfig) Endpoint() string {
	return s.BaseURL + s.AjaxPath
}

// SessionConfig holds the initial session token and where to persist
// updated tokens.
type SessionConfig struct {
	// InitialToken seeds the session store at startup. Empty means the
	// store starts unconfigured and every gateway call fails with an auth
	// error until update_session_id is called.
	InitialToken string `env:"SESSION_ID" envDefault:""`

	// SettingsFile is the line-oriented key=value file the session token is
	// mirrored into on update.
	SettingsFile string `env:"ENV_FILE" envDefault:".env"`
}

// NewConfig parses configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
