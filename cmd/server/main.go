// Package main starts the HTTP/SSE front end of the eer-mcp adapter.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/enomix-labs/eer-mcp/domain/gateway"
	"github.com/enomix-labs/eer-mcp/domain/health"
	"github.com/enomix-labs/eer-mcp/domain/kb"
	"github.com/enomix-labs/eer-mcp/domain/mcpsrv"
	"github.com/enomix-labs/eer-mcp/domain/prompts"
	"github.com/enomix-labs/eer-mcp/domain/session"
	"github.com/enomix-labs/eer-mcp/domain/tasks"
	"github.com/enomix-labs/eer-mcp/domain/tickets"
	"github.com/enomix-labs/eer-mcp/internal/config"
	"github.com/enomix-labs/eer-mcp/internal/server"
	"github.com/enomix-labs/eer-mcp/pkg/logger"
)

func main() {
	// Load .env if present (for local development). Load() won't
	// overwrite vars already set in the environment.
	_ = godotenv.Load()

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,

		// Backend access
		session.Module,
		gateway.Module,

		// Domain modules
		tickets.Module,
		kb.Module,
		tasks.Module,
		prompts.Module,
		mcpsrv.Module,
		health.Module,
	).Run()
}
