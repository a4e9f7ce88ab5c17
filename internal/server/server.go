package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/enomix-labs/eer-mcp/domain/mcpsrv"
	"github.com/enomix-labs/eer-mcp/internal/config"
	"github.com/enomix-labs/eer-mcp/pkg/apperror"
	"github.com/enomix-labs/eer-mcp/pkg/logger"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

var Module = fx.Module("server",
	fx.Provide(NewEcho),
	fx.Invoke(RegisterMCPRoutes),
	fx.Invoke(StartServer),
)

// EchoParams are the dependencies for creating an Echo instance
type EchoParams struct {
	fx.In

	Config *config.Config
	Log    *slog.Logger
}

// NewEcho creates and configures an Echo instance
func NewEcho(p EchoParams) *echo.Echo {
	cfg := p.Config
	log := p.Log

	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = !cfg.Debug

	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)

	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(
		// CORS - AllowOriginFunc returns the requesting origin to support credentials
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOriginFunc: func(origin string) (bool, error) {
				// Allow all origins but return the specific origin (not wildcard)
				// This is required when AllowCredentials is true
				return true, nil
			},
			AllowCredentials: true,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderCacheControl},
		}),

		// Request ID
		middleware.RequestID(),

		// Request logging (skip health endpoints)
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper: func(c echo.Context) bool {
				path := c.Request().URL.Path
				return path == "/health" || path == "/healthz" || path == "/metrics"
			},
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogError:     true,
			LogMethod:    true,
			LogRequestID: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				attrs := []any{
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency),
					slog.String("request_id", v.RequestID),
				}
				if v.Error != nil {
					attrs = append(attrs, logger.Error(v.Error))
					log.Error("request failed", attrs...)
				} else {
					log.Info("request", attrs...)
				}
				return nil
			},
		}),

		// Recover from panics
		middleware.RecoverWithConfig(middleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				log.Error("panic recovered",
					logger.Error(err),
					slog.String("stack", string(stack)),
				)
				return nil
			},
		}),
	)

	return e
}

// RegisterMCPRoutes mounts the MCP SSE transport. The SSE stream endpoint
// and the message endpoint are both handled inside mcp-go; echo only
// routes to them.
func RegisterMCPRoutes(e *echo.Echo, sse *mcpserver.SSEServer) {
	e.GET("/sse", echo.WrapHandler(sse.SSEHandler()))
	e.POST("/message", echo.WrapHandler(sse.MessageHandler()))
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, e *echo.Echo, cfg *config.Config, log *slog.Logger, srv *mcpsrv.Server) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:        fmt.Sprintf("%s:%d", cfg.ServerAddress, cfg.ServerPort),
		ReadTimeout: cfg.ReadTimeout,
		IdleTimeout: cfg.IdleTimeout,
		// No write timeout: SSE streams stay open for the life of the
		// client session.
		WriteTimeout: 0,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
				slog.String("backend", cfg.Spring.Endpoint()),
			)

			go func() {
				if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server",
				slog.Int64("active_sessions", srv.ActiveSessions()))

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return e.Shutdown(shutdownCtx)
		},
	})
}
