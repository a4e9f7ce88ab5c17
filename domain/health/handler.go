package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/enomix-labs/eer-mcp/domain/mcpsrv"
	"github.com/enomix-labs/eer-mcp/internal/config"
	"github.com/enomix-labs/eer-mcp/internal/version"
)

// Handler handles health check requests
type Handler struct {
	cfg     *config.Config
	srv     *mcpsrv.Server
	startAt time.Time
}

// NewHandler creates a new health handler
func NewHandler(cfg *config.Config, srv *mcpsrv.Server) *Handler {
	return &Handler{
		cfg:     cfg,
		srv:     srv,
		startAt: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	Uptime         string `json:"uptime"`
	Version        string `json:"version"`
	ActiveSessions int64  `json:"activeSessions"`
	Backend        string `json:"backend"`
}

// Health returns the overall service health. The backend is not probed:
// a reachable adapter with an expired session is still healthy, the
// per-call error taxonomy covers backend trouble.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Uptime:         time.Since(h.startAt).String(),
		Version:        version.Version,
		ActiveSessions: h.srv.ActiveSessions(),
		Backend:        h.cfg.Spring.Endpoint(),
	})
}

// Healthz returns a simple health check (for k8s liveness probe)
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
