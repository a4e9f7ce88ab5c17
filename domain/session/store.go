// Package session holds the process-wide backend session token. The token
// is a JSESSIONID issued outside this process; the store only keeps the
// current value and mirrors updates into a settings file so a restart picks
// the token back up.
package session

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/enomix-labs/eer-mcp/internal/config"
	"github.com/enomix-labs/eer-mcp/pkg/apperror"
	"github.com/enomix-labs/eer-mcp/pkg/logger"
)

// Store is the single mutable holder of the session token. Once a token is
// set there is no way back to the unconfigured state; concurrent updates
// are last-write-wins and reads always see the latest committed value.
type Store struct {
	mu    sync.RWMutex
	token string
}

// NewStore creates a store seeded from configuration. An empty initial
// token leaves the store unconfigured.
func NewStore(cfg *config.Config, log *slog.Logger) *Store {
	s := &Store{token: strings.TrimSpace(cfg.Session.InitialToken)}
	if s.token == "" {
		log.Warn("no session token configured; backend calls will fail until update_session_id is used",
			logger.Scope("session"))
	}
	return s
}

// Token returns the currently active token. ok is false while the store is
// unconfigured.
func (s *Store) Token() (token string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set replaces the active token. Blank tokens are rejected; the store never
// transitions back to unconfigured at runtime.
func (s *Store) Set(token string) error {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return apperror.NewValidation("sessionId", "a non-blank session token")
	}
	s.mu.Lock()
	s.token = trimmed
	s.mu.Unlock()
	return nil
}
