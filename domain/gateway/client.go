// Package gateway sends commands to the Enomix Spring backend. Every
// operation funnels through the single ajaxHandler.ex endpoint as a
// form-encoded POST carrying a dotted service.method command name, the
// domain identifier and the operation's parameter bag, authenticated by the
// current session cookie.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/enomix-labs/eer-mcp/domain/session"
	"github.com/enomix-labs/eer-mcp/internal/config"
	"github.com/enomix-labs/eer-mcp/pkg/apperror"
	"github.com/enomix-labs/eer-mcp/pkg/logger"
)

var Module = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(NewClient, fx.As(new(Caller))),
	),
)

// Caller is the capability operations depend on. Tests substitute a stub
// to assert that validation failures never reach the network.
type Caller interface {
	Call(ctx context.Context, command string, params map[string]any) (Reply, error)
}

// Client is the HTTP gateway to the backend.
type Client struct {
	httpClient *http.Client
	endpoint   string
	domainID   string
	store      *session.Store
	log        *slog.Logger
	metrics    *metrics
}

// NewClient creates a gateway client. The timeout is the one fixed request
// budget; there are no retries and no backoff.
func NewClient(cfg *config.Config, store *session.Store, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Spring.Timeout,
		},
		endpoint: cfg.Spring.Endpoint(),
		domainID: cfg.Spring.DomainID,
		store:    store,
		log:      log.With(logger.Scope("gateway")),
		metrics:  sharedMetrics,
	}
}

// Call sends a command to the backend and returns the decoded reply.
// Backend-reported business failures come back as a normal Reply; only
// missing credentials, transport failures and session expiry become
// errors here. The session token is read at call time, so a token update
// from any connection affects every call after it.
func (c *Client) Call(ctx context.Context, command string, params map[string]any) (Reply, error) {
	token, ok := c.store.Token()
	if !ok {
		c.metrics.observe(command, "no_token", 0)
		return nil, apperror.ErrAuth.WithMessage(
			"SESSION_ID is not configured; use update_session_id to set a valid JSESSIONID")
	}

	c.log.Debug("calling backend", slog.String("command", command))

	form := url.Values{}
	form.Set("command", command)
	form.Set("domainId", c.domainID)
	for key, value := range params {
		if value == nil {
			continue
		}
		form.Set(key, formValue(value))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperror.NewTransport(fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Cookie", "JSESSIONID="+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(command, "transport_error", time.Since(start))
		return nil, apperror.NewTransport(fmt.Errorf("calling %s: %w", command, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(command, "transport_error", time.Since(start))
		return nil, apperror.NewTransport(fmt.Errorf("reading reply for %s: %w", command, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.observe(command, "http_error", time.Since(start))
		return nil, apperror.NewTransport(fmt.Errorf("%s returned HTTP %d", command, resp.StatusCode))
	}

	var reply Reply
	if err := json.Unmarshal(body, &reply); err != nil {
		c.metrics.observe(command, "decode_error", time.Since(start))
		return nil, apperror.NewTransport(fmt.Errorf("decoding reply for %s: %w", command, err))
	}

	if sessionExpired(reply) {
		c.metrics.observe(command, "session_expired", time.Since(start))
		return nil, apperror.ErrSessionExpired.WithMessage(
			"the backend session has expired; update SESSION_ID with a fresh JSESSIONID via update_session_id")
	}

	c.metrics.observe(command, "ok", time.Since(start))
	return reply, nil
}

// formValue stringifies a parameter the way the backend expects: booleans
// as "true"/"false", integral numbers without a decimal point.
func formValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// sessionExpired matches the backend's three known expiry signatures: a
// dedicated error code, a dedicated result code, and a generic failure
// result paired with one specific message.
func sessionExpired(r Reply) bool {
	if r.String("ajaxCallErrorCode") == "NO_SESSION" {
		return true
	}
	if r.String("ajaxCallResult") == "N_SESSION" {
		return true
	}
	return r.String("ajaxCallResult") == "N" &&
		r.String("ajaxCallMessage") == "Login session is invalid."
}
