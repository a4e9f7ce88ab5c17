package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/enomix-labs/eer-mcp/internal/config"
	"github.com/enomix-labs/eer-mcp/pkg/logger"
	"github.com/enomix-labs/eer-mcp/pkg/params"
	"github.com/enomix-labs/eer-mcp/pkg/toolresult"
)

// UpdateTool is the update_session_id operation. It is the only operation
// that never touches the backend: it rewrites the in-memory token and
// optionally mirrors it to the settings file.
type UpdateTool struct {
	store        *Store
	settingsFile string
	log          *slog.Logger
}

// NewUpdateTool creates the update_session_id tool.
func NewUpdateTool(store *Store, cfg *config.Config, log *slog.Logger) *UpdateTool {
	return &UpdateTool{
		store:        store,
		settingsFile: cfg.Session.SettingsFile,
		log:          log.With(logger.Scope("session.update")),
	}
}

// Definition returns the tool's MCP definition.
func (t *UpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("update_session_id",
		mcp.WithDescription("Update the backend session ID. The new session ID takes effect immediately for all subsequent backend calls and is saved to the settings file by default."),
		mcp.WithString("sessionId",
			mcp.Required(),
			mcp.Description("New JSESSIONID value (e.g. 1kymf8yzu71xdb0cbxpzuffxb)"),
		),
		mcp.WithBoolean("saveToFile",
			mcp.Description("Persist the session ID to the settings file (default: true)"),
			mcp.DefaultBool(true),
		),
	)
}

// Handle applies the token update. The in-memory transition always succeeds
// once validation passes; a persistence failure is reported as a
// partial-success note, never rolled back.
func (t *UpdateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := params.Args(req.GetArguments())

	sessionID, err := args.RequiredNonBlank("sessionId")
	if err != nil {
		return toolresult.Error(err), nil
	}
	saveToFile := args.Bool("saveToFile", true)

	if err := t.store.Set(sessionID); err != nil {
		return toolresult.Error(err), nil
	}
	t.log.Info("session token updated", slog.String("token_prefix", prefix(sessionID, 10)))

	result := "Session ID updated.\n\n"
	result += fmt.Sprintf("- new session ID: %s\n", sessionID)
	result += "- immediate effect: applied (the next backend call uses the new session ID)\n"

	if saveToFile {
		if err := SaveToken(t.settingsFile, sessionID); err != nil {
			t.log.Warn("failed to persist session token", logger.Error(err))
			result += fmt.Sprintf("- settings file: save failed (%v); the in-memory update is still active\n", err)
		} else {
			result += fmt.Sprintf("- settings file: saved to %s (survives restarts)\n", t.settingsFile)
		}
	} else {
		result += "- settings file: skipped (the previous session ID returns after a restart)\n"
	}

	return toolresult.Text(result), nil
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
