package session

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enomix-labs/eer-mcp/internal/config"
)

func newUpdateToolForTest(t *testing.T, initial, settingsFile string) (*UpdateTool, *Store) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Session.InitialToken = initial
	cfg.Session.SettingsFile = settingsFile
	store := NewStore(cfg, slog.Default())
	return NewUpdateTool(store, cfg, slog.Default()), store
}

func callUpdate(t *testing.T, tool *UpdateTool, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = "update_session_id"
	req.Params.Arguments = args
	res, err := tool.Handle(context.Background(), req)
	require.NoError(t, err, "operation errors must be results, not handler faults")
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestUpdateTool_UpdatesStoreAndFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(settings, []byte("SESSION_ID=old\nOTHER=x\n"), 0o644))

	tool, store := newUpdateToolForTest(t, "old", settings)

	res := callUpdate(t, tool, map[string]any{"sessionId": "abc123", "saveToFile": true})
	assert.False(t, res.IsError)

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)

	data, err := os.ReadFile(settings)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "SESSION_ID="))
	assert.Contains(t, string(data), "SESSION_ID=abc123")
	assert.Contains(t, string(data), "OTHER=x")
}

func TestUpdateTool_SaveToFileDefaultsTrue(t *testing.T) {
	settings := filepath.Join(t.TempDir(), ".env")
	tool, _ := newUpdateToolForTest(t, "", settings)

	res := callUpdate(t, tool, map[string]any{"sessionId": "tok"})
	assert.False(t, res.IsError)

	_, err := os.Stat(settings)
	assert.NoError(t, err, "settings file should be written by default")
}

func TestUpdateTool_SkipsFileWhenAsked(t *testing.T) {
	settings := filepath.Join(t.TempDir(), ".env")
	tool, store := newUpdateToolForTest(t, "", settings)

	res := callUpdate(t, tool, map[string]any{"sessionId": "tok", "saveToFile": false})
	text := resultText(t, res)

	assert.Contains(t, text, "skipped")
	_, err := os.Stat(settings)
	assert.True(t, os.IsNotExist(err))

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestUpdateTool_PersistFailureIsPartialSuccess(t *testing.T) {
	// Point the settings file at a directory to force the write to fail.
	dir := t.TempDir()
	tool, store := newUpdateToolForTest(t, "", dir)

	res := callUpdate(t, tool, map[string]any{"sessionId": "tok"})
	text := resultText(t, res)

	assert.False(t, res.IsError, "persist failure is partial success, not an error")
	assert.Contains(t, text, "save failed")

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token, "in-memory update must survive persist failure")
}

func TestUpdateTool_RejectsBlankSessionID(t *testing.T) {
	tool, store := newUpdateToolForTest(t, "keep", filepath.Join(t.TempDir(), ".env"))

	for _, args := range []map[string]any{
		{},
		{"sessionId": ""},
		{"sessionId": "   "},
	} {
		res := callUpdate(t, tool, args)
		assert.True(t, res.IsError)
	}

	token, _ := store.Token()
	assert.Equal(t, "keep", token)
}

func TestUpdateTool_TrimsToken(t *testing.T) {
	tool, store := newUpdateToolForTest(t, "", filepath.Join(t.TempDir(), ".env"))

	res := callUpdate(t, tool, map[string]any{"sessionId": "  padded  "})
	assert.False(t, res.IsError)

	token, _ := store.Token()
	assert.Equal(t, "padded", token)
}
