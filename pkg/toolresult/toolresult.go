// Package toolresult renders operation outcomes as MCP tool results. Every
// failure becomes a structured isError result so the transport always gets
// a well-formed response; nothing from the operation layer surfaces as a
// protocol fault.
package toolresult

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/enomix-labs/eer-mcp/pkg/apperror"
)

// JSON marshals a summary into an indented text content result.
func JSON(summary any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling summary: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Text wraps plain status text in a success result.
func Text(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

// Error renders an operation error as a failure result. App errors keep
// their message; anything else gets a generic prefix.
func Error(err error) *mcp.CallToolResult {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return mcp.NewToolResultError("error: " + appErr.Message)
	}
	return mcp.NewToolResultError("error: " + err.Error())
}
