// Package tasks exposes the work-task operations.
package tasks

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/enomix-labs/eer-mcp/domain/gateway"
	"github.com/enomix-labs/eer-mcp/pkg/apperror"
	"github.com/enomix-labs/eer-mcp/pkg/logger"
	"github.com/enomix-labs/eer-mcp/pkg/params"
	"github.com/enomix-labs/eer-mcp/pkg/toolresult"
)

// LogListTool is the task_select_task_log_list operation: every work log
// recorded against one task.
type LogListTool struct {
	backend gateway.Caller
	log     *slog.Logger
}

func NewLogListTool(backend gateway.Caller, log *slog.Logger) *LogListTool {
	return &LogListTool{backend: backend, log: log.With(logger.Scope("tasks.loglist"))}
}

func (t *LogListTool) Definition() mcp.Tool {
	return mcp.NewTool("task_select_task_log_list",
		mcp.WithDescription("List the work logs recorded against a task."),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("Task ID (e.g. TASK0000012098)"),
		),
	)
}

func (t *LogListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := params.Args(req.GetArguments())

	taskID, err := args.RequiredNonBlank("taskId")
	if err != nil {
		return toolresult.Error(err), nil
	}

	reply, err := t.backend.Call(ctx, "taskUIService.selectTaskLogList", map[string]any{
		"taskId": taskID,
	})
	if err != nil {
		return toolresult.Error(err), nil
	}
	// This command reports success through either status field; requiring
	// ajaxCallResult alone rejects valid replies. The failure message also
	// skips the error-code fallback the other commands use.
	if !gateway.DualFieldSuccess(reply) {
		msg := reply.String("ajaxCallMessage")
		if msg == "" {
			msg = "failed to fetch task logs"
		}
		return toolresult.Error(apperror.NewBackend(msg)), nil
	}

	items, ok := reply.List("taskLogList")
	if !ok || len(items) == 0 {
		// an empty log list is a successful lookup, not a failure
		return toolresult.Text("No task logs found."), nil
	}

	summary := taskLogSummary{
		TaskID:    taskID,
		TotalLogs: len(items),
		Logs:      make([]taskLogEntry, 0, len(items)),
	}
	for _, item := range items {
		row, ok := gateway.Row(item)
		if !ok {
			continue
		}
		createdBy := row.String("createdName")
		if createdBy == "" {
			createdBy = row.String("createdBy")
		}
		updatedBy := row.String("updatedName")
		if updatedBy == "" {
			updatedBy = row.String("updatedBy")
		}
		attachList, _ := row.List("attachList")
		summary.Logs = append(summary.Logs, taskLogEntry{
			LogID:           row.String("logId"),
			TaskID:          row.String("taskId"),
			LogStatus:       row.String("logStatus"),
			LogTime:         row.Int("logTime", 0),
			Contents:        row.String("taskLogContents"),
			CreatedBy:       createdBy,
			CreatedDate:     row.String("createdDate"),
			UpdatedBy:       updatedBy,
			UpdatedDate:     row.String("updatedDate"),
			AttachmentCount: len(attachList),
		})
	}

	t.log.Debug("task logs fetched",
		slog.String("task_id", taskID),
		slog.Int("count", summary.TotalLogs))
	return toolresult.JSON(summary)
}

type taskLogSummary struct {
	TaskID    string         `json:"taskId"`
	TotalLogs int            `json:"totalLogs"`
	Logs      []taskLogEntry `json:"logs"`
}

type taskLogEntry struct {
	LogID           string `json:"logId"`
	TaskID          string `json:"taskId"`
	LogStatus       string `json:"logStatus"`
	LogTime         int    `json:"logTime"`
	Contents        string `json:"contents"`
	CreatedBy       string `json:"createdBy"`
	CreatedDate     string `json:"createdDate"`
	UpdatedBy       string `json:"updatedBy"`
	UpdatedDate     string `json:"updatedDate"`
	AttachmentCount int    `json:"attachmentCount"`
}
