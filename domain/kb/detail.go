package kb

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/enomix-labs/eer-mcp/domain/gateway"
	"github.com/enomix-labs/eer-mcp/pkg/apperror"
	"github.com/enomix-labs/eer-mcp/pkg/logger"
	"github.com/enomix-labs/eer-mcp/pkg/params"
	"github.com/enomix-labs/eer-mcp/pkg/sanitize"
	"github.com/enomix-labs/eer-mcp/pkg/toolresult"
)

// DetailTool is the kb_get_translate_script_km_contents operation: the
// full contents and metadata of one KB article.
type DetailTool struct {
	backend gateway.Caller
	log     *slog.Logger
}

func NewDetailTool(backend gateway.Caller, log *slog.Logger) *DetailTool {
	return &DetailTool{backend: backend, log: log.With(logger.Scope("kb.detail"))}
}

func (t *DetailTool) Definition() mcp.Tool {
	return mcp.NewTool("kb_get_translate_script_km_contents",
		mcp.WithDescription("Fetch one knowledge-base article's contents and metadata by article ID."),
		mcp.WithString("kbId",
			mcp.Required(),
			mcp.Description("Article ID (e.g. KNOW0000005091)"),
		),
		mcp.WithString("nodeId", mcp.Description("Node ID (e.g. NODE0000000456)")),
		mcp.WithString("serviceType", mcp.Description("Service type (default: SVKNW)")),
		mcp.WithBoolean("includeContents",
			mcp.Description("Include the article body text (default: true)"),
			mcp.DefaultBool(true),
		),
	)
}

func (t *DetailTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := params.Args(req.GetArguments())

	kbID, err := args.Pattern("kbId", kbIDRe, "KNOW followed by 10 digits")
	if err != nil {
		return toolresult.Error(err), nil
	}

	reply, err := t.backend.Call(ctx, "kbUIService.getTranslateScriptKmContents", map[string]any{
		"kbId":        kbID,
		"nodeId":      args.String("nodeId"),
		"serviceType": args.StringOr("serviceType", "SVKNW"),
		// a read through this adapter must not bump the hit counter
		"isLog": "false",
	})
	if err != nil {
		return toolresult.Error(err), nil
	}
	if !gateway.SingleFieldSuccess(reply) {
		return toolresult.Error(apperror.NewBackend(reply.FailureMessage())), nil
	}

	dataMap, ok := reply.Map("dataMap")
	if !ok {
		return toolresult.Error(apperror.NewNotFound("article not found")), nil
	}
	form, ok := dataMap.Map("kbForm")
	if !ok {
		return toolresult.Error(apperror.NewNotFound("article not found")), nil
	}

	summary := kbDetailSummary{
		KbID:   form.String("kbId"),
		Title:  form.String("title"),
		NodeID: form.String("nodeId"),
		Creator: personStamp{
			Name: form.String("createdName"),
			ID:   form.String("createdBy"),
			Date: form.String("createdDate"),
		},
		Updater: personStamp{
			Name: form.String("updatedName"),
			ID:   form.String("updatedBy"),
			Date: form.String("updatedDate"),
		},
		ApprovalStatus: form.String("approvalStatus"),
		HitCount:       form.Int("hitCount", 0),
	}
	if rel, ok := form.Map("nodeKbRelMain"); ok {
		summary.NodePath = rel.String("nodeName")
	}
	if args.Bool("includeContents", true) {
		// the translated transcript is preferred over the raw body
		body := form.String("transScriptContents")
		if body == "" {
			body = form.String("contents")
		}
		contents := sanitize.LightText(body)
		summary.Contents = &contents
	}

	t.log.Debug("kb detail fetched", slog.String("kb_id", kbID))
	return toolresult.JSON(summary)
}

type kbDetailSummary struct {
	KbID           string      `json:"kbId"`
	Title          string      `json:"title"`
	NodeID         string      `json:"nodeId"`
	NodePath       string      `json:"nodePath"`
	Creator        personStamp `json:"creator"`
	Updater        personStamp `json:"updater"`
	ApprovalStatus string      `json:"approvalStatus"`
	HitCount       int         `json:"hitCount"`
	Contents       *string     `json:"contents,omitempty"`
}
