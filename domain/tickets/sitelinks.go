package tickets

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

// linkTypeLabels maps the backend's two-letter link type codes to readable
// labels. Unknown codes pass through as-is.
var linkTypeLabels = map[string]string{
	"SI": "scenario",
	"AM": "AM document",
	"CI": "CI document",
	"RD": "reference document",
	"PR": "project (Git)",
	"SD": "deliverable",
}

// SiteLinksTool is the qna_select_site_conn_link_list operation: the
// resource links attached to a customer site.
type SiteLinksTool struct {
	backend gateway.Caller
	log     *slog.Logger
}

func NewSiteLinksTool(backend gateway.Caller, log *slog.Logger) *SiteLinksTool {
	return &SiteLinksTool{backend: backend, log: log.With(logger.Scope("tickets.sitelinks"))}
}

func (t *SiteLinksTool) Definition() mcp.Tool {
	return mcp.NewTool("qna_select_site_conn_link_list",
		mcp.WithDescription("List the links connected to a customer site: scenarios, documents, Git repositories and deliverables. The siteId is the ticket's customerId."),
		mcp.WithString("siteId",
			mcp.Required(),
			mcp.Description("Customer site ID (the ticket's customerId value)"),
		),
	)
}

func (t *SiteLinksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := params.Args(req.GetArguments())

	siteID, err := args.RequiredNonBlank("siteId")
	if err != nil {
		return toolresult.Error(err), nil
	}

	reply, err := t.backend.Call(ctx, "qnaUIService.selectSiteConnLinkList", map[string]any{
		"siteId": siteID,
	})
	if err != nil {
		return toolresult.Error(err), nil
	}
	if !gateway.SingleFieldSuccess(reply) {
		return toolresult.Error(apperror.NewBackend(reply.FailureMessage())), nil
	}
	items, ok := reply.List("linkList")
	if !ok {
		return toolresult.Error(apperror.NewBackend("unexpected response shape (missing linkList)")), nil
	}

	summary := siteLinkSummary{
		SiteID:     reply.String("siteId"),
		TotalCount: len(items),
		Links:      make([]siteLink, 0, len(items)),
	}
	for _, item := range items {
		row, ok := gateway.Row(item)
		if !ok {
			continue
		}
		linkType := row.String("link_type")
		label, known := linkTypeLabels[linkType]
		if !known {
			label = linkType
		}
		summary.Links = append(summary.Links, siteLink{
			Name:            row.String("link_name"),
			Type:            linkType,
			TypeDescription: label,
			URL:             row.String("link_url"),
		})
	}

	t.log.Debug("site links fetched",
		slog.String("site_id", siteID),
		slog.Int("count", summary.TotalCount))
	return toolresult.JSON(summary)
}

type siteLinkSummary struct {
	SiteID     string     `json:"siteId"`
	TotalCount int        `json:"totalCount"`
	Links      []siteLink `json:"links"`
}

type siteLink struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	TypeDescription string `json:"typeDescription"`
	URL             string `json:"url"`
}
