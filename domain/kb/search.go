package kb

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

// SearchTool is the kb_select_search_kb_list operation: a paginated search
// over the articles under one KB node.
type SearchTool struct {
	backend gateway.Caller
	log     *slog.Logger
}

func NewSearchTool(backend gateway.Caller, log *slog.Logger) *SearchTool {
	return &SearchTool{backend: backend, log: log.With(logger.Scope("kb.search"))}
}

func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("kb_select_search_kb_list",
		mcp.WithDescription("Search knowledge-base articles by date range, node and keyword. Date format: YYYYMMDDHHMMSS."),
		mcp.WithString("startDate", mcp.Required(), mcp.Description("Search range start (YYYYMMDDHHMMSS)")),
		mcp.WithString("endDate", mcp.Required(), mcp.Description("Search range end (YYYYMMDDHHMMSS)")),
		mcp.WithString("alias",
			mcp.Required(),
			mcp.Description("Customer ID (the ticket's customerId value, e.g. 263)"),
		),
		mcp.WithString("nodeId",
			mcp.Required(),
			mcp.Description("Node ID from kb_select_node_id (e.g. NODE0000000456)"),
		),
		mcp.WithString("kbId", mcp.Description("Restrict to one article ID (e.g. KNOW0000005091)")),
		mcp.WithString("searchId", mcp.Description("Search keyword")),
		mcp.WithNumber("page", mcp.Description("Page number (default: 1)")),
		mcp.WithNumber("rows", mcp.Description("Rows per page, 1-100 (default: 10)")),
	)
}

func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := params.Args(req.GetArguments())

	startDate, err := args.Pattern("startDate", dateTimeRe, "14-digit YYYYMMDDHHMMSS")
	if err != nil {
		return toolresult.Error(err), nil
	}
	endDate, err := args.Pattern("endDate", dateTimeRe, "14-digit YYYYMMDDHHMMSS")
	if err != nil {
		return toolresult.Error(err), nil
	}
	alias, err := args.RequiredNonBlank("alias")
	if err != nil {
		return toolresult.Error(err), nil
	}
	nodeID, err := args.RequiredNonBlank("nodeId")
	if err != nil {
		return toolresult.Error(err), nil
	}
	page, err := args.Int("page", 1, 0, 1)
	if err != nil {
		return toolresult.Error(err), nil
	}
	rows, err := args.Int("rows", 1, 100, 10)
	if err != nil {
		return toolresult.Error(err), nil
	}

	// The fixed flags reproduce what the KB search screen posts; the
	// backend's result set depends on them.
	reply, err := t.backend.Call(ctx, "kbUIService.selectSearchKbList", map[string]any{
		"rows":            rows,
		"page":            page,
		"startDate":       startDate,
		"endDate":         endDate,
		"alias":           alias,
		"nodeId":          nodeID,
		"kbId":            args.String("kbId"),
		"searchId":        args.String("searchId"),
		"whereBy":         "created_by",
		"whereByType":     "id",
		"whereHitCount":   "",
		"hitCount":        "",
		"incSubNodeFlag":  "Y",
		"isFavorite":      "Y",
		"webviewFlag":     "Y",
		"nodeWebviewFlag": "Y",
		"publicFlag":      "ALL",
		"approvalStatus":  "APNOT",
		"dateType":        "valide_date",
		"uniqueFlag":      "Y",
	})
	if err != nil {
		return toolresult.Error(err), nil
	}
	if !gateway.SingleFieldSuccess(reply) {
		return toolresult.Error(apperror.NewBackend(reply.FailureMessage())), nil
	}
	items, ok := reply.List("dataList")
	if !ok {
		return toolresult.Error(apperror.NewBackend("unexpected response shape (missing dataList)")), nil
	}

	summary := kbListSummary{
		TotalCount:    reply.Int("dataCount", 0),
		ReturnedCount: len(items),
		PageNo:        reply.Int("pageNo", 1),
		KbList:        make([]kbEntry, 0, len(items)),
	}
	for _, item := range items {
		row, ok := gateway.Row(item)
		if !ok {
			continue
		}
		summary.KbList = append(summary.KbList, kbEntry{
			KbID:     row.String("kbId"),
			Title:    row.String("title"),
			NodeID:   row.String("nodeId"),
			NodePath: row.String("nodePath"),
			Creator: personStamp{
				Name: row.String("createdName"),
				ID:   row.String("createdBy"),
				Date: row.String("createdDate"),
			},
			Updater: personStamp{
				Name: row.String("updatedName"),
				ID:   row.String("updatedBy"),
				Date: row.String("updatedDate"),
			},
			ApprovalStatus: row.String("approvalStatus"),
			HitCount:       row.Int("hitCount", 0),
			AttachCount:    row.Int("attachCount", 0),
			PublicFlag:     row.String("publicFlag"),
			WebviewFlag:    row.String("webviewFlag"),
		})
	}

	t.log.Debug("kb search done",
		slog.String("node_id", nodeID),
		slog.Int("returned", summary.ReturnedCount))
	return toolresult.JSON(summary)
}

type kbListSummary struct {
	TotalCount    int       `json:"totalCount"`
	ReturnedCount int       `json:"returnedCount"`
	PageNo        int       `json:"pageNo"`
	KbList        []kbEntry `json:"kbList"`
}

type kbEntry struct {
	KbID           string      `json:"kbId"`
	Title          string      `json:"title"`
	NodeID         string      `json:"nodeId"`
	NodePath       string      `json:"nodePath"`
	Creator        personStamp `json:"creator"`
	Updater        personStamp `json:"updater"`
	ApprovalStatus string      `json:"approvalStatus"`
	HitCount       int         `json:"hitCount"`
	AttachCount    int         `json:"attachCount"`
	PublicFlag     string      `json:"publicFlag"`
	WebviewFlag    string      `json:"webviewFlag"`
}

type personStamp struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Date string `json:"date"`
}
