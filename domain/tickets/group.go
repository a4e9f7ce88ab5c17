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

// GroupTool is the qna_select_group_ticket_list operation: the history of
// tickets grouped under the same thread as the given one.
type GroupTool struct {
	backend gateway.Caller
	log     *slog.Logger
}

func NewGroupTool(backend gateway.Caller, log *slog.Logger) *GroupTool {
	return &GroupTool{backend: backend, log: log.With(logger.Scope("tickets.group"))}
}

func (t *GroupTool) Definition() mcp.Tool {
	return mcp.NewTool("qna_select_group_ticket_list",
		mcp.WithDescription("List the tickets grouped with the given ticket (same conversation thread)."),
		mcp.WithString("ticketId",
			mcp.Required(),
			mcp.Description("Ticket ID (e.g. TCKT0000176991)"),
		),
		mcp.WithString("serviceType", mcp.Description("Service type (default: SVQNA)")),
		mcp.WithNumber("page", mcp.Description("Page number (default: 1)")),
		mcp.WithNumber("rows", mcp.Description("Rows per page, 1-100 (default: 10)")),
	)
}

func (t *GroupTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := params.Args(req.GetArguments())

	ticketID, err := args.Pattern("ticketId", ticketIDRe, "TCKT followed by 10 digits")
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

	reply, err := t.backend.Call(ctx, "qnaUIService.selectGroupTicketList", map[string]any{
		"ticketId": ticketID,
		// legacy parameter name, lowercase on the wire
		"servicetype": args.StringOr("serviceType", "SVQNA"),
		"page":        page,
		"rows":        rows,
	})
	if err != nil {
		return toolresult.Error(err), nil
	}
	if !gateway.SingleFieldSuccess(reply) {
		return toolresult.Error(apperror.NewBackend(reply.FailureMessage())), nil
	}
	items, ok := reply.List("historyList")
	if !ok {
		return toolresult.Error(apperror.NewBackend("unexpected response shape (missing historyList)")), nil
	}

	summary := groupTicketSummary{
		TotalCount:    reply.Int("totalCount", 0),
		ReturnedCount: len(items),
		Tickets:       make([]groupTicketEntry, 0, len(items)),
	}
	for _, item := range items {
		row, ok := gateway.Row(item)
		if !ok {
			continue
		}
		summary.Tickets = append(summary.Tickets, groupTicketEntry{
			No:          row.Int("no", 0),
			TicketID:    row.String("ticketId"),
			Status:      row.String("ticketStatus"),
			Title:       row.String("questionTitle"),
			AccountName: row.String("accountName"),
			ConnectDate: row.String("connectDate"),
			EndDate:     row.String("endDate"),
			Attachments: attachmentCounts{
				InCount:  row.Int("inAttachCount", 0),
				OutCount: row.Int("outAttachCount", 0),
			},
			Feedback: row.Int("feedback", 0),
		})
	}

	t.log.Debug("group ticket list fetched",
		slog.String("ticket_id", ticketID),
		slog.Int("returned", summary.ReturnedCount))
	return toolresult.JSON(summary)
}

type groupTicketSummary struct {
	TotalCount    int                `json:"totalCount"`
	ReturnedCount int                `json:"returnedCount"`
	Tickets       []groupTicketEntry `json:"tickets"`
}

type groupTicketEntry struct {
	No          int              `json:"no"`
	TicketID    string           `json:"ticketId"`
	Status      string           `json:"status"`
	Title       string           `json:"title"`
	AccountName string           `json:"accountName"`
	ConnectDate string           `json:"connectDate"`
	EndDate     string           `json:"endDate"`
	Attachments attachmentCounts `json:"attachments"`
	Feedback    int              `json:"feedback"`
}
