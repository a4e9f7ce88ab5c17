package tickets

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

// DetailTool is the qna_select_qna_form operation: the full detail view of
// one ticket, including its process history and attachment counts.
type DetailTool struct {
	backend gateway.Caller
	log     *slog.Logger
}

func NewDetailTool(backend gateway.Caller, log *slog.Logger) *DetailTool {
	return &DetailTool{backend: backend, log: log.With(logger.Scope("tickets.detail"))}
}

func (t *DetailTool) Definition() mcp.Tool {
	return mcp.NewTool("qna_select_qna_form",
		mcp.WithDescription("Fetch the detail of one ticket: full metadata, process history and attachments."),
		mcp.WithString("ticketId",
			mcp.Required(),
			mcp.Description("Ticket ID (e.g. TCKT0000177000)"),
		),
		mcp.WithBoolean("includeContents",
			mcp.Description("Include sanitized process-history body text (default: false)"),
		),
	)
}

func (t *DetailTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := params.Args(req.GetArguments())

	ticketID, err := args.Pattern("ticketId", ticketIDRe, "TCKT followed by 10 digits")
	if err != nil {
		return toolresult.Error(err), nil
	}
	includeContents := args.Bool("includeContents", false)

	reply, err := t.backend.Call(ctx, "qnaUIService.selectQnaForm", map[string]any{
		"ticketId": ticketID,
	})
	if err != nil {
		return toolresult.Error(err), nil
	}
	if !gateway.SingleFieldSuccess(reply) {
		return toolresult.Error(apperror.NewBackend(reply.FailureMessage())), nil
	}

	dataMap, ok := reply.Map("dataMap")
	if !ok {
		return toolresult.Error(apperror.NewNotFound("ticket not found")), nil
	}
	form, ok := dataMap.Map("qnaForm")
	if !ok {
		return toolresult.Error(apperror.NewNotFound("ticket not found")), nil
	}

	// refQnaId is the customer-facing ticket ID; older rows only carry qnaId.
	id := form.String("refQnaId")
	if id == "" {
		id = form.String("qnaId")
	}

	history := []historyEntry{}
	if entries, ok := form.List("qnaProcessHistoryFormList"); ok {
		for _, item := range entries {
			row, ok := gateway.Row(item)
			if !ok {
				continue
			}
			entry := historyEntry{
				ProcessSeq:  row.Int("processSeq", 0),
				ProcessType: row.String("processType"),
				Status:      row.String("status"),
				Title:       row.String("title"),
				AccountName: row.String("accountName"),
				CreatedDate: row.String("createdDate"),
				AttachCount: row.Int("attachCount", 0),
			}
			if includeContents {
				contents := sanitize.Text(row.String("contents"))
				entry.Contents = &contents
			}
			history = append(history, entry)
		}
	}

	inAttach, _ := form.List("inAttachList")
	outAttach, _ := form.List("outAttachList")

	summary := ticketDetailSummary{
		TicketID:      id,
		Status:        form.String("ticketStatus"),
		QuestionTitle: form.String("questionTitle"),
		AnswerTitle:   form.String("answerTitle"),
		Customer: customerInfo{
			ID:        form.String("customerId"),
			Name:      form.String("customerName"),
			Email:     form.String("customerEmail"),
			Tel:       form.String("customerTel"),
			CompanyNo: form.String("customerNo"),
		},
		Assignee: assigneeInfo{
			AccountID:   form.String("accountId"),
			AccountName: form.String("accountName"),
		},
		NodePath: form.String("nodePath"),
		Dates: ticketDates{
			Connected: form.String("connectDate"),
			Started:   form.String("startDate"),
			Ended:     form.String("endDate"),
		},
		ProcessHistory: history,
		Attachments: attachmentCounts{
			InCount:  len(inAttach),
			OutCount: len(outAttach),
		},
	}

	t.log.Debug("ticket detail fetched", slog.String("ticket_id", id))
	return toolresult.JSON(summary)
}

type ticketDetailSummary struct {
	TicketID       string           `json:"ticketId"`
	Status         string           `json:"status"`
	QuestionTitle  string           `json:"questionTitle"`
	AnswerTitle    string           `json:"answerTitle"`
	Customer       customerInfo     `json:"customer"`
	Assignee       assigneeInfo     `json:"assignee"`
	NodePath       string           `json:"nodePath"`
	Dates          ticketDates      `json:"dates"`
	ProcessHistory []historyEntry   `json:"processHistory"`
	Attachments    attachmentCounts `json:"attachments"`
}

type customerInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Tel       string `json:"tel"`
	CompanyNo string `json:"companyNo"`
}

type assigneeInfo struct {
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
}

type ticketDates struct {
	Connected string `json:"connected"`
	Started   string `json:"started"`
	Ended     string `json:"ended"`
}

type historyEntry struct {
	ProcessSeq  int     `json:"processSeq"`
	ProcessType string  `json:"processType"`
	Status      string  `json:"status"`
	Title       string  `json:"title"`
	AccountName string  `json:"accountName"`
	CreatedDate string  `json:"createdDate"`
	AttachCount int     `json:"attachCount"`
	Contents    *string `json:"contents,omitempty"`
}

type attachmentCounts struct {
	InCount  int `json:"inCount"`
	OutCount int `json:"outCount"`
}
