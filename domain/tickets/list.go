package tickets

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/enomix-labs/eer-mcp/domain/gateway"
	"github.com/enomix-labs/eer-mcp/pkg/apperror"
	"github.com/enomix-labs/eer-mcp/pkg/logger"
	"github.com/enomix-labs/eer-mcp/pkg/params"
	"github.com/enomix-labs/eer-mcp/pkg/toolresult"
)

var (
	dateTimeRe = regexp.MustCompile(`^\d{14}$`)
	ticketIDRe = regexp.MustCompile(`^TCKT\d{10}$`)

	dateTypes      = []string{"connect_date", "end_date", "create_date"}
	ticketStatuses = []string{"ALL", "OPEN", "CLOSED", "PENDING", "RESOLVED", "ANSWER_ING"}
)

// ListTool is the ticket_select_list operation, a paginated ticket search
// over ticketUIService.selectList.
type ListTool struct {
	backend gateway.Caller
	log     *slog.Logger
}

func NewListTool(backend gateway.Caller, log *slog.Logger) *ListTool {
	return &ListTool{backend: backend, log: log.With(logger.Scope("tickets.list"))}
}

func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("ticket_select_list",
		mcp.WithDescription("Search the ticket list. Date format: YYYYMMDDHHMMSS (e.g. 20260219000000)."),
		mcp.WithString("startDate", mcp.Required(), mcp.Description("Search range start (YYYYMMDDHHMMSS)")),
		mcp.WithString("endDate", mcp.Required(), mcp.Description("Search range end (YYYYMMDDHHMMSS)")),
		mcp.WithNumber("page", mcp.Description("Page number (default: 1)")),
		mcp.WithNumber("rows", mcp.Description("Rows per page, 1-100 (default: 20)")),
		mcp.WithString("dateType",
			mcp.Description("Date column to filter on (default: connect_date)"),
			mcp.Enum(dateTypes...),
		),
		mcp.WithString("ticketStatus",
			mcp.Description("Ticket status filter (default: ALL)"),
			mcp.Enum(ticketStatuses...),
		),
		mcp.WithString("customerName", mcp.Description("Customer name")),
		mcp.WithString("customerId", mcp.Description("Customer ID")),
		mcp.WithString("customerEmail", mcp.Description("Customer email")),
		mcp.WithString("customerTel", mcp.Description("Customer phone number")),
		mcp.WithString("customerNo", mcp.Description("Customer company")),
		mcp.WithString("questionTitle", mcp.Description("Ticket title")),
		mcp.WithString("searchTicketId", mcp.Description("Ticket ID to search for")),
		mcp.WithString("searchContents", mcp.Description("Ticket body text to search for")),
		mcp.WithString("accountId", mcp.Description("Channel account ID")),
		mcp.WithString("nodeId", mcp.Description("Node ID")),
	)
}

func (t *ListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := params.Args(req.GetArguments())

	startDate, err := args.Pattern("startDate", dateTimeRe, "14-digit YYYYMMDDHHMMSS")
	if err != nil {
		return toolresult.Error(err), nil
	}
	endDate, err := args.Pattern("endDate", dateTimeRe, "14-digit YYYYMMDDHHMMSS")
	if err != nil {
		return toolresult.Error(err), nil
	}
	page, err := args.Int("page", 1, 0, 1)
	if err != nil {
		return toolresult.Error(err), nil
	}
	rows, err := args.Int("rows", 1, 100, 20)
	if err != nil {
		return toolresult.Error(err), nil
	}
	dateType, err := args.Enum("dateType", dateTypes, "connect_date")
	if err != nil {
		return toolresult.Error(err), nil
	}
	status, err := args.Enum("ticketStatus", ticketStatuses, "ALL")
	if err != nil {
		return toolresult.Error(err), nil
	}

	bag := defaultListParams()
	bag["page"] = page
	bag["rows"] = rows
	bag["startDate"] = startDate
	bag["endDate"] = endDate
	bag["dateType"] = dateType
	// The grid UI sends the selected status under three names and the
	// backend filters on all of them.
	bag["ticketStatus"] = status
	bag["selectTicketStatus"] = status
	bag["selTicketStatus"] = status
	for _, name := range []string{
		"customerName", "customerId", "customerEmail", "customerTel", "customerNo",
		"questionTitle", "searchTicketId", "searchContents", "accountId", "nodeId",
	} {
		bag[name] = args.String(name)
	}

	reply, err := t.backend.Call(ctx, "ticketUIService.selectList", bag)
	if err != nil {
		return toolresult.Error(err), nil
	}
	if !gateway.SingleFieldSuccess(reply) {
		return toolresult.Error(apperror.NewBackend(reply.FailureMessage())), nil
	}
	rowsList, ok := reply.List("dataList")
	if !ok {
		return toolresult.Error(apperror.NewBackend("unexpected response shape (missing dataList)")), nil
	}

	summary := ticketListSummary{
		TotalCount:    reply.Int("totalCount", 0),
		TotalPage:     reply.Int("totalPage", 1),
		ReturnedCount: len(rowsList),
		Tickets:       make([]ticketSummary, 0, len(rowsList)),
	}
	for _, item := range rowsList {
		row, ok := gateway.Row(item)
		if !ok {
			continue
		}
		summary.Tickets = append(summary.Tickets, ticketSummary{
			TicketID:      row.String("ticketId"),
			Status:        row.String("ticketStatus"),
			Title:         row.String("questionTitle"),
			CustomerName:  row.String("customerName"),
			CustomerID:    row.String("customerId"),
			CustomerEmail: row.String("customerEmail"),
			CustomerNo:    row.String("customerNo"),
			AccountName:   row.String("accountName"),
			NodePath:      row.String("nodePath"),
			ConnectDate:   row.String("connectDate"),
		})
	}

	t.log.Debug("ticket list fetched",
		slog.Int("returned", summary.ReturnedCount),
		slog.Int("total", summary.TotalCount))
	return toolresult.JSON(summary)
}

type ticketListSummary struct {
	TotalCount    int             `json:"totalCount"`
	TotalPage     int             `json:"totalPage"`
	ReturnedCount int             `json:"returnedCount"`
	Tickets       []ticketSummary `json:"tickets"`
}

type ticketSummary struct {
	TicketID      string `json:"ticketId"`
	Status        string `json:"status"`
	Title         string `json:"title"`
	CustomerName  string `json:"customerName"`
	CustomerID    string `json:"customerId"`
	CustomerEmail string `json:"customerEmail"`
	CustomerNo    string `json:"customerNo"`
	AccountName   string `json:"accountName"`
	NodePath      string `json:"nodePath"`
	ConnectDate   string `json:"connectDate"`
}

// defaultListParams is the fixed parameter template the ticket grid posts.
// The backend expects the whole template on every search, including the
// hundred empty optionNN columns; dropping keys changes the result set.
func defaultListParams() map[string]any {
	bag := map[string]any{
		"isNewSearch":    "false",
		"isDetailSearch": "false",
		"dbSearchFlag":   "Y",

		"dateRange": "",

		"selDetailTicketStatus": "ALL",

		"conversationType":          "",
		"selConversationType":       "",
		"selDetailConversationType": "",

		"customerNickname":      "",
		"selCustomerInfo":       "",
		"customerInfo":          "",
		"selDetailCustomerInfo": "",
		"detailCustomerInfo":    "",

		"accountGroupId":    "",
		"inChannelId":       "",
		"outChannelId":      "",
		"nodePath":          "",
		"accountName":       "",
		"whereAccountGroup": "",
		"callMenu":          "",

		"searchSummary": "",
		"searchString":  "",

		"apiServiceList": "",

		"selPerPage":         "50",
		"selectedCodeValue":  "",
		"targetField":        "",
		"answerType":         "",
		"whereFeedback":      "ALL",
		"feedback":           "",
		"whereAiScore":       "ALL",
		"aiScore":            "",
		"aiKeywordMatchType": "PARTIAL",
		"aiKeyword":          "",
		"codesetId":          "",
		"codeValue":          "",

		// jqGrid bookkeeping fields.
		"_search": "false",
		"nd":      time.Now().UnixMilli(),
		"sidx":    "",
		"sord":    "",
	}
	for i := 1; i <= 100; i++ {
		bag[fmt.Sprintf("option%02d", i)] = ""
	}
	return bag
}
