package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// DailyReportPrompt produces the skeleton for a one-day ticket report.
type DailyReportPrompt struct{}

func NewDailyReportPrompt() *DailyReportPrompt { return &DailyReportPrompt{} }

func (p *DailyReportPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("daily_ticket_report",
		mcp.WithPromptDescription("Generate a daily report summarizing one day's ticket handling."),
		mcp.WithArgument("date",
			mcp.ArgumentDescription("Report date as YYYYMMDD (default: today)"),
		),
	)
}

func (p *DailyReportPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	date := req.Params.Arguments["date"]
	if date == "" {
		date = daysAgo(0)
	}

	text := fmt.Sprintf(`Write the daily ticket report for %s.

Use the ticket_select_list tool to fetch the tickets between %s000000 and %s235959,
then write a report covering:

# Daily ticket report (%s)

## Overall picture
- Total tickets received
- Per-status distribution (open / in progress / closed)
- Change versus the previous day (when data allows)

## Customers
- New customers (first-time inquiries)
- Returning customers (inquired before)
- VIP customer inquiries (if any)

## Main issues
- Most frequent inquiry types (top 3)
- Tickets needing urgent handling
- Unanswered tickets

## Per-assignee picture
- Tickets handled per assignee
- Average response time (when data allows)

## Observations and suggestions
- Notable patterns or anomalies
- Improvement suggestions

Keep the report short and easy to read.`,
		date, date, date, readableDate(date))

	return mcp.NewGetPromptResult("Daily ticket report", []mcp.PromptMessage{
		{
			Role:    mcp.RoleUser,
			Content: mcp.NewTextContent(text),
		},
	}), nil
}
