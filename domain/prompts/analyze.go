package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// AnalyzeTicketsPrompt walks the model through a multi-step analysis of a
// period's tickets, drilling into the important ones with every operation
// the server offers.
type AnalyzeTicketsPrompt struct{}

func NewAnalyzeTicketsPrompt() *AnalyzeTicketsPrompt { return &AnalyzeTicketsPrompt{} }

func (p *AnalyzeTicketsPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("analyze_tickets",
		mcp.WithPromptDescription("Analyze a period's ticket data for patterns, trends and problem areas."),
		mcp.WithArgument("period",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Analysis period (e.g. 'today', 'this week', 'last month', 'past 7 days')"),
		),
		mcp.WithArgument("focus",
			mcp.ArgumentDescription("Analysis focus (e.g. 'response time', 'customer satisfaction', 'processing status', 'per-assignee load')"),
		),
	)
}

func (p *AnalyzeTicketsPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	period := req.Params.Arguments["period"]
	focus := req.Params.Arguments["focus"]

	focusText := ""
	if focus != "" {
		focusText = fmt.Sprintf("\nPay particular attention to %q.", focus)
	}

	text := fmt.Sprintf(`Analyze the ticket data for the period %q.%s

Current date: %s
One week ago: %s
One month ago: %s

## Analysis steps:

### Step 1: fetch the ticket list
- Use the ticket_select_list tool to fetch every ticket in the period
- Collect the baseline statistics:
  - Total ticket count and per-status distribution (OPEN, CLOSED, ANSWER_ING, ...)
  - Dominant inquiry types (patterns in questionTitle)
  - Inquiry frequency per customer
  - Processing load per assignee
  - Distribution per channel

### Step 2: drill into the important tickets
Perform a deep analysis of the tickets matching any of these criteria:
- Still OPEN
- Long processing time
- From customers who file repeat inquiries
- Related to the analysis focus

**For every important ticket, use all of the following operations:**

1. **Ticket detail**
   - Tool: qna_select_qna_form
   - Parameter: ticketId

2. **Work logs** (when the ticket carries a taskId)
   - Tool: task_select_task_log_list
   - Parameter: taskId (taken from the ticket)
   - Analyze: how the work progressed, how long it took, who acted

3. **Group tickets**
   - Tool: qna_select_group_ticket_list
   - Parameter: ticketId
   - Analyze: related tickets, repeat-inquiry signals

4. **Related knowledge**
   - Tool: kb_select_search_kb_list
   - Parameter: searchId (keywords extracted from the ticket body)
   - Analyze: resolutions, similar cases, usable KB articles

### Step 3: write the combined report

Structure the report like this:

#### Overall picture
- Period: %s
- Total tickets:
- Per-status distribution:
- Key statistics:

#### Important-ticket deep dives
For each important ticket:
- Ticket ID and title
- Current status and how it got there
- Work-log summary (when present)
- Related tickets and repeat-inquiry assessment
- Usable KB articles
- Recommended actions

---
**Important**: use all four operations for every important ticket so the analysis is complete.`,
		period, focusText, daysAgo(0), daysAgo(7), daysAgo(30), period)

	return mcp.NewGetPromptResult("Period ticket analysis", []mcp.PromptMessage{
		{
			Role:    mcp.RoleUser,
			Content: mcp.NewTextContent(text),
		},
	}), nil
}
