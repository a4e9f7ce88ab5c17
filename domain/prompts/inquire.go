package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// InquireTicketPrompt is the four-step comprehensive ticket inquiry:
// detail, work logs, group tickets, then related knowledge.
type InquireTicketPrompt struct{}

func NewInquireTicketPrompt() *InquireTicketPrompt { return &InquireTicketPrompt{} }

func (p *InquireTicketPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("inquire_ticket",
		mcp.WithPromptDescription("Analyze a ticket comprehensively. Prefer this prompt whenever a ticket is being inspected: it pulls the ticket detail (qna_select_qna_form), work logs (task_select_task_log_list), group tickets (qna_select_group_ticket_list) and related knowledge (kb_select_search_kb_list) into one combined analysis."),
		mcp.WithArgument("ticketId",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Ticket ID to inspect (e.g. TCKT0000177000)"),
		),
	)
}

func (p *InquireTicketPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	ticketID := req.Params.Arguments["ticketId"]

	text := fmt.Sprintf(`Fetch and analyze everything about ticket %q.

Perform these steps in order:

## Step 1: ticket detail
- Tool: qna_select_qna_form
- Parameter: ticketId = %q
- Collect: title, customer info, inquiry body, process history, linked taskId

## Step 2: work logs (when a taskId exists)
- Check the step 1 response for a taskId
- If present, call task_select_task_log_list
- Parameter: taskId = (from step 1)
- Collect: work progress logs, time spent, who acted

## Step 3: group tickets
- Tool: qna_select_group_ticket_list
- Parameter: ticketId = %q
- Collect: related tickets, linked inquiries

## Step 4: related knowledge
- Extract keywords from the step 1 title and body
- Tools: kb_select_node_id, kb_select_search_kb_list, kb_get_translate_script_km_contents
- Parameters:
  - searchId = (extracted keywords)
  - page = 1
  - rows = 5
- Collect: related KB articles, similar cases

## Final response format

- Keep it concise.

---

**Important:**
- If a call fails at any step, continue with the next step anyway
- Skip step 2 when there is no taskId
- Extract meaningful keywords from the ticket body for the knowledge search
- Structure the final answer so the user can read it easily`,
		ticketID, ticketID, ticketID)

	return mcp.NewGetPromptResult("Comprehensive ticket inquiry", []mcp.PromptMessage{
		{
			Role:    mcp.RoleUser,
			Content: mcp.NewTextContent(text),
		},
	}), nil
}
