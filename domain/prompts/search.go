package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchTicketsPrompt turns a natural-language search request into
// ticket_select_list call instructions.
type SearchTicketsPrompt struct{}

func NewSearchTicketsPrompt() *SearchTicketsPrompt { return &SearchTicketsPrompt{} }

func (p *SearchTicketsPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("search_tickets",
		mcp.WithPromptDescription("Search tickets from a natural-language query. The query is translated into the matching tool calls."),
		mcp.WithArgument("query",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Search condition in plain language (e.g. 'open tickets filed today', 'last week's tickets from customer Hong')"),
		),
	)
}

func (p *SearchTicketsPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	query := req.Params.Arguments["query"]
	today := daysAgo(0)
	yesterday := daysAgo(1)
	weekAgo := daysAgo(7)

	text := fmt.Sprintf(`The user wants to search tickets as follows:

"%s"

Current date: %s
Yesterday: %s
One week ago: %s

Use the ticket_select_list tool to find the tickets matching this search condition.

Notes:
- Date format: YYYYMMDDHHMMSS (e.g. 20260219000000)
- "today" means %s000000 to %s235959
- "yesterday" means %s000000 to %s235959
- "last week" means %s000000 to %s235959
- ticketStatus: ALL (everything), OPEN (unresolved), CLOSED (resolved), ANSWER_ING (being answered)
- Results can be filtered by customer name, email, phone number and more

Summarize the search results so they are easy for the user to read.`,
		query, today, yesterday, weekAgo,
		today, today, yesterday, yesterday, weekAgo, today)

	return mcp.NewGetPromptResult("Natural-language ticket search", []mcp.PromptMessage{
		{
			Role:    mcp.RoleUser,
			Content: mcp.NewTextContent(text),
		},
	}), nil
}
