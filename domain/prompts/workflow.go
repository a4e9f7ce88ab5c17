package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// WorkflowPrompt assembles a ticket-analysis instruction set from reusable
// blocks. The workflow argument picks the call sequence:
//
//   - history: deep dive into similar past tickets
//   - technical: KB-document and solution centered
//   - task: work-log centered progress analysis
//   - comprehensive: everything, in phases
//   - quick: essentials only
type WorkflowPrompt struct{}

func NewWorkflowPrompt() *WorkflowPrompt { return &WorkflowPrompt{} }

func (p *WorkflowPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("ticket_workflow",
		mcp.WithPromptDescription("Analyze a ticket following a typed workflow: history (past cases), technical (KB solutions), task (work logs), comprehensive (everything), quick (essentials)."),
		mcp.WithArgument("ticketId",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Ticket ID to analyze (e.g. TCKT0000177000)"),
		),
		mcp.WithArgument("workflow",
			mcp.ArgumentDescription("Workflow type: history, technical, task, comprehensive or quick (default: comprehensive)"),
		),
		mcp.WithArgument("depth",
			mcp.ArgumentDescription("Analysis depth: shallow, normal or deep (default: normal)"),
		),
		mcp.WithArgument("taskId",
			mcp.ArgumentDescription("Task ID for the task workflow, when already known (e.g. TASK0000012098)"),
		),
	)
}

func (p *WorkflowPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments
	ticketID := args["ticketId"]
	depth := args["depth"]
	if depth != "shallow" && depth != "deep" {
		depth = "normal"
	}

	var text string
	switch args["workflow"] {
	case "history":
		text = historyWorkflow(ticketID, depth)
	case "technical":
		text = technicalWorkflow(ticketID, depth)
	case "task":
		text = taskWorkflow(ticketID, args["taskId"])
	case "quick":
		text = quickWorkflow(ticketID)
	default:
		text = comprehensiveWorkflow(ticketID, depth)
	}

	return mcp.NewGetPromptResult("Ticket workflow analysis", []mcp.PromptMessage{
		{
			Role:    mcp.RoleUser,
			Content: mcp.NewTextContent(text),
		},
	}), nil
}

// Reusable tool-usage blocks. Every workflow is stitched together from
// these so the call conventions stay consistent across workflows.

func blockTicketDetail(ticketID string) string {
	return fmt.Sprintf("### Fetch the ticket detail\n"+
		"```\nTool: qna_select_qna_form\nParameter: ticketId = %q\n```\n"+
		"**Collect:**\n"+
		"- Title, body, customer info\n"+
		"- Inquiry type and keywords\n"+
		"- Linked taskId (when present)\n"+
		"- Process history (processHistory)", ticketID)
}

func blockTaskLog(taskID string) string {
	return fmt.Sprintf("### Fetch the work logs\n"+
		"```\nTool: task_select_task_log_list\nParameter: taskId = %s\n```\n"+
		"**Analyze:**\n"+
		"- Work log entries (contents)", taskID)
}

func blockGroupTickets(ticketID string) string {
	return fmt.Sprintf("### Fetch the group tickets\n"+
		"```\nTool: qna_select_group_ticket_list\nParameter: ticketId = %q\n```\n"+
		"**Collect:**\n"+
		"- The related tickets in the same group", ticketID)
}

func blockSiteLinks() string {
	return "### Fetch the customer site links\n" +
		"```\nTool: qna_select_site_conn_link_list\nParameter: siteId = (the ticket's customerId)\n```\n" +
		"**Purpose:**\n" +
		"- Understand the customer's site environment"
}

func blockSimilarTickets(byCustomer bool, rows int, period string) string {
	filter := "- questionTitle = (extracted key keywords)"
	if byCustomer {
		filter = "- customerName = (the customer's name)"
	}
	return fmt.Sprintf("### Search similar tickets\n"+
		"```\nTool: ticket_select_list\nParameter:\n  %s\n"+
		"  - ticketStatus = \"ALL\"\n"+
		"  - startDate = %s\n"+
		"  - endDate = (now)\n"+
		"  - rows = %d\n```\n"+
		"**Purpose:** find similar past tickets", filter, period, rows)
}

func blockSimilarTicketDetails(count int) string {
	return fmt.Sprintf("### Inspect the top similar tickets\n"+
		"```\nFor the top %d similar tickets:\nTool: qna_select_qna_form\nParameter: ticketId = (each similar ticket's ID)\n```\n"+
		"**Analyze:** resolutions, processing steps, outcomes", count)
}

// Report blocks shared by the workflow templates.

func reportTicketSummary(ticketID string) string {
	return fmt.Sprintf("### Ticket overview\n"+
		"- Ticket ID: %s\n"+
		"- Title and key content\n"+
		"- Customer info and status\n"+
		"- Received date", ticketID)
}

func reportHistoryAnalysis(count int) string {
	return fmt.Sprintf("### Similar-case analysis\n"+
		"- %d similar tickets reviewed\n"+
		"- **Patterns:**\n"+
		"  - Recurring problems: (what they share)\n"+
		"  - Resolutions that worked: (effective approaches)\n"+
		"  - Attempts that failed: (approaches to avoid)", count)
}

const reportRecommendations = `### Recommended actions
**Recommendations:**
1. (best option)
2. (alternative 1)
3. (alternative 2)

### Actions to take now
1. (priority 1)
2. (priority 2)
3. (priority 3)`

const reportTechnicalSolution = `### Technical problem summary
- Problem type and keywords
- Scope of impact

### Step-by-step guide, ready to execute
1. [step 1] (concrete action)
2. [step 2] (next action)
3. [step 3] (how to verify)`

func historyWorkflow(ticketID, depth string) string {
	rows := 10
	detailCount := 5
	switch depth {
	case "deep":
		rows = 20
	case "shallow":
		rows, detailCount = 5, 3
	}

	steps := strings.Join([]string{
		"## Step 1",
		blockTicketDetail(ticketID),
		"## Step 2",
		blockGroupTickets(ticketID),
		"## Step 3",
		blockSimilarTickets(false, rows, "(3 months ago)"),
		"## Step 4",
		blockSimilarTicketDetails(detailCount),
		"## Step 5",
		blockTaskLog("(each ticket's taskId)"),
		"**Analyze:** past resolution paths, time spent, success and failure patterns",
		"\n## Step 6",
		blockTaskLog("(the taskId from step 1)"),
	}, "\n")

	report := strings.Join([]string{
		reportTicketSummary(ticketID),
		reportHistoryAnalysis(rows),
		"### Detailed case reviews\nFor each case:\n- Ticket ID and date\n- The problem and how it was resolved",
		reportRecommendations,
	}, "\n")

	return fmt.Sprintf(`Run a **history-centered analysis** of ticket %q.

## Workflow: HISTORY

Find and deeply analyze similar past cases.

%s

---

## Final analysis report

%s

---
**Workflow complete:** all step calls made and combined analysis delivered`, ticketID, steps, report)
}

func technicalWorkflow(ticketID, depth string) string {
	rows := 5
	if depth == "deep" {
		rows = 15
	}

	steps := strings.Join([]string{
		"## Step 1",
		blockTicketDetail(ticketID),
		"## Step 2",
		blockGroupTickets(ticketID),
		"**Keyword extraction:** keywords, error messages, product names",
		"## Step 3",
		blockSiteLinks(),
		"## Step 4",
		blockSimilarTickets(false, rows, "(6 months ago)"),
		"## Step 5",
		"Search the knowledge base for the extracted keywords (kb_select_node_id, then kb_select_search_kb_list, then kb_get_translate_script_km_contents for the best matches)",
	}, "\n")

	return fmt.Sprintf(`Run a **technical analysis** of ticket %q.

## Workflow: TECHNICAL

Analyze around KB documents and technical solutions.

%s

---

## Final technical report

%s

%s

### Similar cases
- Past technical issues already resolved
- How they were fixed and what happened

---

**Workflow complete:** technical solution delivered`, ticketID, steps, reportTicketSummary(ticketID), reportTechnicalSolution)
}

func taskWorkflow(ticketID, taskID string) string {
	taskRef := "(the taskId from step 1)"
	if taskID != "" {
		taskRef = fmt.Sprintf("%q", taskID)
	}

	steps := strings.Join([]string{
		"## Step 1",
		blockTicketDetail(ticketID),
		"## Step 2",
		blockTaskLog(taskRef),
		"**Analyze:** who worked on it, in what order, and how long each entry took",
		"## Step 3",
		blockGroupTickets(ticketID),
	}, "\n")

	return fmt.Sprintf(`Run a **work-progress analysis** of ticket %q.

## Workflow: TASK

Reconstruct how the work on this ticket actually progressed from its logs.

%s

---

## Final work-progress report

%s

### Work timeline
- Entries in chronological order with elapsed time
- Gaps or stalls in the progress
- Who handled each phase

%s

---

**Workflow complete:** work-progress analysis delivered`, ticketID, steps, reportTicketSummary(ticketID), reportRecommendations)
}

func comprehensiveWorkflow(ticketID, depth string) string {
	ticketRows := 10
	detailCount := 3
	switch depth {
	case "deep":
		ticketRows, detailCount = 15, 5
	case "shallow":
		ticketRows = 5
	}

	phase1 := strings.Join([]string{
		"### Phase 1: baseline information",
		"#### 1-1",
		blockTicketDetail(ticketID),
		"#### 1-2",
		blockGroupTickets(ticketID),
		"#### 1-3",
		blockSiteLinks(),
	}, "\n")

	phase2 := strings.Join([]string{
		"### Phase 2: history",
		"#### 2-1",
		blockSimilarTickets(false, ticketRows, "(3 months ago)"),
		"#### 2-2",
		blockSimilarTicketDetails(detailCount),
	}, "\n")

	phase3 := strings.Join([]string{
		"### Phase 3: work logs",
		"#### 3-1",
		blockTaskLog("(the 1-1 taskId, when present)"),
		"#### 3-2",
		blockTaskLog("(the 2-2 tickets' taskIds)"),
	}, "\n")

	return fmt.Sprintf(`Run a **comprehensive analysis** of ticket %q.

## Workflow: COMPREHENSIVE

Analyze every aspect, balanced across the phases.

%s

%s

%s

---

## Final comprehensive report

### Executive summary
- Ticket overview and core issue
- Current status
- Recommended actions (3-line summary)

### Detailed analysis

#### A. Ticket information
%s

#### B. History
%s

#### C. Technical solution
%s

#### D. Related information
- Group tickets, site links, further references

### Combined recommendations

#### Immediately
1. (top-priority action)
2. (urgent action)

#### Short term (1-3 days)
1. (planned action)

#### Longer term
1. (improvement and prevention)

### Risk assessment
- Complexity, urgency and expected difficulty

---
**Workflow complete:** every phase done and combined analysis delivered`,
		ticketID, phase1, phase2, phase3,
		reportTicketSummary(ticketID), reportHistoryAnalysis(ticketRows), reportTechnicalSolution)
}

func quickWorkflow(ticketID string) string {
	steps := strings.Join([]string{
		"## Step 1",
		blockTicketDetail(ticketID),
		"## Step 2",
		blockGroupTickets(ticketID),
		"## Step 3",
		blockTaskLog("(the taskId from step 1, only when present)"),
	}, "\n")

	return fmt.Sprintf(`Run a **quick lookup** of ticket %q.

## Workflow: QUICK

Check the essentials only.

%s

---

## Short summary report

### Basic information
- Ticket ID: %s
- Title and status
- Customer info

### Inquiry body
(3-line essence)

### State
- Received date and processing status
- Related ticket count

### Next action
(one-line recommendation)

---
**Workflow complete:** essentials delivered`, ticketID, steps, ticketID)
}
