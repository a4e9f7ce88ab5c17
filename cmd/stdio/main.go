// Package main starts the stdio front end of the eer-mcp adapter, the
// transport desktop MCP clients launch as a subprocess. stdout belongs to
// the protocol; logs go to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/enomix-labs/eer-mcp/domain/gateway"
	"github.com/enomix-labs/eer-mcp/domain/kb"
	"github.com/enomix-labs/eer-mcp/domain/mcpsrv"
	"github.com/enomix-labs/eer-mcp/domain/prompts"
	"github.com/enomix-labs/eer-mcp/domain/session"
	"github.com/enomix-labs/eer-mcp/domain/tasks"
	"github.com/enomix-labs/eer-mcp/domain/tickets"
	"github.com/enomix-labs/eer-mcp/internal/config"
	"github.com/enomix-labs/eer-mcp/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "eer-mcp:", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.NewLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := session.NewStore(cfg, log)
	backend := gateway.NewClient(cfg, store, log)

	srv := mcpsrv.NewServer(mcpsrv.Params{
		Log:            log,
		TicketList:     tickets.NewListTool(backend, log),
		TicketDetail:   tickets.NewDetailTool(backend, log),
		TicketGroup:    tickets.NewGroupTool(backend, log),
		SiteLinks:      tickets.NewSiteLinksTool(backend, log),
		KbNodeID:       kb.NewNodeIDTool(backend, log),
		KbSearch:       kb.NewSearchTool(backend, log),
		KbDetail:       kb.NewDetailTool(backend, log),
		TaskLogs:       tasks.NewLogListTool(backend, log),
		SessionUpdate:  session.NewUpdateTool(store, cfg, log),
		SearchPrompt:   prompts.NewSearchTicketsPrompt(),
		AnalyzePrompt:  prompts.NewAnalyzeTicketsPrompt(),
		DailyPrompt:    prompts.NewDailyReportPrompt(),
		InquirePrompt:  prompts.NewInquireTicketPrompt(),
		WorkflowPrompt: prompts.NewWorkflowPrompt(),
	})

	return srv.ServeStdio()
}
