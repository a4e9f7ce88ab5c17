// Package mcpsrv assembles the MCP server: one place that registers every
// tool and prompt and tracks client sessions. No business logic lives
// here, only wiring.
package mcpsrv

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/mark3labs/mcp-go/server"

	"github.com/enomix-labs/eer-mcp/domain/kb"
	"github.com/enomix-labs/eer-mcp/domain/prompts"
	"github.com/enomix-labs/eer-mcp/domain/session"
	"github.com/enomix-labs/eer-mcp/domain/tasks"
	"github.com/enomix-labs/eer-mcp/domain/tickets"
	"github.com/enomix-labs/eer-mcp/internal/version"
	"github.com/enomix-labs/eer-mcp/pkg/logger"

	"go.uber.org/fx"
)

// Params collects everything the server registers.
type Params struct {
	fx.In

	Log *slog.Logger

	TicketList    *tickets.ListTool
	TicketDetail  *tickets.DetailTool
	TicketGroup   *tickets.GroupTool
	SiteLinks     *tickets.SiteLinksTool
	KbNodeID      *kb.NodeIDTool
	KbSearch      *kb.SearchTool
	KbDetail      *kb.DetailTool
	TaskLogs      *tasks.LogListTool
	SessionUpdate *session.UpdateTool

	SearchPrompt   *prompts.SearchTicketsPrompt
	AnalyzePrompt  *prompts.AnalyzeTicketsPrompt
	DailyPrompt    *prompts.DailyReportPrompt
	InquirePrompt  *prompts.InquireTicketPrompt
	WorkflowPrompt *prompts.WorkflowPrompt
}

// Server wraps the MCP server with a live session count for the health
// endpoint.
type Server struct {
	mcp      *server.MCPServer
	sessions atomic.Int64
	log      *slog.Logger
}

// NewServer builds the MCP server and registers the full tool and prompt
// catalog.
func NewServer(p Params) *Server {
	s := &Server{log: p.Log.With(logger.Scope("mcp"))}

	hooks := &server.Hooks{}
	hooks.AddOnRegisterSession(func(ctx context.Context, cs server.ClientSession) {
		n := s.sessions.Add(1)
		s.log.Info("client session started",
			slog.String("session_id", cs.SessionID()),
			slog.Int64("active", n))
	})
	hooks.AddOnUnregisterSession(func(ctx context.Context, cs server.ClientSession) {
		n := s.sessions.Add(-1)
		s.log.Info("client session ended",
			slog.String("session_id", cs.SessionID()),
			slog.Int64("active", n))
	})

	s.mcp = server.NewMCPServer(
		"eer-mcp",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)

	s.mcp.AddTool(p.TicketList.Definition(), p.TicketList.Handle)
	s.mcp.AddTool(p.TicketDetail.Definition(), p.TicketDetail.Handle)
	s.mcp.AddTool(p.TicketGroup.Definition(), p.TicketGroup.Handle)
	s.mcp.AddTool(p.SiteLinks.Definition(), p.SiteLinks.Handle)
	s.mcp.AddTool(p.KbNodeID.Definition(), p.KbNodeID.Handle)
	s.mcp.AddTool(p.KbSearch.Definition(), p.KbSearch.Handle)
	s.mcp.AddTool(p.KbDetail.Definition(), p.KbDetail.Handle)
	s.mcp.AddTool(p.TaskLogs.Definition(), p.TaskLogs.Handle)
	s.mcp.AddTool(p.SessionUpdate.Definition(), p.SessionUpdate.Handle)

	s.mcp.AddPrompt(p.SearchPrompt.Definition(), p.SearchPrompt.Handle)
	s.mcp.AddPrompt(p.AnalyzePrompt.Definition(), p.AnalyzePrompt.Handle)
	s.mcp.AddPrompt(p.DailyPrompt.Definition(), p.DailyPrompt.Handle)
	s.mcp.AddPrompt(p.InquirePrompt.Definition(), p.InquirePrompt.Handle)
	s.mcp.AddPrompt(p.WorkflowPrompt.Definition(), p.WorkflowPrompt.Handle)

	return s
}

// MCP exposes the underlying server for transport front ends.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// ActiveSessions reports how many client sessions are currently connected.
func (s *Server) ActiveSessions() int64 { return s.sessions.Load() }

// ServeStdio runs the stdio transport until the client disconnects. The
// protocol owns stdout; all logging goes to stderr.
func (s *Server) ServeStdio() error {
	s.log.Info("serving on stdio")
	return server.ServeStdio(s.mcp)
}
