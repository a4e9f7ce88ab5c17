// Package kb exposes the knowledge-base operations: resolving a customer's
// KB node, searching articles under a node and fetching one article's
// contents.
package kb

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/enomix-labs/eer-mcp/domain/gateway"
	"github.com/enomix-labs/eer-mcp/pkg/apperror"
	"github.com/enomix-labs/eer-mcp/pkg/logger"
	"github.com/enomix-labs/eer-mcp/pkg/params"
	"github.com/enomix-labs/eer-mcp/pkg/toolresult"
)

var (
	dateTimeRe = regexp.MustCompile(`^\d{14}$`)
	kbIDRe     = regexp.MustCompile(`^KNOW\d{10}$`)
)

// NodeIDTool is the kb_select_node_id operation: it resolves the KB node
// that holds a customer's knowledge, the entry point for KB searches.
type NodeIDTool struct {
	backend gateway.Caller
	log     *slog.Logger
}

func NewNodeIDTool(backend gateway.Caller, log *slog.Logger) *NodeIDTool {
	return &NodeIDTool{backend: backend, log: log.With(logger.Scope("kb.nodeid"))}
}

func (t *NodeIDTool) Definition() mcp.Tool {
	return mcp.NewTool("kb_select_node_id",
		mcp.WithDescription("Resolve the knowledge-base node ID for a customer. The returned nodeId feeds kb_select_search_kb_list."),
		mcp.WithString("alias",
			mcp.Required(),
			mcp.Description("Customer ID (the ticket's customerId value, e.g. 49)"),
		),
		mcp.WithString("customerNo",
			mcp.Required(),
			mcp.Description("Customer company (the ticket's customerNo value, e.g. LGU+)"),
		),
		mcp.WithBoolean("moreFlag", mcp.Description("Extended lookup flag (default: false)")),
	)
}

func (t *NodeIDTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := params.Args(req.GetArguments())

	alias, err := args.RequiredNonBlank("alias")
	if err != nil {
		return toolresult.Error(err), nil
	}
	customerNo, err := args.RequiredNonBlank("customerNo")
	if err != nil {
		return toolresult.Error(err), nil
	}

	reply, err := t.backend.Call(ctx, "kbUIService.selectNodeId", map[string]any{
		"alias":      alias,
		"customerNo": customerNo,
		// always sent as a literal string, never a JSON bool
		"moreFlag": strconv.FormatBool(args.Bool("moreFlag", false)),
	})
	if err != nil {
		return toolresult.Error(err), nil
	}
	if !gateway.SingleFieldSuccess(reply) {
		return toolresult.Error(apperror.NewBackend(reply.FailureMessage())), nil
	}

	nodeID := reply.String("nodeId")
	if nodeID == "" {
		return toolresult.Error(apperror.NewNotFound("no KB node for customer " + customerNo)), nil
	}

	t.log.Debug("node id resolved", slog.String("node_id", nodeID))
	return toolresult.JSON(nodeIDSummary{
		NodeID:     nodeID,
		CustomerID: alias,
		CustomerNo: customerNo,
	})
}

type nodeIDSummary struct {
	NodeID     string `json:"nodeId"`
	CustomerID string `json:"customerId"`
	CustomerNo string `json:"customerNo"`
}
