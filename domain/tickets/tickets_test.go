package tickets

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enomix-labs/eer-mcp/domain/gateway"
)

// stubCaller records the last command sent and returns a canned reply.
type stubCaller struct {
	reply   gateway.Reply
	err     error
	command string
	params  map[string]any
	calls   int
}

func (s *stubCaller) Call(_ context.Context, command string, params map[string]any) (gateway.Reply, error) {
	s.calls++
	s.command = command
	s.params = params
	return s.reply, s.err
}

func request(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestListTool_DefaultTemplate(t *testing.T) {
	stub := &stubCaller{reply: gateway.Reply{
		"ajaxCallResult": "S",
		"totalCount":     float64(2),
		"totalPage":      float64(1),
		"dataList": []any{
			map[string]any{"ticketId": "TCKT0000000001", "ticketStatus": "OPEN", "questionTitle": "printer down"},
			map[string]any{"ticketId": "TCKT0000000002", "ticketStatus": "CLOSED"},
		},
	}}
	tool := NewListTool(stub, slog.Default())

	res, err := tool.Handle(context.Background(), request(map[string]any{
		"startDate": "20260101000000",
		"endDate":   "20260131235959",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	assert.Equal(t, "ticketUIService.selectList", stub.command)
	assert.Equal(t, 1, stub.params["page"])
	assert.Equal(t, 20, stub.params["rows"])
	assert.Equal(t, "connect_date", stub.params["dateType"])
	assert.Equal(t, "false", stub.params["isNewSearch"])
	assert.Equal(t, "Y", stub.params["dbSearchFlag"])
	assert.Equal(t, "50", stub.params["selPerPage"])
	assert.Equal(t, "ALL", stub.params["whereFeedback"])
	assert.Equal(t, "PARTIAL", stub.params["aiKeywordMatchType"])
	assert.Equal(t, "false", stub.params["_search"])
	assert.NotZero(t, stub.params["nd"])
	assert.Equal(t, "", stub.params["option01"])
	assert.Equal(t, "", stub.params["option100"])
	assert.Equal(t, "", stub.params["customerName"])

	var summary struct {
		TotalCount    int `json:"totalCount"`
		ReturnedCount int `json:"returnedCount"`
		Tickets       []struct {
			TicketID string `json:"ticketId"`
			Status   string `json:"status"`
		} `json:"tickets"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &summary))
	assert.Equal(t, 2, summary.TotalCount)
	assert.Equal(t, 2, summary.ReturnedCount)
	require.Len(t, summary.Tickets, 2)
	assert.Equal(t, "TCKT0000000001", summary.Tickets[0].TicketID)
	assert.Equal(t, "OPEN", summary.Tickets[0].Status)
}

func TestListTool_StatusMirroredIntoThreeFields(t *testing.T) {
	stub := &stubCaller{reply: gateway.Reply{"ajaxCallResult": "S", "dataList": []any{}}}
	tool := NewListTool(stub, slog.Default())

	_, err := tool.Handle(context.Background(), request(map[string]any{
		"startDate":    "20260101000000",
		"endDate":      "20260131235959",
		"ticketStatus": "OPEN",
	}))
	require.NoError(t, err)

	assert.Equal(t, "OPEN", stub.params["ticketStatus"])
	assert.Equal(t, "OPEN", stub.params["selectTicketStatus"])
	assert.Equal(t, "OPEN", stub.params["selTicketStatus"])
	assert.Equal(t, "ALL", stub.params["selDetailTicketStatus"])
}

func TestListTool_ValidationStopsBeforeBackend(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing startDate", map[string]any{"endDate": "20260131235959"}},
		{"short date", map[string]any{"startDate": "2026", "endDate": "20260131235959"}},
		{"bad status", map[string]any{"startDate": "20260101000000", "endDate": "20260131235959", "ticketStatus": "WEIRD"}},
		{"rows out of range", map[string]any{"startDate": "20260101000000", "endDate": "20260131235959", "rows": float64(500)}},
		{"fractional page", map[string]any{"startDate": "20260101000000", "endDate": "20260131235959", "page": 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCaller{}
			tool := NewListTool(stub, slog.Default())
			res, err := tool.Handle(context.Background(), request(tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Zero(t, stub.calls, "validation failures must not reach the backend")
		})
	}
}

func TestListTool_BackendFailureMessage(t *testing.T) {
	stub := &stubCaller{reply: gateway.Reply{"ajaxCallResult": "N", "ajaxCallMessage": "query refused"}}
	tool := NewListTool(stub, slog.Default())

	res, err := tool.Handle(context.Background(), request(map[string]any{
		"startDate": "20260101000000",
		"endDate":   "20260131235959",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError, "backend failure must be flagged as an error result")
	assert.Contains(t, resultText(t, res), "query refused")
}

func TestDetailTool_RefQnaIDFallback(t *testing.T) {
	tests := []struct {
		name string
		form map[string]any
		want string
	}{
		{"refQnaId preferred", map[string]any{"refQnaId": "TCKT0000000011", "qnaId": "QNA1"}, "TCKT0000000011"},
		{"qnaId fallback", map[string]any{"qnaId": "QNA1"}, "QNA1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCaller{reply: gateway.Reply{
				"ajaxCallResult": "S",
				"dataMap":        map[string]any{"qnaForm": tt.form},
			}}
			tool := NewDetailTool(stub, slog.Default())
			res, err := tool.Handle(context.Background(), request(map[string]any{"ticketId": "TCKT0000177000"}))
			require.NoError(t, err)

			var summary struct {
				TicketID string `json:"ticketId"`
			}
			require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &summary))
			assert.Equal(t, tt.want, summary.TicketID)
		})
	}
}

func TestDetailTool_ContentsSanitizedWhenRequested(t *testing.T) {
	form := map[string]any{
		"refQnaId": "TCKT0000177000",
		"qnaProcessHistoryFormList": []any{
			map[string]any{
				"processSeq": float64(1),
				"title":      "answer",
				"contents":   `<p>hello&nbsp;<img src="/files/shot.png?x=1"> world</p>`,
			},
		},
		"inAttachList":  []any{map[string]any{}},
		"outAttachList": []any{map[string]any{}, map[string]any{}},
	}

	stub := &stubCaller{reply: gateway.Reply{
		"ajaxCallResult": "S",
		"dataMap":        map[string]any{"qnaForm": form},
	}}
	tool := NewDetailTool(stub, slog.Default())

	res, err := tool.Handle(context.Background(), request(map[string]any{
		"ticketId":        "TCKT0000177000",
		"includeContents": true,
	}))
	require.NoError(t, err)

	var summary struct {
		ProcessHistory []struct {
			Contents *string `json:"contents"`
		} `json:"processHistory"`
		Attachments struct {
			InCount  int `json:"inCount"`
			OutCount int `json:"outCount"`
		} `json:"attachments"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &summary))
	require.Len(t, summary.ProcessHistory, 1)
	require.NotNil(t, summary.ProcessHistory[0].Contents)
	assert.Equal(t, "hello [IMAGE: shot.png] world", *summary.ProcessHistory[0].Contents)
	assert.Equal(t, 1, summary.Attachments.InCount)
	assert.Equal(t, 2, summary.Attachments.OutCount)
}

func TestDetailTool_ContentsOmittedByDefault(t *testing.T) {
	stub := &stubCaller{reply: gateway.Reply{
		"ajaxCallResult": "S",
		"dataMap": map[string]any{"qnaForm": map[string]any{
			"refQnaId": "TCKT0000177000",
			"qnaProcessHistoryFormList": []any{
				map[string]any{"processSeq": float64(1), "contents": "secret body"},
			},
		}},
	}}
	tool := NewDetailTool(stub, slog.Default())

	res, err := tool.Handle(context.Background(), request(map[string]any{"ticketId": "TCKT0000177000"}))
	require.NoError(t, err)
	assert.NotContains(t, resultText(t, res), "secret body")
}

func TestDetailTool_InvalidTicketID(t *testing.T) {
	stub := &stubCaller{}
	tool := NewDetailTool(stub, slog.Default())

	res, err := tool.Handle(context.Background(), request(map[string]any{"ticketId": "TICKET-1"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Zero(t, stub.calls)
}

func TestDetailTool_MissingForm(t *testing.T) {
	stub := &stubCaller{reply: gateway.Reply{"ajaxCallResult": "S", "dataMap": map[string]any{}}}
	tool := NewDetailTool(stub, slog.Default())

	res, err := tool.Handle(context.Background(), request(map[string]any{"ticketId": "TCKT0000177000"}))
	require.NoError(t, err)
	assert.True(t, res.IsError, "a structurally absent ticket must be flagged as an error result")
	assert.True(t, strings.HasPrefix(resultText(t, res), "error:"))
}

func TestGroupTool_Defaults(t *testing.T) {
	stub := &stubCaller{reply: gateway.Reply{
		"ajaxCallResult": "S",
		"totalCount":     float64(1),
		"historyList": []any{
			map[string]any{
				"no": float64(1), "ticketId": "TCKT0000176991", "ticketStatus": "CLOSED",
				"inAttachCount": float64(3), "outAttachCount": float64(1),
			},
		},
	}}
	tool := NewGroupTool(stub, slog.Default())

	res, err := tool.Handle(context.Background(), request(map[string]any{"ticketId": "TCKT0000176991"}))
	require.NoError(t, err)

	assert.Equal(t, "qnaUIService.selectGroupTicketList", stub.command)
	assert.Equal(t, "SVQNA", stub.params["servicetype"])
	assert.Equal(t, 1, stub.params["page"])
	assert.Equal(t, 10, stub.params["rows"])

	var summary struct {
		Tickets []struct {
			Attachments struct {
				InCount int `json:"inCount"`
			} `json:"attachments"`
		} `json:"tickets"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &summary))
	require.Len(t, summary.Tickets, 1)
	assert.Equal(t, 3, summary.Tickets[0].Attachments.InCount)
}

func TestSiteLinksTool_TypeLabels(t *testing.T) {
	stub := &stubCaller{reply: gateway.Reply{
		"ajaxCallResult": "S",
		"siteId":         "enomix",
		"linkList": []any{
			map[string]any{"link_name": "flow", "link_type": "SI", "link_url": "https://drive.example/a"},
			map[string]any{"link_name": "misc", "link_type": "ZZ", "link_url": "https://drive.example/b"},
		},
	}}
	tool := NewSiteLinksTool(stub, slog.Default())

	res, err := tool.Handle(context.Background(), request(map[string]any{"siteId": "enomix"}))
	require.NoError(t, err)

	var summary siteLinkSummary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &summary))
	assert.Equal(t, "enomix", summary.SiteID)
	require.Len(t, summary.Links, 2)
	assert.Equal(t, "scenario", summary.Links[0].TypeDescription)
	assert.Equal(t, "ZZ", summary.Links[1].TypeDescription, "unknown codes pass through raw")
}

func TestSiteLinksTool_BlankSiteID(t *testing.T) {
	stub := &stubCaller{}
	tool := NewSiteLinksTool(stub, slog.Default())

	res, err := tool.Handle(context.Background(), request(map[string]any{"siteId": "   "}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Zero(t, stub.calls)
}

func TestTools_BackendFailureIsErrorResult(t *testing.T) {
	refused := gateway.Reply{"ajaxCallResult": "N", "ajaxCallMessage": "query refused"}
	stub := &stubCaller{reply: refused}

	tests := []struct {
		name   string
		handle func() (*mcp.CallToolResult, error)
	}{
		{"group", func() (*mcp.CallToolResult, error) {
			return NewGroupTool(stub, slog.Default()).
				Handle(context.Background(), request(map[string]any{"ticketId": "TCKT0000177000"}))
		}},
		{"sitelinks", func() (*mcp.CallToolResult, error) {
			return NewSiteLinksTool(stub, slog.Default()).
				Handle(context.Background(), request(map[string]any{"siteId": "enomix"}))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.handle()
			require.NoError(t, err)
			assert.True(t, res.IsError, "backend failure must be flagged as an error result")
			assert.Contains(t, resultText(t, res), "query refused")
		})
	}
}
