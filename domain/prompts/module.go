package prompts

import (
	"go.uber.org/fx"
)

var Module = fx.Module("prompts",
	fx.Provide(
		NewSearchTicketsPrompt,
		NewAnalyzeTicketsPrompt,
		NewDailyReportPrompt,
		NewInquireTicketPrompt,
		NewWorkflowPrompt,
	),
)
