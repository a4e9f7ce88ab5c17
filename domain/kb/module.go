package kb

import (
	"go.uber.org/fx"
)

var Module = fx.Module("kb",
	fx.Provide(
		NewNodeIDTool,
		NewSearchTool,
		NewDetailTool,
	),
)
