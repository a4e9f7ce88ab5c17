package mcpsrv

import (
	"go.uber.org/fx"
)

var Module = fx.Module("mcpsrv",
	fx.Provide(
		NewServer,
		NewSSEServer,
	),
)
