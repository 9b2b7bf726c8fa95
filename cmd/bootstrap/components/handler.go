package components

import (
	"drivethru/internal/handler"
	"drivethru/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCustomerHandler,
		api.NewCashierHandler,
		api.NewPaymentHandler,
		api.NewLaneHandler,
		api.NewRelayHandler,
	),
	fx.Invoke(handler.NewRouter),
)
