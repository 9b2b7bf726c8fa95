package bootstrap

import (
	"drivethru/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	RelayModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
