package components

import (
	"drivethru/internal/domain/lane"
	"drivethru/internal/pkg/clock"
	"drivethru/internal/pkg/ids"
	"drivethru/internal/usecase/commands"
	"drivethru/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ids.NewRandomGenerator,
	lane.NewRandomCodeGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLaneCommands,
		commands.NewCustomerCommands,
		commands.NewOrderCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewWalletQueries,
	),
)
