package bootstrap

import (
	"log/slog"

	"drivethru/internal/infra/memstore"
	"drivethru/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
		memstore.NewUnitOfWork,
		fx.Annotate(
			memstore.NewReadStore,
			fx.As(new(queries.OrderReadStore)),
			fx.As(new(queries.WalletReadStore)),
		),
	),
)

func NewStore(logger *slog.Logger) *memstore.Store {
	return memstore.NewStore(logger.With("component", "memstore"))
}
