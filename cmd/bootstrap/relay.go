package bootstrap

import (
	"context"
	"log/slog"

	"drivethru/internal/relay"
	"drivethru/internal/usecase/shared"

	"go.uber.org/fx"
)

var RelayModule = fx.Module("relay",
	fx.Provide(
		NewHub,
		func(hub *relay.Hub) shared.Notifier { return hub },
	),
)

// NewHub disconnects every live channel when the app stops.
func NewHub(lc fx.Lifecycle, logger *slog.Logger) *relay.Hub {
	hub := relay.NewHub(logger.With("component", "relay"))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}
