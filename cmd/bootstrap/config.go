package bootstrap

import (
	"log/slog"

	"drivethru/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logSettings),
)

// logSettings records the timing knobs the demo is usually tuned with.
func logSettings(cfg config.Config, logger *slog.Logger) {
	logger.Info("drive-thru settings",
		"lane_code_ttl", cfg.Lane.CodeTTL,
		"payment_session_ttl", cfg.Payment.SessionTTL,
		"payment_sweep_interval", cfg.Payment.SweepInterval,
		"rate_limit_rps", cfg.RateLimit.RPS,
		"relay_send_buffer", cfg.Relay.SendBuffer,
	)
}
