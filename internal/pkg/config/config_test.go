package config_test

import (
	"testing"
	"time"

	"drivethru/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10*time.Minute, cfg.Lane.CodeTTL)
	assert.Equal(t, 5*time.Minute, cfg.Payment.SessionTTL)
	assert.Equal(t, "USD", cfg.Payment.Currency)
	assert.Equal(t, "DriveThru Demo", cfg.Payment.MerchantName)
	assert.Equal(t, 30*time.Second, cfg.Payment.SweepInterval)
	assert.Equal(t, 64, cfg.Relay.SendBuffer)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowMethods)
	assert.False(t, cfg.RateLimit.Enabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LANE_CODE_TTL", "30s")
	t.Setenv("PAYMENT_SWEEP_INTERVAL", "0")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test,http://b.test")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Lane.CodeTTL)
	assert.Zero(t, cfg.Payment.SweepInterval)
	assert.True(t, cfg.RateLimit.Enabled())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowOrigins)
}

func TestLoadConfigRejectsPingAfterPong(t *testing.T) {
	t.Setenv("RELAY_PING_PERIOD", "60s")
	t.Setenv("RELAY_PONG_WAIT", "60s")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "RELAY_PING_PERIOD")
}

func TestLoadConfigRejectsMalformedValues(t *testing.T) {
	t.Setenv("LANE_CODE_TTL", "ten minutes")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "failed to process env config")
}

func TestRateLimitEnabled(t *testing.T) {
	assert.False(t, config.RateLimitConfig{RPS: 1, Burst: 0}.Enabled())
	assert.False(t, config.RateLimitConfig{RPS: 0, Burst: 5}.Enabled())
	assert.True(t, config.RateLimitConfig{RPS: 1, Burst: 5}.Enabled())
}
