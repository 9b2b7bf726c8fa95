package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe fallback
// - default: Values common across all environments (timeouts, TTLs, demo constants)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Lane      LaneConfig
	Payment   PaymentConfig
	Relay     RelayConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" default:"8000"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:8000,http://127.0.0.1:8000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type LaneConfig struct {
	CodeTTL time.Duration `envconfig:"LANE_CODE_TTL" default:"10m"`
}

type PaymentConfig struct {
	SessionTTL    time.Duration `envconfig:"PAYMENT_SESSION_TTL" default:"5m"`
	Currency      string        `envconfig:"PAYMENT_CURRENCY" default:"USD"`
	MerchantName  string        `envconfig:"PAYMENT_MERCHANT_NAME" default:"DriveThru Demo"`
	SweepInterval time.Duration `envconfig:"PAYMENT_SWEEP_INTERVAL" default:"30s"` // 0 disables the sweeper
}

type RelayConfig struct {
	WriteWait  time.Duration `envconfig:"RELAY_WRITE_WAIT" default:"10s"`
	PongWait   time.Duration `envconfig:"RELAY_PONG_WAIT" default:"60s"`
	PingPeriod time.Duration `envconfig:"RELAY_PING_PERIOD" default:"54s"` // must be shorter than PongWait
	SendBuffer int           `envconfig:"RELAY_SEND_BUFFER" default:"64"`
	ReadLimit  int64         `envconfig:"RELAY_READ_LIMIT" default:"65536"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"0"` // 0 disables limiting
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func (c RateLimitConfig) Enabled() bool {
	return c.RPS > 0 && c.Burst > 0
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Relay.PingPeriod >= cfg.Relay.PongWait {
		return Config{}, fmt.Errorf("RELAY_PING_PERIOD (%s) must be shorter than RELAY_PONG_WAIT (%s)", cfg.Relay.PingPeriod, cfg.Relay.PongWait)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:8889"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Lane: LaneConfig{
			CodeTTL: 10 * time.Minute,
		},
		Payment: PaymentConfig{
			SessionTTL:    5 * time.Minute,
			Currency:      "USD",
			MerchantName:  "DriveThru Demo",
			SweepInterval: 0,
		},
		Relay: RelayConfig{
			WriteWait:  time.Second,
			PongWait:   5 * time.Second,
			PingPeriod: 4 * time.Second,
			SendBuffer: 64,
			ReadLimit:  65536,
		},
	}
}
