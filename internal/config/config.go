package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "CHECKOUT_"

type Config struct {
	Primary     Primary           `koanf:"primary"`
	Server      ServerConfig      `koanf:"server"`
	Database    DatabaseConfig    `koanf:"database"`
	PayPal      PayPalConfig      `koanf:"paypal"`
	Retry       RetryConfig       `koanf:"retry"`
	Logger      LoggerConfig      `koanf:"logger"`
	Idempotency IdempotencyConfig `koanf:"idempotency"`
	Tracing     TracingConfig     `koanf:"tracing"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// PayPalConfig selects the environment and credentials. Sandbox is off unless set and
// also turns on verbose gateway errors. BaseURL overrides the
// sandbox/live endpoint and is only needed for tests and proxies.
type PayPalConfig struct {
	ClientID             string        `koanf:"client_id" validate:"required"`
	ClientSecret         string        `koanf:"client_secret" validate:"required"`
	Sandbox              bool          `koanf:"sandbox"`
	BaseURL              string        `koanf:"base_url"`
	Timeout              time.Duration `koanf:"timeout" validate:"required"`
	Debug                bool          `koanf:"debug"`
	StandardErrorMessage string        `koanf:"standard_error_message"`
	DefaultCurrency      string        `koanf:"default_currency" validate:"required,len=3"`
	DefaultCountry       string        `koanf:"default_country" validate:"required,len=2"`
	BrandName            string        `koanf:"brand_name"`
}

// RetryConfig applies to access token acquisition only.
type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int32         `koanf:"max_retries"`
}

// TracingConfig enables OTLP/HTTP span export. An empty Endpoint disables tracing.
type TracingConfig struct {
	Endpoint    string `koanf:"endpoint"`
	Insecure    bool   `koanf:"insecure"`
	ServiceName string `koanf:"service_name" validate:"required"`
}

type IdempotencyConfig struct {
	Retention     time.Duration `koanf:"retention" validate:"required"`
	LockTimeout   time.Duration `koanf:"lock_timeout" validate:"required"`
	SweepInterval time.Duration `koanf:"sweep_interval" validate:"required"`
}

var defaults = map[string]interface{}{
	"primary.env":                 "development",
	"server.port":                 "8080",
	"server.read_timeout":         "30s",
	"server.write_timeout":        "30s",
	"server.idle_timeout":         "120s",
	"database.ssl_mode":           "disable",
	"database.max_open_conns":     10,
	"database.max_idle_conns":     2,
	"database.conn_max_lifetime":  "1h",
	"database.conn_max_idle_time": "30m",
	"paypal.sandbox":              false,
	"paypal.timeout":              "20s",
	"paypal.default_currency":     "EUR",
	"paypal.default_country":      "DE",
	"retry.base_delay":            "500ms",
	"retry.max_retries":           3,
	"logger.level":                "info",
	"tracing.service_name":        "checkout-gateway",
	"logger.format":               "json",
	"idempotency.retention":       "24h",
	"idempotency.lock_timeout":    "2m",
	"idempotency.sweep_interval":  "10m",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
