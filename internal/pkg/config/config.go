package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URLs, etc.)
// - default: Values common across all environments (debounce window, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Pricing   PricingConfig
	Cache     CacheConfig
	Reconcile ReconcileConfig
	Session   SessionConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// PricingConfig points at the authoritative remote pricing service.
type PricingConfig struct {
	BaseURL        string        `envconfig:"PRICING_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"PRICING_REQUEST_TIMEOUT" default:"10s"`
}

type CacheConfig struct {
	RedisAddr     string `envconfig:"CACHE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"CACHE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"CACHE_REDIS_DB" default:"0"`
	// CartKey is the fixed identifier the in-progress sale is persisted under.
	CartKey string `envconfig:"CACHE_CART_KEY" default:"pos:cart"`
}

type ReconcileConfig struct {
	DebounceWindow time.Duration `envconfig:"RECONCILE_DEBOUNCE_WINDOW" default:"250ms"`
}

type SessionConfig struct {
	PollInterval time.Duration `envconfig:"SESSION_POLL_INTERVAL" default:"30s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Pricing: PricingConfig{
			BaseURL:        "http://localhost:18080",
			RequestTimeout: time.Second,
		},
		Cache: CacheConfig{
			RedisAddr: "localhost:16379",
			CartKey:   "pos:cart:test",
		},
		Reconcile: ReconcileConfig{
			DebounceWindow: 10 * time.Millisecond,
		},
		Session: SessionConfig{
			PollInterval: time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
