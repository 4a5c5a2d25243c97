package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Cache backend selectors.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config is the storefront's environment-driven configuration.
type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	CatalogBaseURL  string        `envconfig:"CATALOG_BASE_URL" default:"https://fakestoreapi.com"`
	CatalogCacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"15m"`
	CacheBackend    string        `envconfig:"CACHE_BACKEND" default:"memory"`
	RedisAddr       string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD" default:""`
	CartDBPath      string        `envconfig:"CART_DB_PATH" default:"./cart.db"`
	MigrationsPath  string        `envconfig:"MIGRATIONS_PATH" default:"./internal/cart/repository/migrations"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from STOREFRONT_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.CacheBackend != CacheBackendMemory && cfg.CacheBackend != CacheBackendRedis {
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
	return &cfg, nil
}
