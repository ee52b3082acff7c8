package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// FallbackAPIBase is used when PUBLIC_API_BASE is missing or not a well-formed
// http(s) URL. Availability over strictness: a bad base never blocks startup.
const FallbackAPIBase = "http://127.0.0.1:5000"

// Config holds the application's configuration values.
// Tags like `envconfig:"PORT"` specify the environment variable name.
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	HttpServer ServerConfig
	Catalog    CatalogConfig
	Cart       CartConfig
}

// ServerConfig holds HTTP server-specific configuration.
type ServerConfig struct {
	Port         string        `envconfig:"PORT" default:"5000"`
	TimeoutRead  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_READ" default:"15s"`
	TimeoutWrite time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_WRITE" default:"15s"`
	TimeoutIdle  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_IDLE" default:"60s"`
}

// CatalogConfig holds the public catalogue API settings injected into the
// storefront page and used by the catalogue client.
type CatalogConfig struct {
	PublicAPIKey  string `envconfig:"PUBLIC_API_KEY" default:"public-demo-key-12345"`
	PublicAPIBase string `envconfig:"PUBLIC_API_BASE" default:"http://localhost:5000"`
	PerPage       int    `envconfig:"PUBLIC_API_PER_PAGE" default:"50"`
}

// CartConfig holds the cart persistence settings: the embedded database file
// and the single well-known slot key the serialized cart list lives under.
type CartConfig struct {
	DBPath     string `envconfig:"CART_DB_PATH" default:"storefront.db"`
	StorageKey string `envconfig:"CART_STORAGE_KEY" default:"cart"`
}

var validate = validator.New()

// Load initializes the configuration from environment variables.
// It should be called once during application startup.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to process configuration: %w", err)
	}
	cfg.Catalog.PublicAPIBase = ResolveAPIBase(cfg.Catalog.PublicAPIBase)
	return &cfg, nil
}

// ResolveAPIBase validates a candidate API base URL and falls back to
// FallbackAPIBase with a warning when it is missing or malformed. A trailing
// slash is trimmed so request paths can be appended directly.
func ResolveAPIBase(base string) string {
	base = strings.TrimSpace(base)
	if err := validate.Var(base, "required,http_url"); err != nil {
		log.WithField("base", base).Warn("invalid or missing public API base, falling back to default")
		base = FallbackAPIBase
	}
	return strings.TrimSuffix(base, "/")
}
