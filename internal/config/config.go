package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-resto/internal/pricing"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	RedisURL           string
	JWTSecret          string
	JWTIssuer          string
	JWTAudience        string
	AccessTokenTTL     time.Duration
	CORSAllowedOrigins []string
	AutoMigrate        bool

	Pricing pricing.Config

	MenuCacheTTL   time.Duration
	IdempotencyTTL time.Duration
	LockTTL        time.Duration

	AuthRateLimitMax    int
	AuthRateLimitWindow time.Duration

	DefaultPageSize int
	MaxPageSize     int
	BodyLimitBytes  int64

	SecurityHeadersEnabled bool

	NotifyEmailEnabled bool
	NotifyEmailFrom    string
	QueueConcurrency   int
	QueueMaxRetry      int

	Obs Observability

	ShutdownTimeout    time.Duration
	HealthDBTimeout    time.Duration
	HealthRedisTimeout time.Duration
}

// Observability groups logging, metrics, tracing and profiling switches.
type Observability struct {
	LogFormat        string
	LogLevel         string
	MetricsEnabled   bool
	MetricsNamespace string
	MetricsBuckets   string
	TracingEnabled   bool
	TracingExporter  string
	OTLPEndpoint     string
	SamplingRatio    float64
	PprofEnabled     bool
	PprofUser        string
	PprofPass        string
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	v := vars{k}
	pricingCfg, err := loadPricing(v)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:             v.str("APP_ENV", "development"),
		Port:               v.str("PORT", "8080"),
		DatabaseURL:        v.str("DATABASE_URL", ""),
		RedisURL:           v.str("REDIS_URL", ""),
		JWTSecret:          v.str("JWT_SECRET", ""),
		JWTIssuer:          v.str("JWT_ISSUER", "backend-resto"),
		JWTAudience:        v.str("JWT_AUDIENCE", "resto-frontend"),
		AccessTokenTTL:     v.duration("ACCESS_TOKEN_TTL", "1h"),
		CORSAllowedOrigins: v.list("CORS_ALLOWED_ORIGINS"),
		AutoMigrate:        v.flag("DB_AUTO_MIGRATE", true),

		Pricing: pricingCfg,

		MenuCacheTTL:   v.duration("MENU_CACHE_TTL", "60s"),
		IdempotencyTTL: v.duration("IDEMPOTENCY_TTL", "24h"),
		LockTTL:        v.duration("LOCK_TTL", "10s"),

		AuthRateLimitMax:    v.integer("AUTH_RATE_LIMIT_MAX", 10),
		AuthRateLimitWindow: v.duration("AUTH_RATE_LIMIT_WINDOW", "1m"),

		DefaultPageSize: v.integer("PAGINATION_DEFAULT_SIZE", 20),
		MaxPageSize:     v.integer("PAGINATION_MAX_SIZE", 100),
		BodyLimitBytes:  int64(v.integer("HTTP_BODY_LIMIT_BYTES", 1<<20)),

		SecurityHeadersEnabled: v.flag("SECURITY_HEADERS_ENABLED", true),

		NotifyEmailEnabled: v.flag("NOTIFY_EMAIL_ENABLED", false),
		NotifyEmailFrom:    v.str("NOTIFY_EMAIL_FROM", "no-reply@resto.local"),
		QueueConcurrency:   v.integer("QUEUE_CONCURRENCY", 5),
		QueueMaxRetry:      v.integer("QUEUE_MAX_RETRY", 5),

		Obs: Observability{
			LogFormat:        v.str("OBS_LOG_FORMAT", "json"),
			LogLevel:         v.str("OBS_LOG_LEVEL", "info"),
			MetricsEnabled:   v.flag("OBS_ENABLE_PROMETHEUS", true),
			MetricsNamespace: v.str("OBS_METRICS_NAMESPACE", "resto"),
			MetricsBuckets:   v.str("OBS_METRICS_BUCKETS_MS", ""),
			TracingEnabled:   v.flag("OBS_ENABLE_TRACING", false),
			TracingExporter:  v.str("OBS_TRACING_EXPORTER", "otlp"),
			OTLPEndpoint:     v.str("OBS_OTLP_ENDPOINT", ""),
			SamplingRatio:    v.float("OBS_TRACING_SAMPLING_RATIO", 1),
			PprofEnabled:     v.flag("OBS_ENABLE_PPROF", false),
			PprofUser:        v.str("PPROF_BASIC_AUTH_USER", ""),
			PprofPass:        v.str("PPROF_BASIC_AUTH_PASS", ""),
		},

		ShutdownTimeout:    v.duration("SHUTDOWN_TIMEOUT", "15s"),
		HealthDBTimeout:    v.duration("HEALTH_READY_DB_TIMEOUT", "500ms"),
		HealthRedisTimeout: v.duration("HEALTH_READY_REDIS_TIMEOUT", "300ms"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}

	return cfg, nil
}

// loadPricing reads the tax regime. Unset values fall back to pricing.DefaultConfig.
func loadPricing(v vars) (pricing.Config, error) {
	cfg := pricing.DefaultConfig()

	if raw := strings.TrimSpace(v.str("PRICING_TAX_RATE", "")); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return pricing.Config{}, fmt.Errorf("PRICING_TAX_RATE: %w", err)
		}
		if rate.IsNegative() {
			return pricing.Config{}, errors.New("PRICING_TAX_RATE must not be negative")
		}
		cfg.TaxRate = rate
	}

	if raw := strings.TrimSpace(v.str("PRICING_ROUNDING_PRECISION", "")); raw != "" {
		precision, err := strconv.Atoi(raw)
		if err != nil || precision < 0 || precision > 8 {
			return pricing.Config{}, fmt.Errorf("PRICING_ROUNDING_PRECISION must be between 0 and 8, got %q", raw)
		}
		cfg.Precision = int32(precision)
	}

	if raw := strings.TrimSpace(v.str("PRICING_ROUNDING_MODE", "")); raw != "" {
		mode := pricing.ParseRoundingMode(raw)
		if mode == pricing.RoundHalfAwayFromZero && !strings.EqualFold(raw, string(pricing.RoundHalfAwayFromZero)) {
			return pricing.Config{}, fmt.Errorf("PRICING_ROUNDING_MODE: unsupported mode %q", raw)
		}
		cfg.Rounding = mode
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// vars reads typed values out of the flat env keyspace. Blank or malformed
// values fall back to the given default.
type vars struct{ k *koanf.Koanf }

func (v vars) raw(key string) string { return strings.TrimSpace(v.k.String(key)) }

func (v vars) str(key, fallback string) string {
	if s := v.raw(key); s != "" {
		return s
	}
	return fallback
}

func (v vars) list(key string) []string {
	var out []string
	for item := range strings.SplitSeq(v.raw(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (v vars) duration(key, fallback string) time.Duration {
	if d, err := time.ParseDuration(v.raw(key)); err == nil {
		return d
	}
	d, _ := time.ParseDuration(fallback)
	return d
}

func (v vars) integer(key string, fallback int) int {
	if n, err := strconv.Atoi(v.raw(key)); err == nil {
		return n
	}
	return fallback
}

func (v vars) float(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(v.raw(key), 64); err == nil {
		return f
	}
	return fallback
}

func (v vars) flag(key string, fallback bool) bool {
	switch strings.ToLower(v.raw(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
