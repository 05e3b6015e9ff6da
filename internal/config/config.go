package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Folders and share tokens
	BcryptCost           int
	DefaultLifetimeYears int
	SweepInterval        time.Duration // 0 disables the in-process sweeper
	CleanupToken         string        // Optional bearer token guarding POST /api/cleanup

	// HTTP
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	MetricsEnabled bool

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "foldervault"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "3000"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/foldervault.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),

		// Folders and share tokens
		BcryptCost:           envInt("BCRYPT_COST", 10),
		DefaultLifetimeYears: envInt("DEFAULT_LIFETIME_YEARS", 5),
		SweepInterval:        envDuration("SWEEP_INTERVAL", 0),
		CleanupToken:         envString("CLEANUP_TOKEN", ""),

		// HTTP
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 15*time.Second),
		MaxBodyBytes:   int64(envInt("MAX_BODY_BYTES", 1<<20)), // 1 MiB
		MetricsEnabled: envBool("METRICS_ENABLED", true),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.DefaultLifetimeYears <= 0 {
		slog.Warn("config DEFAULT_LIFETIME_YEARS must be positive, using 5", "value", cfg.DefaultLifetimeYears)
		cfg.DefaultLifetimeYears = 5
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction rejects settings that are only acceptable for local testing.
func validateProduction(cfg *Config) {
	if cfg.BcryptCost < 10 {
		slog.Error("production deployment requires BCRYPT_COST >= 10",
			"value", cfg.BcryptCost,
			"hint", "set APP_ENV=development for faster local hashing")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

// envParse reads key with parse, logging and returning def when the value
// is unset or malformed.
func envParse[T any](key string, def T, parse func(string) (T, error)) T {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	parsed, err := parse(v)
	if err != nil {
		slog.Warn("config invalid value, using default", "key", key, "value", v, "default", def)
		return def
	}
	return parsed
}

func envInt(key string, def int) int {
	return envParse(key, def, strconv.Atoi)
}

func envBool(key string, def bool) bool {
	return envParse(key, def, strconv.ParseBool)
}

func envDuration(key string, def time.Duration) time.Duration {
	return envParse(key, def, time.ParseDuration)
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// The cleanup token, Sentry DSN and database connection string are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:              c.AppName,
		AppEnv:               c.AppEnv,
		Port:                 c.Port,
		DBDriver:             c.DBDriver,
		BcryptCost:           c.BcryptCost,
		DefaultLifetimeYears: c.DefaultLifetimeYears,
		SweepInterval:        c.SweepInterval,
		RequestTimeout:       c.RequestTimeout,
		MaxBodyBytes:         c.MaxBodyBytes,
		MetricsEnabled:       c.MetricsEnabled,
	}
}
