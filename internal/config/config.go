package config

import (
	"log/slog"
	"os"
	"strconv"

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

	// Filesystem
	UploadsDir string
	WebDir     string

	// Uploads
	MaxUploadBytes int64

	// Startup
	OpenBrowser bool

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return &Config{
		AppName: envString("APP_NAME", "IPU PY Tesorería"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "8000"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/tesoreria.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		UploadsDir: envString("UPLOADS_DIR", "uploads"),
		WebDir:     envString("WEB_DIR", "web"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10<<20), // 10 MiB

		OpenBrowser: envBool("OPEN_BROWSER", true),

		SentryDSN: envString("SENTRY_DSN", ""),
	}
}

// URL returns the base URL the local server is reachable at.
func (c *Config) URL() string {
	return "http://localhost:" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("config invalid integer, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}
