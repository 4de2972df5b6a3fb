// Package config provides centralized configuration management for the application.
// It loads configuration from an optional TOML file and environment variables
// with sensible defaults, and validates all settings on startup to fail fast
// on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// SourcePostgres is the DATA_SOURCE value that selects the database table source.
const SourcePostgres = "postgres"

// Config holds all application configuration.
// Every setting can come from the TOML file named by CONFIG_FILE and be
// overridden by its environment variable.
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Data     DataConfig      `toml:"data"`
	Database DatabaseConfig  `toml:"database"`
	Rate     RateLimitConfig `toml:"rate"`
	Security SecurityConfig  `toml:"security"`
	Logging  LoggingConfig   `toml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `toml:"host" env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `toml:"port" env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `toml:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `toml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `toml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `toml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// DataConfig holds record source settings.
type DataConfig struct {
	// Source is a file path, an http(s) URL, or "postgres" (default: data/APTAMERS.jsonl)
	Source string `toml:"source" env:"DATA_SOURCE" default:"data/APTAMERS.jsonl" required:"true"`

	// FetchTimeout bounds a single load from the source; 0 disables it (default: 30s)
	FetchTimeout time.Duration `toml:"fetch_timeout" env:"DATA_FETCH_TIMEOUT" default:"30s"`

	// MaxLineBytes is the longest accepted NDJSON line (default: 1MB)
	MaxLineBytes int `toml:"max_line_bytes" env:"DATA_MAX_LINE_BYTES" default:"1048576"`

	// Watch reloads records when the data file changes (default: false)
	Watch bool `toml:"watch" env:"DATA_WATCH" default:"false"`

	// WatchDebounce is how long the file must be quiet before a reload (default: 300ms)
	WatchDebounce time.Duration `toml:"watch_debounce" env:"DATA_WATCH_DEBOUNCE" default:"300ms"`

	// Table is the database table read when Source is "postgres" (default: aptamers)
	Table string `toml:"table" env:"DATA_TABLE" default:"aptamers"`
}

// UsesPostgres reports whether records come from the database.
func (d *DataConfig) UsesPostgres() bool {
	return d.Source == SourcePostgres
}

// DatabaseConfig holds database connection settings.
// Only used when the data source is "postgres".
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `toml:"url" env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `toml:"max_conns" env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of connections to keep open (default: 0)
	MinConns int `toml:"min_conns" env:"DB_MIN_CONNS" default:"0"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `toml:"enabled" env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the sustained rate per IP (default: 120)
	RequestsPerMinute int `toml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`

	// Burst is how many requests an IP may make at once (default: 20)
	Burst int `toml:"burst" env:"RATE_LIMIT_BURST" default:"20"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `toml:"trusted_proxies" env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `toml:"enable_csp" env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `toml:"level" env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `toml:"format" env:"LOG_FORMAT" default:"text"`

	// File additionally writes logs to a rotated file when set
	File string `toml:"file" env:"LOG_FILE"`

	// MaxSizeMB is the size at which the log file is rotated (default: 10)
	MaxSizeMB int `toml:"max_size_mb" env:"LOG_MAX_SIZE_MB" default:"10"`

	// MaxBackups is how many rotated files are kept (default: 5)
	MaxBackups int `toml:"max_backups" env:"LOG_MAX_BACKUPS" default:"5"`

	// MaxAgeDays is how long rotated files are kept (default: 30)
	MaxAgeDays int `toml:"max_age_days" env:"LOG_MAX_AGE_DAYS" default:"30"`

	// Compress gzips rotated files (default: true)
	Compress bool `toml:"compress" env:"LOG_COMPRESS" default:"true"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
