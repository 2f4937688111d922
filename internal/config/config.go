// Package config provides centralized configuration management for the
// importer. It loads settings from environment variables with sensible
// defaults and validates the result on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all importer configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Import   ImportConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings. The URL is only
// required when a run actually loads into the store; file-only runs and
// format listing work without it.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of connections to keep open (default: 1)
	MinConns int `env:"DB_MIN_CONNS" default:"1"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// ImportConfig holds import-run settings.
type ImportConfig struct {
	// TenantID is the default tenant assigned to loaded records, overridable
	// per run with --tenant (default: the shared test tenant)
	TenantID string `env:"IMPORT_TENANT_ID" default:"00000000-0000-0000-0000-000000000001"`

	// CopyTimeout bounds the bulk-copy round trip (default: 10m)
	CopyTimeout time.Duration `env:"IMPORT_COPY_TIMEOUT" default:"10m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
