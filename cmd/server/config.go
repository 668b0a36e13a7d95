package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/vncsmyrnk/awards/internal/adapters/repository/postgres"
)

const (
	storagePostgres = "postgres"
	storageMemory   = "memory"

	authJWT    = "jwt"
	authGoogle = "google"
)

type config struct {
	Port            int
	Storage         string
	DatabaseURL     string
	CatalogSeed     string
	AuthProvider    string
	JWTSecret       string
	JWTAudience     string
	GoogleClientID  string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// loadConfig reads the environment (already populated from .env by the caller)
// and lets command line flags override it.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	var (
		cfg      config
		logLevel string
	)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", envInt(getenv, "PORT", 8080), "HTTP port")
	fs.StringVar(&cfg.Storage, "storage", envString(getenv, "STORAGE", storagePostgres), "Storage backend (postgres or memory)")
	fs.StringVar(&cfg.DatabaseURL, "database-url", postgres.ConnString(getenv), "PostgreSQL connection string")
	fs.StringVar(&cfg.CatalogSeed, "catalog-seed", getenv("CATALOG_SEED"), "JSON catalog used by the memory storage")
	fs.StringVar(&cfg.AuthProvider, "auth-provider", envString(getenv, "AUTH_PROVIDER", authJWT), "Access token verifier (jwt or google)")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", getenv("JWT_SECRET"), "HS256 secret used to verify access tokens")
	fs.StringVar(&cfg.JWTAudience, "jwt-audience", getenv("JWT_AUDIENCE"), "Required access token audience")
	fs.StringVar(&cfg.GoogleClientID, "google-client-id", getenv("GOOGLE_CLIENT_ID"), "Expected audience of Google ID tokens")
	fs.StringVar(&logLevel, "log-level", envString(getenv, "LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", envDuration(getenv, "SHUTDOWN_TIMEOUT", 30*time.Second), "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return config{}, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	switch cfg.AuthProvider {
	case authJWT:
		if cfg.JWTSecret == "" {
			return config{}, errors.New("JWT_SECRET is required")
		}
	case authGoogle:
		if cfg.GoogleClientID == "" {
			return config{}, errors.New("GOOGLE_CLIENT_ID is required")
		}
	default:
		return config{}, fmt.Errorf("unknown auth provider %q", cfg.AuthProvider)
	}

	switch cfg.Storage {
	case storagePostgres:
		if cfg.DatabaseURL == "" {
			return config{}, errors.New("a database url or POSTGRES_* settings are required")
		}
	case storageMemory:
	default:
		return config{}, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	return cfg, nil
}

func envString(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) int {
	v, err := strconv.Atoi(getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

