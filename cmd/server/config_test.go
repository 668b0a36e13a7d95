package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(nil, envFrom(map[string]string{
		"JWT_SECRET":        "secret",
		"POSTGRES_HOST":     "db",
		"POSTGRES_DB":       "awards",
		"POSTGRES_USER":     "awards",
		"POSTGRES_PASSWORD": "pw",
	}))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, storagePostgres, cfg.Storage)
	assert.Equal(t, "postgres://awards:pw@db:5432/awards?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, authJWT, cfg.AuthProvider)
}

func TestLoadConfig_GoogleProvider(t *testing.T) {
	cfg, err := loadConfig([]string{"-auth-provider", "google"}, envFrom(map[string]string{
		"GOOGLE_CLIENT_ID": "client.apps.googleusercontent.com",
		"STORAGE":          "memory",
	}))
	require.NoError(t, err)
	assert.Equal(t, authGoogle, cfg.AuthProvider)
	assert.Equal(t, "client.apps.googleusercontent.com", cfg.GoogleClientID)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	cfg, err := loadConfig(
		[]string{"-port", "9090", "-storage", "memory", "-log-level", "debug"},
		envFrom(map[string]string{
			"JWT_SECRET":       "secret",
			"JWT_AUDIENCE":     "authenticated",
			"PORT":             "7070",
			"DATABASE_URL":     "postgres://example",
			"SHUTDOWN_TIMEOUT": "5s",
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, storageMemory, cfg.Storage)
	assert.Equal(t, "postgres://example", cfg.DatabaseURL)
	assert.Equal(t, "authenticated", cfg.JWTAudience)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{"DATABASE_URL": "postgres://example"}},
		{name: "missing database", env: map[string]string{"JWT_SECRET": "secret"}},
		{name: "google without client id", args: []string{"-auth-provider", "google"}, env: map[string]string{"STORAGE": "memory"}},
		{name: "unknown auth provider", args: []string{"-auth-provider", "saml"}, env: map[string]string{"JWT_SECRET": "secret", "STORAGE": "memory"}},
		{name: "unknown storage", args: []string{"-storage", "redis"}, env: map[string]string{"JWT_SECRET": "secret"}},
		{name: "bad log level", args: []string{"-log-level", "loud"}, env: map[string]string{"JWT_SECRET": "secret", "STORAGE": "memory"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.args, envFrom(tt.env))
			assert.Error(t, err)
		})
	}
}
