package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "STORE_BACKEND", "DATABASE_URL",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "SSL_CA_PATH",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "SQLITE_PATH", "AUTO_MIGRATE",
	"HOSTED_URL", "HOSTED_KEY", "HOSTED_TIMEOUT",
	"CORS_ALLOW_ORIGINS", "REDACT_ERRORS", "PROMETHEUS_ENABLED", "LOG_LEVEL",
}

// 空文字は未設定と同じ扱い
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func setPostgresEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "pos")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "pos")
}

func TestLoad_PostgresDefaults(t *testing.T) {
	clearEnv(t)
	setPostgresEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 10*time.Second, cfg.HostedTimeout)
	assert.False(t, cfg.RedactErrors)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_PostgresMissingHost(t *testing.T) {
	clearEnv(t)
	setPostgresEnv(t)
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.EqualError(t, err, "DB_HOST is required")
}

func TestLoad_PostgresMissingPassword(t *testing.T) {
	clearEnv(t)
	setPostgresEnv(t)
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.EqualError(t, err, "DB_PASSWORD is required")
}

func TestLoad_DatabaseURLSkipsDBVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://pos:secret@db:5432/pos")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://pos:secret@db:5432/pos", cfg.DatabaseURL)
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	setPostgresEnv(t)
	t.Setenv("DB_PORT", "abc")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PORT must be number")
}

func TestLoad_SSLCAPath(t *testing.T) {
	clearEnv(t)
	setPostgresEnv(t)

	t.Setenv("SSL_CA_PATH", filepath.Join(t.TempDir(), "missing.pem"))
	_, err := Load()
	assert.ErrorContains(t, err, "SSL_CA_PATH")

	ca := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(ca, []byte("dummy"), 0o600))
	t.Setenv("SSL_CA_PATH", ca)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ca, cfg.SSLCAPath)
	assert.Equal(t, "verify-full", cfg.DBSSLMode)
}

func TestLoad_Hosted(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "hosted")

	_, err := Load()
	assert.EqualError(t, err, "HOSTED_URL is required")

	t.Setenv("HOSTED_URL", "https://example.supabase.co/")
	_, err = Load()
	assert.EqualError(t, err, "HOSTED_KEY is required")

	t.Setenv("HOSTED_KEY", "anon-key")
	t.Setenv("HOSTED_TIMEOUT", "3s")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.supabase.co", cfg.HostedURL)
	assert.Equal(t, 3*time.Second, cfg.HostedTimeout)
}

func TestLoad_HostedRejectsRelativeURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "hosted")
	t.Setenv("HOSTED_URL", "example.com")
	t.Setenv("HOSTED_KEY", "k")

	_, err := Load()
	assert.ErrorContains(t, err, "HOSTED_URL must be an absolute")
}

func TestLoad_SQLite(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, "pos.db", cfg.SQLitePath)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoad_UnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "mongo")

	_, err := Load()
	assert.ErrorContains(t, err, "STORE_BACKEND must be one of")
}

func TestLoad_CORSOrigins(t *testing.T) {
	clearEnv(t)
	setPostgresEnv(t)
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, http://127.0.0.1:3000,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSAllowOrigins)
}

func TestLoad_InvalidBoolAndLogLevel(t *testing.T) {
	clearEnv(t)
	setPostgresEnv(t)
	t.Setenv("REDACT_ERRORS", "maybe")

	_, err := Load()
	assert.ErrorContains(t, err, "REDACT_ERRORS must be bool")

	t.Setenv("REDACT_ERRORS", "1")
	t.Setenv("LOG_LEVEL", "trace")
	_, err = Load()
	assert.ErrorContains(t, err, "LOG_LEVEL")
}
