package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HOST", "PORT", "ENV", "SECRET_KEY", "DEBUG", "ALLOWED_HOSTS",
		"CORS_ORIGINS", "DB_DRIVER", "DATABASE_PATH", "LOG_LEVEL",
		"UPLOAD_DIR", "MAX_UPLOAD_SIZE", "ALLOWED_EXTENSIONS",
		"API_RATE_LIMIT", "API_RATE_WINDOW", "TOKEN_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "./data/appeal_cases.db", cfg.DatabasePath)
	assert.EqualValues(t, 52428800, cfg.MaxUploadSize)
	assert.Equal(t, []string{"pdf", "docx", "txt"}, cfg.AllowedExtensions)
	assert.Equal(t, 100, cfg.APIRateLimit)
	assert.Equal(t, time.Minute, cfg.APIRateWindow)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "dev-secret-key-DO-NOT-USE-IN-PRODUCTION", cfg.SecretKey)
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_HOSTS", "api.example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")

	t.Setenv("SECRET_KEY", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoadProductionRejectsDebug(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("SECRET_KEY", "a-real-secret")
	t.Setenv("ALLOWED_HOSTS", "api.example.com")
	t.Setenv("DEBUG", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEBUG")
}

func TestLoadProductionRejectsWildcardHosts(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("SECRET_KEY", "a-real-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALLOWED_HOSTS")
}

func TestSplitListTrimsAndLowercases(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_EXTENSIONS", " PDF , docx ,, TXT ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"pdf", "docx", "txt"}, cfg.AllowedExtensions)
}

func TestExtensionAllowed(t *testing.T) {
	cfg := &Config{AllowedExtensions: []string{"pdf", "docx", "txt"}}

	assert.True(t, cfg.ExtensionAllowed("pdf"))
	assert.True(t, cfg.ExtensionAllowed("PDF"))
	assert.False(t, cfg.ExtensionAllowed("exe"))
	assert.False(t, cfg.ExtensionAllowed(""))
}

func TestLoadInvalidNumericValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_UPLOAD_SIZE", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_UPLOAD_SIZE")
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "app",
		DBPassword: "pw", DBName: "criminal_appeal", DBSSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=app password=pw dbname=criminal_appeal sslmode=disable",
		cfg.PostgresDSN())
}
