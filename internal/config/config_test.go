package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("JWT_SECRET", "87654321")
	t.Setenv("POST_TTL_DAYS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "87654321", cfg.JWTSecret)
	assert.Equal(t, 14*24*time.Hour, cfg.PostTTL)
	assert.Equal(t, []string{"*"}, cfg.CorsConfig.AllowedOrigins)
	assert.False(t, cfg.R2.Enabled())
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "POST_TTL_DAYS=7\nCORS_ALLOWED_ORIGINS=https://a.example, https://b.example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ENV_FILE", path)
	// godotenv never overrides variables that are already set, so clear them first.
	for _, key := range []string{"POST_TTL_DAYS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := Load()

	assert.Equal(t, 7*24*time.Hour, cfg.PostTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsConfig.AllowedOrigins)
}

func TestInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("POST_TTL_DAYS", "-3")
	assert.Equal(t, defaultPostTTLDays, getIntEnv("POST_TTL_DAYS", defaultPostTTLDays))
}

func TestR2Enabled(t *testing.T) {
	cfg := R2Config{BucketName: "posts", AccessKeyID: "id", SecretAccessKey: "secret"}
	assert.False(t, cfg.Enabled())

	cfg.AccountID = "acct"
	assert.True(t, cfg.Enabled())
}

func TestIsProduction(t *testing.T) {
	assert.True(t, Config{Environment: "production"}.IsProduction())
	assert.True(t, Config{Environment: "PRODUCTION"}.IsProduction())
	assert.False(t, Config{Environment: "development"}.IsProduction())
	assert.False(t, Config{}.IsProduction())
}
