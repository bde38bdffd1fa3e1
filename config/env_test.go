package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withValues(t *testing.T, kv map[string]string) {
	t.Helper()
	_ = Load()

	mu.Lock()
	saved := values
	fresh := defaultValues()
	for k, v := range kv {
		fresh[k] = v
	}
	values = fresh
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		values = saved
		mu.Unlock()
	})
}

func TestLoadFromFilesMergesJSONThenDotEnv(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	envPath := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"app_port":"9000","db_driver":"postgres","ignored":42}`), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("# comment\nAPP_PORT=9100\nJWT_SECRET=\"s3cret\"\n"), 0o644))

	mu.RLock()
	saved := values
	mu.RUnlock()
	t.Cleanup(func() {
		mu.Lock()
		values = saved
		mu.Unlock()
	})

	require.NoError(t, loadFromFiles(jsonPath, envPath))

	assert.Equal(t, "9100", get("APP_PORT", ""))
	assert.Equal(t, "postgres", get("DB_DRIVER", ""))
	assert.Equal(t, "s3cret", get("JWT_SECRET", ""))
}

func TestLoadFromFilesMissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()

	mu.RLock()
	saved := values
	mu.RUnlock()
	t.Cleanup(func() {
		mu.Lock()
		values = saved
		mu.Unlock()
	})

	require.NoError(t, loadFromFiles(filepath.Join(dir, "none.json"), filepath.Join(dir, "none.env")))
	assert.Equal(t, defaultAppPort, get("APP_PORT", ""))
}

func TestMergeEnvironOnlyKnownKeys(t *testing.T) {
	out := map[string]string{}
	mergeEnviron([]string{"JWT_SECRET=abc", "HOME=/root", "TOKEN_TTL=2h"}, out)

	assert.Equal(t, "abc", out["JWT_SECRET"])
	assert.Equal(t, "2h", out["TOKEN_TTL"])
	assert.NotContains(t, out, "HOME")
}

func TestValidateRequiresSecret(t *testing.T) {
	withValues(t, map[string]string{"JWT_SECRET": ""})
	assert.ErrorIs(t, Validate(), ErrMissingSecret)
}

func TestValidateRejectsBadDuration(t *testing.T) {
	withValues(t, map[string]string{"JWT_SECRET": "x", "TOKEN_TTL": "soon"})
	assert.Error(t, Validate())
}

func TestValidateRejectsBadTimezone(t *testing.T) {
	withValues(t, map[string]string{"JWT_SECRET": "x", "DISPLAY_TIMEZONE": "Mars/Olympus"})
	assert.Error(t, Validate())
}

func TestTypedGetters(t *testing.T) {
	withValues(t, map[string]string{
		"JWT_SECRET":           "x",
		"TOKEN_TTL":            "24h",
		"DB_DRIVER":            "MONGO",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example",
	})

	require.NoError(t, Validate())
	assert.Equal(t, 24*time.Hour, TokenTTL())
	assert.Equal(t, "mongo", DatabaseDriver())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, CORSAllowedOrigins())
	assert.Equal(t, "Asia/Kolkata", DisplayLocation().String())
}

func TestAuthRateLimitIsOffByDefault(t *testing.T) {
	withValues(t, nil)
	assert.Zero(t, AuthRateLimit())
	assert.False(t, TrustProxy())

	withValues(t, map[string]string{"AUTH_RATE_LIMIT": "20", "TRUST_PROXY": "true"})
	assert.Equal(t, 20, AuthRateLimit())
	assert.True(t, TrustProxy())

	withValues(t, map[string]string{"AUTH_RATE_LIMIT": "-3", "TRUST_PROXY": "maybe"})
	assert.Zero(t, AuthRateLimit())
	assert.False(t, TrustProxy())
}

func TestUnknownDriverFallsBackToSQLite(t *testing.T) {
	withValues(t, map[string]string{"DB_DRIVER": "oracle"})
	assert.Equal(t, "sqlite", DatabaseDriver())
	assert.Equal(t, defaultSQLiteDSN, DatabaseDSN())
}
