package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"APP_NAME", "PORT", "LOG_LEVEL", "LOG_JSON", "LOG_COLOR", "SESSION_BACKEND", "SQLITE_PATH",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "JWT_SECRET", "LOGIN_DELAY", "CATALOG_SOURCE",
	"CATALOG_FILE", "DATABASE_URL", "SUBMIT_DELAY", "CONTACT_DELAY",
}

// clearEnv unsets every key Load reads and restores the previous values after the test.
func clearEnv(t *testing.T) {
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("JWT_SECRET", "secret")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "propertyHub", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, SessionBackendMemory, cfg.Session.Backend)
	assert.Equal(t, time.Second, cfg.Session.LoginDelay)
	assert.Equal(t, CatalogSourceEmbedded, cfg.Catalog.Source)
	assert.Equal(t, 2*time.Second, cfg.Submission.SubmitDelay)
	assert.Equal(t, time.Second, cfg.Submission.ContactDelay)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=from-file\nSESSION_BACKEND=redis\nREDIS_ADDR=cache:6379\nREDIS_DB=2\nLOGIN_DELAY=250ms\nLOG_JSON=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Session.JWTSecret)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, "cache:6379", cfg.Session.Redis.Addr)
	assert.Equal(t, 2, cfg.Session.Redis.DB)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.LoginDelay)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "unknown backend", env: map[string]string{"JWT_SECRET": "s", "SESSION_BACKEND": "etcd"}},
		{name: "unknown catalog source", env: map[string]string{"JWT_SECRET": "s", "CATALOG_SOURCE": "s3"}},
		{name: "file source without file", env: map[string]string{"JWT_SECRET": "s", "CATALOG_SOURCE": "file"}},
		{name: "postgres source without url", env: map[string]string{"JWT_SECRET": "s", "CATALOG_SOURCE": "postgres"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				os.Setenv(k, v)
			}

			_, err := Load(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	os.Setenv("JWT_SECRET", "secret")
	os.Setenv("SESSION_BACKEND", "sqlite")
	os.Setenv("LOGIN_DELAY", "soon")
	os.Setenv("LOG_JSON", "maybe")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "propertyhub.db", cfg.Session.SqlitePath)
	assert.Equal(t, time.Second, cfg.Session.LoginDelay)
	assert.False(t, cfg.Log.JSON)
}
