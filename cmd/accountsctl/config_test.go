package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myaccounts/portalkit/pkg/config"
	"github.com/myaccounts/portalkit/pkg/environment"
	"github.com/myaccounts/portalkit/pkg/safeinput"
	"github.com/myaccounts/portalkit/pkg/validator"
)

// keepDefaultLogger restores slog.Default after loadApp replaces it.
func keepDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestLoadApp(t *testing.T) {
	t.Cleanup(config.Reset)
	keepDefaultLogger(t)

	t.Run("defaults", func(t *testing.T) {
		config.Reset()

		a, err := loadApp()
		require.NoError(t, err)
		assert.Equal(t, "development", a.cfg.Env)
		assert.Equal(t, []string{"myaccounts.app"}, a.kit.Policy().BrandDomains)
		assert.Equal(t, validator.MinPasswordScore, a.kit.Policy().MinPasswordScore)
	})

	t.Run("overrides", func(t *testing.T) {
		config.Reset()
		t.Setenv("APP_ENV", "prod")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("BRAND_DOMAINS", "example.org,example.net")
		t.Setenv("MIN_PASSWORD_SCORE", "5")

		a, err := loadApp()
		require.NoError(t, err)
		assert.Equal(t, []string{"example.org", "example.net"}, a.kit.Policy().BrandDomains)
		assert.Equal(t, 5, a.kit.Policy().MinPasswordScore)
		assert.Equal(t, "https://www.example.net/", a.kit.SanitizeURL("http://www.example.net/"))
		assert.False(t, a.kit.ValidatePassword("Test1234").Valid)
	})

	t.Run("invalid config", func(t *testing.T) {
		config.Reset()
		t.Setenv("MIN_PASSWORD_SCORE", "9")

		_, err := loadApp()
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("invalid log level", func(t *testing.T) {
		config.Reset()
		t.Setenv("LOG_LEVEL", "chatty")

		_, err := loadApp()
		assert.Error(t, err)
	})
}

func TestLoadApp_SetsDefaultLogger(t *testing.T) {
	t.Cleanup(config.Reset)
	keepDefaultLogger(t)
	config.Reset()

	a, err := loadApp()
	require.NoError(t, err)
	assert.Same(t, a.logger, slog.Default())
}

func TestLoadApp_EnvFile(t *testing.T) {
	t.Cleanup(config.Reset)
	keepDefaultLogger(t)
	for _, key := range []string{"APP_ENV", "BRAND_DOMAINS", "MIN_PASSWORD_SCORE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), "accountsctl.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=staging\nBRAND_DOMAINS=example.io\nMIN_PASSWORD_SCORE=4\n"), 0o600))

	// A config cached before the file is read must not survive it.
	config.Reset()
	_, err := loadApp()
	require.NoError(t, err)

	a, err := loadApp(path)
	require.NoError(t, err)
	assert.Equal(t, "staging", a.cfg.Env)
	assert.Equal(t, []string{"example.io"}, a.kit.Policy().BrandDomains)
	assert.Equal(t, 4, a.kit.Policy().MinPasswordScore)

	_, err = loadApp(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrEnvFile)
}

func TestApp_RunContext(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Env:              "stage",
		LogLevel:         "debug",
		LogFormat:        "json",
		BrandDomains:     []string{"myaccounts.app"},
		MinPasswordScore: 3,
	}
	var buf bytes.Buffer
	log, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	kit, err := safeinput.New(cfg.Policy(), safeinput.WithLogger(log))
	require.NoError(t, err)
	a := &app{cfg: cfg, logger: log, kit: kit}

	ctx, err := a.runContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, environment.Staging, environment.FromContext(ctx))
	runID, ok := ctx.Value(runIDKey{}).(string)
	require.True(t, ok)
	_, err = uuid.Parse(runID)
	require.NoError(t, err)

	assert.False(t, a.kit.WithContext(ctx).ValidateEmail("not-an-email").Valid)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "value rejected", entry["msg"])
	assert.Equal(t, "staging", entry["env"])
	assert.Equal(t, runID, entry["run_id"])
	assert.Equal(t, "accountsctl", entry["service"])
	assert.Equal(t, "safeinput", entry["component"])
}
