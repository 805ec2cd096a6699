package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fairs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "./data/fairs.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.Currency)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_CORSAllowedOrigins(t *testing.T) {
	cfg, err := Load(viper.New(), writeConfig(t, `
cors_allowed_origins:
  - http://localhost:5173
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)

	t.Setenv("FAIRS_CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	cfg, err = Load(viper.New(), writeConfig(t, "log_level: info\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORSAllowedOrigins)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/fairs-test.db
listen_addr: 127.0.0.1:9090
currency: gbp
metrics_enabled: false
shutdown_timeout: 2s
`)
	t.Setenv("FAIRS_LISTEN_ADDR", "127.0.0.1:7070")
	t.Setenv("FAIRS_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/fairs-test.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:7070", cfg.ListenAddr, "env overrides file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "GBP", cfg.Currency)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit config file must exist")

	_, err = Load(viper.New(), writeConfig(t, "currency: XYZ\n"))
	assert.ErrorContains(t, err, "unknown currency")

	_, err = Load(viper.New(), writeConfig(t, "shutdown_timeout: 0s\n"))
	assert.ErrorContains(t, err, "shutdown_timeout")

	_, err = Load(viper.New(), writeConfig(t, "cors_allowed_origins: [\"*\"]\n"))
	assert.ErrorContains(t, err, "cors_allowed_origins")
}
