package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/spektr-org/fundview/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fundview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvEndpoint, EnvLogLevel, EnvAddr} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, engine.DefaultPalette, cfg.Palette)
	assert.Equal(t, engine.DefaultDocuments, cfg.Documents)
	assert.Equal(t, time.Duration(0), cfg.GetTimeout())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
endpoint: https://opensheet.elk.sh/abc
format: csv
datasets:
  metrics: Sheet1
palette: ["#000000", "#ffffff"]
documents: []
rate_limit: 5
timeout: 3s
concurrency: 4
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://opensheet.elk.sh/abc", cfg.Endpoint)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, map[string]string{"metrics": "Sheet1"}, cfg.Datasets)
	assert.Equal(t, []string{"#000000", "#ffffff"}, cfg.Palette)
	assert.Empty(t, cfg.Documents)
	assert.Equal(t, 5.0, cfg.RateLimit)
	assert.Equal(t, 3*time.Second, cfg.GetTimeout())
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, zapcore.DebugLevel, cfg.GetLogLevel())
	assert.Equal(t, ":8080", cfg.Addr, "unset keys keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "endpoint: [unclosed")

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "endpoint: https://file.example\naddr: :9000\n")
	t.Setenv(EnvEndpoint, "https://env.example")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvAddr, "127.0.0.1:7000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.Endpoint)
	assert.Equal(t, zapcore.WarnLevel, cfg.GetLogLevel())
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	cfg := DefaultConfig()
	cfg.Endpoint = "https://opensheet.elk.sh/abc"
	cfg.Datasets["country"] = "By Country"
	path := filepath.Join(t.TempDir(), "nested", "fundview.yaml")

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"endpoint ok", func(c *Config) { c.Endpoint = "http://localhost:3000/sheet" }, ""},
		{"demo needs no endpoint", func(c *Config) { c.Demo = true }, ""},
		{"workbook needs no endpoint", func(c *Config) { c.Workbook = "export.xlsx" }, ""},
		{"no source", func(c *Config) {}, "no data source configured"},
		{"relative endpoint", func(c *Config) { c.Endpoint = "opensheet/abc" }, "invalid endpoint"},
		{"ftp endpoint", func(c *Config) { c.Endpoint = "ftp://host/x" }, "invalid endpoint"},
		{"bad format", func(c *Config) { c.Demo = true; c.Format = "xml" }, "invalid format"},
		{"bad timeout", func(c *Config) { c.Demo = true; c.Timeout = "soon" }, "invalid timeout"},
		{"negative timeout", func(c *Config) { c.Demo = true; c.Timeout = "-1s" }, "invalid timeout"},
		{"negative rate", func(c *Config) { c.Demo = true; c.RateLimit = -1 }, "invalid rate_limit"},
		{"negative concurrency", func(c *Config) { c.Demo = true; c.Concurrency = -2 }, "invalid concurrency"},
		{"bad level", func(c *Config) { c.Demo = true; c.LogLevel = "loud" }, "invalid log_level"},
		{"empty color", func(c *Config) { c.Demo = true; c.Palette = []string{"#fff", ""} }, "palette entry 1 is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
