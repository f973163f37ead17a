package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
	assert.Equal(t, 10, cfg.Crowd.MediumThreshold)
	assert.Equal(t, 25, cfg.Crowd.HighThreshold)
	assert.Equal(t, 30*time.Minute, cfg.Crowd.Window())
	assert.Equal(t, 15*time.Second, cfg.Crowd.BroadcastInterval())
	assert.False(t, cfg.Auth.DevFallbackEnabled, "dev fallback must be off by default")
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.Origins())
}

func TestLoad_YAMLThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := `
server:
  port: "9000"
  read_timeout: 5s
database:
  driver: sqlite
  dbname: fair.db
crowd:
  medium_threshold: 3
  high_threshold: 6
auth:
  entry_qr_tokens: ["entry-1"]
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))

	t.Setenv("CROWD_HIGH_THRESHOLD", "8")
	t.Setenv("CORS_ORIGINS", "https://fair.example.com, http://localhost:5173")
	t.Setenv("AUTH_DEV_FALLBACK_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "fair.db", cfg.Database.GetDSN())
	assert.Equal(t, 3, cfg.Crowd.MediumThreshold)
	assert.Equal(t, 8, cfg.Crowd.HighThreshold)
	assert.Equal(t, []string{"entry-1"}, cfg.Auth.EntryQRTokens)
	assert.True(t, cfg.Auth.DevFallbackEnabled)
	assert.Equal(t, []string{"https://fair.example.com", "http://localhost:5173"}, cfg.CORS.Origins())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, true},
		{"high not above medium", func(c *Config) { c.Crowd.HighThreshold = 10 }, true},
		{"zero window", func(c *Config) { c.Crowd.WindowMinutes = 0 }, true},
		{"zero interval", func(c *Config) { c.Crowd.BroadcastIntervalSeconds = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetDSN_PerDriver(t *testing.T) {
	d := Default().Database
	assert.Contains(t, d.GetDSN(), "host=localhost")
	assert.Contains(t, d.GetDSN(), "dbname=fair")

	d.Driver = DriverMySQL
	assert.Equal(t, "fair:@tcp(localhost:5432)/fair?charset=utf8mb4&parseTime=True&loc=UTC", d.GetDSN())

	d.URL = "postgres://u:p@db:5432/fair"
	assert.Equal(t, "postgres://u:p@db:5432/fair", d.GetDSN())
}

func TestShippedConfigs(t *testing.T) {
	for _, key := range []string{"AUTH_ENTRY_QR_TOKENS", "AUTH_DEV_FALLBACK_ENABLED", "DB_DRIVER", "DATABASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join("..", "..", "configs", "config.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.EntryQRTokens, "no well-known entry token in the default config")
	assert.False(t, cfg.Auth.DevFallbackEnabled)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)

	dev, err := Load(filepath.Join("..", "..", "configs", "config.dev.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"test-entry-qr"}, dev.Auth.EntryQRTokens)
	assert.Equal(t, DriverSQLite, dev.Database.Driver)
}
