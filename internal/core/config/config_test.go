package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drivesafe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 10000, cfg.Server.Port)
	require.Equal(t, "0.0.0.0:10000", cfg.Server.Addr())
	require.Equal(t, "release", cfg.Server.Mode)
	require.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	require.True(t, cfg.Database.AutoMigrate)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 30*time.Second, cfg.Cache.DefaultTTL)
	require.Equal(t, "json", cfg.Cache.Codec)
	require.Equal(t, 4096, cfg.TimeBucket.MemoSize)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8081
  mode: debug
database:
  dsn: "postgres://dev:dev@db:5432/drivesafe?sslmode=disable"
  conn_max_lifetime: 5m
cache:
  url: "redis://cache:6379/1"
  default_ttl: 45s
  codec: msgpack
  key_prefix: "ds:"
timebucket:
  memo_size: 0
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 8081, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.Mode)
	require.Equal(t, "postgres://dev:dev@db:5432/drivesafe?sslmode=disable", cfg.Database.DSN)
	require.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	require.Equal(t, "redis://cache:6379/1", cfg.Cache.URL)
	require.Equal(t, 45*time.Second, cfg.Cache.DefaultTTL)
	require.Equal(t, "msgpack", cfg.Cache.Codec)
	require.Equal(t, "ds:", cfg.Cache.KeyPrefix)
	require.Equal(t, 0, cfg.TimeBucket.MemoSize)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8081
`)
	t.Setenv("DRIVESAFE_SERVER__PORT", "9090")
	t.Setenv("DRIVESAFE_CACHE__DEFAULT_TTL", "2m")
	t.Setenv("DRIVESAFE_CACHE__ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 2*time.Minute, cfg.Cache.DefaultTTL)
	require.False(t, cfg.Cache.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Run("default path is optional", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := Load(DefaultPath)
		require.NoError(t, err)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorContains(t, err, "failed to load config file")
	})
}

func TestLoad_InvalidValuesFailStartup(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"port", "server:\n  port: -1\n", "invalid server.port"},
		{"mode", "server:\n  mode: fast\n", "invalid server.mode"},
		{"body size", "server:\n  max_body_size_mb: 0\n", "server.max_body_size_mb"},
		{"dsn", "database:\n  dsn: \" \"\n", "database.dsn is required"},
		{"lifetime", "database:\n  conn_max_lifetime: -1s\n", "database.conn_max_lifetime"},
		{"cache url", "cache:\n  url: \"\"\n", "cache.url is required"},
		{"ttl", "cache:\n  default_ttl: 0s\n", "cache.default_ttl"},
		{"codec", "cache:\n  codec: gob\n", "invalid cache.codec"},
		{"memo", "timebucket:\n  memo_size: -5\n", "timebucket.memo_size"},
		{"log level", "log:\n  level: trace\n", "invalid log.level"},
		{"log format", "log:\n  format: xml\n", "invalid log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad_CacheURLOptionalWhenDisabled(t *testing.T) {
	cfg, err := Load(writeConfig(t, "cache:\n  enabled: false\n  url: \"\"\n"))
	require.NoError(t, err)
	require.False(t, cfg.Cache.Enabled)
}
