package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  run-mode: debug
  http-port: ":8080"
database:
  uri: "mongodb://localhost:27017"
  name: quill_notes_db
  timeout: 5s
cors:
  allow-origins:
    - "*"
`)

	cfg, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)

	assert.Equal(t, "debug", cfg.Server.RunMode)
	assert.Equal(t, ":8080", cfg.Server.HttpPort)
	assert.Equal(t, "quill_notes_db", cfg.Database.Name)
	assert.Equal(t, []string{"*"}, cfg.Cors.AllowOrigins)
}

func TestLoadConfigDefaults(t *testing.T) {
	// 只提供最小配置，其余字段应回落到默认值
	path := writeConfigFile(t, `
database:
  uri: "mongodb://localhost:27017"
`)

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Server.RunMode)
	assert.Equal(t, ":9000", cfg.Server.HttpPort)
	assert.Equal(t, ":9001", cfg.Server.PrivateHttpListen)
	assert.Equal(t, "quill_notes_db", cfg.Database.Name)
	assert.Equal(t, uint64(100), cfg.Database.MaxPoolSize)
	assert.True(t, cfg.Tracer.Enabled)
	assert.Equal(t, "X-Trace-ID", cfg.Tracer.Header)
}

func TestSaveWritesBackDefaults(t *testing.T) {
	// 最小配置加载后回写，缺省值应被持久化到文件
	path := writeConfigFile(t, `
database:
  uri: "mongodb://localhost:27017"
`)

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	reloaded, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", reloaded.Server.HttpPort)
	assert.Equal(t, "quill_notes_db", reloaded.Database.Name)
	assert.Equal(t, "X-Trace-ID", reloaded.Tracer.Header)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDatabaseTimeout(t *testing.T) {
	cfg := &AppConfig{}
	cfg.Database.Timeout = "5s"
	assert.Equal(t, 5*time.Second, cfg.GetDatabaseTimeout())

	// 非法格式回落到默认 10s
	cfg.Database.Timeout = "not-a-duration"
	assert.Equal(t, 10*time.Second, cfg.GetDatabaseTimeout())
}

func TestGetDatabaseConfig(t *testing.T) {
	cfg := &AppConfig{}
	cfg.Database.URI = "mongodb://localhost:27017"
	cfg.Database.Name = "quill_notes_db"
	cfg.Database.Timeout = "10s"
	cfg.Database.MaxPoolSize = 50

	dbCfg := cfg.GetDatabaseConfig()
	assert.Equal(t, "mongodb://localhost:27017", dbCfg.URI)
	assert.Equal(t, "quill_notes_db", dbCfg.Name)
	assert.Equal(t, 10*time.Second, dbCfg.Timeout)
	assert.Equal(t, uint64(50), dbCfg.MaxPoolSize)
}
