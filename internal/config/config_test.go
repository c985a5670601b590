package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point CONFIG_FILE somewhere that does not exist so only defaults apply.
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "jobconnect", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, "/media", cfg.Media.URLPrefix)
	assert.Equal(t, 300, cfg.Redis.TokenTTLSeconds)
	assert.Equal(t, "job.application.events", cfg.RabbitMQ.EventQueue)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[app]
port = 9000

[mysql]
host = "db.internal"
user = "jobconnect"
password = "hunter2"
db = "jobs"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, "jobconnect:hunter2@tcp(db.internal:3306)/jobs?parseTime=true&loc=Local&charset=utf8mb4", cfg.MySQLDSN())
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[app]\nport = 9000\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("APP_PORT", "9100")
	t.Setenv("REDIS_TOKEN_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.App.Port)
	assert.Equal(t, 60, cfg.Redis.TokenTTLSeconds)
}
