package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 20

[database]
host = "db.local"
port = 5432
user = "app"
password = "secret"
dbname = "reservations"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path) // default
	assert.Contains(t, cfg.Database.DSN(), "host=db.local")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable") // default
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "app"
dbname = "reservations"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestLoad_PasswordFromEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")

	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "app"
dbname = "reservations"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeConfig(t, `
[database]
port = 5432
user = "app"
dbname = "reservations"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "database.host")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
