package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8081

[database]
host = "localhost"
user = "barber"
password = "secret"
dbname = "barbershop"

[logs]
level = "debug"

[admin]
token = "file-token"

[booking]
min_notice_minutes = 30

[rate_limit]
trust_forwarded_for = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 30, cfg.Booking.MinNoticeMinutes)
	assert.Equal(t, 3, cfg.Booking.MaxSerializationRetries)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.True(t, cfg.RateLimit.TrustForwardedFor)
	assert.Equal(t,
		"host=localhost port=5432 user=barber password=secret dbname=barbershop sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "env-token")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Admin.Token)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestLoad_InvalidEnvInt(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(writeConfig(t, sampleConfig))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoad_MissingAdminToken(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "localhost"
dbname = "barbershop"
`))
	assert.ErrorIs(t, err, ErrMissingValue)
}

func TestLoad_RateLimitRequiresRedis(t *testing.T) {
	_, err := Load(writeConfig(t, sampleConfig+`
[rate_limit]
enabled = true
`))
	assert.ErrorIs(t, err, ErrMissingValue)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
