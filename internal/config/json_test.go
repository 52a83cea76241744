package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_parseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"password_hash_cost": 8, "version": "1.0.0"},
		"storage": {"db": {"driver": "sqlite3", "dsn": "file:cal.db"}},
		"server": {"http_address": ":8080", "request_timeout": "20s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.App.PasswordHashCost)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:cal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
}

func Test_parseJSON_DurationAsNumber(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func Test_parseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("does-not-exist.json")
	require.Error(t, err)
}

func Test_parseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
}
