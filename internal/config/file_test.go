package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"locale": "ko", "log_level": "warn"},
		"adapter": {"http_address": "catalog:8180", "request_timeout": "2s", "retry_count": 1},
		"storage": {"cache": {"dsn": "cache.db", "max_age": "24h"}},
		"workers": {"cache_prune_interval": 60000000000}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ko", cfg.App.Locale)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "catalog:8180", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 1, cfg.Adapter.RetryCount)
	assert.Equal(t, "cache.db", cfg.Storage.Cache.DSN)
	assert.Equal(t, 24*time.Hour, cfg.Storage.Cache.MaxAge)
	assert.Equal(t, time.Minute, cfg.Workers.CachePruneInterval)
	assert.Empty(t, cfg.FilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yml", `
app:
  locale: en
adapter:
  http_address: http://catalog:8180
  request_timeout: 750ms
storage:
  cache:
    dsn: cache.db
    max_age: 1000
workers:
  cache_prune_interval: 15m
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "http://catalog:8180", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 750*time.Millisecond, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Duration(1000), cfg.Storage.Cache.MaxAge)
	assert.Equal(t, 15*time.Minute, cfg.Workers.CachePruneInterval)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestParseFile_Malformed(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"adapter": `)

	_, err := parseFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding config file")
}

func TestParseFile_BadDuration(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "adapter:\n  request_timeout: later\n")

	_, err := parseFile(path)
	assert.Error(t, err)
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))

	var back Duration
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)
}

func TestDuration_JSONRejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
