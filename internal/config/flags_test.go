package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	return pflag.NewFlagSet("test", pflag.ContinueOnError)
}

func TestBindFlags_AllFlags(t *testing.T) {
	fs := newFlagSet()
	flags := BindFlags(fs)

	err := fs.Parse([]string{
		"-a", "http://catalog:8180",
		"--request-timeout", "3s",
		"--retry-count", "1",
		"--cache", "/tmp/meta.db",
		"--locale", "ko",
		"--log-file", "/tmp/console.log",
		"--log-level", "debug",
		"-c", "config.yaml",
	})
	require.NoError(t, err)

	cfg := flags.config()
	assert.Equal(t, "http://catalog:8180", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 1, cfg.Adapter.RetryCount)
	assert.Equal(t, "/tmp/meta.db", cfg.Storage.Cache.DSN)
	assert.Equal(t, App{Locale: "ko", LogFile: "/tmp/console.log", LogLevel: "debug"}, cfg.App)
	assert.Equal(t, "config.yaml", cfg.FilePath)
}

func TestBindFlags_UnsetFlagsStayZero(t *testing.T) {
	fs := newFlagSet()
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, flags.config())
}

func TestBindFlags_InvalidDuration(t *testing.T) {
	fs := newFlagSet()
	BindFlags(fs)

	err := fs.Parse([]string{"--request-timeout", "soon"})
	assert.Error(t, err)
}
