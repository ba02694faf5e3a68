package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// source does not pass validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier source shadows later
// ones while zero fields are filled from later sources.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Locale: "ko"}},
		&StructuredConfig{App: App{Locale: "en", LogLevel: "debug"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "ko", cfg.App.Locale)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, Defaults().Adapter, cfg.Adapter)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_LOCALE": "ko"})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "ko", b.configs[0].App.Locale)
}

func TestWithFile_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_UsesFirstPath(t *testing.T) {
	first := writeTempConfig(t, "first.json", `{"app": {"locale": "ko"}}`)
	second := writeTempConfig(t, "second.json", `{"app": {"locale": "en"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: second},
	)
	b.withFile()

	require.Len(t, b.configs, 3)
	assert.Equal(t, "ko", b.configs[2].App.Locale)
}

func TestWithFile_RecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/does/not/exist.json"})

	b.withFile()
	assert.Error(t, b.err)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_Precedence(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
app:
  locale: ko
  log_level: warn
adapter:
  http_address: http://from-file:8180
  retry_count: 5
`)
	setEnvVars(t, map[string]string{
		"CONFIG":          path,
		"ADAPTER_ADDRESS": "http://from-env:8180",
		"APP_LOG_LEVEL":   "error",
	})

	fs := newFlagSet()
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "debug"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel, "flags beat env")
	assert.Equal(t, "http://from-env:8180", cfg.Adapter.HTTPAddress, "env beats file")
	assert.Equal(t, "ko", cfg.App.Locale, "file beats defaults")
	assert.Equal(t, 5, cfg.Adapter.RetryCount)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout, "defaults fill the rest")
}

func TestLoad_DefaultsOnly(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = " " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative retries", mutate: func(c *StructuredConfig) { c.Adapter.RetryCount = -1 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty cache dsn", mutate: func(c *StructuredConfig) { c.Storage.Cache.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero max age", mutate: func(c *StructuredConfig) { c.Storage.Cache.MaxAge = 0 }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative prune interval", mutate: func(c *StructuredConfig) { c.Workers.CachePruneInterval = -time.Second }, wantErr: ErrInvalidWorkerConfigs},
		{name: "bad locale", mutate: func(c *StructuredConfig) { c.App.Locale = "not a locale!" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
