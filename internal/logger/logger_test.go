// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesRoleAndCaller(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "console", zerolog.DebugLevel)

	log.Info().Str("metadata_id", "m1").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "console", entry["role"])
	assert.Equal(t, "m1", entry["metadata_id"])
	assert.Equal(t, "loaded", entry["message"])
	assert.Contains(t, entry["func"], "TestNew_WritesRoleAndCaller")
	assert.NotEmpty(t, entry["time"])
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "console", zerolog.WarnLevel)

	log.Info().Msg("skipped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")

	log := NewClientLogger("console", path, zerolog.InfoLevel)
	log.Info().Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "console", zerolog.DebugLevel)

	ctx := log.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), "from ctx")
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	log.Info().Msg("nothing")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "console", zerolog.DebugLevel)

	child := parent.GetChildLogger()
	child.Info().Msg("child")

	assert.Contains(t, buf.String(), `"role":"console"`)
}

func TestFromContextOr(t *testing.T) {
	var attached, fallback bytes.Buffer
	attachedLog := New(&attached, "console", zerolog.DebugLevel)
	fallbackLog := New(&fallback, "console", zerolog.DebugLevel)

	FromContextOr(attachedLog.WithContext(context.Background()), fallbackLog).Info().Msg("attached")
	FromContextOr(context.Background(), fallbackLog).Info().Msg("bare")

	disabled := zerolog.Nop()
	FromContextOr(disabled.WithContext(context.Background()), fallbackLog).Info().Msg("disabled")

	assert.Contains(t, attached.String(), "attached")
	assert.NotContains(t, attached.String(), "bare")
	assert.Contains(t, fallback.String(), "bare")
	assert.Contains(t, fallback.String(), "disabled")
}

func TestFromContextOr_NilFallback(t *testing.T) {
	log := FromContextOr(context.Background(), nil)
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestWithTraceID_DoesNotTouchParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "console", zerolog.DebugLevel)

	parent.WithTraceID("trace-1").Info().Msg("child")
	assert.Contains(t, buf.String(), `"traceId":"trace-1"`)

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "traceId")
}
