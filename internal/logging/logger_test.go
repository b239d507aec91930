package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Level: "debug", Format: "json"}
	logger, err := NewLogger(cfg, &buf)
	require.NoError(t, err)

	ctx := WithStrategy(WithRunID(context.Background(), "run-7"), "Linear")
	logger.Info(ctx, "evaluated", zap.Int("probes", 100))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "evaluated", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "run-7", entry["run.id"])
	assert.Equal(t, "Linear", entry["strategy"])
	assert.Equal(t, 100.0, entry["probes"])
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: "warn", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Info(context.Background(), "hidden")
	logger.Warn(context.Background(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.False(t, logger.Enabled(zapcore.DebugLevel))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewDefaultConfig().Validate())
	assert.Error(t, (&Config{Level: "loud", Format: "json"}).Validate())
	_, err := NewLogger(&Config{Level: "loud", Format: "json"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestValidateLeavesFormatToTags(t *testing.T) {
	cfg := &Config{Level: "info", Format: "xml"}
	require.NoError(t, cfg.Validate())

	var buf bytes.Buffer
	logger, err := NewLogger(cfg, &buf)
	require.NoError(t, err)
	logger.Info(context.Background(), "fallback")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "unknown format encodes as JSON")
	assert.Equal(t, "fallback", entry["msg"])
}

func TestContextFields(t *testing.T) {
	assert.Empty(t, ContextFields(context.Background()))
	ctx := WithRunID(context.Background(), "abc")
	assert.Equal(t, []zap.Field{zap.String("run.id", "abc")}, ContextFields(ctx))
}

func TestTestLogger(t *testing.T) {
	logger := NewTestLogger()
	ctx := WithStrategy(context.Background(), "Chunked{size: 10}")
	logger.Named("eval").With(zap.String("component", "test")).Debug(ctx, "trial", zap.Int("threshold", 3))

	logger.AssertLogged(t, zapcore.DebugLevel, "trial")
	logger.AssertField(t, "trial", "strategy", "Chunked{size: 10}")
	logger.AssertField(t, "trial", "component", "test")
	assert.Len(t, logger.All(), 1)
}
