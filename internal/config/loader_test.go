package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/strategy"
	"svw.info/eggdrop/internal/validator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eggdrop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []domain.Kind{domain.Linear, domain.Chunked, domain.ShrinkingChunked}, kinds)
	assert.Equal(t, strategy.Params{ChunkSize: 10, FirstSize: 14, ShrinkBy: 1}, cfg.Params())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
report:
  format: json
  metrics: true
strategies: [shrinking]
shrinking:
  first_size: 20
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ReportConfig{Format: "json", Metrics: true}, cfg.Report)
	assert.Equal(t, []string{"shrinking"}, cfg.Strategies)
	assert.Equal(t, 20, cfg.Shrinking.FirstSize)
	assert.Equal(t, 1, cfg.Shrinking.ShrinkBy, "unset keys keep defaults")
	assert.Equal(t, 10, cfg.Chunked.Size)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "chunked:\n  size: 12\n")
	t.Setenv("EGGDROP_CHUNKED_SIZE", "7")
	t.Setenv("EGGDROP_SHRINKING_SHRINK_BY", "2")
	t.Setenv("EGGDROP_STRATEGIES", "chunked,linear")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Chunked.Size)
	assert.Equal(t, 2, cfg.Shrinking.ShrinkBy)
	assert.Equal(t, []string{"chunked", "linear"}, cfg.Strategies)
}

func TestLoadEnvStrategiesReplaceFileList(t *testing.T) {
	path := writeConfig(t, "strategies: [linear, chunked, shrinking]\n")
	t.Setenv("EGGDROP_STRATEGIES", " shrinking , chunked,")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"shrinking", "chunked"}, cfg.Strategies)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []domain.Kind{domain.ShrinkingChunked, domain.Chunked}, kinds)
}

func TestLoadEnvRejectsUnknownStrategy(t *testing.T) {
	t.Setenv("EGGDROP_STRATEGIES", "linear,binary")
	_, err := Load("")
	assert.ErrorIs(t, err, validator.ErrInvalidParameter)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zero chunk size", "chunked:\n  size: 0\n"},
		{"negative shrink", "shrinking:\n  shrink_by: -1\n"},
		{"unknown strategy", "strategies: [binary]\n"},
		{"empty strategies", "strategies: []\n"},
		{"report format", "report:\n  format: xml\n"},
		{"log format", "log:\n  format: xml\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrInvalidParameter)
		})
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	_, err := Load(writeConfig(t, "log:\n  level: loud\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "log.level", envKey("EGGDROP_LOG_LEVEL"))
	assert.Equal(t, "shrinking.first_size", envKey("EGGDROP_SHRINKING_FIRST_SIZE"))
	assert.Equal(t, "strategies", envKey("EGGDROP_STRATEGIES"))
}

func TestEnvValue(t *testing.T) {
	key, value := envValue("EGGDROP_STRATEGIES", "chunked,linear")
	assert.Equal(t, "strategies", key)
	assert.Equal(t, []string{"chunked", "linear"}, value)

	key, value = envValue("EGGDROP_CHUNKED_SIZE", "7")
	assert.Equal(t, "chunked.size", key)
	assert.Equal(t, "7", value)
}
