package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/urlfinder-cli/internal/cost"
)

func chTempDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "claude-sonnet-4-5-20250929", cfg.GenAI.URLModel)
	assert.Equal(t, "claude-opus-4-6", cfg.GenAI.DossierModel)
	assert.Equal(t, int64(4096), cfg.GenAI.MaxTokens)
	assert.Equal(t, 30, cfg.GenAI.RatePerMin)
	assert.Equal(t, 10, cfg.Batch.Size)
	assert.Equal(t, 3, cfg.Retry.URLMaxRetries)
	assert.Equal(t, 1, cfg.Retry.DossierMaxRetries)
	assert.Equal(t, 1000, cfg.Retry.BaseDelayMs)
	assert.Equal(t, 30000, cfg.Retry.MaxDelayMs)
	assert.InDelta(t, 0.25, cfg.Retry.Jitter, 0.001)
}

func TestLoadFromYAML(t *testing.T) {
	chTempDir(t)

	yaml := `
log:
  level: debug
genai:
  url_model: custom-model
batch:
  size: 25
retry:
  url_max_retries: 5
`
	require.NoError(t, os.WriteFile("config.yaml", []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "custom-model", cfg.GenAI.URLModel)
	assert.Equal(t, 25, cfg.Batch.Size)
	assert.Equal(t, 5, cfg.Retry.URLMaxRetries)
	// Untouched values keep defaults.
	assert.Equal(t, "claude-opus-4-6", cfg.GenAI.DossierModel)
}

func TestLoadFromEnv(t *testing.T) {
	chTempDir(t)
	t.Setenv("URLFINDER_GENAI_KEY", "sk-test")
	t.Setenv("URLFINDER_BATCH_SIZE", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.GenAI.Key)
	assert.Equal(t, 7, cfg.Batch.Size)
}

func TestRates(t *testing.T) {
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	rates, err := cfg.Rates()
	require.NoError(t, err)
	assert.Contains(t, rates, "claude-sonnet-4-5-20250929")
}

func TestRates_FileAndInlineOverrides(t *testing.T) {
	chTempDir(t)

	ratesPath := filepath.Join(".", "rates.yaml")
	require.NoError(t, os.WriteFile(ratesPath, []byte("file-model:\n  input: 1.0\n  output: 2.0\n"), 0o644))

	cfg := &Config{}
	cfg.Pricing.RatesFile = ratesPath
	cfg.Pricing.Models = cost.Rates{
		"inline-model": {Input: 9.0, Output: 18.0},
	}

	rates, err := cfg.Rates()
	require.NoError(t, err)
	assert.Equal(t, 1.0, rates["file-model"].Input)
	assert.Equal(t, 9.0, rates["inline-model"].Input)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "nonsense", Format: "json"}))
}
