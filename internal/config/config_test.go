package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirupsen/logrus"
)

func TestInitializeConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	assert.Equal(t, ModeAdvanced, cfg.Engine.Mode)
	assert.Equal(t, 85, cfg.Engine.FuzzyThreshold)
	assert.Equal(t, 3, cfg.Engine.TopN)
	assert.Equal(t, 5000, cfg.Engine.LargeAmountThreshold)

	assert.Equal(t, "https://api.conceptnet.io", cfg.ConceptNet.BaseURL)
	assert.Equal(t, 3, cfg.ConceptNet.TimeoutSeconds)

	assert.Equal(t, "database/categories.yaml", cfg.Data.CategoriesFile)
	assert.Equal(t, "database/conceptnet_cache.yaml", cfg.Data.CacheFile)

	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BUDGET_ENGINE_MODE", ModeSimple)
	t.Setenv("BUDGET_LOG_LEVEL", "debug")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, ModeSimple, cfg.Engine.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestInitializeConfigFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".expense-ai")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	configYAML := `engine:
  mode: simple
  top_n: 5
conceptnet:
  timeout_seconds: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configYAML), 0o644))

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, ModeSimple, cfg.Engine.Mode)
	assert.Equal(t, 5, cfg.Engine.TopN)
	assert.Equal(t, 10, cfg.ConceptNet.TimeoutSeconds)
	// Untouched keys keep their defaults.
	assert.Equal(t, 85, cfg.Engine.FuzzyThreshold)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Engine.Mode = ModeAdvanced
		cfg.Engine.FuzzyThreshold = 85
		cfg.Engine.TopN = 3
		cfg.ConceptNet.TimeoutSeconds = 3
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"bad engine mode", func(c *Config) { c.Engine.Mode = "hybrid" }, "invalid engine mode"},
		{"fuzzy threshold out of range", func(c *Config) { c.Engine.FuzzyThreshold = 150 }, "fuzzy_threshold"},
		{"top_n too small", func(c *Config) { c.Engine.TopN = 0 }, "top_n"},
		{"timeout out of range", func(c *Config) { c.ConceptNet.TimeoutSeconds = 0 }, "timeout_seconds"},
		{"ai enabled without key", func(c *Config) { c.AI.Enabled = true }, "GEMINI_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "nonsense"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("EXPENSE_AI_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("EXPENSE_AI_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("EXPENSE_AI_TEST_MISSING", "fallback"))
}
