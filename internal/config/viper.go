// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Engine modes. Simple runs whole-text containment matching only; advanced
// runs the tokenized exact/fuzzy tiers plus semantic expansion.
const (
	ModeSimple   = "simple"
	ModeAdvanced = "advanced"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Engine struct {
		Mode                 string `mapstructure:"mode" yaml:"mode"`
		FuzzyThreshold       int    `mapstructure:"fuzzy_threshold" yaml:"fuzzy_threshold"`
		TopN                 int    `mapstructure:"top_n" yaml:"top_n"`
		LargeAmountThreshold int    `mapstructure:"large_amount_threshold" yaml:"large_amount_threshold"`
	} `mapstructure:"engine" yaml:"engine"`

	ConceptNet struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"conceptnet" yaml:"conceptnet"`

	Data struct {
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
		CacheFile      string `mapstructure:"cache_file" yaml:"cache_file"`
	} `mapstructure:"data" yaml:"data"`

	AI struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Model   string `mapstructure:"model" yaml:"model"`
		APIKey  string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-ai")
	v.AddConfigPath(".expense-ai")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BUDGET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The Gemini key is always read from the conventional unprefixed variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("engine.mode", ModeAdvanced)
	v.SetDefault("engine.fuzzy_threshold", 85)
	v.SetDefault("engine.top_n", 3)
	v.SetDefault("engine.large_amount_threshold", 5000)

	v.SetDefault("conceptnet.base_url", "https://api.conceptnet.io")
	v.SetDefault("conceptnet.timeout_seconds", 3)

	v.SetDefault("data.categories_file", "database/categories.yaml")
	v.SetDefault("data.cache_file", "database/conceptnet_cache.yaml")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Engine.Mode != ModeSimple && config.Engine.Mode != ModeAdvanced {
		return fmt.Errorf("invalid engine mode: %s (must be 'simple' or 'advanced')", config.Engine.Mode)
	}

	if config.Engine.FuzzyThreshold < 0 || config.Engine.FuzzyThreshold > 100 {
		return fmt.Errorf("engine.fuzzy_threshold must be between 0 and 100, got: %d", config.Engine.FuzzyThreshold)
	}

	if config.Engine.TopN < 1 {
		return fmt.Errorf("engine.top_n must be at least 1, got: %d", config.Engine.TopN)
	}

	if config.ConceptNet.TimeoutSeconds < 1 || config.ConceptNet.TimeoutSeconds > 300 {
		return fmt.Errorf("conceptnet.timeout_seconds must be between 1 and 300, got: %d", config.ConceptNet.TimeoutSeconds)
	}

	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
