// Package config loads application configuration from config.yaml and
// URLFINDER_-prefixed environment variables, and owns logger setup.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/urlfinder-cli/internal/cost"
)

// Config holds the full application configuration.
type Config struct {
	GenAI   GenAIConfig   `yaml:"genai" mapstructure:"genai"`
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
	Retry   RetryConfig   `yaml:"retry" mapstructure:"retry"`
	Pricing PricingConfig `yaml:"pricing" mapstructure:"pricing"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// GenAIConfig holds generation-service settings.
type GenAIConfig struct {
	Key          string `yaml:"key" mapstructure:"key"`
	URLModel     string `yaml:"url_model" mapstructure:"url_model"`
	DossierModel string `yaml:"dossier_model" mapstructure:"dossier_model"`
	MaxTokens    int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
	RatePerMin   int    `yaml:"rate_per_min" mapstructure:"rate_per_min"`
}

// BatchConfig configures row partitioning.
type BatchConfig struct {
	Size int `yaml:"size" mapstructure:"size"`
}

// RetryConfig configures the per-operation retry budgets and backoff.
type RetryConfig struct {
	URLMaxRetries     int     `yaml:"url_max_retries" mapstructure:"url_max_retries"`
	DossierMaxRetries int     `yaml:"dossier_max_retries" mapstructure:"dossier_max_retries"`
	BaseDelayMs       int     `yaml:"base_delay_ms" mapstructure:"base_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms" mapstructure:"max_delay_ms"`
	Jitter            float64 `yaml:"jitter" mapstructure:"jitter"`
}

// PricingConfig holds per-model pricing overrides.
type PricingConfig struct {
	Models    cost.Rates `yaml:"models" mapstructure:"models"`
	RatesFile string     `yaml:"rates_file" mapstructure:"rates_file"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("URLFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("genai.key", "")
	v.SetDefault("genai.url_model", "claude-sonnet-4-5-20250929")
	v.SetDefault("genai.dossier_model", "claude-opus-4-6")
	v.SetDefault("genai.max_tokens", 4096)
	v.SetDefault("genai.rate_per_min", 30)
	v.SetDefault("batch.size", 10)
	v.SetDefault("retry.url_max_retries", 3)
	v.SetDefault("retry.dossier_max_retries", 1)
	v.SetDefault("retry.base_delay_ms", 1000)
	v.SetDefault("retry.max_delay_ms", 30000)
	v.SetDefault("retry.jitter", 0.25)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Rates resolves the effective pricing table: defaults, overlaid by an
// optional rates file, overlaid by inline model overrides.
func (c *Config) Rates() (cost.Rates, error) {
	rates := cost.DefaultRates()
	if c.Pricing.RatesFile != "" {
		loaded, err := cost.LoadRates(c.Pricing.RatesFile)
		if err != nil {
			return nil, err
		}
		rates = loaded
	}
	for model, rate := range c.Pricing.Models {
		rates[model] = rate
	}
	return rates, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
