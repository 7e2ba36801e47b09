package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and, optionally, a
// config file. Environment variables take precedence over file values and
// use the PHRASEUR_ prefix with underscores for nesting, e.g.
// PHRASEUR_SERVER_PORT or PHRASEUR_LLM_GEMINI_API_KEY.
//
// configFile may be empty, in which case a config.yaml in the working
// directory is used when present. Returns a populated Config or an error if
// loading or validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_delay_seconds", 2)
	v.SetDefault("llm.timeout_seconds", 60)

	// Keys with no sensible default still need to be known to viper for
	// AutomaticEnv to surface them during Unmarshal.
	v.SetDefault("server.api_key", "")
	v.SetDefault("database.url", "")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("llm.gemini_api_key", "")

	// Environment variables
	v.SetEnvPrefix("PHRASEUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Optional config file
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// No config file is fine; environment variables may carry everything.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
