package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// APIKey guards the /api/v1 routes. Requests must present it in the
	// X-API-Key header.
	APIKey string `mapstructure:"api_key" validate:"required,min=16"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// CacheConfig contains the Redis cache settings. The cache is optional:
// with Enabled off the service reads straight through to Postgres.
type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	RedisURL string `mapstructure:"redis_url" validate:"required_if=Enabled true"`
}

// LLMConfig contains all language-model integration settings.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName         string `mapstructure:"model_name"     validate:"required"`
	MaxRetries        int    `mapstructure:"max_retries"       validate:"gte=0"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0"`
	// TimeoutSeconds bounds a single model call. A hung network round trip
	// otherwise blocks a worker slot indefinitely.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gt=0"`
}
