package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Filters FilterConfig  `mapstructure:"filters"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds the API credentials and request defaults
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	AccessToken  string `mapstructure:"access_token"`
	SessionID    string `mapstructure:"session_id"`
	BaseURL      string `mapstructure:"base_url"`
	Language     string `mapstructure:"language"`
	Region       string `mapstructure:"region"`
	IncludeAdult bool   `mapstructure:"include_adult"`
}

// HTTPConfig tunes the request executor
type HTTPConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetries    int           `mapstructure:"max_retries"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
	RetryTimeouts bool          `mapstructure:"retry_timeouts"`
	// RateLimit is in requests per second, 0 disables client-side pacing.
	RateLimit   float64 `mapstructure:"rate_limit"`
	RateBurst   int     `mapstructure:"rate_burst"`
	Compression bool    `mapstructure:"compression"`
	UserAgent   string  `mapstructure:"user_agent"`
}

// CacheConfig controls the response cache
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Size    int           `mapstructure:"size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// FilterConfig maps filter names to expressions
type FilterConfig map[string]string

// OutputConfig contains output settings
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
