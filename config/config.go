package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides for any config key, e.g.
// TMDBCTL_LOGGING_LEVEL for logging.level.
const EnvPrefix = "TMDBCTL"

// Well-known TMDB variables bound in addition to the prefixed form
var tmdbEnv = map[string]string{
	"tmdb.api_key":      "TMDB_API_KEY",
	"tmdb.access_token": "TMDB_ACCESS_TOKEN",
	"tmdb.session_id":   "TMDB_SESSION_ID",
	"tmdb.base_url":     "TMDB_BASE_URL",
	"tmdb.language":     "TMDB_LANGUAGE",
	"tmdb.region":       "TMDB_REGION",
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
	validOutputs = []string{"table", "json", "yaml"}
)

// Load loads the configuration. A .env file in the working directory is
// applied to the environment first. The config file is optional unless
// configPath names one explicitly.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tmdbctl"))
		}
		v.AddConfigPath("/etc/tmdbctl/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDB defaults
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.access_token", "")
	v.SetDefault("tmdb.session_id", "")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.language", "en-US")
	v.SetDefault("tmdb.region", "")
	v.SetDefault("tmdb.include_adult", false)

	// HTTP defaults
	v.SetDefault("http.timeout", "10s")
	v.SetDefault("http.max_retries", 3)
	v.SetDefault("http.retry_delay", "1s")
	v.SetDefault("http.retry_timeouts", false)
	v.SetDefault("http.rate_limit", 0)
	v.SetDefault("http.rate_burst", 1)
	v.SetDefault("http.compression", true)
	v.SetDefault("http.user_agent", "tmdbctl")

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 100)
	v.SetDefault("cache.ttl", "5m")

	v.SetDefault("output.format", "table")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

func bindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range tmdbEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return fmt.Errorf("error binding %s: %w", env, err)
		}
	}
	return nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	apiKey := strings.TrimSpace(cfg.TMDB.APIKey)
	if apiKey == "your-api-key-here" {
		return fmt.Errorf("tmdb.api_key must be set to a valid API key")
	}
	if apiKey == "" && strings.TrimSpace(cfg.TMDB.AccessToken) == "" {
		return fmt.Errorf("tmdb.api_key or tmdb.access_token is required")
	}

	if cfg.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url is required")
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxRetries < 0 {
		return fmt.Errorf("http.max_retries must not be negative")
	}
	if cfg.HTTP.RetryDelay < 0 {
		return fmt.Errorf("http.retry_delay must not be negative")
	}
	if cfg.HTTP.RateLimit < 0 {
		return fmt.Errorf("http.rate_limit must not be negative")
	}

	if cfg.Cache.Enabled && (cfg.Cache.Size <= 0 || cfg.Cache.TTL <= 0) {
		return fmt.Errorf("cache.size and cache.ttl must be positive when the cache is enabled")
	}

	if !slices.Contains(validLevels, cfg.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}
	if !slices.Contains(validFormats, cfg.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}
	if !slices.Contains(validOutputs, cfg.Output.Format) {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	for name, expr := range cfg.Filters {
		if strings.TrimSpace(expr) == "" {
			return fmt.Errorf("filters.%s has an empty expression", name)
		}
	}

	return nil
}
