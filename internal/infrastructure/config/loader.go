package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading using Viper
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader instance
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load loads configuration from files and environment variables
func (l *Loader) Load() (*Config, error) {
	l.setupViper()

	if err := l.v.ReadInConfig(); err != nil {
		// Missing config.yaml is fine, env vars and defaults carry the day
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := GetDefaultConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := NewValidator().Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setupViper configures Viper to read files and env vars
func (l *Loader) setupViper() {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	l.v.AddConfigPath("./configs")
	l.v.AddConfigPath("../configs")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("/etc/crypto-tracker")

	l.v.AutomaticEnv()
	l.v.SetEnvPrefix("CRYPTO_TRACKER") // CRYPTO_TRACKER_SERVER_PORT etc.
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l.bindEnvVars()
}

// bindEnvVars maps short, unprefixed environment variables to config keys
func (l *Loader) bindEnvVars() {
	envMappings := map[string]string{
		"server.port":                "PORT",
		"cache.backend":              "CACHE_BACKEND",
		"cache.ttl":                  "CACHE_TTL",
		"cache.redis.addr":           "REDIS_ADDR",
		"cache.redis.password":       "REDIS_PASSWORD",
		"cache.redis.db":             "REDIS_DB",
		"coingecko.base_url":         "COINGECKO_BASE_URL",
		"coingecko.timeout":          "COINGECKO_TIMEOUT",
		"portfolio.db_path":          "DB_PATH",
		"portfolio.refresh_interval": "PORTFOLIO_REFRESH_INTERVAL",
		"logging.level":              "LOG_LEVEL",
		"logging.format":             "LOG_FORMAT",
	}

	for configKey, envVar := range envMappings {
		_ = l.v.BindEnv(configKey, envVar)
	}
}

// Load is the package-level convenience entry point used by main.
func Load() (*Config, error) {
	return NewLoader().Load()
}
