package config

import (
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko" mapstructure:"coingecko"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Portfolio PortfolioConfig `yaml:"portfolio" mapstructure:"portfolio"`
	Market    MarketConfig    `yaml:"market" mapstructure:"market"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// CoinGeckoConfig contains the pricing service client configuration
type CoinGeckoConfig struct {
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxRetries  uint          `yaml:"max_retries" mapstructure:"max_retries"`
	BaseBackoff time.Duration `yaml:"base_backoff" mapstructure:"base_backoff"`
	MaxBackoff  time.Duration `yaml:"max_backoff" mapstructure:"max_backoff"`
	UserAgent   string        `yaml:"user_agent" mapstructure:"user_agent"`
	// RatePerMin throttles outbound requests client-side. Zero disables
	// the throttle.
	RatePerMin int `yaml:"rate_per_min" mapstructure:"rate_per_min"`
}

// CacheConfig contains cache system configuration
type CacheConfig struct {
	Backend string        `yaml:"backend" mapstructure:"backend"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig contains Redis-specific configuration
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

// PortfolioConfig contains the holdings store configuration
type PortfolioConfig struct {
	DBPath string `yaml:"db_path" mapstructure:"db_path"`
	// RefreshInterval is the staleness threshold for refresh-on-read.
	// Zero means every read triggers a refresh, matching the original
	// demand-driven contract.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`
}

// MarketConfig contains the market listing configuration
type MarketConfig struct {
	TopLimit  int    `yaml:"top_limit" mapstructure:"top_limit"`
	ChartCoin string `yaml:"chart_coin" mapstructure:"chart_coin"`
	ChartDays int    `yaml:"chart_days" mapstructure:"chart_days"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// GetDefaultConfig returns the configuration used when no file or env
// override is present.
func GetDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		CoinGecko: CoinGeckoConfig{
			BaseURL:     "https://api.coingecko.com/api/v3",
			Timeout:     15 * time.Second,
			MaxRetries:  3,
			BaseBackoff: 500 * time.Millisecond,
			MaxBackoff:  4 * time.Second,
			UserAgent:   "CryptoTracker/1.0 (+http://localhost)",
			RatePerMin:  30,
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     60 * time.Second,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				Password: "",
				DB:       0,
			},
		},
		Portfolio: PortfolioConfig{
			DBPath:          "portfolio.db",
			RefreshInterval: 0,
		},
		Market: MarketConfig{
			TopLimit:  20,
			ChartCoin: "bitcoin",
			ChartDays: 7,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
