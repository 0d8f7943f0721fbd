package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validator checks a loaded configuration for values the service cannot
// run with.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the whole configuration
func (v *Validator) Validate(config *Config) error {
	if err := v.validateServer(config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := v.validateCoinGecko(config.CoinGecko); err != nil {
		return fmt.Errorf("coingecko config validation failed: %w", err)
	}

	if err := v.validateCache(config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := v.validatePortfolio(config.Portfolio); err != nil {
		return fmt.Errorf("portfolio config validation failed: %w", err)
	}

	if err := v.validateMarket(config.Market); err != nil {
		return fmt.Errorf("market config validation failed: %w", err)
	}

	if err := v.validateLogging(config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func (v *Validator) validateServer(config ServerConfig) error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1-65535", config.Port)
	}

	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got: %v", config.ShutdownTimeout)
	}

	return nil
}

func (v *Validator) validateCoinGecko(config CoinGeckoConfig) error {
	parsed, err := url.Parse(config.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid base_url: %q", config.BaseURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https, got: %s", parsed.Scheme)
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", config.Timeout)
	}

	if config.MaxRetries == 0 {
		return fmt.Errorf("max_retries must be at least 1")
	}

	if config.BaseBackoff <= 0 || config.MaxBackoff < config.BaseBackoff {
		return fmt.Errorf("invalid backoff range: base %v, max %v", config.BaseBackoff, config.MaxBackoff)
	}

	if config.RatePerMin < 0 {
		return fmt.Errorf("rate_per_min cannot be negative, got: %d", config.RatePerMin)
	}

	return nil
}

func (v *Validator) validateCache(config CacheConfig) error {
	validBackends := []string{"memory", "redis"}
	if !contains(validBackends, config.Backend) {
		return fmt.Errorf("invalid cache backend: %s, must be one of: %v", config.Backend, validBackends)
	}

	if config.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %v", config.TTL)
	}

	if config.Backend == "redis" {
		if config.Redis.Addr == "" {
			return fmt.Errorf("redis addr cannot be empty")
		}
		if !strings.Contains(config.Redis.Addr, ":") {
			return fmt.Errorf("invalid redis addr format: %s, expected host:port", config.Redis.Addr)
		}
		if config.Redis.DB < 0 || config.Redis.DB > 15 {
			return fmt.Errorf("invalid redis DB: %d, must be between 0-15", config.Redis.DB)
		}
	}

	return nil
}

func (v *Validator) validatePortfolio(config PortfolioConfig) error {
	if config.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}

	if config.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval cannot be negative, got: %v", config.RefreshInterval)
	}

	if config.RefreshInterval > 24*time.Hour {
		return fmt.Errorf("refresh_interval too long: %v, max 24 hours", config.RefreshInterval)
	}

	return nil
}

func (v *Validator) validateMarket(config MarketConfig) error {
	if config.TopLimit <= 0 || config.TopLimit > 250 {
		return fmt.Errorf("top_limit must be between 1-250, got: %d", config.TopLimit)
	}

	if config.ChartCoin == "" {
		return fmt.Errorf("chart_coin cannot be empty")
	}

	if config.ChartDays <= 0 || config.ChartDays > 365 {
		return fmt.Errorf("chart_days must be between 1-365, got: %d", config.ChartDays)
	}

	return nil
}

func (v *Validator) validateLogging(config LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, config.Level) {
		return fmt.Errorf("invalid log level: %s, must be one of: %v", config.Level, validLevels)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, config.Format) {
		return fmt.Errorf("invalid log format: %s, must be one of: %v", config.Format, validFormats)
	}

	return nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
