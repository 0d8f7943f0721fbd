package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidator_DefaultConfigIsValid(t *testing.T) {
	validator := NewValidator()

	assert.NoError(t, validator.Validate(GetDefaultConfig()))
}

func TestValidator_Server(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "invalid port",
		},
		{
			name:    "zero shutdown timeout",
			mutate:  func(c *Config) { c.Server.ShutdownTimeout = 0 },
			wantErr: "shutdown_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)

			err := NewValidator().Validate(cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidator_CoinGecko(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing scheme",
			mutate:  func(c *Config) { c.CoinGecko.BaseURL = "api.coingecko.com/api/v3" },
			wantErr: "invalid base_url",
		},
		{
			name:    "non-http scheme",
			mutate:  func(c *Config) { c.CoinGecko.BaseURL = "ftp://api.coingecko.com" },
			wantErr: "http or https",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.CoinGecko.Timeout = 0 },
			wantErr: "timeout must be positive",
		},
		{
			name:    "zero retries",
			mutate:  func(c *Config) { c.CoinGecko.MaxRetries = 0 },
			wantErr: "max_retries",
		},
		{
			name: "max backoff below base",
			mutate: func(c *Config) {
				c.CoinGecko.BaseBackoff = time.Second
				c.CoinGecko.MaxBackoff = 100 * time.Millisecond
			},
			wantErr: "invalid backoff range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)

			err := NewValidator().Validate(cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidator_Cache(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Cache.Backend = "memcached" },
			wantErr: "invalid cache backend",
		},
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.Cache.TTL = 0 },
			wantErr: "TTL must be positive",
		},
		{
			name: "redis addr missing port",
			mutate: func(c *Config) {
				c.Cache.Backend = "redis"
				c.Cache.Redis.Addr = "localhost"
			},
			wantErr: "invalid redis addr",
		},
		{
			name: "redis db out of range",
			mutate: func(c *Config) {
				c.Cache.Backend = "redis"
				c.Cache.Redis.DB = 42
			},
			wantErr: "invalid redis DB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)

			err := NewValidator().Validate(cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidator_PortfolioAndMarket(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty db path",
			mutate:  func(c *Config) { c.Portfolio.DBPath = "" },
			wantErr: "db_path",
		},
		{
			name:    "negative refresh interval",
			mutate:  func(c *Config) { c.Portfolio.RefreshInterval = -time.Second },
			wantErr: "refresh_interval",
		},
		{
			name:    "refresh interval too long",
			mutate:  func(c *Config) { c.Portfolio.RefreshInterval = 48 * time.Hour },
			wantErr: "refresh_interval too long",
		},
		{
			name:    "zero refresh interval is valid",
			mutate:  func(c *Config) { c.Portfolio.RefreshInterval = 0 },
			wantErr: "",
		},
		{
			name:    "top limit too large",
			mutate:  func(c *Config) { c.Market.TopLimit = 1000 },
			wantErr: "top_limit",
		},
		{
			name:    "empty chart coin",
			mutate:  func(c *Config) { c.Market.ChartCoin = "" },
			wantErr: "chart_coin",
		},
		{
			name:    "chart days out of range",
			mutate:  func(c *Config) { c.Market.ChartDays = 400 },
			wantErr: "chart_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)

			err := NewValidator().Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidator_Logging(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "verbose"
	assert.ErrorContains(t, NewValidator().Validate(cfg), "invalid log level")

	cfg = GetDefaultConfig()
	cfg.Logging.Format = "xml"
	assert.ErrorContains(t, NewValidator().Validate(cfg), "invalid log format")
}
