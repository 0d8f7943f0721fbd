package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/interfaces"
	appconfig "github.com/Adzz29/Crypto-Tracker/internal/infrastructure/config"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/logging"
)

// Backend names accepted by the factory.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// NewFromConfig creates a cache instance for the configured backend. The
// redis backend is pinged before use so a misconfigured address fails at
// startup rather than on the first page load.
func NewFromConfig(cfg appconfig.CacheConfig) (interfaces.Cache, error) {
	ctx := context.Background()

	switch cfg.Backend {
	case BackendMemory:
		logging.Info(ctx, "Creating memory cache", logging.Fields{
			"backend": BackendMemory,
		})
		return NewMemoryCache(), nil

	case BackendRedis:
		logging.Info(ctx, "Creating Redis cache", logging.Fields{
			"backend": BackendRedis,
			"addr":    cfg.Redis.Addr,
			"db":      cfg.Redis.DB,
		})

		redisCache := NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := redisCache.Ping(pingCtx); err != nil {
			_ = redisCache.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
		}
		return redisCache, nil

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}
