package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
	"github.com/Adzz29/Crypto-Tracker/internal/domain/interfaces"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/config"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/logging"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/metrics"
)

const (
	marketsCacheKey = "markets:top"
	chartKeyPrefix  = "chart:"
)

// marketService serves the market listing and chart pages. Upstream
// responses are cached briefly so rapid repeated page loads do not hammer
// the pricing service; a cache failure just falls through to the gateway.
type marketService struct {
	source    interfaces.PriceSource
	cache     interfaces.Cache
	cacheTTL  time.Duration
	topLimit  int
	chartCoin string
	chartDays int
}

// NewMarketService creates the market read service.
func NewMarketService(source interfaces.PriceSource, cache interfaces.Cache, marketCfg config.MarketConfig, cacheTTL time.Duration) interfaces.MarketService {
	return &marketService{
		source:    source,
		cache:     cache,
		cacheTTL:  cacheTTL,
		topLimit:  marketCfg.TopLimit,
		chartCoin: marketCfg.ChartCoin,
		chartDays: marketCfg.ChartDays,
	}
}

// TopMarkets returns the market listing, from cache when fresh.
func (s *marketService) TopMarkets(ctx context.Context) []entities.CoinMarket {
	if cached, err := s.cache.Get(ctx, marketsCacheKey); err == nil {
		var coins []entities.CoinMarket
		if err := json.Unmarshal([]byte(cached), &coins); err == nil {
			metrics.RecordCacheOperation("get", "hit")
			return coins
		}
	}
	metrics.RecordCacheOperation("get", "miss")

	coins := s.source.TopMarkets(ctx, s.topLimit)
	if len(coins) > 0 {
		s.cacheJSON(ctx, marketsCacheKey, coins)
	}
	return coins
}

// Search filters the listing by a case-insensitive substring on name or
// symbol, or an exact id match. An empty query returns the full listing.
func (s *marketService) Search(ctx context.Context, query string) []entities.CoinMarket {
	coins := s.TopMarkets(ctx)

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return coins
	}

	filtered := make([]entities.CoinMarket, 0, len(coins))
	for _, coin := range coins {
		if strings.Contains(strings.ToLower(coin.Name), query) ||
			strings.Contains(strings.ToLower(coin.Symbol), query) ||
			query == strings.ToLower(coin.ID) {
			filtered = append(filtered, coin)
		}
	}
	return filtered
}

// Chart returns the configured dashboard series (7-day BTC by default).
func (s *marketService) Chart(ctx context.Context) entities.ChartSeries {
	return s.ChartFor(ctx, s.chartCoin, s.chartDays)
}

// ChartFor returns a price series for an arbitrary coin and day range,
// cached under a per-coin key.
func (s *marketService) ChartFor(ctx context.Context, coinID string, days int) entities.ChartSeries {
	key := fmt.Sprintf("%s%s:%d", chartKeyPrefix, strings.ToLower(coinID), days)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var series entities.ChartSeries
		if err := json.Unmarshal([]byte(cached), &series); err == nil {
			metrics.RecordCacheOperation("get", "hit")
			return series
		}
	}
	metrics.RecordCacheOperation("get", "miss")

	series := s.source.ChartSeries(ctx, coinID, days)
	if !series.Empty() {
		s.cacheJSON(ctx, key, series)
	}
	return series
}

// Change24h picks the headline 24h change for the dashboard: the chart
// coin's row when present, otherwise the first listed coin, otherwise 0.
func (s *marketService) Change24h(coins []entities.CoinMarket) float64 {
	if len(coins) == 0 {
		return 0
	}
	for _, coin := range coins {
		if coin.ID == s.chartCoin {
			return coin.PriceChangePct24h
		}
	}
	return coins[0].PriceChangePct24h
}

func (s *marketService) cacheJSON(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		logging.WarnWithError(ctx, "Failed to marshal value for cache", err, logging.Fields{"key": key})
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		metrics.RecordCacheOperation("set", "error")
		logging.WarnWithError(ctx, "Failed to cache value", err, logging.Fields{"key": key})
		return
	}
	metrics.RecordCacheOperation("set", "success")
}
