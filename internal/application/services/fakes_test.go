package services

import (
	"context"
	"sync"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
)

// fakePriceSource is a canned price source that records every call.
type fakePriceSource struct {
	mu sync.Mutex

	prices  map[string]float64
	markets map[string]entities.CoinMarket
	top     []entities.CoinMarket
	chart   entities.ChartSeries

	topCalls    int
	chartCalls  int
	simpleCalls [][]string
}

func (f *fakePriceSource) TopMarkets(ctx context.Context, limit int) []entities.CoinMarket {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topCalls++
	if limit < len(f.top) {
		return f.top[:limit]
	}
	return f.top
}

func (f *fakePriceSource) SimplePrices(ctx context.Context, ids []string) map[string]float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.simpleCalls = append(f.simpleCalls, append([]string(nil), ids...))

	result := make(map[string]float64)
	for _, id := range ids {
		if price, ok := f.prices[id]; ok {
			result[id] = price
		}
	}
	return result
}

func (f *fakePriceSource) MarketsByIDs(ctx context.Context, ids []string) map[string]entities.CoinMarket {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make(map[string]entities.CoinMarket)
	for _, id := range ids {
		if market, ok := f.markets[id]; ok {
			result[id] = market
		}
	}
	return result
}

func (f *fakePriceSource) ChartSeries(ctx context.Context, coinID string, days int) entities.ChartSeries {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chartCalls++
	return f.chart
}

func (f *fakePriceSource) simpleCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.simpleCalls)
}

func (f *fakePriceSource) lastSimpleCall() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.simpleCalls) == 0 {
		return nil
	}
	return f.simpleCalls[len(f.simpleCalls)-1]
}
