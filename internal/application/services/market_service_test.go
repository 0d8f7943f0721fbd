package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/config"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/repositories/cache"
)

var testMarkets = []entities.CoinMarket{
	{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 64000, PriceChangePct24h: 1.8},
	{ID: "ethereum", Name: "Ethereum", Symbol: "eth", CurrentPrice: 3100, PriceChangePct24h: -0.4},
	{ID: "dogecoin", Name: "Dogecoin", Symbol: "doge", CurrentPrice: 0.1, PriceChangePct24h: 5.2},
}

func newMarketFixture(source *fakePriceSource) *marketService {
	svc := NewMarketService(source, cache.NewMemoryCache(), config.MarketConfig{
		TopLimit:  20,
		ChartCoin: "bitcoin",
		ChartDays: 7,
	}, time.Minute)
	return svc.(*marketService)
}

func TestMarketService_TopMarketsUsesCache(t *testing.T) {
	source := &fakePriceSource{top: testMarkets}
	svc := newMarketFixture(source)
	ctx := context.Background()

	first := svc.TopMarkets(ctx)
	second := svc.TopMarkets(ctx)

	assert.Equal(t, testMarkets, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.topCalls, "second read is served from cache")
}

func TestMarketService_EmptyListingNotCached(t *testing.T) {
	source := &fakePriceSource{}
	svc := newMarketFixture(source)
	ctx := context.Background()

	assert.Empty(t, svc.TopMarkets(ctx))
	assert.Empty(t, svc.TopMarkets(ctx))

	assert.Equal(t, 2, source.topCalls, "failures are retried on the next read instead of cached")
}

func TestMarketService_Search(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns everything", query: "", wantIDs: []string{"bitcoin", "ethereum", "dogecoin"}},
		{name: "name substring", query: "bit", wantIDs: []string{"bitcoin"}},
		{name: "symbol substring", query: "eth", wantIDs: []string{"ethereum"}},
		{name: "case insensitive", query: "DOGE", wantIDs: []string{"dogecoin"}},
		{name: "exact id", query: "bitcoin", wantIDs: []string{"bitcoin"}},
		{name: "no match", query: "zzz", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakePriceSource{top: testMarkets}
			svc := newMarketFixture(source)

			results := svc.Search(context.Background(), tt.query)

			ids := make([]string, 0, len(results))
			for _, coin := range results {
				ids = append(ids, coin.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMarketService_ChartForUsesCache(t *testing.T) {
	source := &fakePriceSource{
		chart: entities.ChartSeries{
			Labels: []string{"Jan 15", "Jan 16"},
			Values: []float64{64123.46, 64999.99},
		},
	}
	svc := newMarketFixture(source)
	ctx := context.Background()

	first := svc.ChartFor(ctx, "bitcoin", 7)
	second := svc.Chart(ctx)

	require.Equal(t, source.chart, first)
	assert.Equal(t, first, second, "Chart and ChartFor share the same cache key")
	assert.Equal(t, 1, source.chartCalls)
}

func TestMarketService_EmptyChartNotCached(t *testing.T) {
	source := &fakePriceSource{}
	svc := newMarketFixture(source)
	ctx := context.Background()

	assert.True(t, svc.Chart(ctx).Empty())
	assert.True(t, svc.Chart(ctx).Empty())

	assert.Equal(t, 2, source.chartCalls)
}

func TestMarketService_Change24h(t *testing.T) {
	svc := newMarketFixture(&fakePriceSource{})

	tests := []struct {
		name  string
		coins []entities.CoinMarket
		want  float64
	}{
		{
			name:  "bitcoin row wins",
			coins: testMarkets,
			want:  1.8,
		},
		{
			name: "falls back to first row",
			coins: []entities.CoinMarket{
				{ID: "ethereum", PriceChangePct24h: -0.4},
				{ID: "dogecoin", PriceChangePct24h: 5.2},
			},
			want: -0.4,
		},
		{
			name:  "empty listing",
			coins: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Change24h(tt.coins))
		})
	}
}
