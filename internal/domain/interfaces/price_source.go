package interfaces

import (
	"context"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
)

// PriceSource is the gateway to the external pricing service. Every method
// degrades to an empty result when the upstream is unavailable; callers must
// treat absence as "no data right now", never as a fatal condition.
type PriceSource interface {
	// TopMarkets returns up to limit coins ordered by descending market cap.
	TopMarkets(ctx context.Context, limit int) []entities.CoinMarket

	// SimplePrices performs a single batched lookup for the given coin ids
	// and returns a map keyed by id. Ids the service does not know are simply
	// absent from the map.
	SimplePrices(ctx context.Context, ids []string) map[string]float64

	// MarketsByIDs returns display metadata (name, symbol, image URL) for the
	// given ids, again in one batched call.
	MarketsByIDs(ctx context.Context, ids []string) map[string]entities.CoinMarket

	// ChartSeries returns a date-labelled price series for one coin over the
	// given number of days.
	ChartSeries(ctx context.Context, coinID string, days int) entities.ChartSeries
}
