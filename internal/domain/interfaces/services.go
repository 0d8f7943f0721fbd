package interfaces

import (
	"context"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
)

// MarketService serves the read-only market pages.
type MarketService interface {
	// TopMarkets returns the market listing, possibly from cache.
	TopMarkets(ctx context.Context) []entities.CoinMarket

	// Search filters the market listing by a case-insensitive substring match
	// on name or symbol, or an exact id match.
	Search(ctx context.Context, query string) []entities.CoinMarket

	// Chart returns the dashboard price chart series.
	Chart(ctx context.Context) entities.ChartSeries

	// ChartFor returns a price series for an arbitrary coin and day range.
	ChartFor(ctx context.Context, coinID string, days int) entities.ChartSeries

	// Change24h picks the headline 24h change for the dashboard summary.
	Change24h(coins []entities.CoinMarket) float64
}

// PortfolioService owns the holdings use cases.
type PortfolioService interface {
	// Add creates a holding. coinID and symbol are lowercased; a quantity
	// that does not parse becomes 0. The initial price is a best-effort
	// single-id lookup, 0 when the service has no price.
	Add(ctx context.Context, coinID, name, symbol, quantityRaw string) (*entities.Holding, error)

	// Remove deletes by id; unknown ids are a no-op.
	Remove(ctx context.Context, id int64) error

	// Refresh updates cached prices for every distinct held coin in exactly
	// one batched lookup. An empty portfolio performs no I/O.
	Refresh(ctx context.Context) error

	// List refreshes (subject to the staleness policy) then returns all rows.
	List(ctx context.Context) ([]entities.Holding, error)

	// Totals returns the aggregate portfolio view.
	Totals(ctx context.Context) (entities.PortfolioTotals, error)

	// Logos returns coin id -> image URL for the given holdings.
	Logos(ctx context.Context, holdings []entities.Holding) map[string]string
}
