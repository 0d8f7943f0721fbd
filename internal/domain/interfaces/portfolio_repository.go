package interfaces

import (
	"context"
	"time"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
)

// PortfolioRepository owns the durable set of holdings.
type PortfolioRepository interface {
	// Insert persists a new holding and assigns its ID.
	Insert(ctx context.Context, h *entities.Holding) error

	// Delete removes a holding by id. Deleting an id that does not exist is
	// a no-op, not an error.
	Delete(ctx context.Context, id int64) error

	// List returns every holding in storage order.
	List(ctx context.Context) ([]entities.Holding, error)

	// DistinctCoinIDs returns the deduplicated set of coin ids currently held.
	DistinctCoinIDs(ctx context.Context) ([]string, error)

	// UpdatePrices sets current_price and last_updated for every row whose
	// coin id appears in prices. All rows touched by one call share the same
	// timestamp. Rows with absent ids are left untouched.
	UpdatePrices(ctx context.Context, prices map[string]float64, at time.Time) error

	// Totals returns the portfolio value sum and row count, zeroes when empty.
	Totals(ctx context.Context) (entities.PortfolioTotals, error)

	Close() error
}
