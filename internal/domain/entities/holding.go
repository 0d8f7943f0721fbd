package entities

import "time"

// Holding is one portfolio row: a user-tracked quantity of a coin together
// with the last price the pricing service returned for it. CurrentPrice and
// LastUpdated only move on a successful refresh; a coin the upstream no
// longer knows about keeps its stale values.
type Holding struct {
	ID           int64     `json:"id"`
	CoinID       string    `json:"coin_id"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	Quantity     float64   `json:"quantity"`
	CurrentPrice float64   `json:"current_price"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Value returns the holding's worth at the cached price.
func (h *Holding) Value() float64 {
	return h.Quantity * h.CurrentPrice
}

// PortfolioTotals is the aggregate dashboard view of the portfolio.
type PortfolioTotals struct {
	TotalValue float64 `json:"total_value"`
	Holdings   int     `json:"holdings"`
}
