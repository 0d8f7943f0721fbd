package coingecko

// marketRow mirrors one element of the coins/markets response. Only the
// fields the dashboard needs are decoded.
type marketRow struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Symbol            string   `json:"symbol"`
	Image             string   `json:"image"`
	CurrentPrice      float64  `json:"current_price"`
	MarketCap         float64  `json:"market_cap"`
	PriceChangePct24h *float64 `json:"price_change_percentage_24h"`
}

// simplePriceResponse mirrors the simple/price response:
// {"bitcoin": {"usd": 64000.12}, ...}. A coin the service does not know is
// simply missing from the outer map; a known coin without a USD quote is
// missing from the inner one.
type simplePriceResponse map[string]map[string]float64

// marketChartResponse mirrors coins/{id}/market_chart. Each price point is a
// [unix_ms, price] pair.
type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}
