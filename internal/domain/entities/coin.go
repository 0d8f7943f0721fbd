package entities

// CoinMarket is one row of the market listing: a coin with its current
// price and market statistics in the quote currency (USD).
type CoinMarket struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	Image             string  `json:"image"`
	CurrentPrice      float64 `json:"current_price"`
	MarketCap         float64 `json:"market_cap"`
	PriceChangePct24h float64 `json:"price_change_percentage_24h"`
}

// ChartSeries holds a reduced price time series: Labels and Values are
// parallel slices of equal length in ascending time order.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Empty reports whether the series carries no points.
func (s ChartSeries) Empty() bool {
	return len(s.Values) == 0
}
