package dto

import "time"

// CoinData represents one market listing entry
// @Description Market data for a single cryptocurrency
type CoinData struct {
	ID                string  `json:"id" example:"bitcoin"`                      // Pricing-service coin id
	Name              string  `json:"name" example:"Bitcoin"`                    // Display name
	Symbol            string  `json:"symbol" example:"btc"`                      // Ticker symbol
	Image             string  `json:"image,omitempty"`                           // Logo URL
	CurrentPrice      float64 `json:"current_price" example:"64123.45"`          // Price in USD
	MarketCap         float64 `json:"market_cap" example:"1264000000000"`        // Market capitalization in USD
	PriceChangePct24h float64 `json:"price_change_percentage_24h" example:"1.8"` // 24h percent change
}

// HoldingData represents one portfolio row
// @Description A tracked holding with its cached price
type HoldingData struct {
	ID           int64     `json:"id" example:"1"`
	CoinID       string    `json:"coin_id" example:"bitcoin"`
	Name         string    `json:"name" example:"Bitcoin"`
	Symbol       string    `json:"symbol" example:"btc"`
	Quantity     float64   `json:"quantity" example:"0.5"`
	CurrentPrice float64   `json:"current_price" example:"64123.45"`
	Value        float64   `json:"value" example:"32061.72"`
	LastUpdated  time.Time `json:"last_updated"`
}

// MarketsResponse is the /api/v1/markets payload
// @Description Top coins ordered by market capitalization
type MarketsResponse struct {
	Coins []CoinData `json:"coins"`
	Count int        `json:"count" example:"20"`
}

// PortfolioResponse is the /api/v1/portfolio payload
// @Description All holdings with refreshed prices
type PortfolioResponse struct {
	Holdings []HoldingData `json:"holdings"`
	Count    int           `json:"count" example:"3"`
}

// TotalsResponse is the /api/v1/portfolio/totals payload
// @Description Aggregate portfolio value
type TotalsResponse struct {
	TotalValue float64 `json:"total_value" example:"32061.72"`
	Holdings   int     `json:"holdings" example:"3"`
}

// ChartResponse is the /api/v1/chart payload
// @Description Date labels and prices for a coin's recent history
type ChartResponse struct {
	Coin   string    `json:"coin" example:"bitcoin"`
	Days   int       `json:"days" example:"7"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ErrorResponse is the standard error payload for API endpoints
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"INVALID_PARAMETER"`
	Message string `json:"message,omitempty" example:"days must be a positive integer"`
}

// HealthResponse reports service health
// @Description Health check response with per-dependency status
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
}

// NewHealthResponse creates a health response stamped with the current time.
func NewHealthResponse(status string, services map[string]string) *HealthResponse {
	return &HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(errorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   errorCode,
		Message: message,
	}
}
