package dto

import (
	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
)

// Mapper converts domain entities into response DTOs.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// ToMarketsResponse converts a market listing.
func (m *Mapper) ToMarketsResponse(coins []entities.CoinMarket) *MarketsResponse {
	data := make([]CoinData, len(coins))
	for i, coin := range coins {
		data[i] = CoinData{
			ID:                coin.ID,
			Name:              coin.Name,
			Symbol:            coin.Symbol,
			Image:             coin.Image,
			CurrentPrice:      coin.CurrentPrice,
			MarketCap:         coin.MarketCap,
			PriceChangePct24h: coin.PriceChangePct24h,
		}
	}
	return &MarketsResponse{
		Coins: data,
		Count: len(data),
	}
}

// ToPortfolioResponse converts the holdings list.
func (m *Mapper) ToPortfolioResponse(holdings []entities.Holding) *PortfolioResponse {
	data := make([]HoldingData, len(holdings))
	for i, h := range holdings {
		data[i] = HoldingData{
			ID:           h.ID,
			CoinID:       h.CoinID,
			Name:         h.Name,
			Symbol:       h.Symbol,
			Quantity:     h.Quantity,
			CurrentPrice: h.CurrentPrice,
			Value:        h.Value(),
			LastUpdated:  h.LastUpdated,
		}
	}
	return &PortfolioResponse{
		Holdings: data,
		Count:    len(data),
	}
}

// ToTotalsResponse converts the aggregate view.
func (m *Mapper) ToTotalsResponse(totals entities.PortfolioTotals) *TotalsResponse {
	return &TotalsResponse{
		TotalValue: totals.TotalValue,
		Holdings:   totals.Holdings,
	}
}

// ToChartResponse converts a chart series.
func (m *Mapper) ToChartResponse(coin string, days int, series entities.ChartSeries) *ChartResponse {
	labels := series.Labels
	if labels == nil {
		labels = []string{}
	}
	values := series.Values
	if values == nil {
		values = []float64{}
	}
	return &ChartResponse{
		Coin:   coin,
		Days:   days,
		Labels: labels,
		Values: values,
	}
}
