package dto

import (
	"strconv"
	"strings"
)

// AddHoldingRequest carries the add-holding form fields after normalization.
type AddHoldingRequest struct {
	CoinID   string
	Name     string
	Symbol   string
	Quantity float64
}

// NewAddHoldingRequest normalizes the raw form values: coin id and symbol
// are lowercased, and a quantity that does not parse as a number becomes 0
// rather than failing the request. The original dashboard behaves this way
// and the contract is preserved on purpose.
func NewAddHoldingRequest(coinID, name, symbol, quantityRaw string) AddHoldingRequest {
	return AddHoldingRequest{
		CoinID:   strings.ToLower(strings.TrimSpace(coinID)),
		Name:     strings.TrimSpace(name),
		Symbol:   strings.ToLower(strings.TrimSpace(symbol)),
		Quantity: parseQuantity(quantityRaw),
	}
}

// parseQuantity coerces malformed or negative input to 0.
func parseQuantity(raw string) float64 {
	quantity, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || quantity < 0 {
		return 0
	}
	return quantity
}
