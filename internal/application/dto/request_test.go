package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAddHoldingRequest(t *testing.T) {
	tests := []struct {
		name        string
		coinID      string
		displayName string
		symbol      string
		quantityRaw string
		want        AddHoldingRequest
	}{
		{
			name:        "normalizes case and whitespace",
			coinID:      " Bitcoin ",
			displayName: " Bitcoin ",
			symbol:      "BTC",
			quantityRaw: "0.5",
			want:        AddHoldingRequest{CoinID: "bitcoin", Name: "Bitcoin", Symbol: "btc", Quantity: 0.5},
		},
		{
			name:        "non-numeric quantity becomes zero",
			coinID:      "bitcoin",
			displayName: "Bitcoin",
			symbol:      "btc",
			quantityRaw: "abc",
			want:        AddHoldingRequest{CoinID: "bitcoin", Name: "Bitcoin", Symbol: "btc", Quantity: 0},
		},
		{
			name:        "negative quantity becomes zero",
			coinID:      "bitcoin",
			displayName: "Bitcoin",
			symbol:      "btc",
			quantityRaw: "-1.5",
			want:        AddHoldingRequest{CoinID: "bitcoin", Name: "Bitcoin", Symbol: "btc", Quantity: 0},
		},
		{
			name:        "empty quantity becomes zero",
			coinID:      "bitcoin",
			displayName: "Bitcoin",
			symbol:      "btc",
			quantityRaw: "",
			want:        AddHoldingRequest{CoinID: "bitcoin", Name: "Bitcoin", Symbol: "btc", Quantity: 0},
		},
		{
			name:        "quantity with surrounding spaces",
			coinID:      "ethereum",
			displayName: "Ethereum",
			symbol:      "eth",
			quantityRaw: " 2.25 ",
			want:        AddHoldingRequest{CoinID: "ethereum", Name: "Ethereum", Symbol: "eth", Quantity: 2.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAddHoldingRequest(tt.coinID, tt.displayName, tt.symbol, tt.quantityRaw)
			assert.Equal(t, tt.want, got)
		})
	}
}
