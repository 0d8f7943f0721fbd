package handlers

import (
	"context"
	"time"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
)

type stubMarketService struct {
	coins []entities.CoinMarket
	chart entities.ChartSeries

	lastSearch    string
	lastChartCoin string
	lastChartDays int
}

func (s *stubMarketService) TopMarkets(ctx context.Context) []entities.CoinMarket {
	return s.coins
}

func (s *stubMarketService) Search(ctx context.Context, query string) []entities.CoinMarket {
	s.lastSearch = query
	return s.coins
}

func (s *stubMarketService) Chart(ctx context.Context) entities.ChartSeries {
	return s.chart
}

func (s *stubMarketService) ChartFor(ctx context.Context, coinID string, days int) entities.ChartSeries {
	s.lastChartCoin = coinID
	s.lastChartDays = days
	return s.chart
}

func (s *stubMarketService) Change24h(coins []entities.CoinMarket) float64 {
	if len(coins) == 0 {
		return 0
	}
	return coins[0].PriceChangePct24h
}

type stubPortfolioService struct {
	holdings []entities.Holding
	totals   entities.PortfolioTotals
	listErr  error

	added   []string
	removed []int64
}

func (s *stubPortfolioService) Add(ctx context.Context, coinID, name, symbol, quantityRaw string) (*entities.Holding, error) {
	s.added = append(s.added, coinID)
	return &entities.Holding{ID: 1, CoinID: coinID, Name: name, Symbol: symbol}, nil
}

func (s *stubPortfolioService) Remove(ctx context.Context, id int64) error {
	s.removed = append(s.removed, id)
	return nil
}

func (s *stubPortfolioService) Refresh(ctx context.Context) error {
	return nil
}

func (s *stubPortfolioService) List(ctx context.Context) ([]entities.Holding, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.holdings, nil
}

func (s *stubPortfolioService) Totals(ctx context.Context) (entities.PortfolioTotals, error) {
	return s.totals, nil
}

func (s *stubPortfolioService) Logos(ctx context.Context, holdings []entities.Holding) map[string]string {
	return map[string]string{}
}

type stubCache struct {
	setErr error
}

func (s stubCache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (s stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.setErr
}

func (s stubCache) Delete(ctx context.Context, key string) error {
	return nil
}

type stubRepository struct {
	totalsErr error
}

func (s stubRepository) Insert(ctx context.Context, h *entities.Holding) error {
	return nil
}

func (s stubRepository) Delete(ctx context.Context, id int64) error {
	return nil
}

func (s stubRepository) List(ctx context.Context) ([]entities.Holding, error) {
	return nil, nil
}

func (s stubRepository) DistinctCoinIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (s stubRepository) UpdatePrices(ctx context.Context, prices map[string]float64, at time.Time) error {
	return nil
}

func (s stubRepository) Totals(ctx context.Context) (entities.PortfolioTotals, error) {
	return entities.PortfolioTotals{}, s.totalsErr
}

func (s stubRepository) Close() error {
	return nil
}
