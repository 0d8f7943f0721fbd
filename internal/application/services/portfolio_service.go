package services

import (
	"context"
	"sync"
	"time"

	"github.com/Adzz29/Crypto-Tracker/internal/application/dto"
	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
	"github.com/Adzz29/Crypto-Tracker/internal/domain/interfaces"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/logging"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/metrics"
)

// portfolioService owns the holdings use cases. Reads refresh stored
// prices first so the page always shows current data; the refresh is
// best-effort and never fails a read, it just leaves stale rows in place.
type portfolioService struct {
	repo   interfaces.PortfolioRepository
	source interfaces.PriceSource

	// refreshInterval is the staleness threshold for refresh-on-read.
	// Zero refreshes on every read.
	refreshInterval time.Duration

	mu          sync.Mutex
	lastRefresh time.Time

	now func() time.Time
}

// NewPortfolioService creates the holdings service.
func NewPortfolioService(repo interfaces.PortfolioRepository, source interfaces.PriceSource, refreshInterval time.Duration) interfaces.PortfolioService {
	return &portfolioService{
		repo:            repo,
		source:          source,
		refreshInterval: refreshInterval,
		now:             time.Now,
	}
}

// Add creates a holding from raw form input. The coin id and symbol are
// lowercased and a quantity that does not parse (or is negative) becomes 0.
// The initial price is a best-effort single-id lookup, 0 when the pricing
// service has nothing for the id.
func (s *portfolioService) Add(ctx context.Context, coinID, name, symbol, quantityRaw string) (*entities.Holding, error) {
	req := dto.NewAddHoldingRequest(coinID, name, symbol, quantityRaw)

	price := 0.0
	if prices := s.source.SimplePrices(ctx, []string{req.CoinID}); len(prices) > 0 {
		price = prices[req.CoinID]
	}

	holding := &entities.Holding{
		CoinID:       req.CoinID,
		Name:         req.Name,
		Symbol:       req.Symbol,
		Quantity:     req.Quantity,
		CurrentPrice: price,
		LastUpdated:  s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, holding); err != nil {
		logging.ErrorWithError(ctx, "Failed to insert holding", err, logging.Fields{
			"coin_id": req.CoinID,
		})
		return nil, err
	}

	logging.Info(ctx, "Holding added", logging.Fields{
		"id":       holding.ID,
		"coin_id":  holding.CoinID,
		"quantity": holding.Quantity,
		"price":    holding.CurrentPrice,
	})
	return holding, nil
}

// Remove deletes a holding by id. Unknown ids are a no-op.
func (s *portfolioService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logging.ErrorWithError(ctx, "Failed to delete holding", err, logging.Fields{"id": id})
		return err
	}
	logging.Info(ctx, "Holding removed", logging.Fields{"id": id})
	return nil
}

// Refresh updates the stored price of every distinct held coin in exactly
// one batched lookup. An empty portfolio performs no upstream I/O. When
// the pricing service returns nothing the stored prices are kept as-is.
func (s *portfolioService) Refresh(ctx context.Context) error {
	ids, err := s.repo.DistinctCoinIDs(ctx)
	if err != nil {
		metrics.RecordPriceRefresh("error")
		return err
	}
	if len(ids) == 0 {
		metrics.RecordPriceRefresh("empty")
		return nil
	}

	prices := s.source.SimplePrices(ctx, ids)
	if len(prices) == 0 {
		metrics.RecordPriceRefresh("skipped")
		logging.Warn(ctx, "Price refresh returned no data, keeping stored prices", logging.Fields{
			"coin_ids": len(ids),
		})
		return nil
	}

	if err := s.repo.UpdatePrices(ctx, prices, s.now().UTC()); err != nil {
		metrics.RecordPriceRefresh("error")
		return err
	}

	s.mu.Lock()
	s.lastRefresh = s.now()
	s.mu.Unlock()

	metrics.RecordPriceRefresh("success")
	logging.Debug(ctx, "Portfolio prices refreshed", logging.Fields{
		"coins_held":   len(ids),
		"coins_priced": len(prices),
	})
	return nil
}

// List refreshes prices (subject to the staleness threshold) and returns
// every holding. A failed refresh still returns the stored rows.
func (s *portfolioService) List(ctx context.Context) ([]entities.Holding, error) {
	if s.needsRefresh() {
		if err := s.Refresh(ctx); err != nil {
			logging.WarnWithError(ctx, "Price refresh failed, serving stored prices", err, nil)
		}
	}
	return s.repo.List(ctx)
}

// Totals returns the aggregate portfolio view and publishes it as gauges.
func (s *portfolioService) Totals(ctx context.Context) (entities.PortfolioTotals, error) {
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return entities.PortfolioTotals{}, err
	}
	metrics.UpdatePortfolioTotals(totals.TotalValue, totals.Holdings)
	return totals, nil
}

// Logos returns coin id -> image URL for the given holdings, best effort.
func (s *portfolioService) Logos(ctx context.Context, holdings []entities.Holding) map[string]string {
	if len(holdings) == 0 {
		return map[string]string{}
	}

	ids := make([]string, 0, len(holdings))
	for _, h := range holdings {
		ids = append(ids, h.CoinID)
	}

	logos := make(map[string]string)
	for id, market := range s.source.MarketsByIDs(ctx, ids) {
		if market.Image != "" {
			logos[id] = market.Image
		}
	}
	return logos
}

func (s *portfolioService) needsRefresh() bool {
	if s.refreshInterval <= 0 {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Sub(s.lastRefresh) >= s.refreshInterval
}
