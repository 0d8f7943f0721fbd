package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adzz29/Crypto-Tracker/internal/application/dto"
	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/config"
)

func testMarketConfig() config.MarketConfig {
	return config.MarketConfig{TopLimit: 20, ChartCoin: "bitcoin", ChartDays: 7}
}

func TestAPIHandler_Markets(t *testing.T) {
	markets := &stubMarketService{coins: []entities.CoinMarket{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 64000, PriceChangePct24h: 1.8},
	}}
	handler := NewAPIHandler(markets, &stubPortfolioService{}, testMarketConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/markets?search=bit", nil)
	rec := httptest.NewRecorder()
	handler.Markets(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "bit", markets.lastSearch)

	var response dto.MarketsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "bitcoin", response.Coins[0].ID)
}

func TestAPIHandler_Portfolio(t *testing.T) {
	portfolio := &stubPortfolioService{holdings: []entities.Holding{
		{ID: 1, CoinID: "bitcoin", Name: "Bitcoin", Symbol: "btc", Quantity: 0.5, CurrentPrice: 64000},
	}}
	handler := NewAPIHandler(&stubMarketService{}, portfolio, testMarketConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil)
	rec := httptest.NewRecorder()
	handler.Portfolio(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.PortfolioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, 1, response.Count)
	assert.Equal(t, 0.5*64000, response.Holdings[0].Value)
}

func TestAPIHandler_PortfolioStorageError(t *testing.T) {
	portfolio := &stubPortfolioService{listErr: errors.New("disk on fire")}
	handler := NewAPIHandler(&stubMarketService{}, portfolio, testMarketConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil)
	rec := httptest.NewRecorder()
	handler.Portfolio(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "STORAGE_ERROR", response.Error)
}

func TestAPIHandler_Totals(t *testing.T) {
	portfolio := &stubPortfolioService{totals: entities.PortfolioTotals{TotalValue: 32061.72, Holdings: 3}}
	handler := NewAPIHandler(&stubMarketService{}, portfolio, testMarketConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/totals", nil)
	rec := httptest.NewRecorder()
	handler.Totals(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.TotalsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 32061.72, response.TotalValue)
	assert.Equal(t, 3, response.Holdings)
}

func TestAPIHandler_Chart(t *testing.T) {
	markets := &stubMarketService{chart: entities.ChartSeries{
		Labels: []string{"Jan 15"},
		Values: []float64{64123.46},
	}}
	handler := NewAPIHandler(markets, &stubPortfolioService{}, testMarketConfig())

	t.Run("defaults", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/chart", nil)
		rec := httptest.NewRecorder()
		handler.Chart(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bitcoin", markets.lastChartCoin)
		assert.Equal(t, 7, markets.lastChartDays)
	})

	t.Run("explicit coin and days", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/chart?coin=Ethereum&days=30", nil)
		rec := httptest.NewRecorder()
		handler.Chart(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ethereum", markets.lastChartCoin)
		assert.Equal(t, 30, markets.lastChartDays)

		var response dto.ChartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "ethereum", response.Coin)
		assert.Equal(t, []string{"Jan 15"}, response.Labels)
	})

	t.Run("invalid days", func(t *testing.T) {
		for _, days := range []string{"abc", "0", "-7"} {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/chart?days="+days, nil)
			rec := httptest.NewRecorder()
			handler.Chart(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var response dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "INVALID_PARAMETER", response.Error)
		}
	})
}

func TestHealthHandler_Health(t *testing.T) {
	handler := NewHealthHandler(stubCache{}, stubRepository{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
}

func TestHealthHandler_Ready(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		handler := NewHealthHandler(stubCache{}, stubRepository{})

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rec := httptest.NewRecorder()
		handler.Ready(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "ready", response.Status)
		assert.Equal(t, "ready", response.Services["cache"])
		assert.Equal(t, "ready", response.Services["database"])
	})

	t.Run("cache down", func(t *testing.T) {
		handler := NewHealthHandler(stubCache{setErr: errors.New("connection refused")}, stubRepository{})

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rec := httptest.NewRecorder()
		handler.Ready(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var response dto.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "unhealthy", response.Status)
	})

	t.Run("database down", func(t *testing.T) {
		handler := NewHealthHandler(stubCache{}, stubRepository{totalsErr: errors.New("database is locked")})

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rec := httptest.NewRecorder()
		handler.Ready(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
