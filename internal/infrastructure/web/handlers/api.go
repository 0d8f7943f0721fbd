package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Adzz29/Crypto-Tracker/internal/application/dto"
	"github.com/Adzz29/Crypto-Tracker/internal/domain/interfaces"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/config"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/logging"
)

// APIHandler serves the JSON mirror of the page data.
type APIHandler struct {
	markets   interfaces.MarketService
	portfolio interfaces.PortfolioService
	mapper    *dto.Mapper
	chartCoin string
	chartDays int
}

// NewAPIHandler creates the JSON API handler.
func NewAPIHandler(markets interfaces.MarketService, portfolio interfaces.PortfolioService, marketCfg config.MarketConfig) *APIHandler {
	return &APIHandler{
		markets:   markets,
		portfolio: portfolio,
		mapper:    dto.NewMapper(),
		chartCoin: marketCfg.ChartCoin,
		chartDays: marketCfg.ChartDays,
	}
}

// Markets godoc
// @Summary Top coin markets
// @Description Returns the top coins by market capitalization with current prices. An empty list means the pricing service was unavailable.
// @Tags markets
// @Produce json
// @Param search query string false "Filter by name, symbol or exact id"
// @Success 200 {object} dto.MarketsResponse "Market listing"
// @Router /api/v1/markets [get]
func (h *APIHandler) Markets(w http.ResponseWriter, r *http.Request) {
	coins := h.markets.Search(r.Context(), r.URL.Query().Get("search"))
	h.writeJSON(w, http.StatusOK, h.mapper.ToMarketsResponse(coins))
}

// Portfolio godoc
// @Summary List holdings
// @Description Refreshes stored prices then returns every holding with its current value.
// @Tags portfolio
// @Produce json
// @Success 200 {object} dto.PortfolioResponse "All holdings"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /api/v1/portfolio [get]
func (h *APIHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.portfolio.List(r.Context())
	if err != nil {
		logging.ErrorWithError(r.Context(), "Failed to list holdings", err, nil)
		h.writeJSON(w, http.StatusInternalServerError, dto.NewErrorResponse("STORAGE_ERROR", "failed to load holdings"))
		return
	}
	h.writeJSON(w, http.StatusOK, h.mapper.ToPortfolioResponse(holdings))
}

// Totals godoc
// @Summary Portfolio totals
// @Description Returns the aggregate portfolio value and holding count. Zeroes for an empty portfolio.
// @Tags portfolio
// @Produce json
// @Success 200 {object} dto.TotalsResponse "Aggregate view"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /api/v1/portfolio/totals [get]
func (h *APIHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.portfolio.Totals(r.Context())
	if err != nil {
		logging.ErrorWithError(r.Context(), "Failed to load portfolio totals", err, nil)
		h.writeJSON(w, http.StatusInternalServerError, dto.NewErrorResponse("STORAGE_ERROR", "failed to load totals"))
		return
	}
	h.writeJSON(w, http.StatusOK, h.mapper.ToTotalsResponse(totals))
}

// Chart godoc
// @Summary Price history series
// @Description Returns date labels and prices for a coin's recent history. Empty series when the pricing service was unavailable.
// @Tags markets
// @Produce json
// @Param coin query string false "Coin id (default bitcoin)"
// @Param days query int false "Day range (default 7)"
// @Success 200 {object} dto.ChartResponse "Chart series"
// @Failure 400 {object} dto.ErrorResponse "Invalid days parameter"
// @Router /api/v1/chart [get]
func (h *APIHandler) Chart(w http.ResponseWriter, r *http.Request) {
	coin := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("coin")))
	if coin == "" {
		coin = h.chartCoin
	}

	days := h.chartDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeJSON(w, http.StatusBadRequest, dto.NewErrorResponse("INVALID_PARAMETER", "days must be a positive integer"))
			return
		}
		days = parsed
	}

	series := h.markets.ChartFor(r.Context(), coin, days)
	h.writeJSON(w, http.StatusOK, h.mapper.ToChartResponse(coin, days, series))
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_, _ = w.Write([]byte(`{"error":"ENCODING_ERROR","message":"Failed to encode response"}`))
	}
}
