package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
	"github.com/Adzz29/Crypto-Tracker/internal/domain/interfaces"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/config"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/logging"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/web/templates"
)

// PagesHandler renders the HTML dashboard pages.
type PagesHandler struct {
	markets   interfaces.MarketService
	portfolio interfaces.PortfolioService
	renderer  *templates.Renderer
	chartCoin string
	chartDays int
}

// NewPagesHandler creates the page handler.
func NewPagesHandler(markets interfaces.MarketService, portfolio interfaces.PortfolioService, renderer *templates.Renderer, marketCfg config.MarketConfig) *PagesHandler {
	return &PagesHandler{
		markets:   markets,
		portfolio: portfolio,
		renderer:  renderer,
		chartCoin: marketCfg.ChartCoin,
		chartDays: marketCfg.ChartDays,
	}
}

type indexPageData struct {
	Totals    entities.PortfolioTotals
	Coins     []entities.CoinMarket
	Chart     entities.ChartSeries
	Change24h float64
	ChartCoin string
	ChartDays int
}

// Index renders the dashboard. Prices are refreshed before the totals are
// read; every section falls back to zeroed data when upstream is down.
func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.portfolio.Refresh(ctx); err != nil {
		logging.WarnWithError(ctx, "Dashboard price refresh failed", err, nil)
	}
	totals, err := h.portfolio.Totals(ctx)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to load portfolio totals", err, nil)
		totals = entities.PortfolioTotals{}
	}

	coins := h.markets.TopMarkets(ctx)

	h.render(w, r, "index", indexPageData{
		Totals:    totals,
		Coins:     coins,
		Chart:     h.markets.Chart(ctx),
		Change24h: h.markets.Change24h(coins),
		ChartCoin: h.chartCoin,
		ChartDays: h.chartDays,
	})
}

type pricesPageData struct {
	Coins  []entities.CoinMarket
	Search string
}

// Prices renders the market list with an optional search filter.
func (h *PagesHandler) Prices(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	h.render(w, r, "prices", pricesPageData{
		Coins:  h.markets.Search(r.Context(), search),
		Search: search,
	})
}

type portfolioPageData struct {
	Holdings []entities.Holding
	Totals   entities.PortfolioTotals
	Logos    map[string]string
}

// Portfolio renders the holdings page. List refreshes prices first, so the
// totals read afterwards reflect current data.
func (h *PagesHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	holdings, err := h.portfolio.List(ctx)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to load holdings", err, nil)
		holdings = nil
	}
	totals, err := h.portfolio.Totals(ctx)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to load portfolio totals", err, nil)
		totals = entities.PortfolioTotals{}
	}

	h.render(w, r, "portfolio", portfolioPageData{
		Holdings: holdings,
		Totals:   totals,
		Logos:    h.portfolio.Logos(ctx, holdings),
	})
}

// AddCoinForm renders the add-holding form.
func (h *PagesHandler) AddCoinForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "add_coin", nil)
}

// AddCoinSubmit inserts a holding from the form and redirects back to the
// portfolio page. Malformed quantities become 0 rather than an error page.
func (h *PagesHandler) AddCoinSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		logging.WarnWithError(ctx, "Failed to parse add-coin form", err, nil)
		http.Redirect(w, r, "/portfolio/add", http.StatusSeeOther)
		return
	}

	_, err := h.portfolio.Add(ctx,
		r.PostFormValue("coin_id"),
		r.PostFormValue("name"),
		r.PostFormValue("symbol"),
		r.PostFormValue("quantity"),
	)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to add holding", err, nil)
	}

	http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
}

// DeleteCoin removes a holding by path id and redirects. An unparseable or
// unknown id still redirects, matching the delete-is-a-no-op contract.
func (h *PagesHandler) DeleteCoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err == nil {
		if err := h.portfolio.Remove(ctx, id); err != nil {
			logging.ErrorWithError(ctx, "Failed to remove holding", err, logging.Fields{"id": id})
		}
	}

	http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
}

// Contact renders the static contact page.
func (h *PagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "contact", nil)
}

func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, page string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, page, data); err != nil {
		logging.ErrorWithError(r.Context(), "Failed to render page", err, logging.Fields{"page": page})
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
