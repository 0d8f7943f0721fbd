package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/entities"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/config"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/logging"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/metrics"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/ratelimit"
)

const (
	DefaultBaseURL     = "https://api.coingecko.com/api/v3"
	DefaultTimeout     = 15 * time.Second
	DefaultUserAgent   = "CryptoTracker/1.0 (+http://localhost)"
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = 500 * time.Millisecond
	DefaultMaxBackoff  = 4 * time.Second

	// The public CoinGecko tier allows about 30 requests per minute.
	DefaultRatePerMin = 30

	serviceName = "coingecko"
	vsCurrency  = "usd"
)

// retryableStatuses are the upstream responses worth another attempt. The
// list is deliberately exact rather than a blanket >=500 check: 501 and
// friends will not get better on retry.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Client talks to the CoinGecko REST API. It owns its http.Client and retry
// policy; nothing here is process-global, so tests can point it at a fake
// server. Every exported operation degrades to an empty result on failure
// instead of surfacing an error: absence means "no data available now".
type Client struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	maxRetries  uint
	baseBackoff time.Duration
	maxBackoff  time.Duration
	limiter     *ratelimit.TokenBucket
}

// NewClient creates a client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(config.CoinGeckoConfig{
		BaseURL:     DefaultBaseURL,
		Timeout:     DefaultTimeout,
		MaxRetries:  DefaultMaxRetries,
		BaseBackoff: DefaultBaseBackoff,
		MaxBackoff:  DefaultMaxBackoff,
		UserAgent:   DefaultUserAgent,
		RatePerMin:  DefaultRatePerMin,
	})
}

// NewClientWithConfig creates a client from loaded configuration.
func NewClientWithConfig(cfg config.CoinGeckoConfig) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		maxRetries:  cfg.MaxRetries,
		baseBackoff: cfg.BaseBackoff,
		maxBackoff:  cfg.MaxBackoff,
		limiter:     ratelimit.NewTokenBucket(cfg.RatePerMin, cfg.RatePerMin),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// TopMarkets returns up to limit coins ordered by descending market cap,
// with 24h percent change included. Empty slice on gateway failure.
func (c *Client) TopMarkets(ctx context.Context, limit int) []entities.CoinMarket {
	params := url.Values{}
	params.Set("vs_currency", vsCurrency)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", fmt.Sprintf("%d", limit))
	params.Set("page", "1")
	params.Set("sparkline", "false")
	params.Set("price_change_percentage", "24h")

	rows, ok := c.fetchMarkets(ctx, params)
	if !ok {
		return []entities.CoinMarket{}
	}

	coins := make([]entities.CoinMarket, 0, len(rows))
	for _, row := range rows {
		coins = append(coins, row.toEntity())
	}
	return coins
}

// SimplePrices performs one batched simple/price lookup for the given ids.
// The id list is normalized (lowercased, deduplicated) into a single
// comma-joined parameter; N held coins still cost one round trip. Ids the
// service has no USD quote for are absent from the returned map.
func (c *Client) SimplePrices(ctx context.Context, ids []string) map[string]float64 {
	normalized := normalizeIDs(ids)
	if len(normalized) == 0 {
		return map[string]float64{}
	}

	params := url.Values{}
	params.Set("ids", strings.Join(normalized, ","))
	params.Set("vs_currencies", vsCurrency)

	body, err := c.fetch(ctx, "/simple/price", params)
	if err != nil {
		logging.WarnWithError(ctx, "Simple price lookup degraded to empty result", err, logging.Fields{
			"ids_count": len(normalized),
		})
		return map[string]float64{}
	}

	var response simplePriceResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logging.WarnWithError(ctx, "Failed to decode simple price response", err, nil)
		return map[string]float64{}
	}

	prices := make(map[string]float64, len(response))
	for coinID, quotes := range response {
		if usd, found := quotes[vsCurrency]; found {
			prices[coinID] = usd
		}
	}
	return prices
}

// MarketsByIDs returns display metadata (name, symbol, image URL) for a set
// of ids in one batched coins/markets call. Empty map on failure.
func (c *Client) MarketsByIDs(ctx context.Context, ids []string) map[string]entities.CoinMarket {
	normalized := normalizeIDs(ids)
	if len(normalized) == 0 {
		return map[string]entities.CoinMarket{}
	}

	params := url.Values{}
	params.Set("vs_currency", vsCurrency)
	params.Set("ids", strings.Join(normalized, ","))
	params.Set("per_page", fmt.Sprintf("%d", len(normalized)))
	params.Set("page", "1")
	params.Set("sparkline", "false")

	rows, ok := c.fetchMarkets(ctx, params)
	if !ok {
		return map[string]entities.CoinMarket{}
	}

	coins := make(map[string]entities.CoinMarket, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		coins[row.ID] = row.toEntity()
	}
	return coins
}

// ChartSeries fetches a price time series for one coin and reduces each
// point to a short date label and a price rounded to two decimals. Labels
// and values stay parallel and time-ascending. Empty series on failure.
func (c *Client) ChartSeries(ctx context.Context, coinID string, days int) entities.ChartSeries {
	coinID = strings.ToLower(strings.TrimSpace(coinID))
	if coinID == "" {
		return entities.ChartSeries{}
	}

	params := url.Values{}
	params.Set("vs_currency", vsCurrency)
	params.Set("days", fmt.Sprintf("%d", days))

	body, err := c.fetch(ctx, "/coins/"+coinID+"/market_chart", params)
	if err != nil {
		logging.WarnWithError(ctx, "Chart series lookup degraded to empty result", err, logging.Fields{
			"coin": coinID,
			"days": days,
		})
		return entities.ChartSeries{}
	}

	var response marketChartResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logging.WarnWithError(ctx, "Failed to decode market chart response", err, logging.Fields{
			"coin": coinID,
		})
		return entities.ChartSeries{}
	}

	series := entities.ChartSeries{
		Labels: make([]string, 0, len(response.Prices)),
		Values: make([]float64, 0, len(response.Prices)),
	}
	for _, point := range response.Prices {
		unixMillis := int64(point[0])
		series.Labels = append(series.Labels, time.UnixMilli(unixMillis).UTC().Format("Jan 02"))
		series.Values = append(series.Values, math.Round(point[1]*100)/100)
	}
	return series
}

// fetchMarkets runs one coins/markets call and decodes its rows.
func (c *Client) fetchMarkets(ctx context.Context, params url.Values) ([]marketRow, bool) {
	body, err := c.fetch(ctx, "/coins/markets", params)
	if err != nil {
		logging.WarnWithError(ctx, "Market listing degraded to empty result", err, nil)
		return nil, false
	}

	var rows []marketRow
	if err := json.Unmarshal(body, &rows); err != nil {
		logging.WarnWithError(ctx, "Failed to decode market listing response", err, nil)
		return nil, false
	}
	return rows, true
}

// fetch performs an HTTP GET with the configured retry policy and returns
// the raw response body. Connection errors and HTTP 429/500/502/503/504 are
// retried with exponential backoff; anything else fails immediately.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	var body []byte

	retryErr := retry.Do(
		func() error {
			reqBody, reqErr := c.doRequest(ctx, endpoint, params)
			if reqErr != nil {
				return reqErr
			}
			body = reqBody
			return nil
		},
		retry.Attempts(c.maxRetries),
		retry.Delay(c.baseBackoff),
		retry.MaxDelay(c.maxBackoff),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(isRetryableError),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			metrics.RecordExternalAPIRetry(serviceName, endpoint, int(n+1))
			logging.Warn(ctx, "CoinGecko API retry attempt", logging.Fields{
				"service":      serviceName,
				"endpoint":     endpoint,
				"attempt":      n + 1,
				"max_attempts": c.maxRetries,
				"error":        err.Error(),
			})
		}),
	)

	if retryErr != nil {
		return nil, fmt.Errorf("coingecko GET %s failed: %w", endpoint, retryErr)
	}
	return body, nil
}

// doRequest performs a single HTTP GET attempt.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if !c.limiter.Allow() {
		// Treated like an upstream 429: the retry backoff spaces out the
		// next attempt while tokens refill.
		return nil, fmt.Errorf("%w: client-side rate limit exceeded", ErrRetryableRequest)
	}

	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrNonRetryable, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: request canceled", ErrNonRetryable)
		}
		// Timeouts and connection-level failures are worth another attempt
		return nil, fmt.Errorf("%w: %v", ErrRetryableRequest, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	metrics.RecordExternalAPICall(serviceName, endpoint, resp.StatusCode, requestDuration.Seconds())

	if retryableStatuses[resp.StatusCode] {
		return nil, fmt.Errorf("%w: HTTP %d", ErrRetryableRequest, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrNonRetryable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrRetryableRequest, err)
	}

	logging.ExternalRequest(ctx, serviceName, endpoint, resp.StatusCode, float64(requestDuration.Nanoseconds())/1e6)
	return body, nil
}

// isRetryableError decides whether an attempt error should trigger a retry.
func isRetryableError(err error) bool {
	return errors.Is(err, ErrRetryableRequest)
}

// normalizeIDs lowercases, trims, deduplicates and sorts the id list so a
// given set of holdings always produces the same batched request.
func normalizeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	normalized := make([]string, 0, len(ids))

	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		normalized = append(normalized, id)
	}

	sort.Strings(normalized)
	return normalized
}

// toEntity converts an API row into the domain type; a missing 24h change
// becomes 0 so callers never see a null.
func (r marketRow) toEntity() entities.CoinMarket {
	coin := entities.CoinMarket{
		ID:           r.ID,
		Name:         r.Name,
		Symbol:       r.Symbol,
		Image:        r.Image,
		CurrentPrice: r.CurrentPrice,
		MarketCap:    r.MarketCap,
	}
	if r.PriceChangePct24h != nil {
		coin.PriceChangePct24h = *r.PriceChangePct24h
	}
	return coin
}
