package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the Crypto Tracker service
var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_tracker_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Cache Metrics
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"}, // operation: get/set/delete, result: hit/miss/success/error
	)

	// External API Metrics
	ExternalAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_external_api_requests_total",
			Help: "Total number of external API requests",
		},
		[]string{"service", "endpoint", "status_code"},
	)

	ExternalAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_tracker_external_api_request_duration_seconds",
			Help:    "External API request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 15.0},
		},
		[]string{"service", "endpoint"},
	)

	ExternalAPIRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_external_api_retries_total",
			Help: "Total number of external API retry attempts",
		},
		[]string{"service", "endpoint", "attempt"},
	)

	// Business Metrics
	PriceRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_tracker_price_refreshes_total",
			Help: "Total number of portfolio price refresh operations",
		},
		[]string{"result"}, // result: success/empty/skipped/error
	)

	PortfolioValue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crypto_tracker_portfolio_value_usd",
			Help: "Current total portfolio value in USD",
		},
	)

	PortfolioHoldings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crypto_tracker_portfolio_holdings",
			Help: "Number of holdings currently tracked",
		},
	)

	ServiceInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "crypto_tracker_service_info",
			Help: "Service information",
		},
		[]string{"version", "cache_backend"},
	)
)

// RecordHTTPRequest records metrics for one handled HTTP request.
func RecordHTTPRequest(method, path string, statusCode int, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordCacheOperation records one cache get/set/delete outcome.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordExternalAPICall records one upstream pricing API call.
func RecordExternalAPICall(service, endpoint string, statusCode int, duration float64) {
	ExternalAPIRequestsTotal.WithLabelValues(service, endpoint, strconv.Itoa(statusCode)).Inc()
	ExternalAPIRequestDuration.WithLabelValues(service, endpoint).Observe(duration)
}

// RecordExternalAPIRetry records one upstream retry attempt.
func RecordExternalAPIRetry(service, endpoint string, attempt int) {
	ExternalAPIRetries.WithLabelValues(service, endpoint, strconv.Itoa(attempt)).Inc()
}

// RecordPriceRefresh records the outcome of a portfolio refresh.
func RecordPriceRefresh(result string) {
	PriceRefreshesTotal.WithLabelValues(result).Inc()
}

// UpdatePortfolioTotals publishes the aggregate portfolio gauges.
func UpdatePortfolioTotals(totalValue float64, holdings int) {
	PortfolioValue.Set(totalValue)
	PortfolioHoldings.Set(float64(holdings))
}

// SetServiceInfo publishes static service metadata.
func SetServiceInfo(version, cacheBackend string) {
	ServiceInfo.WithLabelValues(version, cacheBackend).Set(1)
}
