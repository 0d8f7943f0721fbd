package metrics

import (
	"net/http"
	"strings"
	"time"
)

// HTTPMetricsMiddleware collects request metrics for Prometheus.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		wrapped := &responseWriterMetrics{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		normalizedPath := normalizePath(r.URL.Path)
		next.ServeHTTP(wrapped, r)

		RecordHTTPRequest(r.Method, normalizedPath, wrapped.statusCode, time.Since(startTime).Seconds())
	})
}

// responseWriterMetrics wraps http.ResponseWriter to capture the status code.
type responseWriterMetrics struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriterMetrics) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// normalizePath collapses dynamic path segments so metric cardinality stays
// bounded (every delete carries a different row id).
func normalizePath(path string) string {
	if path == "/" {
		return "/"
	}

	path = strings.TrimSuffix(path, "/")

	if strings.HasPrefix(path, "/portfolio/delete/") {
		return "/portfolio/delete/{id}"
	}
	if strings.HasPrefix(path, "/swagger") {
		return "/swagger"
	}
	if strings.HasPrefix(path, "/static") {
		return "/static"
	}

	return path
}
