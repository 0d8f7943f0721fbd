package middleware

import (
	"net/http"
	"time"

	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/logging"
)

// responseWriter captures the status code and byte count for the
// completion log.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// RequestTracing attaches a request id to the context and emits
// structured start/completion logs for every request. An inbound
// X-Request-ID is honored so ids survive proxies.
func RequestTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := r.Context()
		if inbound := r.Header.Get("X-Request-ID"); inbound != "" {
			ctx = logging.WithExistingRequestID(ctx, inbound)
		} else {
			ctx = logging.WithRequestID(ctx)
		}
		ctx = logging.WithStartTime(ctx, start)

		w.Header().Set("X-Request-ID", logging.GetRequestID(ctx))

		wrapped := &responseWriter{ResponseWriter: w}

		logging.Debug(ctx, "HTTP request started", logging.Fields{
			"http_method": r.Method,
			"http_path":   r.URL.Path,
			"remote_ip":   remoteIP(r),
		})

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		if wrapped.statusCode == 0 {
			wrapped.statusCode = http.StatusOK
		}

		logging.Info(ctx, "HTTP request completed", logging.Fields{
			"http_method":      r.Method,
			"http_path":        r.URL.Path,
			"http_status_code": wrapped.statusCode,
			"remote_ip":        remoteIP(r),
			"response_size":    wrapped.written,
			"response_time_ms": float64(time.Since(start).Nanoseconds()) / 1e6,
		})
	})
}

// remoteIP extracts the client IP, preferring proxy headers.
func remoteIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
