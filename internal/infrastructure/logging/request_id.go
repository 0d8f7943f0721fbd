package logging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	startTimeKey contextKey = "start_time"
)

// WithRequestID stores a fresh request id in the context.
func WithRequestID(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestIDKey, uuid.New().String())
}

// WithExistingRequestID stores a caller-supplied request id in the context.
func WithExistingRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID extracts the request id, empty when absent.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithStartTime records the request start time in the context.
func WithStartTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey, t)
}

// GetStartTime extracts the request start time, zero when absent.
func GetStartTime(ctx context.Context) time.Time {
	if start, ok := ctx.Value(startTimeKey).(time.Time); ok {
		return start
	}
	return time.Time{}
}
