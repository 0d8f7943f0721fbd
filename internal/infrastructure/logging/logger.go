package logging

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Fields carries structured key/value pairs attached to a log entry.
type Fields map[string]interface{}

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})
	log.SetLevel(logrus.InfoLevel)
}

// Logger returns the shared logrus instance, mainly for wiring in main.
func Logger() *logrus.Logger {
	return log
}

// SetLevel adjusts the global log level from its config string.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
}

// SetFormat switches between "json" and "text" output.
func SetFormat(format string) {
	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{})
		return
	}
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})
}

func entry(ctx context.Context, fields Fields) *logrus.Entry {
	e := log.WithFields(logrus.Fields(fields))
	if requestID := GetRequestID(ctx); requestID != "" {
		e = e.WithField("request_id", requestID)
	}
	return e
}

// Debug logs a debug message with structured fields.
func Debug(ctx context.Context, message string, fields Fields) {
	entry(ctx, fields).Debug(message)
}

// Info logs an info message with structured fields.
func Info(ctx context.Context, message string, fields Fields) {
	entry(ctx, fields).Info(message)
}

// Warn logs a warning message with structured fields.
func Warn(ctx context.Context, message string, fields Fields) {
	entry(ctx, fields).Warn(message)
}

// Error logs an error message with structured fields.
func Error(ctx context.Context, message string, fields Fields) {
	entry(ctx, fields).Error(message)
}

// WarnWithError logs a warning with the error attached.
func WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	entry(ctx, fields).WithError(err).Warn(message)
}

// ErrorWithError logs an error with the error attached.
func ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	entry(ctx, fields).WithError(err).Error(message)
}

// ExternalRequest logs the outcome of one external API call.
func ExternalRequest(ctx context.Context, service, endpoint string, statusCode int, durationMs float64) {
	entry(ctx, Fields{
		"external_service":     service,
		"external_endpoint":    endpoint,
		"external_status_code": statusCode,
		"external_duration_ms": durationMs,
	}).Info("External API request completed")
}
