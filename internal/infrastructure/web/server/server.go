package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Adzz29/Crypto-Tracker/internal/docs"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/config"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/logging"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/metrics"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/web/handlers"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/web/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Pages  *handlers.PagesHandler
	API    *handlers.APIHandler
	Health *handlers.HealthHandler
}

// NewRouter builds the full route table with the middleware chain applied.
func NewRouter(h Handlers) http.Handler {
	r := mux.NewRouter()

	// HTML pages
	r.HandleFunc("/", h.Pages.Index).Methods(http.MethodGet)
	r.HandleFunc("/prices", h.Pages.Prices).Methods(http.MethodGet)
	r.HandleFunc("/portfolio", h.Pages.Portfolio).Methods(http.MethodGet)
	r.HandleFunc("/portfolio/add", h.Pages.AddCoinForm).Methods(http.MethodGet)
	r.HandleFunc("/portfolio/add", h.Pages.AddCoinSubmit).Methods(http.MethodPost)
	r.HandleFunc("/portfolio/delete/{id}", h.Pages.DeleteCoin).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/contact", h.Pages.Contact).Methods(http.MethodGet)

	// JSON API
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/markets", h.API.Markets).Methods(http.MethodGet)
	api.HandleFunc("/portfolio", h.API.Portfolio).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/totals", h.API.Totals).Methods(http.MethodGet)
	api.HandleFunc("/chart", h.API.Chart).Methods(http.MethodGet)

	// Operational endpoints
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r.Use(middleware.RequestTracing)
	r.Use(metrics.HTTPMetricsMiddleware)

	return r
}

// Server wraps the HTTP server with the configured timeouts.
type Server struct {
	httpServer *http.Server
	port       int
}

// NewServer creates a server around the given handler.
func NewServer(handler http.Handler, cfg config.ServerConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		},
		port: cfg.Port,
	}
}

// Start blocks serving requests until Stop or a listener error.
func (s *Server) Start() error {
	ctx := context.Background()

	logging.Info(ctx, "HTTP server starting", logging.Fields{
		"port": s.port,
	})

	logging.Info(ctx, "Available endpoints", logging.Fields{
		"endpoints": []string{
			fmt.Sprintf("GET  http://localhost:%d/", s.port),
			fmt.Sprintf("GET  http://localhost:%d/prices", s.port),
			fmt.Sprintf("GET  http://localhost:%d/portfolio", s.port),
			fmt.Sprintf("GET  http://localhost:%d/api/v1/markets", s.port),
			fmt.Sprintf("GET  http://localhost:%d/api/v1/portfolio", s.port),
			fmt.Sprintf("GET  http://localhost:%d/health", s.port),
			fmt.Sprintf("GET  http://localhost:%d/metrics", s.port),
			fmt.Sprintf("GET  http://localhost:%d/swagger/index.html", s.port),
		},
	})

	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	logging.Info(ctx, "Stopping HTTP server gracefully", logging.Fields{
		"port": s.port,
	})
	return s.httpServer.Shutdown(ctx)
}

// GetPort returns the configured port.
func (s *Server) GetPort() int {
	return s.port
}
