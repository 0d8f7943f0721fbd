// @title Crypto Tracker API
// @version 1.0
// @description Crypto market dashboard and portfolio tracker backed by the CoinGecko public API.
// @host localhost:8080
// @BasePath /
package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adzz29/Crypto-Tracker/internal/application/services"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/config"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/gateway/coingecko"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/logging"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/metrics"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/repositories/cache"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/repositories/portfolio"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/web/handlers"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/web/server"
	"github.com/Adzz29/Crypto-Tracker/internal/infrastructure/web/templates"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logging.SetLevel(cfg.Logging.Level)
	logging.SetFormat(cfg.Logging.Format)

	ctx := logging.WithRequestID(context.Background())
	logging.Info(ctx, "Starting Crypto Tracker", logging.Fields{
		"version":       version,
		"port":          cfg.Server.Port,
		"cache_backend": cfg.Cache.Backend,
		"db_path":       cfg.Portfolio.DBPath,
	})

	repo, err := portfolio.NewSQLiteRepository(cfg.Portfolio.DBPath)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to open holdings database", err, logging.Fields{
			"db_path": cfg.Portfolio.DBPath,
		})
		os.Exit(1)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logging.WarnWithError(ctx, "Failed to close holdings database", err, nil)
		}
	}()

	priceCache, err := cache.NewFromConfig(cfg.Cache)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to create cache", err, logging.Fields{
			"backend": cfg.Cache.Backend,
		})
		os.Exit(1)
	}
	if closer, ok := priceCache.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	renderer, err := templates.New()
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to parse templates", err, nil)
		os.Exit(1)
	}

	metrics.SetServiceInfo(version, cfg.Cache.Backend)

	gecko := coingecko.NewClientWithConfig(cfg.CoinGecko)
	marketService := services.NewMarketService(gecko, priceCache, cfg.Market, cfg.Cache.TTL)
	portfolioService := services.NewPortfolioService(repo, gecko, cfg.Portfolio.RefreshInterval)

	router := server.NewRouter(server.Handlers{
		Pages:  handlers.NewPagesHandler(marketService, portfolioService, renderer, cfg.Market),
		API:    handlers.NewAPIHandler(marketService, portfolioService, cfg.Market),
		Health: handlers.NewHealthHandler(priceCache, repo),
	})

	srv := server.NewServer(router, cfg.Server)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logging.ErrorWithError(ctx, "HTTP server failed", err, nil)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info(ctx, "Shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logging.ErrorWithError(ctx, "Server forced to shutdown", err, nil)
		os.Exit(1)
	}

	logging.Info(ctx, "Server shutdown completed", nil)
}
