package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wealthmanager/portfolio-analytics-api/internal/api"
	"github.com/wealthmanager/portfolio-analytics-api/internal/config"
	"github.com/wealthmanager/portfolio-analytics-api/internal/logging"
	"github.com/wealthmanager/portfolio-analytics-api/internal/service"
	"github.com/wealthmanager/portfolio-analytics-api/internal/snapshot"
	"github.com/wealthmanager/portfolio-analytics-api/internal/workbook"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Log.Level)

	// Wire the workbook source, loader, and snapshot store
	source := workbook.Open(cfg.Data.File, logger)
	loader := snapshot.NewLoader(source, logger)
	store := snapshot.NewStore(loader)

	// Eager first load. A failure is logged, not fatal: the server starts
	// degraded and retries lazily on the first request.
	if _, err := store.Get(context.Background()); err != nil {
		logger.Error().Err(err).Str("file", cfg.Data.File).Msg("initial data load failed")
	} else {
		logger.Info().Str("file", cfg.Data.File).Msg("portfolio data loaded")
	}

	// Create services
	systemService := service.NewSystemService(store)
	portfolioService := service.NewPortfolioService(store)

	// Create router
	router := api.NewRouter(systemService, portfolioService, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
