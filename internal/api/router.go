package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wealthmanager/portfolio-analytics-api/internal/api/handlers"
	custommiddleware "github.com/wealthmanager/portfolio-analytics-api/internal/api/middleware"
	"github.com/wealthmanager/portfolio-analytics-api/internal/config"
	"github.com/wealthmanager/portfolio-analytics-api/internal/logging"
	"github.com/wealthmanager/portfolio-analytics-api/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, portfolioService *service.PortfolioService, cfg *config.Config, log *logging.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler(systemService, cfg.Data.File)
	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Health)

	// Portfolio analytics routes
	r.Route("/api/portfolio", func(r chi.Router) {
		portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
		r.Get("/holdings", portfolioHandler.Holdings)
		r.Get("/allocation", portfolioHandler.Allocation)
		r.Get("/performance", portfolioHandler.Performance)
		r.Get("/summary", portfolioHandler.Summary)
		r.Get("/marketcap", portfolioHandler.MarketCap)
	})

	return r
}
