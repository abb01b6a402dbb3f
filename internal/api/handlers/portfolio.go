package handlers

import (
	"net/http"

	"github.com/wealthmanager/portfolio-analytics-api/internal/service"
)

// PortfolioHandler handles portfolio analytics HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Holdings handles GET requests for the full list of stock positions.
//
// Endpoint: GET /api/portfolio/holdings
// Response: 200 OK with a list of holdings
// Errors: 404 when no holdings data is loaded, 500 when loading fails
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.portfolioService.GetHoldings(r.Context())
	if err != nil {
		respondError(w, err, "failed to fetch holdings")
		return
	}
	respondJSON(w, http.StatusOK, holdings)
}

// Allocation handles GET requests for the sector and market cap breakdown.
//
// Endpoint: GET /api/portfolio/allocation
// Response: 200 OK with {bySector, byMarketCap}
func (h *PortfolioHandler) Allocation(w http.ResponseWriter, r *http.Request) {
	allocation, err := h.portfolioService.GetAllocation(r.Context())
	if err != nil {
		respondError(w, err, "failed to calculate allocation")
		return
	}
	respondJSON(w, http.StatusOK, allocation)
}

// Performance handles GET requests for the historical timeline and period
// returns against the Nifty 50 and gold benchmarks.
//
// Endpoint: GET /api/portfolio/performance
// Response: 200 OK with {timeline, returns}
// Errors: 404 when no performance data is loaded, 500 when loading fails
func (h *PortfolioHandler) Performance(w http.ResponseWriter, r *http.Request) {
	performance, err := h.portfolioService.GetPerformance(r.Context())
	if err != nil {
		respondError(w, err, "failed to fetch performance data")
		return
	}
	respondJSON(w, http.StatusOK, performance)
}

// Summary handles GET requests for the portfolio overview: totals,
// highlighted holdings, diversification score, and risk level.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with the summary
// Errors: 404 when no portfolio data is loaded, 500 when loading fails
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.portfolioService.GetSummary(r.Context())
	if err != nil {
		respondError(w, err, "failed to generate summary")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// MarketCap handles GET requests for the market cap breakdown list.
//
// Endpoint: GET /api/portfolio/marketcap
// Response: 200 OK with a list of {marketCap, value, percentage}
// Errors: 404 when no market cap data is loaded, 500 when loading fails
func (h *PortfolioHandler) MarketCap(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolioService.GetMarketCapBreakdown(r.Context())
	if err != nil {
		respondError(w, err, "failed to fetch market cap data")
		return
	}
	respondJSON(w, http.StatusOK, items)
}
