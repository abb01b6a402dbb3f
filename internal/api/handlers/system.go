package handlers

import (
	"net/http"
	"time"

	"github.com/wealthmanager/portfolio-analytics-api/internal/service"
)

const apiVersion = "1.0.0"

// SystemHandler handles health and API metadata requests
type SystemHandler struct {
	systemService *service.SystemService
	dataSource    string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, dataSource string) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		dataSource:    dataSource,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string `json:"status"`
	DataLoaded bool   `json:"dataLoaded"`
	SnapshotID string `json:"snapshotId,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// Health reports whether holdings and performance data are currently loaded.
// It always answers 200: degraded is a state report, not a request failure.
//
// Endpoint: GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	health := h.systemService.CheckHealth()

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:     health.Status,
		DataLoaded: health.DataLoaded,
		SnapshotID: health.SnapshotID,
		Timestamp:  health.Timestamp.Format(time.RFC3339),
	})
}

// RootResponse represents the API information response
type RootResponse struct {
	Message    string   `json:"message"`
	Version    string   `json:"version"`
	DataSource string   `json:"dataSource"`
	Endpoints  []string `json:"endpoints"`
}

// Root serves API information at the root path.
//
// Endpoint: GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RootResponse{
		Message:    "Portfolio Analytics API",
		Version:    apiVersion,
		DataSource: h.dataSource,
		Endpoints: []string{
			"/api/portfolio/holdings",
			"/api/portfolio/allocation",
			"/api/portfolio/performance",
			"/api/portfolio/summary",
			"/api/portfolio/marketcap",
		},
	})
}
