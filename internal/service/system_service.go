package service

import (
	"time"

	"github.com/wealthmanager/portfolio-analytics-api/internal/snapshot"
)

// SystemService handles health reporting
type SystemService struct {
	source snapshot.Source
}

// NewSystemService creates a new SystemService
func NewSystemService(source snapshot.Source) *SystemService {
	return &SystemService{
		source: source,
	}
}

// HealthStatus describes the current readiness of the service.
type HealthStatus struct {
	Status     string
	DataLoaded bool
	SnapshotID string
	Timestamp  time.Time
}

// CheckHealth reports whether portfolio data is currently loaded. It never
// triggers a load: a degraded status before the first successful load is an
// accurate answer, not an error.
func (s *SystemService) CheckHealth() HealthStatus {
	now := time.Now().UTC()

	snap := s.source.Installed()
	if snap == nil {
		return HealthStatus{Status: "degraded", Timestamp: now}
	}

	loaded := len(snap.Holdings) > 0 && len(snap.Performance) > 0
	status := "degraded"
	if loaded {
		status = "healthy"
	}
	return HealthStatus{
		Status:     status,
		DataLoaded: loaded,
		SnapshotID: snap.ID,
		Timestamp:  now,
	}
}
