package testutil

import (
	"testing"

	"github.com/wealthmanager/portfolio-analytics-api/internal/logging"
	"github.com/wealthmanager/portfolio-analytics-api/internal/model"
	"github.com/wealthmanager/portfolio-analytics-api/internal/service"
	"github.com/wealthmanager/portfolio-analytics-api/internal/snapshot"
	"github.com/wealthmanager/portfolio-analytics-api/internal/workbook"
)

// NewTestStore builds a snapshot store over the given workbook reader with a
// silent logger.
func NewTestStore(t *testing.T, reader workbook.Reader) *snapshot.Store {
	t.Helper()

	loader := snapshot.NewLoader(reader, logging.NewSilent())
	return snapshot.NewStore(loader)
}

// NewTestPortfolioService builds a PortfolioService over a fixture snapshot.
func NewTestPortfolioService(t *testing.T, snap *model.Snapshot) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(&StaticSource{Snap: snap})
}

// NewTestSystemService builds a SystemService over a fixture snapshot, which
// may be nil to model a process before its first successful load.
func NewTestSystemService(t *testing.T, snap *model.Snapshot) *service.SystemService {
	t.Helper()

	return service.NewSystemService(&StaticSource{Snap: snap})
}
