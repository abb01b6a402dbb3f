package service_test

import (
	"testing"

	"github.com/wealthmanager/portfolio-analytics-api/internal/testutil"
)

// TestSystemService_CheckHealth tests readiness reporting.
//
// WHY: health must describe the installed snapshot without triggering a
// load, and "loaded" means both holdings and performance data are present.
func TestSystemService_CheckHealth(t *testing.T) {
	t.Run("no snapshot installed is degraded", func(t *testing.T) {
		svc := testutil.NewTestSystemService(t, nil)

		health := svc.CheckHealth()
		if health.Status != "degraded" {
			t.Errorf("Expected degraded, got %q", health.Status)
		}
		if health.DataLoaded {
			t.Error("Expected DataLoaded false")
		}
		if health.SnapshotID != "" {
			t.Errorf("Expected no snapshot ID, got %q", health.SnapshotID)
		}
		if health.Timestamp.IsZero() {
			t.Error("Expected timestamp to be set")
		}
	})

	t.Run("holdings and performance loaded is healthy", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(testutil.NewHolding("INFY").Build()).
			WithPerformance(testutil.Timeline(100000, 104000)...).
			Build()
		svc := testutil.NewTestSystemService(t, snap)

		health := svc.CheckHealth()
		if health.Status != "healthy" {
			t.Errorf("Expected healthy, got %q", health.Status)
		}
		if !health.DataLoaded {
			t.Error("Expected DataLoaded true")
		}
		if health.SnapshotID != snap.ID {
			t.Errorf("Expected snapshot ID %q, got %q", snap.ID, health.SnapshotID)
		}
	})

	t.Run("holdings without performance is degraded", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(testutil.NewHolding("INFY").Build()).
			Build()
		svc := testutil.NewTestSystemService(t, snap)

		health := svc.CheckHealth()
		if health.Status != "degraded" {
			t.Errorf("Expected degraded, got %q", health.Status)
		}
		if health.DataLoaded {
			t.Error("Expected DataLoaded false")
		}
	})
}
