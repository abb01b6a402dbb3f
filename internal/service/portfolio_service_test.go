package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/wealthmanager/portfolio-analytics-api/internal/apperrors"
	"github.com/wealthmanager/portfolio-analytics-api/internal/model"
	"github.com/wealthmanager/portfolio-analytics-api/internal/service"
	"github.com/wealthmanager/portfolio-analytics-api/internal/testutil"
)

// TestPortfolioService_GetHoldings tests the holdings accessor.
//
// WHY: holdings are the base table every derived metric builds on. This
// pins the response rounding and the empty-table not-found condition.
func TestPortfolioService_GetHoldings(t *testing.T) {
	t.Run("returns holdings with percentages rounded to two decimals", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(testutil.NewHolding("INFY").WithGainLossPercent(10.567).Build()).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		holdings, err := svc.GetHoldings(context.Background())
		if err != nil {
			t.Fatalf("GetHoldings() returned unexpected error: %v", err)
		}

		if len(holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(holdings))
		}
		if holdings[0].GainLossPercent != 10.57 {
			t.Errorf("Expected 10.57, got %v", holdings[0].GainLossPercent)
		}
		// The snapshot itself stays unrounded.
		if snap.Holdings[0].GainLossPercent != 10.567 {
			t.Errorf("Expected snapshot untouched, got %v", snap.Holdings[0].GainLossPercent)
		}
	})

	t.Run("empty holdings table is a not-found condition", func(t *testing.T) {
		svc := testutil.NewTestPortfolioService(t, testutil.NewSnapshot().Build())

		_, err := svc.GetHoldings(context.Background())
		if !errors.Is(err, apperrors.ErrNoHoldingsData) {
			t.Errorf("Expected ErrNoHoldingsData, got %v", err)
		}
	})

	t.Run("load failure propagates", func(t *testing.T) {
		loadErr := errors.New("workbook unreadable")
		svc := service.NewPortfolioService(&testutil.FailingSource{Err: loadErr})

		if _, err := svc.GetHoldings(context.Background()); !errors.Is(err, loadErr) {
			t.Errorf("Expected load error to propagate, got %v", err)
		}
	})
}

// TestPortfolioService_GetAllocation tests both allocation partitions and
// their precomputed-versus-derived resolution.
//
// WHY: the zero-value filter applies to the market cap partition only, and
// the fallback must engage per partition. Mixing those up is the kind of
// regression the endpoint's consumers would only notice in a chart.
func TestPortfolioService_GetAllocation(t *testing.T) {
	t.Run("serves precomputed partitions with rounded percentages", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithSectorAllocation("Energy", 26805, 53.456).
			WithSectorAllocation("Idle", 0, 0).
			WithMarketCap("Large Cap", 50055, 100).
			WithMarketCap("Small Cap", 0, 0).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		alloc, err := svc.GetAllocation(context.Background())
		if err != nil {
			t.Fatalf("GetAllocation() returned unexpected error: %v", err)
		}

		if got := alloc.BySector["Energy"].Percentage; got != 53.5 {
			t.Errorf("Expected 53.5, got %v", got)
		}
		// Zero-value buckets survive in the sector partition...
		if _, ok := alloc.BySector["Idle"]; !ok {
			t.Error("Expected zero-value sector bucket to be kept")
		}
		// ...but are filtered from the market cap partition.
		if _, ok := alloc.ByMarketCap["Small Cap"]; ok {
			t.Error("Expected zero-value market cap bucket to be filtered")
		}
		if len(alloc.ByMarketCap) != 1 {
			t.Errorf("Expected 1 market cap bucket, got %d", len(alloc.ByMarketCap))
		}
	})

	t.Run("derives partitions from holdings when no sheets exist", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(
				testutil.NewHolding("A").WithSector("Banking").WithMarketCap("Large Cap").WithValue(750).Build(),
				testutil.NewHolding("B").WithSector("Energy").WithMarketCap("Mid Cap").WithValue(250).Build(),
			).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		alloc, err := svc.GetAllocation(context.Background())
		if err != nil {
			t.Fatalf("GetAllocation() returned unexpected error: %v", err)
		}

		if got := alloc.BySector["Banking"]; got.Value != 750 || got.Percentage != 75.0 {
			t.Errorf("Unexpected Banking bucket: %+v", got)
		}
		if got := alloc.ByMarketCap["Mid Cap"]; got.Value != 250 || got.Percentage != 25.0 {
			t.Errorf("Unexpected Mid Cap bucket: %+v", got)
		}
	})

	t.Run("empty portfolio yields empty partitions, not an error", func(t *testing.T) {
		svc := testutil.NewTestPortfolioService(t, testutil.NewSnapshot().Build())

		alloc, err := svc.GetAllocation(context.Background())
		if err != nil {
			t.Fatalf("GetAllocation() returned unexpected error: %v", err)
		}
		if len(alloc.BySector) != 0 || len(alloc.ByMarketCap) != 0 {
			t.Errorf("Expected empty partitions, got %+v", alloc)
		}
	})
}

// TestPortfolioService_GetPerformance tests the timeline response.
func TestPortfolioService_GetPerformance(t *testing.T) {
	t.Run("returns the timeline with per-series returns", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithPerformance(testutil.Timeline(100000, 104000, 102000, 108000)...).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		perf, err := svc.GetPerformance(context.Background())
		if err != nil {
			t.Fatalf("GetPerformance() returned unexpected error: %v", err)
		}

		if len(perf.Timeline) != 4 {
			t.Fatalf("Expected 4 points, got %d", len(perf.Timeline))
		}
		if perf.Timeline[0].Date != "2024-01-01" {
			t.Errorf("Expected chronological start, got %q", perf.Timeline[0].Date)
		}
		// (108000-100000)/100000 over the full range.
		if got := perf.Returns["portfolio"].Year1; got != 8.0 {
			t.Errorf("Expected year1 8.0, got %v", got)
		}
		if len(perf.Returns) != 3 {
			t.Errorf("Expected 3 series, got %d", len(perf.Returns))
		}
	})

	t.Run("single point yields an empty returns map", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithPerformance(testutil.Timeline(100000)...).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		perf, err := svc.GetPerformance(context.Background())
		if err != nil {
			t.Fatalf("GetPerformance() returned unexpected error: %v", err)
		}
		if len(perf.Returns) != 0 {
			t.Errorf("Expected empty returns, got %v", perf.Returns)
		}
	})

	t.Run("empty timeline is a not-found condition", func(t *testing.T) {
		svc := testutil.NewTestPortfolioService(t, testutil.NewSnapshot().Build())

		if _, err := svc.GetPerformance(context.Background()); !errors.Is(err, apperrors.ErrNoPerformanceData) {
			t.Errorf("Expected ErrNoPerformanceData, got %v", err)
		}
	})
}

// TestPortfolioService_GetSummary tests summary assembly along both the
// precomputed and the derived paths.
//
// WHY: the summary mixes four sources (summary sheet, top performers sheet,
// holdings, metric heuristics) with per-source fraction conventions; each
// conversion needs its own pin.
func TestPortfolioService_GetSummary(t *testing.T) {
	t.Run("prefers precomputed totals, scaling the percent fraction", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(testutil.NewHolding("INFY").Build()).
			WithSummaryMetric(model.MetricTotalValue, 50055).
			WithSummaryMetric(model.MetricTotalInvested, 45500).
			WithSummaryMetric(model.MetricTotalGainLoss, 4555).
			WithSummaryMetric(model.MetricTotalGainLossPercent, 0.1001).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		summary, err := svc.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if summary.TotalValue != 50055 {
			t.Errorf("Expected total value 50055, got %v", summary.TotalValue)
		}
		if summary.TotalGainLossPercent != 10.01 {
			t.Errorf("Expected 10.01, got %v", summary.TotalGainLossPercent)
		}
	})

	t.Run("derives totals from holdings when no summary sheet exists", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(
				testutil.NewHolding("A").WithQuantity(10).WithAvgPrice(100).WithValue(1250).Build(),
				testutil.NewHolding("B").WithQuantity(5).WithAvgPrice(200).WithValue(950).Build(),
			).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		summary, err := svc.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if summary.TotalValue != 2200 {
			t.Errorf("Expected total value 2200, got %v", summary.TotalValue)
		}
		if summary.TotalInvested != 2000 {
			t.Errorf("Expected total invested 2000, got %v", summary.TotalInvested)
		}
		if summary.TotalGainLoss != 200 {
			t.Errorf("Expected gain/loss 200, got %v", summary.TotalGainLoss)
		}
		if summary.TotalGainLossPercent != 10.0 {
			t.Errorf("Expected 10.0, got %v", summary.TotalGainLossPercent)
		}
	})

	t.Run("prefers precomputed performer records per role convention", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(testutil.NewHolding("INFY").Build()).
			WithTopPerformer(model.RoleBestPerformer, "INFY", "Infosys", 0.107).
			WithTopPerformer(model.RoleWorstPerformer, "RELIANCE", "Reliance Industries", -0.032).
			WithTopPerformer(model.RoleHighestValue, "RELIANCE", "Reliance Industries", 26805).
			WithTopPerformer(model.RoleLowestValue, "INFY", "Infosys", 23250).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		summary, err := svc.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if summary.TopPerformer.GainPercent == nil || math.Abs(*summary.TopPerformer.GainPercent-10.7) > 1e-9 {
			t.Errorf("Expected best gain 10.7, got %v", summary.TopPerformer.GainPercent)
		}
		if summary.WorstPerformer.GainPercent == nil || math.Abs(*summary.WorstPerformer.GainPercent+3.2) > 1e-9 {
			t.Errorf("Expected worst gain -3.2, got %v", summary.WorstPerformer.GainPercent)
		}
		if summary.HighestValue.Value == nil || *summary.HighestValue.Value != 26805 {
			t.Errorf("Expected highest value 26805, got %v", summary.HighestValue.Value)
		}
		if summary.HighestValue.GainPercent != nil {
			t.Error("Expected value record to carry no gain percent")
		}
		if summary.LowestValue.Symbol != "INFY" {
			t.Errorf("Expected lowest value INFY, got %q", summary.LowestValue.Symbol)
		}
	})

	t.Run("derives performer records by sorting holdings", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(
				testutil.NewHolding("MID").WithGainLossPercent(5).WithValue(3000).Build(),
				testutil.NewHolding("BEST").WithGainLossPercent(25).WithValue(1000).Build(),
				testutil.NewHolding("WORST").WithGainLossPercent(-10).WithValue(8000).Build(),
			).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		summary, err := svc.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if summary.TopPerformer.Symbol != "BEST" {
			t.Errorf("Expected BEST, got %q", summary.TopPerformer.Symbol)
		}
		if summary.WorstPerformer.Symbol != "WORST" {
			t.Errorf("Expected WORST, got %q", summary.WorstPerformer.Symbol)
		}
		if summary.HighestValue.Symbol != "WORST" {
			t.Errorf("Expected WORST as highest value, got %q", summary.HighestValue.Symbol)
		}
		if summary.LowestValue.Symbol != "BEST" {
			t.Errorf("Expected BEST as lowest value, got %q", summary.LowestValue.Symbol)
		}
	})

	t.Run("carries the diversification score and risk level", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(testutil.NewHolding("A").WithSector("Banking").Build()).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		summary, err := svc.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if summary.DiversificationScore != 2.0 {
			t.Errorf("Expected score 2.0, got %v", summary.DiversificationScore)
		}
		if summary.RiskLevel != "Aggressive" {
			t.Errorf("Expected Aggressive, got %q", summary.RiskLevel)
		}
	})

	t.Run("no holdings is a not-found condition even with a summary sheet", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithSummaryMetric(model.MetricTotalValue, 50055).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		if _, err := svc.GetSummary(context.Background()); !errors.Is(err, apperrors.ErrNoPortfolioData) {
			t.Errorf("Expected ErrNoPortfolioData, got %v", err)
		}
	})
}

// TestPortfolioService_GetMarketCapBreakdown tests the breakdown list.
//
// WHY: unlike the allocation endpoint this one keeps zero-value buckets and
// never falls back to holdings; conflating the two behaviors is an easy
// mistake since both read the same table.
func TestPortfolioService_GetMarketCapBreakdown(t *testing.T) {
	t.Run("lists all buckets including zero values, largest first", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithMarketCap("Large Cap", 50055, 83.4).
			WithMarketCap("Mid Cap", 10000, 16.66).
			WithMarketCap("Small Cap", 0, 0).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		items, err := svc.GetMarketCapBreakdown(context.Background())
		if err != nil {
			t.Fatalf("GetMarketCapBreakdown() returned unexpected error: %v", err)
		}

		if len(items) != 3 {
			t.Fatalf("Expected 3 items, got %d", len(items))
		}
		if items[0].MarketCap != "Large Cap" || items[2].MarketCap != "Small Cap" {
			t.Errorf("Unexpected order: %+v", items)
		}
		if items[1].Percentage != 16.7 {
			t.Errorf("Expected 16.7, got %v", items[1].Percentage)
		}
	})

	t.Run("holdings are no fallback for the breakdown", func(t *testing.T) {
		snap := testutil.NewSnapshot().
			WithHoldings(testutil.NewHolding("INFY").Build()).
			Build()
		svc := testutil.NewTestPortfolioService(t, snap)

		if _, err := svc.GetMarketCapBreakdown(context.Background()); !errors.Is(err, apperrors.ErrNoMarketCapData) {
			t.Errorf("Expected ErrNoMarketCapData, got %v", err)
		}
	})
}
