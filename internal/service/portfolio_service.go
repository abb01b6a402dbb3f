package service

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/wealthmanager/portfolio-analytics-api/internal/apperrors"
	"github.com/wealthmanager/portfolio-analytics-api/internal/model"
	"github.com/wealthmanager/portfolio-analytics-api/internal/snapshot"
)

// RoundingPrecision controls monetary rounding (100 = 2 decimal places)
const RoundingPrecision = 100

// round rounds a monetary value to 2 decimal places
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// round1 rounds a percentage or score to 1 decimal place
func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// PortfolioService computes portfolio analytics over the loaded snapshot.
// Every method is a pure read; the only side effect is the lazy load
// triggered when no snapshot is installed yet.
type PortfolioService struct {
	source snapshot.Source
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(source snapshot.Source) *PortfolioService {
	return &PortfolioService{
		source: source,
	}
}

// GetHoldings returns all holdings with gain/loss percentages rounded to two
// decimals. An empty holdings table is a not-found condition.
func (s *PortfolioService) GetHoldings(ctx context.Context) ([]model.Holding, error) {
	snap, err := s.source.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(snap.Holdings) == 0 {
		return nil, apperrors.ErrNoHoldingsData
	}

	// Copy before rounding: the snapshot itself is never mutated.
	holdings := make([]model.Holding, len(snap.Holdings))
	for i, holding := range snap.Holdings {
		holding.GainLossPercent = round(holding.GainLossPercent)
		holdings[i] = holding
	}
	return holdings, nil
}

// GetAllocation returns the sector and market cap allocation partitions.
// The two partitions share no mutable state and are computed concurrently.
// Each prefers its precomputed sheet and falls back to grouping holdings;
// an empty portfolio yields empty partitions, not an error.
func (s *PortfolioService) GetAllocation(ctx context.Context) (model.Allocation, error) {
	snap, err := s.source.Get(ctx)
	if err != nil {
		return model.Allocation{}, err
	}

	var alloc model.Allocation
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		alloc.BySector = allocationBySector(snap)
		return nil
	})
	g.Go(func() error {
		alloc.ByMarketCap = allocationByMarketCap(snap)
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.Allocation{}, err
	}
	return alloc, nil
}

// GetPerformance returns the historical timeline together with period
// returns per series. An empty timeline is a not-found condition; a timeline
// with fewer than two points yields an empty returns map.
func (s *PortfolioService) GetPerformance(ctx context.Context) (model.Performance, error) {
	snap, err := s.source.Get(ctx)
	if err != nil {
		return model.Performance{}, err
	}
	if len(snap.Performance) == 0 {
		return model.Performance{}, apperrors.ErrNoPerformanceData
	}

	timeline := make([]model.PerformancePoint, len(snap.Performance))
	copy(timeline, snap.Performance)

	return model.Performance{
		Timeline: timeline,
		Returns:  performanceReturns(snap.Performance),
	}, nil
}

// GetSummary assembles the portfolio overview: totals, highlighted holdings,
// diversification score, and risk level. Totals and performer records prefer
// the precomputed Summary and Top_Performers sheets and fall back to
// derivation from holdings. Holdings drive the diversification and risk
// figures, so an empty holdings table is a not-found condition even when a
// Summary sheet exists.
func (s *PortfolioService) GetSummary(ctx context.Context) (model.Summary, error) {
	snap, err := s.source.Get(ctx)
	if err != nil {
		return model.Summary{}, err
	}
	if len(snap.Holdings) == 0 {
		return model.Summary{}, apperrors.ErrNoPortfolioData
	}

	totalValue, totalInvested, totalGainLoss, totalGainLossPercent := summaryTotals(snap)
	best, worst, highest, lowest := performerRecords(snap)
	score := diversificationScore(snap.Holdings)

	return model.Summary{
		TotalValue:           round(totalValue),
		TotalInvested:        round(totalInvested),
		TotalGainLoss:        round(totalGainLoss),
		TotalGainLossPercent: round(totalGainLossPercent),
		TopPerformer:         best,
		WorstPerformer:       worst,
		HighestValue:         highest,
		LowestValue:          lowest,
		DiversificationScore: round1(score),
		RiskLevel:            riskLevel(snap.Holdings, score),
	}, nil
}

// GetMarketCapBreakdown returns the precomputed market cap table as a list,
// largest value first. Unlike the allocation endpoint it keeps zero-value
// buckets and has no holdings fallback; an empty table is a not-found
// condition.
func (s *PortfolioService) GetMarketCapBreakdown(ctx context.Context) ([]model.MarketCapItem, error) {
	snap, err := s.source.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(snap.MarketCap) == 0 {
		return nil, apperrors.ErrNoMarketCapData
	}

	items := make([]model.MarketCapItem, 0, len(snap.MarketCap))
	for capName, bucket := range snap.MarketCap {
		items = append(items, model.MarketCapItem{
			MarketCap:  capName,
			Value:      bucket.Value,
			Percentage: round1(bucket.Percentage),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].MarketCap < items[j].MarketCap
	})
	return items, nil
}
