package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealthmanager/portfolio-analytics-api/internal/model"
)

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding("INFY").Build()
//
//	// Customized holding
//	holding := testutil.NewHolding("INFY").
//	    WithSector("Technology").
//	    WithValue(5000).
//	    Build()
type HoldingBuilder struct {
	holding model.Holding
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding(symbol string) *HoldingBuilder {
	return &HoldingBuilder{holding: model.Holding{
		Symbol:          symbol,
		Name:            symbol + " Ltd",
		Quantity:        10,
		AvgPrice:        100,
		CurrentPrice:    110,
		Sector:          "Banking",
		MarketCap:       "Large Cap",
		Value:           1100,
		GainLoss:        100,
		GainLossPercent: 10,
	}}
}

// WithName sets the company name.
func (b *HoldingBuilder) WithName(name string) *HoldingBuilder {
	b.holding.Name = name
	return b
}

// WithQuantity sets the share count.
func (b *HoldingBuilder) WithQuantity(quantity int) *HoldingBuilder {
	b.holding.Quantity = quantity
	return b
}

// WithAvgPrice sets the average purchase price.
func (b *HoldingBuilder) WithAvgPrice(price float64) *HoldingBuilder {
	b.holding.AvgPrice = price
	return b
}

// WithSector sets the sector.
func (b *HoldingBuilder) WithSector(sector string) *HoldingBuilder {
	b.holding.Sector = sector
	return b
}

// WithMarketCap sets the market cap category.
func (b *HoldingBuilder) WithMarketCap(marketCap string) *HoldingBuilder {
	b.holding.MarketCap = marketCap
	return b
}

// WithValue sets the current market value.
func (b *HoldingBuilder) WithValue(value float64) *HoldingBuilder {
	b.holding.Value = value
	return b
}

// WithGainLossPercent sets the gain/loss percentage.
func (b *HoldingBuilder) WithGainLossPercent(pct float64) *HoldingBuilder {
	b.holding.GainLossPercent = pct
	return b
}

// Build returns the holding.
func (b *HoldingBuilder) Build() model.Holding {
	return b.holding
}

// SnapshotBuilder provides a fluent interface for assembling fixture
// snapshots passed to the query services.
type SnapshotBuilder struct {
	snap *model.Snapshot
}

// NewSnapshot creates a SnapshotBuilder for an empty snapshot.
func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{snap: &model.Snapshot{
		ID:               uuid.New().String(),
		LoadedAt:         time.Now().UTC(),
		SectorAllocation: map[string]model.AllocationBucket{},
		MarketCap:        map[string]model.AllocationBucket{},
		Summary:          map[string]float64{},
		TopPerformers:    map[string]model.TopPerformerRecord{},
	}}
}

// WithHoldings appends holdings.
func (b *SnapshotBuilder) WithHoldings(holdings ...model.Holding) *SnapshotBuilder {
	b.snap.Holdings = append(b.snap.Holdings, holdings...)
	return b
}

// WithPerformance appends timeline points.
func (b *SnapshotBuilder) WithPerformance(points ...model.PerformancePoint) *SnapshotBuilder {
	b.snap.Performance = append(b.snap.Performance, points...)
	return b
}

// WithSectorAllocation adds a precomputed sector bucket. Percentage is on
// percentage scale, as held in the snapshot.
func (b *SnapshotBuilder) WithSectorAllocation(sector string, value, percentage float64) *SnapshotBuilder {
	b.snap.SectorAllocation[sector] = model.AllocationBucket{Value: value, Percentage: percentage}
	return b
}

// WithMarketCap adds a precomputed market cap bucket.
func (b *SnapshotBuilder) WithMarketCap(capName string, value, percentage float64) *SnapshotBuilder {
	b.snap.MarketCap[capName] = model.AllocationBucket{Value: value, Percentage: percentage}
	return b
}

// WithSummaryMetric adds a precomputed summary metric.
func (b *SnapshotBuilder) WithSummaryMetric(name string, value float64) *SnapshotBuilder {
	b.snap.Summary[name] = value
	return b
}

// WithTopPerformer adds a precomputed top performer record.
func (b *SnapshotBuilder) WithTopPerformer(role, symbol, name string, performance float64) *SnapshotBuilder {
	b.snap.TopPerformers[role] = model.TopPerformerRecord{Symbol: symbol, Name: name, Performance: performance}
	return b
}

// Build returns the snapshot.
func (b *SnapshotBuilder) Build() *model.Snapshot {
	return b.snap
}

// Timeline builds an evenly spaced monthly performance timeline from
// parallel value slices. All three series share the same values.
func Timeline(values ...float64) []model.PerformancePoint {
	points := make([]model.PerformancePoint, len(values))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, v := range values {
		points[i] = model.PerformancePoint{
			Date:      start.AddDate(0, i, 0).Format("2006-01-02"),
			Portfolio: v,
			Nifty50:   v,
			Gold:      v,
		}
	}
	return points
}
