package model

import "time"

// Metric names used by the precomputed Summary sheet. The gain/loss
// percentage is stored as a fraction in the source and scaled on read.
const (
	MetricTotalValue           = "Total Portfolio Value"
	MetricTotalInvested        = "Total Invested Amount"
	MetricTotalGainLoss        = "Total Gain/Loss"
	MetricTotalGainLossPercent = "Total Gain/Loss %"
)

// Role names used by the precomputed Top_Performers sheet.
const (
	RoleBestPerformer  = "Best Performer"
	RoleWorstPerformer = "Worst Performer"
	RoleHighestValue   = "Highest Value"
	RoleLowestValue    = "Lowest Value"
)

// TopPerformerRecord is one row of the precomputed Top_Performers sheet.
// Performance is a gain fraction for the performer roles and a currency value
// for the value roles; the summary assembly interprets it per role.
type TopPerformerRecord struct {
	Symbol      string
	Name        string
	Performance float64
}

// Snapshot is the complete normalized in-memory copy of the portfolio
// workbook. A snapshot is built as one unit by the loader, published
// atomically, and never mutated afterwards; it stays authoritative until the
// next successful load replaces it. An empty precomputed table (len == 0)
// selects the derivation fallback in the metrics engine.
type Snapshot struct {
	ID       string
	LoadedAt time.Time

	Holdings         []Holding
	Performance      []PerformancePoint
	SectorAllocation map[string]AllocationBucket
	MarketCap        map[string]AllocationBucket
	Summary          map[string]float64
	TopPerformers    map[string]TopPerformerRecord
}
