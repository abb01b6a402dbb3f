package service

import (
	"sort"

	"github.com/wealthmanager/portfolio-analytics-api/internal/model"
)

// highRiskSectors are the sectors counted as high-risk exposure when
// classifying the portfolio's risk level.
var highRiskSectors = map[string]bool{
	"Technology":       true,
	"Small Cap Stocks": true,
}

// allocationBySector returns the sector partition: the precomputed sheet when
// present, otherwise holdings grouped by sector.
func allocationBySector(snap *model.Snapshot) map[string]model.AllocationBucket {
	if len(snap.SectorAllocation) > 0 {
		buckets := make(map[string]model.AllocationBucket, len(snap.SectorAllocation))
		for sector, bucket := range snap.SectorAllocation {
			buckets[sector] = model.AllocationBucket{
				Value:      bucket.Value,
				Percentage: round1(bucket.Percentage),
			}
		}
		return buckets
	}
	return deriveAllocation(snap.Holdings, func(h model.Holding) string { return h.Sector })
}

// allocationByMarketCap returns the market cap partition. Zero-value buckets
// are dropped from the precomputed sheet; the sector partition keeps them.
func allocationByMarketCap(snap *model.Snapshot) map[string]model.AllocationBucket {
	if len(snap.MarketCap) > 0 {
		buckets := make(map[string]model.AllocationBucket, len(snap.MarketCap))
		for capName, bucket := range snap.MarketCap {
			if bucket.Value <= 0 {
				continue
			}
			buckets[capName] = model.AllocationBucket{
				Value:      bucket.Value,
				Percentage: round1(bucket.Percentage),
			}
		}
		return buckets
	}
	return deriveAllocation(snap.Holdings, func(h model.Holding) string { return h.MarketCap })
}

// deriveAllocation groups holdings by key and computes each group's share of
// the total value. An empty portfolio or zero total yields an empty map
// rather than an error.
func deriveAllocation(holdings []model.Holding, key func(model.Holding) string) map[string]model.AllocationBucket {
	buckets := make(map[string]model.AllocationBucket)
	if len(holdings) == 0 {
		return buckets
	}

	var total float64
	totals := make(map[string]float64)
	for _, holding := range holdings {
		totals[key(holding)] += holding.Value
		total += holding.Value
	}
	if total == 0 {
		return buckets
	}

	for k, value := range totals {
		buckets[k] = model.AllocationBucket{
			Value:      value,
			Percentage: round1(value / total * 100),
		}
	}
	return buckets
}

// performanceReturns computes period returns for each series. The comparison
// points are approximations over the observation sequence: 1 month is the
// second-to-last point, 3 months the point four from the end (clamped to the
// first), 1 year the first point. Fewer than two points yields an empty map.
func performanceReturns(timeline []model.PerformancePoint) map[string]model.PeriodReturns {
	returns := make(map[string]model.PeriodReturns)
	if len(timeline) < 2 {
		return returns
	}

	current := timeline[len(timeline)-1]
	month1 := timeline[len(timeline)-2]
	months3 := timeline[0]
	if len(timeline) >= 4 {
		months3 = timeline[len(timeline)-4]
	}
	year1 := timeline[0]

	series := func(value func(model.PerformancePoint) float64) model.PeriodReturns {
		return model.PeriodReturns{
			Month1:  periodReturn(value(current), value(month1)),
			Months3: periodReturn(value(current), value(months3)),
			Year1:   periodReturn(value(current), value(year1)),
		}
	}

	returns["portfolio"] = series(func(p model.PerformancePoint) float64 { return p.Portfolio })
	returns["nifty50"] = series(func(p model.PerformancePoint) float64 { return p.Nifty50 })
	returns["gold"] = series(func(p model.PerformancePoint) float64 { return p.Gold })
	return returns
}

// periodReturn computes the percentage change from past to current, rounded
// to 1 decimal. A past value of zero or below yields 0 rather than a
// division error.
func periodReturn(current, past float64) float64 {
	if past <= 0 {
		return 0
	}
	return round1((current - past) / past * 100)
}

// diversificationScore rates sector spread on a 1–10 scale: two points per
// distinct sector capped at 10, minus a concentration penalty of 0.1 per
// holding beyond ten. An empty portfolio scores the neutral default 5.0.
func diversificationScore(holdings []model.Holding) float64 {
	if len(holdings) == 0 {
		return 5.0
	}

	sectors := make(map[string]struct{})
	for _, holding := range holdings {
		sectors[holding.Sector] = struct{}{}
	}

	base := float64(len(sectors) * 2)
	if base > 10 {
		base = 10
	}

	penalty := 0.0
	if len(holdings) > 10 {
		penalty = float64(len(holdings)-10) * 0.1
	}

	score := base - penalty
	if score > 10.0 {
		score = 10.0
	}
	if score < 1.0 {
		score = 1.0
	}
	return score
}

// riskLevel classifies the portfolio from its diversification score and its
// value exposure to high-risk sectors. Thresholds are strict: a ratio of
// exactly 0.3 on a well-diversified portfolio is already Moderate. An empty
// portfolio defaults to Moderate.
func riskLevel(holdings []model.Holding, diversification float64) string {
	if len(holdings) == 0 {
		return "Moderate"
	}

	var highRisk, total float64
	for _, holding := range holdings {
		if highRiskSectors[holding.Sector] {
			highRisk += holding.Value
		}
		total += holding.Value
	}

	ratio := 0.0
	if total > 0 {
		ratio = highRisk / total
	}

	switch {
	case diversification >= 8 && ratio < 0.3:
		return "Conservative"
	case diversification >= 6 && ratio < 0.5:
		return "Moderate"
	default:
		return "Aggressive"
	}
}

// summaryTotals reads the four portfolio totals from the precomputed Summary
// sheet, falling back to derivation from holdings. The sheet stores the
// gain/loss percentage as a fraction and is scaled here.
func summaryTotals(snap *model.Snapshot) (value, invested, gainLoss, gainLossPercent float64) {
	if len(snap.Summary) > 0 {
		value = snap.Summary[model.MetricTotalValue]
		invested = snap.Summary[model.MetricTotalInvested]
		gainLoss = snap.Summary[model.MetricTotalGainLoss]
		gainLossPercent = snap.Summary[model.MetricTotalGainLossPercent] * 100
		return
	}

	for _, holding := range snap.Holdings {
		value += holding.Value
		invested += float64(holding.Quantity) * holding.AvgPrice
	}
	gainLoss = value - invested
	if invested > 0 {
		gainLossPercent = gainLoss / invested * 100
	}
	return
}

// performerRecords resolves the four highlighted holdings from the
// precomputed Top_Performers sheet, falling back to sorting holdings by
// gain/loss percentage and by value. A missing role in the sheet yields an
// empty record, matching the tolerant read of the rest of the workbook.
func performerRecords(snap *model.Snapshot) (best, worst, highest, lowest model.TopPerformer) {
	if len(snap.TopPerformers) > 0 {
		best = gainRecord(snap.TopPerformers[model.RoleBestPerformer])
		worst = gainRecord(snap.TopPerformers[model.RoleWorstPerformer])
		highest = valueRecord(snap.TopPerformers[model.RoleHighestValue])
		lowest = valueRecord(snap.TopPerformers[model.RoleLowestValue])
		return
	}

	byPerformance := make([]model.Holding, len(snap.Holdings))
	copy(byPerformance, snap.Holdings)
	sort.SliceStable(byPerformance, func(i, j int) bool {
		return byPerformance[i].GainLossPercent > byPerformance[j].GainLossPercent
	})

	byValue := make([]model.Holding, len(snap.Holdings))
	copy(byValue, snap.Holdings)
	sort.SliceStable(byValue, func(i, j int) bool {
		return byValue[i].Value > byValue[j].Value
	})

	best = holdingGainRecord(byPerformance[0])
	worst = holdingGainRecord(byPerformance[len(byPerformance)-1])
	highest = holdingValueRecord(byValue[0])
	lowest = holdingValueRecord(byValue[len(byValue)-1])
	return
}

// gainRecord converts a precomputed performer row whose performance is a
// gain fraction into a percentage record.
func gainRecord(rec model.TopPerformerRecord) model.TopPerformer {
	pct := rec.Performance * 100
	return model.TopPerformer{Symbol: rec.Symbol, Name: rec.Name, GainPercent: &pct}
}

// valueRecord converts a precomputed performer row whose performance is a
// currency value into a value record.
func valueRecord(rec model.TopPerformerRecord) model.TopPerformer {
	value := rec.Performance
	return model.TopPerformer{Symbol: rec.Symbol, Name: rec.Name, Value: &value}
}

func holdingGainRecord(h model.Holding) model.TopPerformer {
	pct := h.GainLossPercent
	return model.TopPerformer{Symbol: h.Symbol, Name: h.Name, GainPercent: &pct}
}

func holdingValueRecord(h model.Holding) model.TopPerformer {
	value := h.Value
	return model.TopPerformer{Symbol: h.Symbol, Name: h.Name, Value: &value}
}
