package model

// TopPerformer identifies a holding highlighted in the portfolio summary.
// GainPercent is set for the best/worst performer roles, Value for the
// highest/lowest value roles.
type TopPerformer struct {
	Symbol      string   `json:"symbol"`
	Name        string   `json:"name"`
	GainPercent *float64 `json:"gainPercent,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}

// Summary is the portfolio overview response: totals, highlighted holdings,
// and the diversification/risk classification.
type Summary struct {
	TotalValue           float64      `json:"totalValue"`
	TotalInvested        float64      `json:"totalInvested"`
	TotalGainLoss        float64      `json:"totalGainLoss"`
	TotalGainLossPercent float64      `json:"totalGainLossPercent"`
	TopPerformer         TopPerformer `json:"topPerformer"`
	WorstPerformer       TopPerformer `json:"worstPerformer"`
	HighestValue         TopPerformer `json:"highestValue"`
	LowestValue          TopPerformer `json:"lowestValue"`
	DiversificationScore float64      `json:"diversificationScore"`
	RiskLevel            string       `json:"riskLevel"`
}
