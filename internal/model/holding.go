package model

// Holding represents a single stock position in the portfolio snapshot.
// GainLossPercent is always held on percentage scale; sources that encode it
// as a fraction are normalized at load time.
type Holding struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	AvgPrice        float64 `json:"avgPrice"`
	CurrentPrice    float64 `json:"currentPrice"`
	Sector          string  `json:"sector"`
	MarketCap       string  `json:"marketCap"`
	Value           float64 `json:"value"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
}
