package model

// PerformancePoint is one observation in the historical performance timeline,
// comparing the portfolio against the Nifty 50 index and gold.
type PerformancePoint struct {
	Date      string  `json:"date"`
	Portfolio float64 `json:"portfolio"`
	Nifty50   float64 `json:"nifty50"`
	Gold      float64 `json:"gold"`
}

// PeriodReturns holds percentage returns for the standard comparison periods.
type PeriodReturns struct {
	Month1  float64 `json:"month1"`
	Months3 float64 `json:"months3"`
	Year1   float64 `json:"year1"`
}

// Performance is the full performance response: the chronological timeline
// plus period returns per series ("portfolio", "nifty50", "gold").
type Performance struct {
	Timeline []PerformancePoint       `json:"timeline"`
	Returns  map[string]PeriodReturns `json:"returns"`
}
