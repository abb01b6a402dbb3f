package model

// AllocationBucket is the value and percentage share of one allocation
// category.
type AllocationBucket struct {
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// Allocation is the combined allocation response, keyed by sector and by
// market cap category.
type Allocation struct {
	BySector    map[string]AllocationBucket `json:"bySector"`
	ByMarketCap map[string]AllocationBucket `json:"byMarketCap"`
}

// MarketCapItem is one entry of the market cap breakdown list.
type MarketCapItem struct {
	MarketCap  string  `json:"marketCap"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}
