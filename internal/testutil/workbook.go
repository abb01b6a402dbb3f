package testutil

import (
	"context"
	"fmt"

	"github.com/wealthmanager/portfolio-analytics-api/internal/model"
	"github.com/wealthmanager/portfolio-analytics-api/internal/workbook"
)

// FakeWorkbook is an in-memory workbook.Reader for loader tests. Tables maps
// table names to header→cell rows; Errs forces a read error per table.
type FakeWorkbook struct {
	Tables map[string][]map[string]string
	Errs   map[string]error
}

// Rows implements workbook.Reader.
func (f *FakeWorkbook) Rows(table string) ([]map[string]string, error) {
	if err := f.Errs[table]; err != nil {
		return nil, err
	}
	rows, ok := f.Tables[table]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", table)
	}
	return rows, nil
}

// NewFakeWorkbook creates a FakeWorkbook with a small but complete set of
// the six logical tables. Tests override individual tables as needed.
func NewFakeWorkbook() *FakeWorkbook {
	return &FakeWorkbook{
		Tables: map[string][]map[string]string{
			workbook.TableHoldings: {
				{
					"Symbol": "RELIANCE", "Company Name": "Reliance Industries", "Quantity": "10",
					"Avg Price (₹)": "2450", "Current Price (₹)": "2680.5", "Sector": "Energy",
					"Market Cap": "Large Cap", "Value (₹)": "26805", "Gain/Loss (₹)": "2305",
					"Gain/Loss (%)": "0.094",
				},
				{
					"Symbol": "INFY", "Company Name": "Infosys", "Quantity": "15",
					"Avg Price (₹)": "1400", "Current Price (₹)": "1550", "Sector": "Technology",
					"Market Cap": "Large Cap", "Value (₹)": "23250", "Gain/Loss (₹)": "2250",
					"Gain/Loss (%)": "0.107",
				},
			},
			workbook.TablePerformance: {
				{"Date": "2024-01-01", "Portfolio Value (₹)": "100000", "Nifty 50": "21000", "Gold (₹/10g)": "62000"},
				{"Date": "2024-02-01", "Portfolio Value (₹)": "104000", "Nifty 50": "21800", "Gold (₹/10g)": "62500"},
				{"Date": "2024-03-01", "Portfolio Value (₹)": "102000", "Nifty 50": "22100", "Gold (₹/10g)": "64000"},
				{"Date": "2024-04-01", "Portfolio Value (₹)": "108000", "Nifty 50": "22500", "Gold (₹/10g)": "65500"},
			},
			workbook.TableSectorAllocation: {
				{"Sector": "Energy", "Value (₹)": "26805", "Percentage": "0.535"},
				{"Sector": "Technology", "Value (₹)": "23250", "Percentage": "0.465"},
			},
			workbook.TableMarketCap: {
				{"Market Cap": "Large Cap", "Value (₹)": "₹50,055.00", "Percentage": "1.0"},
				{"Market Cap": "Small Cap", "Value (₹)": "0", "Percentage": "0"},
			},
			workbook.TableSummary: {
				{"Metric": model.MetricTotalValue, "Value": "50055"},
				{"Metric": model.MetricTotalInvested, "Value": "45500"},
				{"Metric": model.MetricTotalGainLoss, "Value": "4555"},
				{"Metric": model.MetricTotalGainLossPercent, "Value": "0.1001"},
			},
			workbook.TableTopPerformers: {
				{"Metric": model.RoleBestPerformer, "Symbol": "INFY", "Company Name": "Infosys", "Performance": "0.107"},
				{"Metric": model.RoleWorstPerformer, "Symbol": "RELIANCE", "Company Name": "Reliance Industries", "Performance": "0.094"},
				{"Metric": model.RoleHighestValue, "Symbol": "RELIANCE", "Company Name": "Reliance Industries", "Performance": "₹26,805.00"},
				{"Metric": model.RoleLowestValue, "Symbol": "INFY", "Company Name": "Infosys", "Performance": "₹23,250.00"},
			},
		},
		Errs: map[string]error{},
	}
}

// StaticSource serves a fixed fixture snapshot to query services.
type StaticSource struct {
	Snap *model.Snapshot
}

// Get implements snapshot.Source.
func (s *StaticSource) Get(ctx context.Context) (*model.Snapshot, error) {
	if s.Snap == nil {
		return nil, fmt.Errorf("no snapshot installed")
	}
	return s.Snap, nil
}

// Installed implements snapshot.Source.
func (s *StaticSource) Installed() *model.Snapshot {
	return s.Snap
}

// FailingSource always fails to load, standing in for an unreachable
// workbook.
type FailingSource struct {
	Err error
}

// Get implements snapshot.Source.
func (s *FailingSource) Get(ctx context.Context) (*model.Snapshot, error) {
	return nil, s.Err
}

// Installed implements snapshot.Source.
func (s *FailingSource) Installed() *model.Snapshot {
	return nil
}
