package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbookFixture writes a small but complete six-table portfolio
// workbook to a temp file and returns its path. Cells are written as strings
// so both parsing engines read them back verbatim, the way the engine and
// loader tests expect.
func WriteWorkbookFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{"Holdings", [][]interface{}{
			{"Symbol", "Company Name", "Quantity", "Avg Price (₹)", "Current Price (₹)", "Sector", "Market Cap", "Value (₹)", "Gain/Loss (₹)", "Gain/Loss (%)"},
			{"RELIANCE", "Reliance Industries", "10", "2450", "2680.5", "Energy", "Large Cap", "26805", "2305", "0.094"},
			{"INFY", "Infosys", "15", "1400", "1550", "Technology", "Large Cap", "23250", "2250", "0.107"},
			{"", "Blank row without symbol", "", "", "", "", "", "", "", ""},
		}},
		{"Historical_Performance", [][]interface{}{
			{"Date", "Portfolio Value (₹)", "Nifty 50", "Gold (₹/10g)"},
			{"2024-01-01", "100000", "21000", "62000"},
			{"2024-02-01", "104000", "21800", "62500"},
			{"2024-03-01", "108000", "22500", "65500"},
		}},
		{"Sector_Allocation", [][]interface{}{
			{"Sector", "Value (₹)", "Percentage"},
			{"Energy", "26805", "0.535"},
			{"Technology", "23250", "0.465"},
		}},
		{"Market_Cap", [][]interface{}{
			{"Market Cap", "Value (₹)", "Percentage"},
			{"Large Cap", "₹50,055.00", "1.0"},
		}},
		{"Summary", [][]interface{}{
			{"Metric", "Value"},
			{"Total Portfolio Value", "50055"},
			{"Total Invested Amount", "45500"},
			{"Total Gain/Loss", "4555"},
			{"Total Gain/Loss %", "0.1001"},
		}},
		{"Top_Performers", [][]interface{}{
			{"Metric", "Symbol", "Company Name", "Performance"},
			{"Best Performer", "INFY", "Infosys", "0.107"},
			{"Worst Performer", "RELIANCE", "Reliance Industries", "0.094"},
			{"Highest Value", "RELIANCE", "Reliance Industries", "₹26,805.00"},
			{"Lowest Value", "INFY", "Infosys", "₹23,250.00"},
		}},
	}

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			t.Fatalf("Failed to create sheet %s: %v", sheet.name, err)
		}
		for i, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("Failed to compute cell name: %v", err)
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				t.Fatalf("Failed to write row %d of %s: %v", i, sheet.name, err)
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("Failed to delete default sheet: %v", err)
	}

	path := filepath.Join(t.TempDir(), "portfolio.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook fixture: %v", err)
	}
	return path
}
