// Package workbook reads the six logical tables of the portfolio spreadsheet
// and normalizes their loosely-structured headers and cell values.
package workbook

import (
	"fmt"

	"github.com/wealthmanager/portfolio-analytics-api/internal/apperrors"
	"github.com/wealthmanager/portfolio-analytics-api/internal/logging"
)

// Names of the logical tables the loader expects in the workbook.
const (
	TableHoldings         = "Holdings"
	TablePerformance      = "Historical_Performance"
	TableSectorAllocation = "Sector_Allocation"
	TableMarketCap        = "Market_Cap"
	TableSummary          = "Summary"
	TableTopPerformers    = "Top_Performers"
)

// Reader provides row access to one logical table of the portfolio workbook.
type Reader interface {
	// Rows returns the table's data rows as header→raw cell text maps.
	Rows(table string) ([]map[string]string, error)
}

// File reads tables through the primary excelize engine, retrying once
// through the tealeg fallback engine when the primary fails structurally.
// A table neither engine can produce is fatal to the caller's load attempt.
type File struct {
	primary  Reader
	fallback Reader
	log      *logging.Logger
}

// Open creates a File for the workbook at path.
func Open(path string, log *logging.Logger) *File {
	return &File{
		primary:  NewExcelReader(path),
		fallback: NewXLSXReader(path),
		log:      log,
	}
}

// Rows reads one table, engaging the fallback engine if the primary fails.
func (f *File) Rows(table string) ([]map[string]string, error) {
	rows, err := f.primary.Rows(table)
	if err == nil {
		return rows, nil
	}

	f.log.Warn().Str("table", table).Err(err).Msg("primary engine failed, retrying with fallback")

	rows, ferr := f.fallback.Rows(table)
	if ferr != nil {
		return nil, fmt.Errorf("%w: table %s: %v (fallback: %v)", apperrors.ErrSourceUnreachable, table, err, ferr)
	}
	return rows, nil
}

// mapRows converts a raw cell grid into header→value maps. The first row is
// the header row; data cells beyond the header width are dropped and short
// rows read as empty strings for the missing columns.
func mapRows(grid [][]string) []map[string]string {
	if len(grid) == 0 {
		return nil
	}

	headers := grid[0]
	rows := make([]map[string]string, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
