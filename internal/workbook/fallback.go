package workbook

import (
	"fmt"

	"github.com/tealeg/xlsx/v3"
)

// XLSXReader reads workbook tables through tealeg/xlsx. It is the fallback
// engine: a differently tolerant decoder for files the primary engine cannot
// parse.
type XLSXReader struct {
	path string
}

// NewXLSXReader creates an XLSXReader for the workbook at path.
func NewXLSXReader(path string) *XLSXReader {
	return &XLSXReader{path: path}
}

// Rows reads one table as header→cell maps.
func (r *XLSXReader) Rows(table string) ([]map[string]string, error) {
	wb, err := xlsx.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", r.path, err)
	}

	sheet, ok := wb.Sheet[table]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", table)
	}
	defer sheet.Close()

	var grid [][]string
	err = sheet.ForEachRow(func(row *xlsx.Row) error {
		var cells []string
		cellErr := row.ForEachCell(func(cell *xlsx.Cell) error {
			cells = append(cells, cell.String())
			return nil
		})
		if cellErr != nil {
			return cellErr
		}
		grid = append(grid, cells)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", table, err)
	}
	return mapRows(grid), nil
}
