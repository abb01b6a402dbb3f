package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads workbook tables through excelize, the primary engine.
type ExcelReader struct {
	path string
}

// NewExcelReader creates an ExcelReader for the workbook at path.
func NewExcelReader(path string) *ExcelReader {
	return &ExcelReader{path: path}
}

// Rows reads one table as header→cell maps. The file is reopened per table:
// loads are rare and keeping no file handle between calls avoids lifecycle
// bookkeeping in the loader.
func (r *ExcelReader) Rows(table string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", r.path, err)
	}
	defer f.Close() //nolint:errcheck

	grid, err := f.GetRows(table)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", table, err)
	}
	return mapRows(grid), nil
}
