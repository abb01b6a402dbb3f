// Package snapshot builds and publishes the in-memory portfolio snapshot.
package snapshot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wealthmanager/portfolio-analytics-api/internal/logging"
	"github.com/wealthmanager/portfolio-analytics-api/internal/model"
	"github.com/wealthmanager/portfolio-analytics-api/internal/workbook"
)

// Loader reads the six logical tables of the portfolio workbook and
// assembles them into one snapshot.
type Loader struct {
	reader workbook.Reader
	log    *logging.Logger
}

// NewLoader creates a Loader reading from the given workbook source.
func NewLoader(reader workbook.Reader, log *logging.Logger) *Loader {
	return &Loader{
		reader: reader,
		log:    log,
	}
}

// SkippedRow records one row dropped during a table parse.
type SkippedRow struct {
	Index  int
	Reason string
}

// RowReport is the per-table outcome of a load: rows kept and rows skipped
// with their reasons. Row skips are never fatal; the report makes them
// observable.
type RowReport struct {
	Table   string
	Kept    int
	Skipped []SkippedRow
}

func (r *RowReport) skip(index int, reason string) {
	r.Skipped = append(r.Skipped, SkippedRow{Index: index, Reason: reason})
}

// Load reads all six tables and assembles a complete snapshot. The snapshot
// is built entirely off to the side: any table-level read error fails the
// whole attempt and no partial snapshot is ever returned. Individual bad
// rows are skipped and reported, never fatal.
func (l *Loader) Load(ctx context.Context) (*model.Snapshot, []RowReport, error) {
	snap := &model.Snapshot{
		ID:       uuid.New().String(),
		LoadedAt: time.Now().UTC(),
	}
	var reports []RowReport

	tables := []struct {
		name  string
		parse func([]map[string]string, *RowReport) error
	}{
		{workbook.TableHoldings, func(rows []map[string]string, rep *RowReport) error {
			holdings, err := parseHoldings(rows, rep)
			snap.Holdings = holdings
			return err
		}},
		{workbook.TablePerformance, func(rows []map[string]string, rep *RowReport) error {
			points, err := parsePerformance(rows, rep)
			snap.Performance = points
			return err
		}},
		{workbook.TableSectorAllocation, func(rows []map[string]string, rep *RowReport) error {
			buckets, err := parseAllocation(rows, rep, "", "Sector", "sector")
			snap.SectorAllocation = buckets
			return err
		}},
		{workbook.TableMarketCap, func(rows []map[string]string, rep *RowReport) error {
			buckets, err := parseAllocation(rows, rep, workbook.FieldMarketCap, "Market Cap", "market cap")
			snap.MarketCap = buckets
			return err
		}},
		{workbook.TableSummary, func(rows []map[string]string, rep *RowReport) error {
			metrics, err := parseSummary(rows, rep)
			snap.Summary = metrics
			return err
		}},
		{workbook.TableTopPerformers, func(rows []map[string]string, rep *RowReport) error {
			performers, err := parseTopPerformers(rows, rep)
			snap.TopPerformers = performers
			return err
		}},
	}

	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return nil, reports, err
		}

		rows, err := l.reader.Rows(table.name)
		if err != nil {
			return nil, reports, fmt.Errorf("load %s: %w", table.name, err)
		}

		report := RowReport{Table: table.name}
		if err := table.parse(rows, &report); err != nil {
			return nil, reports, fmt.Errorf("load %s: %w", table.name, err)
		}

		for _, skipped := range report.Skipped {
			l.log.Warn().
				Str("table", table.name).
				Int("row", skipped.Index).
				Str("reason", skipped.Reason).
				Msg("row skipped")
		}
		l.log.Info().
			Str("table", table.name).
			Int("rows", report.Kept).
			Int("skipped", len(report.Skipped)).
			Msg("table loaded")
		reports = append(reports, report)
	}

	return snap, reports, nil
}

// schemaFor builds the header schema from the first row's keys. An empty
// table has no headers to map and yields an empty schema.
func schemaFor(rows []map[string]string) (workbook.Schema, error) {
	if len(rows) == 0 {
		return workbook.Schema{}, nil
	}
	headers := make([]string, 0, len(rows[0]))
	for header := range rows[0] {
		headers = append(headers, header)
	}
	return workbook.NewSchema(headers)
}

// fieldValue resolves one cell: the schema-mapped header first, then an
// ordered list of literal header spellings. Empty cells fall through so a
// blank mapped column does not shadow a populated literal one.
func fieldValue(row map[string]string, schema workbook.Schema, field string, literals ...string) string {
	if header := schema.Header(field); header != "" {
		if value := strings.TrimSpace(row[header]); value != "" {
			return value
		}
	}
	for _, literal := range literals {
		if value := strings.TrimSpace(row[literal]); value != "" {
			return value
		}
	}
	return ""
}

func parseHoldings(rows []map[string]string, rep *RowReport) ([]model.Holding, error) {
	schema, err := schemaFor(rows)
	if err != nil {
		return nil, err
	}

	var holdings []model.Holding
	for i, row := range rows {
		symbol := fieldValue(row, schema, "", "Symbol", "symbol")
		if symbol == "" {
			rep.skip(i, "missing symbol")
			continue
		}

		holdings = append(holdings, model.Holding{
			Symbol:          symbol,
			Name:            fieldValue(row, schema, workbook.FieldCompanyName, "Company Name", "name"),
			Quantity:        workbook.ParseInt(fieldValue(row, schema, "", "Quantity", "quantity")),
			AvgPrice:        workbook.ParseDecimal(fieldValue(row, schema, workbook.FieldAvgPrice, "avgPrice")),
			CurrentPrice:    workbook.ParseDecimal(fieldValue(row, schema, workbook.FieldCurrentPrice, "currentPrice")),
			Sector:          fieldValue(row, schema, "", "Sector", "sector"),
			MarketCap:       fieldValue(row, schema, workbook.FieldMarketCap, "Market Cap"),
			Value:           workbook.ParseDecimal(fieldValue(row, schema, workbook.FieldValue, "Value", "value")),
			GainLoss:        workbook.ParseDecimal(fieldValue(row, schema, workbook.FieldGainLoss, "gainLoss")),
			GainLossPercent: workbook.ParsePercent(fieldValue(row, schema, workbook.FieldGainLossPercent, "gainLossPercent")),
		})
		rep.Kept++
	}
	return holdings, nil
}

func parsePerformance(rows []map[string]string, rep *RowReport) ([]model.PerformancePoint, error) {
	schema, err := schemaFor(rows)
	if err != nil {
		return nil, err
	}

	var points []model.PerformancePoint
	for i, row := range rows {
		date := fieldValue(row, schema, "", "Date", "date")
		if date == "" {
			rep.skip(i, "missing date")
			continue
		}
		// Datetime renders carry a time suffix; the calendar date is the
		// first ten characters.
		if len(date) > 10 {
			date = date[:10]
		}

		points = append(points, model.PerformancePoint{
			Date:      date,
			Portfolio: workbook.ParseDecimal(fieldValue(row, schema, workbook.FieldValue, "Portfolio Value (₹)", "portfolio")),
			Nifty50:   workbook.ParseDecimal(fieldValue(row, schema, "", "Nifty 50", "nifty50")),
			Gold:      workbook.ParseDecimal(fieldValue(row, schema, "", "Gold (₹/10g)", "gold")),
		})
		rep.Kept++
	}
	return points, nil
}

// parseAllocation handles both allocation tables; they differ only in the
// category field and its header spellings. Percentage columns are fractions
// in the source and scaled to percentage terms here.
func parseAllocation(rows []map[string]string, rep *RowReport, keyField string, keyLiterals ...string) (map[string]model.AllocationBucket, error) {
	schema, err := schemaFor(rows)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]model.AllocationBucket)
	for i, row := range rows {
		key := fieldValue(row, schema, keyField, keyLiterals...)
		if key == "" {
			rep.skip(i, "missing category")
			continue
		}

		buckets[key] = model.AllocationBucket{
			Value:      workbook.ParseDecimal(fieldValue(row, schema, workbook.FieldValue, "Value (₹)", "value")),
			Percentage: workbook.ParseDecimal(fieldValue(row, schema, "", "Percentage", "percentage")) * 100,
		}
		rep.Kept++
	}
	return buckets, nil
}

func parseSummary(rows []map[string]string, rep *RowReport) (map[string]float64, error) {
	schema, err := schemaFor(rows)
	if err != nil {
		return nil, err
	}

	metrics := make(map[string]float64)
	for i, row := range rows {
		metric := fieldValue(row, schema, "", "Metric", "metric")
		if metric == "" {
			rep.skip(i, "missing metric name")
			continue
		}

		metrics[metric] = workbook.ParseDecimal(fieldValue(row, schema, workbook.FieldValue, "Value", "value"))
		rep.Kept++
	}
	return metrics, nil
}

func parseTopPerformers(rows []map[string]string, rep *RowReport) (map[string]model.TopPerformerRecord, error) {
	schema, err := schemaFor(rows)
	if err != nil {
		return nil, err
	}

	performers := make(map[string]model.TopPerformerRecord)
	for i, row := range rows {
		role := fieldValue(row, schema, "", "Metric", "metric")
		if role == "" {
			rep.skip(i, "missing metric name")
			continue
		}

		performers[role] = model.TopPerformerRecord{
			Symbol:      fieldValue(row, schema, "", "Symbol", "symbol"),
			Name:        fieldValue(row, schema, workbook.FieldCompanyName, "Company Name", "name"),
			Performance: workbook.ParseDecimal(fieldValue(row, schema, "", "Performance", "performance")),
		}
		rep.Kept++
	}
	return performers, nil
}
