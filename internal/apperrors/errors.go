package apperrors

import "errors"

// Source errors represent failures reading the portfolio workbook.
// These errors are fatal to a load attempt; a previously installed snapshot,
// if any, stays authoritative.
var (
	// ErrSourceUnreachable indicates the workbook file or one of its tables
	// could not be opened by either parsing engine.
	ErrSourceUnreachable = errors.New("portfolio workbook unreachable")

	// ErrSchemaAmbiguous indicates two workbook headers resolved to the same
	// internal field, which would make row parsing nondeterministic.
	ErrSchemaAmbiguous = errors.New("ambiguous workbook schema")
)

// Data availability errors represent queries against data the current
// snapshot does not contain. These map to a not-found condition at the API
// boundary, as opposed to load failures which map to an internal failure.
var (
	// ErrNoHoldingsData indicates the snapshot contains no holdings rows.
	ErrNoHoldingsData = errors.New("no holdings data found")

	// ErrNoPerformanceData indicates the snapshot contains no performance timeline.
	ErrNoPerformanceData = errors.New("no performance data found")

	// ErrNoMarketCapData indicates the snapshot contains no market cap table.
	ErrNoMarketCapData = errors.New("no market cap data found")

	// ErrNoPortfolioData indicates the snapshot contains no holdings to
	// summarize.
	ErrNoPortfolioData = errors.New("no portfolio data found")
)

// IsNotFound reports whether err is a data availability error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoHoldingsData) ||
		errors.Is(err, ErrNoPerformanceData) ||
		errors.Is(err, ErrNoMarketCapData) ||
		errors.Is(err, ErrNoPortfolioData)
}
