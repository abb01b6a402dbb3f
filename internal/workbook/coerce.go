package workbook

import (
	"math"
	"strconv"
	"strings"
)

// currencyCleaner strips currency glyphs and thousands separators before
// numeric parsing. "%" is deliberately not stripped: a cell rendered as a
// percent string is not a plain number in the source sheets.
var currencyCleaner = strings.NewReplacer("₹", "", "$", "", "€", "", "£", "", ",", "")

// ParseDecimal parses a possibly currency-formatted cell value. Blank or
// unparsable cells coerce to 0, never an error; loading must tolerate junk
// cells row by row.
func ParseDecimal(raw string) float64 {
	cleaned := strings.TrimSpace(currencyCleaner.Replace(raw))
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseInt parses an integer cell through the decimal path, truncating any
// fractional part (sheets frequently render quantities as "10.0").
func ParseInt(raw string) int {
	return int(ParseDecimal(raw))
}

// ParsePercent parses a gain/loss percentage cell. Source sheets encode some
// percentages as fractions in [-1, 1]; those are scaled to percentage terms.
// Values already above 1 in magnitude pass through unchanged, so the
// normalization is idempotent.
func ParsePercent(raw string) float64 {
	value := ParseDecimal(raw)
	if value != 0 && math.Abs(value) <= 1 {
		return value * 100
	}
	return value
}
