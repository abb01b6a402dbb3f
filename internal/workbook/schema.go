package workbook

import (
	"fmt"
	"strings"

	"github.com/wealthmanager/portfolio-analytics-api/internal/apperrors"
)

// Internal field names produced by the header schema.
const (
	FieldAvgPrice        = "avg_price"
	FieldCurrentPrice    = "current_price"
	FieldValue           = "value"
	FieldGainLoss        = "gain_loss"
	FieldGainLossPercent = "gain_loss_percent"
	FieldCompanyName     = "company_name"
	FieldMarketCap       = "market_cap"
)

// headerRule maps one header variant to an internal field. Word matching runs
// against the lowercased trimmed header; marker matching against the raw
// header, since currency glyphs and "%" survive casing untouched.
type headerRule struct {
	field string
	match func(lower, raw string) bool
}

// Rule order is fixed. The gain/loss rules come before the value rule so a
// header like "Gain/Loss Value (₹)" resolves to exactly one field.
var headerRules = []headerRule{
	{FieldAvgPrice, func(lower, _ string) bool {
		return strings.Contains(lower, "avg") && strings.Contains(lower, "price")
	}},
	{FieldCurrentPrice, func(lower, _ string) bool {
		return strings.Contains(lower, "current") && strings.Contains(lower, "price")
	}},
	{FieldGainLoss, func(lower, raw string) bool {
		return strings.Contains(lower, "gain") && strings.Contains(lower, "loss") && hasCurrencyMarker(raw)
	}},
	{FieldGainLossPercent, func(lower, raw string) bool {
		return strings.Contains(lower, "gain") && strings.Contains(lower, "loss") && strings.Contains(raw, "%")
	}},
	{FieldValue, func(lower, raw string) bool {
		return strings.Contains(lower, "value") && hasCurrencyMarker(raw)
	}},
	{FieldCompanyName, func(lower, _ string) bool {
		return strings.Contains(lower, "company") && strings.Contains(lower, "name")
	}},
	{FieldMarketCap, func(lower, _ string) bool {
		return strings.Contains(lower, "market") && strings.Contains(lower, "cap")
	}},
}

// hasCurrencyMarker reports whether a header carries a currency glyph.
func hasCurrencyMarker(raw string) bool {
	return strings.ContainsAny(raw, "₹$€£")
}

// Schema maps internal field names to the workbook header they were found
// under. Headers no rule claims stay unmapped and remain usable as literal
// lookup keys.
type Schema map[string]string

// NewSchema builds the field mapping for one table's header row. Each header
// is claimed by the first rule that matches it. Two headers resolving to the
// same internal field is a configuration error: row parsing would silently
// prefer one of them, so the whole load attempt fails instead.
func NewSchema(headers []string) (Schema, error) {
	schema := make(Schema)
	for _, header := range headers {
		lower := strings.ToLower(strings.TrimSpace(header))
		for _, rule := range headerRules {
			if !rule.match(lower, header) {
				continue
			}
			if prev, claimed := schema[rule.field]; claimed && prev != header {
				return nil, fmt.Errorf("%w: headers %q and %q both map to %s",
					apperrors.ErrSchemaAmbiguous, prev, header, rule.field)
			}
			schema[rule.field] = header
			break
		}
	}
	return schema, nil
}

// Header returns the source header mapped to field, or "" when unmapped.
func (s Schema) Header(field string) string {
	return s[field]
}
