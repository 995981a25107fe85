package quote

import (
	"github.com/shopspring/decimal"
)

// LineInput is the cart's line projection sent to the pricing service.
type LineInput struct {
	VariantID string          `json:"variant_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Adjustment is a single named discount or tax applied to a line.
type Adjustment struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Line is the server's per-line breakdown.
type Line struct {
	VariantID string       `json:"variant_id"`
	Discounts []Adjustment `json:"discounts,omitempty"`
	Taxes     []Adjustment `json:"taxes,omitempty"`
}

// RuleAdjustment is a receipt-level rollup keyed by the rule it came from.
type RuleAdjustment struct {
	RuleRef string          `json:"rule_ref"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
}

// Quote is the authoritative server-computed totals for a proposed
// set of cart lines plus coupons. Replaced wholesale on every
// successful reconciliation.
type Quote struct {
	Subtotal       decimal.Decimal  `json:"subtotal"`
	TaxTotal       decimal.Decimal  `json:"tax_total"`
	DiscountTotal  decimal.Decimal  `json:"discount_total"`
	GrandTotal     decimal.Decimal  `json:"grand_total"`
	Lines          []Line           `json:"lines,omitempty"`
	DiscountByRule []RuleAdjustment `json:"discount_by_rule,omitempty"`
	TaxByRule      []RuleAdjustment `json:"tax_by_rule,omitempty"`
}

// EstimateSubtotal is the local fallback when no authoritative quote
// is available: sum of unit price times quantity, no tax, no discount.
func EstimateSubtotal(lines []LineInput) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
