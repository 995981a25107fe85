package discount

import (
	"github.com/shopspring/decimal"
)

// Target selects which catalog items a rule applies to.
type Target string

const (
	TargetAll      Target = "ALL"
	TargetCategory Target = "CATEGORY"
	TargetProduct  Target = "PRODUCT"
	TargetVariant  Target = "VARIANT"
)

// Basis is how a rule's discount amount is computed.
type Basis string

const (
	BasisPercent Basis = "PCT"
	BasisFlat    Basis = "FLAT"
)

// Scope is whether a rule reduces an individual line or the receipt total.
type Scope string

const (
	ScopeLine    Scope = "LINE"
	ScopeReceipt Scope = "RECEIPT"
)

// Source tags where a rule came from. Auto rules are store-wide;
// coupon rules arrive attached to an applied coupon. The two id spaces
// are disjoint by construction.
type Source string

const (
	SourceAuto   Source = "auto"
	SourceCoupon Source = "coupon"
)

// Rule is an immutable discount rule as served by the pricing service.
type Rule struct {
	ID         string           `json:"id"`
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	Target     Target           `json:"target"`
	Categories []string         `json:"categories,omitempty"`
	ProductIDs []string         `json:"product_ids,omitempty"`
	VariantIDs []string         `json:"variant_ids,omitempty"`
	Basis      Basis            `json:"basis"`
	Rate       *decimal.Decimal `json:"rate,omitempty"`   // 0..1, percent basis only
	Amount     *decimal.Decimal `json:"amount,omitempty"` // flat basis only
	Scope      Scope            `json:"apply_scope"`
	Priority   int              `json:"priority"`
	Stackable  *bool            `json:"stackable,omitempty"`
}

// IsStackable reports whether later rules may still accumulate after
// this one. Only an explicit false terminates stacking.
func (r Rule) IsStackable() bool {
	return r.Stackable == nil || *r.Stackable
}

// DiscountAgainst computes the rule's amount against the original
// price. Percent rules never compound against a running remainder.
func (r Rule) DiscountAgainst(orig decimal.Decimal) decimal.Decimal {
	switch r.Basis {
	case BasisPercent:
		if r.Rate == nil {
			return decimal.Zero
		}
		return orig.Mul(*r.Rate)
	case BasisFlat:
		if r.Amount == nil {
			return decimal.Zero
		}
		return *r.Amount
	default:
		return decimal.Zero
	}
}
