//go:build unit || e2e

package builder

import (
	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/discount"
)

type RuleBuilder struct {
	ID         string
	Code       string
	Name       string
	Target     discount.Target
	Categories []string
	ProductIDs []string
	VariantIDs []string
	Basis      discount.Basis
	Rate       *decimal.Decimal
	Amount     *decimal.Decimal
	Scope      discount.Scope
	Priority   int
	Stackable  *bool
}

func NewRuleBuilder() *RuleBuilder {
	rate := decimal.RequireFromString("0.1")
	return &RuleBuilder{
		ID:       "rule-001",
		Code:     "TEN-OFF",
		Name:     "10% off",
		Target:   discount.TargetAll,
		Basis:    discount.BasisPercent,
		Rate:     &rate,
		Scope:    discount.ScopeLine,
		Priority: 1,
	}
}

func (b *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RuleBuilder) Build() discount.Rule {
	return discount.Rule{
		ID:         b.ID,
		Code:       b.Code,
		Name:       b.Name,
		Target:     b.Target,
		Categories: b.Categories,
		ProductIDs: b.ProductIDs,
		VariantIDs: b.VariantIDs,
		Basis:      b.Basis,
		Rate:       b.Rate,
		Amount:     b.Amount,
		Scope:      b.Scope,
		Priority:   b.Priority,
		Stackable:  b.Stackable,
	}
}

// Fluent builder methods
func (b *RuleBuilder) WithID(id string) *RuleBuilder {
	b.ID = id
	return b
}

func (b *RuleBuilder) WithPercent(rate string) *RuleBuilder {
	r := decimal.RequireFromString(rate)
	b.Basis = discount.BasisPercent
	b.Rate = &r
	b.Amount = nil
	return b
}

func (b *RuleBuilder) WithFlat(amount string) *RuleBuilder {
	a := decimal.RequireFromString(amount)
	b.Basis = discount.BasisFlat
	b.Amount = &a
	b.Rate = nil
	return b
}

func (b *RuleBuilder) WithPriority(p int) *RuleBuilder {
	b.Priority = p
	return b
}

func (b *RuleBuilder) WithStackable(stackable bool) *RuleBuilder {
	b.Stackable = &stackable
	return b
}

func (b *RuleBuilder) ForCategories(codes ...string) *RuleBuilder {
	b.Target = discount.TargetCategory
	b.Categories = codes
	return b
}

func (b *RuleBuilder) ForProducts(ids ...string) *RuleBuilder {
	b.Target = discount.TargetProduct
	b.ProductIDs = ids
	return b
}

func (b *RuleBuilder) ForVariants(ids ...string) *RuleBuilder {
	b.Target = discount.TargetVariant
	b.VariantIDs = ids
	return b
}

func (b *RuleBuilder) OnReceipt() *RuleBuilder {
	b.Scope = discount.ScopeReceipt
	return b
}
