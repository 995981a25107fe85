//go:build unit

package discount_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pos-pricing-engine/internal/domain/discount"
	"pos-pricing-engine/tests/common/builder"
)

func TestMatches(t *testing.T) {
	item := builder.NewItemBuilder().
		WithID("var-42").
		WithProductID("prod-7").
		WithCategory("Coffee").
		Build()

	tests := []struct {
		name string
		rule discount.Rule
		want bool
	}{
		{
			name: "ALL matches any item",
			rule: builder.NewRuleBuilder().Build(),
			want: true,
		},
		{
			name: "category match is case insensitive",
			rule: builder.NewRuleBuilder().ForCategories("COFFEE").Build(),
			want: true,
		},
		{
			name: "category mismatch",
			rule: builder.NewRuleBuilder().ForCategories("tea", "bakery").Build(),
			want: false,
		},
		{
			name: "category rule with empty list matches everything",
			rule: builder.NewRuleBuilder().ForCategories().Build(),
			want: true,
		},
		{
			name: "product id match",
			rule: builder.NewRuleBuilder().ForProducts("prod-1", "prod-7").Build(),
			want: true,
		},
		{
			name: "product id mismatch",
			rule: builder.NewRuleBuilder().ForProducts("prod-1").Build(),
			want: false,
		},
		{
			name: "variant id match",
			rule: builder.NewRuleBuilder().ForVariants("var-42").Build(),
			want: true,
		},
		{
			name: "variant id mismatch",
			rule: builder.NewRuleBuilder().ForVariants("var-41").Build(),
			want: false,
		},
		{
			name: "unknown target never matches",
			rule: builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
				b.Target = discount.Target("BUNDLE")
			}).Build(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, discount.Matches(tt.rule, item))
		})
	}
}


