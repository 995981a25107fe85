//go:build unit

package discount_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-pricing-engine/internal/domain/discount"
	"pos-pricing-engine/tests/common/builder"
)

func TestPreviewFor(t *testing.T) {
	t.Run("no matching rule returns nil", func(t *testing.T) {
		item := builder.NewItemBuilder().WithCategory("coffee").Build()
		rules := []discount.Rule{
			builder.NewRuleBuilder().ForCategories("tea").Build(),
		}

		assert.Nil(t, discount.PreviewFor(item, rules, nil))
	})

	t.Run("non-stackable rule stops accumulation", func(t *testing.T) {
		item := builder.NewItemBuilder().WithPrice("20.00").Build()
		rules := []discount.Rule{
			builder.NewRuleBuilder().WithID("rule-a").WithPriority(1).WithPercent("0.1").WithStackable(false).Build(),
			builder.NewRuleBuilder().WithID("rule-b").WithPriority(2).WithFlat("5").Build(),
		}

		p := discount.PreviewFor(item, rules, nil)
		require.NotNil(t, p)
		assert.True(t, p.Final.Equal(decimal.RequireFromString("18.00")), "final = %s", p.Final)
	})

	t.Run("stackable percents accumulate against the original price", func(t *testing.T) {
		item := builder.NewItemBuilder().WithPrice("50.00").Build()
		rules := []discount.Rule{
			builder.NewRuleBuilder().WithID("rule-a").WithPriority(1).WithPercent("0.1").Build(),
			builder.NewRuleBuilder().WithID("rule-b").WithPriority(2).WithPercent("0.2").Build(),
		}

		// 10% and 20% of 50.00 each, never 20% of the remainder.
		p := discount.PreviewFor(item, rules, nil)
		require.NotNil(t, p)
		assert.True(t, p.Final.Equal(decimal.RequireFromString("35.00")), "final = %s", p.Final)
	})

	t.Run("missing stackable flag stacks", func(t *testing.T) {
		item := builder.NewItemBuilder().WithPrice("10.00").Build()
		rules := []discount.Rule{
			builder.NewRuleBuilder().WithID("rule-a").WithPriority(1).WithFlat("1").Build(),
			builder.NewRuleBuilder().WithID("rule-b").WithPriority(2).WithFlat("2").Build(),
		}

		p := discount.PreviewFor(item, rules, nil)
		require.NotNil(t, p)
		assert.True(t, p.Final.Equal(decimal.RequireFromString("7.00")))
	})

	t.Run("final price never goes negative", func(t *testing.T) {
		item := builder.NewItemBuilder().WithPrice("3.00").Build()
		rules := []discount.Rule{
			builder.NewRuleBuilder().WithID("rule-a").WithFlat("100").Build(),
		}

		p := discount.PreviewFor(item, rules, nil)
		require.NotNil(t, p)
		assert.True(t, p.Final.IsZero())
		assert.False(t, p.Final.IsNegative())
	})

	t.Run("receipt-only match keeps the original price with a savings hint", func(t *testing.T) {
		item := builder.NewItemBuilder().WithPrice("8.00").Build()
		rules := []discount.Rule{
			builder.NewRuleBuilder().OnReceipt().Build(),
		}

		p := discount.PreviewFor(item, rules, nil)
		require.NotNil(t, p)
		assert.True(t, p.Final.Equal(p.Original))
		assert.True(t, p.HasReceiptSavings)
	})

	t.Run("duplicate rule id counts once", func(t *testing.T) {
		item := builder.NewItemBuilder().WithPrice("10.00").Build()
		shared := builder.NewRuleBuilder().WithID("rule-dup").WithFlat("2").Build()

		p := discount.PreviewFor(item, []discount.Rule{shared}, []discount.Rule{shared})
		require.NotNil(t, p)
		assert.True(t, p.Final.Equal(decimal.RequireFromString("8.00")))
	})
}

func TestBadgesFor(t *testing.T) {
	item := builder.NewItemBuilder().WithPrice("20.00").Build()

	t.Run("ordered by priority then id", func(t *testing.T) {
		auto := []discount.Rule{
			builder.NewRuleBuilder().WithID("rule-z").WithPriority(1).WithPercent("0.1").Build(),
			builder.NewRuleBuilder().WithID("rule-a").WithPriority(2).WithFlat("5").Build(),
		}
		coupon := []discount.Rule{
			builder.NewRuleBuilder().WithID("rule-m").WithPriority(1).WithFlat("3").Build(),
		}

		badges := discount.BadgesFor(item, auto, coupon)
		require.Len(t, badges, 3)
		assert.Equal(t, "rule-m", badges[0].RuleID)
		assert.Equal(t, "rule-z", badges[1].RuleID)
		assert.Equal(t, "rule-a", badges[2].RuleID)
		assert.Equal(t, discount.SourceCoupon, badges[0].Source)
		assert.Equal(t, discount.SourceAuto, badges[1].Source)
	})

	t.Run("labels", func(t *testing.T) {
		auto := []discount.Rule{
			builder.NewRuleBuilder().WithID("rule-pct").WithPriority(1).WithPercent("0.15").Build(),
			builder.NewRuleBuilder().WithID("rule-flat").WithPriority(2).WithFlat("2.5").Build(),
			builder.NewRuleBuilder().WithID("rule-receipt").WithPriority(3).WithPercent("0.05").OnReceipt().Build(),
		}

		badges := discount.BadgesFor(item, auto, nil)
		require.Len(t, badges, 3)
		assert.Equal(t, "15% OFF", badges[0].Label)
		assert.Equal(t, "-2.5", badges[1].Label)
		assert.Equal(t, "5% OFF (receipt)", badges[2].Label)
	})

	t.Run("rule id seen through both sources yields one badge", func(t *testing.T) {
		shared := builder.NewRuleBuilder().WithID("rule-dup").WithPercent("0.1").Build()

		badges := discount.BadgesFor(item, []discount.Rule{shared}, []discount.Rule{shared})
		require.Len(t, badges, 1)
		assert.Equal(t, "rule-dup", badges[0].RuleID)
	})

	t.Run("no matches yields no badges", func(t *testing.T) {
		rules := []discount.Rule{
			builder.NewRuleBuilder().ForCategories("tea").Build(),
		}
		assert.Empty(t, discount.BadgesFor(item, rules, nil))
	})
}


