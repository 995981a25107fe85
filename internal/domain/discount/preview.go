package discount

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/catalog"
)

// Badge is a short discount label shown next to a catalog item.
type Badge struct {
	RuleID string `json:"rule_id"`
	Label  string `json:"label"`
	Source Source `json:"source"`
}

// Preview is the locally estimated unit price for an item. It is an
// optimistic hint; the reconciled quote supersedes it.
type Preview struct {
	Original          decimal.Decimal `json:"original"`
	Final             decimal.Decimal `json:"final"`
	HasReceiptSavings bool            `json:"has_receipt_savings"`
}

type taggedRule struct {
	rule   Rule
	source Source
}

// BadgesFor collects all rules matching the item from both sets,
// ordered by (priority, id) and de-duplicated by rule id.
func BadgesFor(item catalog.Item, autoRules, couponRules []Rule) []Badge {
	matched := collectMatching(item, autoRules, couponRules, func(Rule) bool { return true })
	if len(matched) == 0 {
		return nil
	}

	badges := make([]Badge, 0, len(matched))
	for _, t := range matched {
		badges = append(badges, Badge{
			RuleID: t.rule.ID,
			Label:  badgeLabel(t.rule),
			Source: t.source,
		})
	}
	return badges
}

// PreviewFor computes the optimistic unit price for an item.
//
// Returns nil when no matching rule touches the item at all. When only
// RECEIPT-scoped rules match, the preview carries the original price
// with the receipt-savings hint set. Line discounts accumulate
// additively against the original price; accumulation stops right
// after a rule whose stackable flag is explicitly false. The total is
// clamped so the final price never goes negative.
func PreviewFor(item catalog.Item, autoRules, couponRules []Rule) *Preview {
	orig := item.Price

	lineRules := collectMatching(item, autoRules, couponRules, func(r Rule) bool {
		return r.Scope == ScopeLine
	})

	if len(lineRules) == 0 {
		receiptMatches := collectMatching(item, autoRules, couponRules, func(r Rule) bool {
			return r.Scope == ScopeReceipt
		})
		if len(receiptMatches) == 0 {
			return nil
		}
		return &Preview{Original: orig, Final: orig, HasReceiptSavings: true}
	}

	total := decimal.Zero
	for _, t := range lineRules {
		total = total.Add(t.rule.DiscountAgainst(orig))
		if !t.rule.IsStackable() {
			break
		}
	}
	if total.GreaterThan(orig) {
		total = orig
	}

	final := orig.Sub(total)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return &Preview{Original: orig, Final: final}
}

// collectMatching merges both rule sets, keeps the rules matching the
// item and passing the filter, sorts by (priority, id) and drops
// duplicate rule ids, first occurrence in sort order winning.
func collectMatching(item catalog.Item, autoRules, couponRules []Rule, keep func(Rule) bool) []taggedRule {
	merged := make([]taggedRule, 0, len(autoRules)+len(couponRules))
	for _, r := range autoRules {
		if keep(r) && Matches(r, item) {
			merged = append(merged, taggedRule{rule: r, source: SourceAuto})
		}
	}
	for _, r := range couponRules {
		if keep(r) && Matches(r, item) {
			merged = append(merged, taggedRule{rule: r, source: SourceCoupon})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].rule.Priority != merged[j].rule.Priority {
			return merged[i].rule.Priority < merged[j].rule.Priority
		}
		return merged[i].rule.ID < merged[j].rule.ID
	})

	seen := make(map[string]struct{}, len(merged))
	deduped := merged[:0]
	for _, t := range merged {
		if _, dup := seen[t.rule.ID]; dup {
			continue
		}
		seen[t.rule.ID] = struct{}{}
		deduped = append(deduped, t)
	}
	return deduped
}

func badgeLabel(r Rule) string {
	var label string
	switch r.Basis {
	case BasisPercent:
		pct := 0
		if r.Rate != nil {
			pct = int(r.Rate.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		}
		label = fmt.Sprintf("%d%% OFF", pct)
	case BasisFlat:
		amount := decimal.Zero
		if r.Amount != nil {
			amount = *r.Amount
		}
		label = "-" + amount.String()
	default:
		label = r.Name
	}
	if r.Scope == ScopeReceipt {
		label += " (receipt)"
	}
	return label
}
