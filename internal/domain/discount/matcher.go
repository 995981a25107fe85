package discount

import (
	"strings"

	"pos-pricing-engine/internal/domain/catalog"
)

// Matches decides whether a rule applies to an item.
//
// A CATEGORY rule with an empty category list matches every item; that
// mirrors the server's leniency and is deliberate, not an oversight.
// Unknown targets never match, so malformed rule data degrades to "no
// discount" instead of failing the sale.
func Matches(rule Rule, item catalog.Item) bool {
	switch rule.Target {
	case TargetAll:
		return true
	case TargetCategory:
		if len(rule.Categories) == 0 {
			return true
		}
		for _, c := range rule.Categories {
			if strings.EqualFold(c, item.CategoryCode) {
				return true
			}
		}
		return false
	case TargetProduct:
		return containsID(rule.ProductIDs, item.ProductID)
	case TargetVariant:
		return containsID(rule.VariantIDs, item.ID)
	default:
		return false
	}
}

func containsID(ids []string, id string) bool {
	if id == "" {
		return false
	}
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
