package catalog

import (
	"math"
	"strconv"
	"strings"

	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/pkg/money"
)

var ErrMissingItemID = errs.New("catalog payload has no usable item id")

// FromPayload normalizes a loosely-typed catalog payload into an Item.
// The catalog service has shipped the identifying fields under several
// key spellings over time; all probing for alternates happens here so
// the rest of the engine only ever sees the canonical shape.
func FromPayload(raw map[string]any) (Item, error) {
	id := stringField(raw, "id", "variant_id", "variantId")
	if id == "" {
		return Item{}, ErrMissingItemID
	}

	item := Item{
		ID:           id,
		Name:         stringField(raw, "name", "title"),
		SKU:          stringField(raw, "sku"),
		Barcode:      stringField(raw, "barcode", "ean", "upc"),
		Price:        money.ParseOrZero(fieldOf(raw, "price", "unit_price", "unitPrice")),
		CategoryCode: stringField(raw, "category_code", "categoryCode", "category"),
		ProductID:    stringField(raw, "product_id", "productId"),
	}

	if v := fieldOf(raw, "tax_rate", "taxRate"); v != nil {
		if rate, err := money.Parse(v); err == nil {
			item.TaxRate = &rate
		}
	}

	if n, ok := intField(raw, "on_hand", "onHand", "stock", "quantity_on_hand"); ok {
		if n < 0 {
			n = 0
		}
		item.OnHand = n
	}

	if n, ok := intField(raw, "low_stock_threshold", "lowStockThreshold"); ok {
		item.LowStockThreshold = &n
	}

	return item, nil
}

func fieldOf(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringField(raw map[string]any, keys ...string) string {
	v := fieldOf(raw, keys...)
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		// JSON numbers decode as float64; ids are sometimes numeric.
		if x == math.Trunc(x) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}

func intField(raw map[string]any, keys ...string) (int, bool) {
	switch x := fieldOf(raw, keys...).(type) {
	case float64:
		return int(x), true
	case int:
		return x, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
