package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/pkg/errs"
)

// Currency carries the display metadata attached to a store by the
// store directory.
type Currency struct {
	Code      string `json:"code"`
	Symbol    string `json:"symbol"`
	Precision int32  `json:"precision"`
}

func DefaultCurrency() Currency {
	return Currency{Code: "USD", Symbol: "$", Precision: 2}
}

// Parse coerces a loosely-typed remote value (decimal string, float,
// int) into a decimal. Catalog payloads are not consistent about how
// they encode prices.
func Parse(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, errs.New("nil numeric value")
	case decimal.Decimal:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return decimal.Zero, errs.New("empty numeric string")
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, errs.Wrap(err, "parse decimal string")
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	default:
		return decimal.Zero, errs.Newf("unsupported numeric type %T", v)
	}
}

// ParseOrZero is Parse for callers that treat malformed values as zero.
func ParseOrZero(v any) decimal.Decimal {
	d, err := Parse(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format renders an amount with the currency symbol and fixed precision.
func Format(d decimal.Decimal, c Currency) string {
	precision := c.Precision
	if precision < 0 {
		precision = 0
	}
	return c.Symbol + d.StringFixed(precision)
}
