package cart

import (
	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/catalog"
	"pos-pricing-engine/internal/pkg/errs"
)

// MaxLineQuantity is the hard per-line cap regardless of stock.
const MaxLineQuantity = 999

// Line is one in-progress sale line. Quantity always satisfies
// 0 < quantity <= min(MaxLineQuantity, item.OnHand); a line that would
// reach zero is removed instead.
type Line struct {
	Item         catalog.Item    `json:"item"`
	Quantity     int             `json:"quantity"`
	LineDiscount decimal.Decimal `json:"line_discount"`
}

func (l Line) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).Sub(l.LineDiscount)
}

// Cart holds the in-progress sale. Not safe for concurrent use; the
// owning store serializes access.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Restore replaces the cart contents with persisted lines, re-clamping
// each quantity in case stock data changed across the reload.
func Restore(lines []Line) *Cart {
	c := New()
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if maxQty := maxQuantity(l.Item); l.Quantity > maxQty {
			l.Quantity = maxQty
		}
		if l.Quantity > 0 {
			c.lines = append(c.lines, l)
		}
	}
	return c
}

// Add inserts the item or increments its line by one. Fails with
// ErrOutOfStock when nothing remains to sell; the cart is unchanged.
func (c *Cart) Add(item catalog.Item) error {
	idx := c.indexOf(item.ID)
	current := 0
	if idx >= 0 {
		current = c.lines[idx].Quantity
	}

	remaining := item.OnHand - current
	if remaining <= 0 || current >= MaxLineQuantity {
		return errs.ErrOutOfStock
	}

	if idx >= 0 {
		c.lines[idx].Quantity = clamp(current+1, item)
		return nil
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: clamp(1, item)})
	return nil
}

// ChangeQuantity adjusts a line by delta. The result is clamped to
// [0, min(MaxLineQuantity, onHand)]; clamped reports whether the
// request exceeded available stock. Zero removes the line.
func (c *Cart) ChangeQuantity(itemID string, delta int) (clamped bool, err error) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return false, errs.ErrLineNotFound
	}
	return c.setAt(idx, c.lines[idx].Quantity+delta), nil
}

// SetQuantity sets a line's quantity outright, with the same clamping
// as ChangeQuantity.
func (c *Cart) SetQuantity(itemID string, n int) (clamped bool, err error) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return false, errs.ErrLineNotFound
	}
	return c.setAt(idx, n), nil
}

func (c *Cart) Remove(itemID string) {
	if idx := c.indexOf(itemID); idx >= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a snapshot copy of the cart contents.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) QuantityOf(itemID string) int {
	if idx := c.indexOf(itemID); idx >= 0 {
		return c.lines[idx].Quantity
	}
	return 0
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal is the local estimate: sum of price*qty minus line discounts.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

func (c *Cart) setAt(idx, requested int) (clamped bool) {
	maxQty := maxQuantity(c.lines[idx].Item)
	n := requested
	if n > maxQty {
		n = maxQty
		clamped = true
	}
	if n <= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		return clamped
	}
	c.lines[idx].Quantity = n
	return clamped
}

func (c *Cart) indexOf(itemID string) int {
	for i, l := range c.lines {
		if l.Item.ID == itemID {
			return i
		}
	}
	return -1
}

func clamp(n int, item catalog.Item) int {
	if maxQty := maxQuantity(item); n > maxQty {
		return maxQty
	}
	return n
}

func maxQuantity(item catalog.Item) int {
	if item.OnHand < MaxLineQuantity {
		return item.OnHand
	}
	return MaxLineQuantity
}
