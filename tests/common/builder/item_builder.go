//go:build unit || e2e

package builder

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/cart"
	"pos-pricing-engine/internal/domain/catalog"
)

type ItemBuilder struct {
	ID                string
	Name              string
	SKU               string
	Barcode           string
	Price             decimal.Decimal
	TaxRate           *decimal.Decimal
	OnHand            int
	LowStockThreshold *int
	CategoryCode      string
	ProductID         string
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:           "var-001",
		Name:         "House Blend Beans 250g",
		SKU:          "HB-250",
		Barcode:      "4901234567894",
		Price:        decimal.NewFromInt(12),
		OnHand:       20,
		CategoryCode: "coffee",
		ProductID:    "prod-001",
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

// Clone makes an independent copy so a test can derive several items
// from one base without the mutations bleeding across.
func (b *ItemBuilder) Clone() *ItemBuilder {
	c := &ItemBuilder{}
	if err := copier.Copy(c, b); err != nil {
		panic(fmt.Sprintf("clone item builder: %v", err))
	}
	return c
}

// Build methods
func (b *ItemBuilder) Build() catalog.Item {
	return catalog.Item{
		ID:                b.ID,
		Name:              b.Name,
		SKU:               b.SKU,
		Barcode:           b.Barcode,
		Price:             b.Price,
		TaxRate:           b.TaxRate,
		OnHand:            b.OnHand,
		LowStockThreshold: b.LowStockThreshold,
		CategoryCode:      b.CategoryCode,
		ProductID:         b.ProductID,
	}
}

func (b *ItemBuilder) BuildLine(quantity int) cart.Line {
	return cart.Line{Item: b.Build(), Quantity: quantity}
}

func (b *ItemBuilder) BuildPayload() map[string]any {
	return map[string]any{
		"id":            b.ID,
		"name":          b.Name,
		"sku":           b.SKU,
		"barcode":       b.Barcode,
		"price":         b.Price.String(),
		"on_hand":       float64(b.OnHand),
		"category_code": b.CategoryCode,
		"product_id":    b.ProductID,
	}
}

// Fluent builder methods
func (b *ItemBuilder) WithID(id string) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithPrice(price string) *ItemBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *ItemBuilder) WithOnHand(n int) *ItemBuilder {
	b.OnHand = n
	return b
}

func (b *ItemBuilder) WithLowStockThreshold(n int) *ItemBuilder {
	b.LowStockThreshold = &n
	return b
}

func (b *ItemBuilder) WithCategory(code string) *ItemBuilder {
	b.CategoryCode = code
	return b
}

func (b *ItemBuilder) WithProductID(id string) *ItemBuilder {
	b.ProductID = id
	return b
}
