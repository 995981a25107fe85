package catalog

import (
	"github.com/shopspring/decimal"
)

// Item is a purchasable variant as served by the catalog service.
// Read-only to the engine; normalized once at the boundary by FromPayload.
type Item struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	SKU               string           `json:"sku"`
	Barcode           string           `json:"barcode,omitempty"`
	Price             decimal.Decimal  `json:"price"`
	TaxRate           *decimal.Decimal `json:"tax_rate,omitempty"`
	OnHand            int              `json:"on_hand"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty"`
	CategoryCode      string           `json:"category_code,omitempty"`
	ProductID         string           `json:"product_id,omitempty"`
}

func (i Item) IsLowStock() bool {
	if i.LowStockThreshold == nil {
		return false
	}
	return i.OnHand <= *i.LowStockThreshold
}

// StockLevel is the per-store availability returned by the cross-store
// stock lookup.
type StockLevel struct {
	StoreID           string `json:"store_id"`
	OnHand            int    `json:"on_hand"`
	LowStock          bool   `json:"low_stock"`
	LowStockThreshold *int   `json:"low_stock_threshold,omitempty"`
}
