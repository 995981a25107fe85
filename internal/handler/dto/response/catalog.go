package response

import (
	"pos-pricing-engine/internal/domain/catalog"
	"pos-pricing-engine/internal/domain/discount"
	"pos-pricing-engine/internal/usecase"
)

// CatalogItemResponse decorates a catalog item with its local discount
// hints for the product grid.
type CatalogItemResponse struct {
	Item     catalog.Item      `json:"item"`
	Badges   []discount.Badge  `json:"badges,omitempty"`
	Preview  *discount.Preview `json:"preview,omitempty"`
	LowStock bool              `json:"low_stock"`
}

func FromItems(items []catalog.Item, engine *usecase.Engine) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromItem(item, engine))
	}
	return out
}

func FromItem(item catalog.Item, engine *usecase.Engine) CatalogItemResponse {
	return CatalogItemResponse{
		Item:     item,
		Badges:   engine.BadgesFor(item),
		Preview:  engine.PreviewFor(item),
		LowStock: item.IsLowStock(),
	}
}

type StockLevelsResponse struct {
	VariantID string               `json:"variant_id"`
	Levels    []catalog.StockLevel `json:"levels"`
}
