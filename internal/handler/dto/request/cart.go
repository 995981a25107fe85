package request

import (
	"pos-pricing-engine/internal/domain/catalog"
)

// AddItemRequest carries the raw catalog payload for the scanned or
// tapped item; normalization happens through the catalog adapter.
type AddItemRequest struct {
	Item map[string]any `json:"item" binding:"required"`
}

func (r AddItemRequest) ToDomain() (catalog.Item, error) {
	return catalog.FromPayload(r.Item)
}

// UpdateLineRequest adjusts a line either relatively (delta) or
// absolutely (quantity). Exactly one must be set.
type UpdateLineRequest struct {
	Delta    *int `json:"delta,omitempty"`
	Quantity *int `json:"quantity,omitempty"`
}

func (r UpdateLineRequest) Valid() bool {
	return (r.Delta != nil) != (r.Quantity != nil)
}
