package response

import (
	"encoding/json"

	"pos-pricing-engine/internal/pkg/money"
	"pos-pricing-engine/internal/usecase"
)

type CheckoutResponse struct {
	SaleID   string          `json:"sale_id"`
	Receipt  json.RawMessage `json:"receipt,omitempty"`
	Currency money.Currency  `json:"currency"`
}

func FromCheckoutResult(result usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		SaleID:   result.SaleID,
		Receipt:  result.Receipt,
		Currency: result.Currency,
	}
}
