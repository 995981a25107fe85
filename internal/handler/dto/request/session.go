package request

import (
	"pos-pricing-engine/internal/usecase"
)

type RegisterLoginRequest struct {
	StoreID    string `json:"store_id" binding:"required"`
	TerminalID string `json:"terminal_id" binding:"required"`
	Operator   string `json:"operator" binding:"required"`
	Passcode   string `json:"passcode" binding:"required"`
}

func (r RegisterLoginRequest) ToDomain() usecase.RegisterLoginRequest {
	return usecase.RegisterLoginRequest{
		StoreID:    r.StoreID,
		TerminalID: r.TerminalID,
		Operator:   r.Operator,
		Passcode:   r.Passcode,
	}
}

type SelectStoreRequest struct {
	StoreID string `json:"store_id" binding:"required"`
}

type SearchViewRequest struct {
	View string `json:"view" binding:"required,oneof=grid list"`
}
