package request

import (
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/pkg/money"
	"pos-pricing-engine/internal/usecase"
)

type CheckoutRequest struct {
	Payment    TenderRequest `json:"payment" binding:"required"`
	CustomerID *string       `json:"customer_id,omitempty"`
}

// TenderRequest is the tagged payment union: CASH carries the received
// amount, CARD carries the authorization details.
type TenderRequest struct {
	Kind         string       `json:"kind" binding:"required,oneof=CASH CARD"`
	CashReceived *string      `json:"cash_received,omitempty"`
	Card         *CardRequest `json:"card,omitempty"`
}

type CardRequest struct {
	Brand     string `json:"brand" binding:"required"`
	Last4     string `json:"last4" binding:"required"`
	AuthCode  string `json:"auth_code"`
	Reference string `json:"reference"`
}

func (r CheckoutRequest) ToDomain() (usecase.Tender, error) {
	switch usecase.TenderKind(r.Payment.Kind) {
	case usecase.TenderCash:
		if r.Payment.CashReceived == nil {
			return usecase.Tender{}, errs.New("cash tender requires cash_received")
		}
		received, err := money.Parse(*r.Payment.CashReceived)
		if err != nil {
			return usecase.Tender{}, errs.Wrap(err, "parse cash_received")
		}
		return usecase.Tender{Kind: usecase.TenderCash, CashReceived: received}, nil

	case usecase.TenderCard:
		if r.Payment.Card == nil {
			return usecase.Tender{}, errs.New("card tender requires card details")
		}
		return usecase.Tender{
			Kind: usecase.TenderCard,
			Card: &usecase.CardDetails{
				Brand:     r.Payment.Card.Brand,
				Last4:     r.Payment.Card.Last4,
				AuthCode:  r.Payment.Card.AuthCode,
				Reference: r.Payment.Card.Reference,
			},
		}, nil

	default:
		return usecase.Tender{}, errs.Newf("unknown tender kind %q", r.Payment.Kind)
	}
}
