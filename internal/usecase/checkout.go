package usecase

import (
	"context"

	"github.com/google/uuid"

	"pos-pricing-engine/internal/pkg/errs"
)

// Checkout submits the sale. The grand total offered to the payment
// step always comes from the last settled authoritative quote; with a
// non-zero cart and no settled quote, checkout is not permitted.
// Failure leaves the cart and coupons untouched.
func (e *Engine) Checkout(ctx context.Context, tender Tender, customerID *string) (CheckoutResult, error) {
	if err := e.sessions.Check(); err != nil {
		return CheckoutResult{}, err
	}
	sess, ok := e.sessions.Current()
	if !ok {
		return CheckoutResult{}, errs.ErrNoSession
	}

	lines := e.carts.Projection()
	if len(lines) == 0 {
		return CheckoutResult{}, errs.ErrEmptyCart
	}

	settled, _, ok := e.reconciler.SettledQuote()
	if !ok {
		return CheckoutResult{}, errs.ErrQuoteNotSettled
	}

	if tender.Kind == TenderCash && tender.CashReceived.LessThan(settled.GrandTotal) {
		return CheckoutResult{}, errs.ErrInsufficientPayment
	}

	req := CheckoutRequest{
		StoreID:        sess.StoreID,
		RegisterID:     sess.RegisterID,
		IdempotencyKey: uuid.New(),
		Lines:          lines,
		Tender:         tender,
		CouponCodes:    e.coupons.Codes(),
		CustomerID:     customerID,
	}

	result, err := e.gateway.SubmitSale(ctx, req)
	if err != nil {
		return CheckoutResult{}, errs.Mark(err, errs.ErrCheckoutFailed)
	}

	e.coupons.Reset()
	e.carts.Clear(ctx)
	return result, nil
}
