package errs

import "errors"

// Recoverable conditions surfaced to the operator; none of these
// should stop the engine.
var (
	// Cart errors
	ErrOutOfStock        = errors.New("item is out of stock")
	ErrStockLimitReached = errors.New("stock limit reached")
	ErrLineNotFound      = errors.New("cart line not found")

	// Coupon errors
	ErrInvalidCoupon = errors.New("invalid coupon")

	// Quote errors
	ErrQuoteUnavailable = errors.New("quote service unavailable")
	ErrQuoteNotSettled  = errors.New("no settled quote for current cart")

	// Checkout errors
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrCheckoutFailed      = errors.New("checkout rejected by server")
	ErrEmptyCart           = errors.New("cart is empty")

	// Session errors
	ErrSessionExpired = errors.New("register session expired")
	ErrNoSession      = errors.New("no active register session")

	// Store errors
	ErrStoreNotSelected = errors.New("no store selected")
)
