package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/cart"
	"pos-pricing-engine/internal/domain/catalog"
	"pos-pricing-engine/internal/domain/discount"
	"pos-pricing-engine/internal/domain/quote"
	"pos-pricing-engine/internal/domain/session"
	"pos-pricing-engine/internal/pkg/money"
)

// StoreInfo is one entry of the store directory.
type StoreInfo struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Currency money.Currency `json:"currency"`
}

// CouponResult is the payload returned by a successful coupon validation.
type CouponResult struct {
	Code  string          `json:"code"`
	Name  string          `json:"name,omitempty"`
	Rules []discount.Rule `json:"rules,omitempty"`
}

type QuoteRequest struct {
	StoreID     string            `json:"store_id"`
	Lines       []quote.LineInput `json:"lines"`
	CouponCodes []string          `json:"coupon_codes,omitempty"`
}

type QuoteResult struct {
	Quote    quote.Quote    `json:"quote"`
	Currency money.Currency `json:"currency"`
}

// TenderKind tags the payment instrument.
type TenderKind string

const (
	TenderCash TenderKind = "CASH"
	TenderCard TenderKind = "CARD"
)

type CardDetails struct {
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	AuthCode  string `json:"auth_code"`
	Reference string `json:"reference"`
}

type Tender struct {
	Kind         TenderKind      `json:"kind"`
	CashReceived decimal.Decimal `json:"cash_received,omitempty"`
	Card         *CardDetails    `json:"card,omitempty"`
}

type CheckoutRequest struct {
	StoreID        string            `json:"store_id"`
	RegisterID     string            `json:"register_id"`
	IdempotencyKey uuid.UUID         `json:"idempotency_key"`
	Lines          []quote.LineInput `json:"lines"`
	Tender         Tender            `json:"payment"`
	CouponCodes    []string          `json:"coupon_codes,omitempty"`
	CustomerID     *string           `json:"customer_id,omitempty"`
}

type CheckoutResult struct {
	SaleID   string          `json:"sale_id"`
	Receipt  json.RawMessage `json:"receipt,omitempty"`
	Currency money.Currency  `json:"currency"`
}

type RegisterLoginRequest struct {
	StoreID    string `json:"store_id"`
	TerminalID string `json:"terminal_id"`
	Operator   string `json:"operator"`
	Passcode   string `json:"passcode"`
}

type CatalogGateway interface {
	Stores(ctx context.Context) ([]StoreInfo, error)
	Search(ctx context.Context, storeID, query string) ([]catalog.Item, error)
	// LookupBarcode returns (nil, nil) for an unmatched barcode; that
	// is a normal outcome, not an error.
	LookupBarcode(ctx context.Context, storeID, barcode string) (*catalog.Item, error)
	StockByStore(ctx context.Context, variantID string) ([]catalog.StockLevel, error)
}

type RuleGateway interface {
	ActiveRules(ctx context.Context, storeID string) ([]discount.Rule, error)
}

type CouponGateway interface {
	ValidateCoupon(ctx context.Context, code string, subtotal decimal.Decimal) (CouponResult, error)
}

type QuoteGateway interface {
	FetchQuote(ctx context.Context, req QuoteRequest) (QuoteResult, error)
}

type CheckoutGateway interface {
	SubmitSale(ctx context.Context, req CheckoutRequest) (CheckoutResult, error)
}

type SessionGateway interface {
	RegisterLogin(ctx context.Context, req RegisterLoginRequest) (session.RegisterSession, error)
	EndSession(ctx context.Context, registerID string) error
}

// Gateway is the full remote pricing-service surface; one client
// implements all of it.
type Gateway interface {
	CatalogGateway
	RuleGateway
	CouponGateway
	QuoteGateway
	CheckoutGateway
	SessionGateway
}

// CartCache is the client-local durable cache the in-progress sale is
// persisted to on every mutation, so a reload resumes the same sale.
type CartCache interface {
	SaveCart(ctx context.Context, lines []cart.Line) error
	LoadCart(ctx context.Context) ([]cart.Line, bool, error)
	DeleteCart(ctx context.Context) error
}

// PrefsCache persists the locked store id and the operator's
// product-search view preference.
type PrefsCache interface {
	SaveStoreID(ctx context.Context, storeID string) error
	LoadStoreID(ctx context.Context) (string, bool, error)
	DeleteStoreID(ctx context.Context) error
	SaveSearchView(ctx context.Context, view string) error
	LoadSearchView(ctx context.Context) (string, bool, error)
}
