package response

import (
	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/cart"
	"pos-pricing-engine/internal/domain/catalog"
	"pos-pricing-engine/internal/domain/discount"
	"pos-pricing-engine/internal/pkg/money"
	"pos-pricing-engine/internal/usecase"
)

type CartLineResponse struct {
	Item      catalog.Item      `json:"item"`
	Quantity  int               `json:"quantity"`
	LineTotal decimal.Decimal   `json:"line_total"`
	Badges    []discount.Badge  `json:"badges,omitempty"`
	Preview   *discount.Preview `json:"preview,omitempty"`
}

type CartResponse struct {
	Lines        []CartLineResponse      `json:"lines"`
	Subtotal     decimal.Decimal         `json:"subtotal"`
	Coupons      []usecase.AppliedCoupon `json:"coupons,omitempty"`
	CouponStatus string                  `json:"coupon_status,omitempty"`
	Quote        QuoteResponse           `json:"quote"`
	Notice       string                  `json:"notice,omitempty"`
}

func FromCart(lines []cart.Line, subtotal decimal.Decimal, engine *usecase.Engine, notice usecase.Notice) CartResponse {
	out := CartResponse{
		Lines:        make([]CartLineResponse, 0, len(lines)),
		Subtotal:     subtotal,
		Coupons:      engine.Coupons().Applied(),
		CouponStatus: engine.Coupons().Status(),
		Quote:        FromQuoteView(engine.Quote()),
		Notice:       string(notice),
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, CartLineResponse{
			Item:      l.Item,
			Quantity:  l.Quantity,
			LineTotal: l.Total(),
			Badges:    engine.BadgesFor(l.Item),
			Preview:   engine.PreviewFor(l.Item),
		})
	}
	return out
}

type QuoteResponse struct {
	State         string          `json:"state"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	GrandDisplay  string          `json:"grand_display"`
	Authoritative bool            `json:"authoritative"`
	Currency      money.Currency  `json:"currency"`
	Message       string          `json:"message,omitempty"`
}

// FromQuoteView shows the settled quote when one exists and the local
// subtotal-only estimate otherwise.
func FromQuoteView(view usecase.QuoteView) QuoteResponse {
	resp := QuoteResponse{
		State:    string(view.State),
		Currency: view.Currency,
		Message:  view.Message,
	}
	if view.Quote != nil {
		resp.Subtotal = view.Quote.Subtotal
		resp.TaxTotal = view.Quote.TaxTotal
		resp.DiscountTotal = view.Quote.DiscountTotal
		resp.GrandTotal = view.Quote.GrandTotal
		resp.Authoritative = true
	} else {
		resp.Subtotal = view.Estimate
		resp.GrandTotal = view.Estimate
	}
	resp.GrandDisplay = money.Format(resp.GrandTotal, view.Currency)
	return resp
}
