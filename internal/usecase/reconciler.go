package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/quote"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/pkg/money"
)

// ReconcilerState is the lifecycle of one reconciliation round.
type ReconcilerState string

const (
	StateIdle       ReconcilerState = "IDLE"
	StateDebouncing ReconcilerState = "DEBOUNCING"
	StateRequesting ReconcilerState = "REQUESTING"
	StateSettled    ReconcilerState = "SETTLED"
	StateFailed     ReconcilerState = "FAILED"
)

// QuoteView is the reconciler's read snapshot for display. Quote is
// nil until a round has settled; Estimate carries the subtotal-only
// local fallback meanwhile.
type QuoteView struct {
	State    ReconcilerState `json:"state"`
	Quote    *quote.Quote    `json:"quote,omitempty"`
	Currency money.Currency  `json:"currency"`
	Estimate decimal.Decimal `json:"estimate"`
	Message  string          `json:"message,omitempty"`
}

type reconcileInput struct {
	storeID string
	lines   []quote.LineInput
	coupons []string
}

func (in reconcileInput) equal(other reconcileInput) bool {
	if in.storeID != other.storeID ||
		len(in.lines) != len(other.lines) ||
		len(in.coupons) != len(other.coupons) {
		return false
	}
	for i, l := range in.lines {
		o := other.lines[i]
		if l.VariantID != o.VariantID || l.Quantity != o.Quantity || !l.UnitPrice.Equal(o.UnitPrice) {
			return false
		}
	}
	for i, c := range in.coupons {
		if c != other.coupons[i] {
			return false
		}
	}
	return true
}

type settledQuote struct {
	quote    quote.Quote
	currency money.Currency
	input    reconcileInput
}

// Reconciler keeps the displayed totals converging on the remote
// pricing service's answer for the latest cart state.
//
// Every input change restarts the debounce window and bumps a sequence
// number; a response is committed only when its sequence still matches,
// so an out-of-order completion can never regress the totals. In-flight
// requests that become stale are not aborted, their results are simply
// dropped on arrival.
type Reconciler struct {
	mu       sync.Mutex
	gateway  QuoteGateway
	logger   *slog.Logger
	debounce time.Duration

	seq     uint64
	state   ReconcilerState
	input   reconcileInput
	timer   *time.Timer
	settled *settledQuote
	lastErr error
}

func NewReconciler(gateway QuoteGateway, debounce time.Duration, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		gateway:  gateway,
		logger:   logger,
		debounce: debounce,
		state:    StateIdle,
	}
}

// SetInput replaces the current line projection and coupon set,
// superseding any pending or in-flight round. An empty projection
// clears the quote immediately instead of debouncing.
func (r *Reconciler) SetInput(storeID string, lines []quote.LineInput, coupons []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.input = reconcileInput{
		storeID: storeID,
		lines:   append([]quote.LineInput(nil), lines...),
		coupons: append([]string(nil), coupons...),
	}
	r.stopTimerLocked()

	if len(lines) == 0 {
		r.settled = nil
		r.lastErr = nil
		r.state = StateIdle
		return
	}

	r.state = StateDebouncing
	seq := r.seq
	r.timer = time.AfterFunc(r.debounce, func() {
		r.fire(seq)
	})
}

// Flush runs the pending round now, skipping the rest of the debounce
// window. Coupon changes use this for an immediate reconciliation.
func (r *Reconciler) Flush() {
	r.mu.Lock()
	r.stopTimerLocked()
	seq := r.seq
	empty := len(r.input.lines) == 0
	r.mu.Unlock()

	if !empty {
		go r.fire(seq)
	}
}

// Clear drops all reconciler state, pending rounds included.
func (r *Reconciler) Clear() {
	r.SetInput("", nil, nil)
}

// View is the display snapshot: the settled quote when one exists,
// otherwise the local subtotal-only estimate.
func (r *Reconciler) View() QuoteView {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := QuoteView{
		State:    r.state,
		Estimate: quote.EstimateSubtotal(r.input.lines),
		Currency: money.DefaultCurrency(),
	}
	if r.settled != nil {
		q := r.settled.quote
		view.Quote = &q
		view.Currency = r.settled.currency
	}
	if r.lastErr != nil {
		view.Message = r.lastErr.Error()
	}
	return view
}

// SettledQuote returns the last authoritative quote, but only when it
// answers the current inputs; checkout must not proceed on anything
// older.
func (r *Reconciler) SettledQuote() (quote.Quote, money.Currency, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settled == nil || !r.settled.input.equal(r.input) {
		return quote.Quote{}, money.Currency{}, false
	}
	return r.settled.quote, r.settled.currency, true
}

func (r *Reconciler) fire(seq uint64) {
	r.mu.Lock()
	if seq != r.seq {
		r.mu.Unlock()
		return
	}
	r.state = StateRequesting
	req := QuoteRequest{
		StoreID:     r.input.storeID,
		Lines:       append([]quote.LineInput(nil), r.input.lines...),
		CouponCodes: append([]string(nil), r.input.coupons...),
	}
	r.mu.Unlock()

	result, err := r.gateway.FetchQuote(context.Background(), req)
	r.commit(seq, result, err)
}

func (r *Reconciler) commit(seq uint64, result QuoteResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq {
		r.logger.Debug("dropping stale quote response", "seq", seq, "current", r.seq)
		return
	}

	if err != nil {
		r.logger.Warn("quote reconciliation failed", "error", err)
		if r.settled != nil && r.settled.input.equal(r.input) {
			// The previous quote still answers the current inputs.
			r.state = StateSettled
			r.lastErr = nil
			return
		}
		r.lastErr = errs.Mark(err, errs.ErrQuoteUnavailable)
		r.state = StateFailed
		return
	}

	r.settled = &settledQuote{
		quote:    result.Quote,
		currency: result.Currency,
		input:    r.input,
	}
	r.lastErr = nil
	r.state = StateSettled
}

func (r *Reconciler) stopTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
