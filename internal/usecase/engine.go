package usecase

import (
	"context"
	"log/slog"
	"sync"

	"pos-pricing-engine/internal/domain/catalog"
	"pos-pricing-engine/internal/domain/discount"
	"pos-pricing-engine/internal/pkg/clock"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/pkg/money"
)

// Engine is the terminal's pricing and cart-reconciliation engine. It
// owns the cart store, the coupon set, the cached auto rules for the
// locked store, and the quote reconciler, and keeps them consistent:
// every cart or coupon change pushes a fresh input snapshot into the
// reconciler.
type Engine struct {
	mu sync.Mutex

	gateway Gateway
	prefs   PrefsCache
	clock   clock.Clock
	logger  *slog.Logger

	carts      *CartStore
	coupons    *CouponManager
	reconciler *Reconciler
	sessions   *SessionGuard

	storeID   string
	currency  money.Currency
	autoRules []discount.Rule
}

func NewEngine(
	gateway Gateway,
	carts *CartStore,
	coupons *CouponManager,
	reconciler *Reconciler,
	sessions *SessionGuard,
	prefs PrefsCache,
	clk clock.Clock,
	logger *slog.Logger,
) *Engine {
	e := &Engine{
		gateway:    gateway,
		prefs:      prefs,
		clock:      clk,
		logger:     logger,
		carts:      carts,
		coupons:    coupons,
		reconciler: reconciler,
		sessions:   sessions,
		currency:   money.DefaultCurrency(),
	}
	carts.SetOnChange(e.sync)
	coupons.SetOnChange(func() {
		e.sync()
		e.reconciler.Flush()
	})
	return e
}

// Bootstrap restores persisted state after a reload: the locked store
// (with its rules) and the in-progress cart. Also a session-critical
// checkpoint for the expiry poll.
func (e *Engine) Bootstrap(ctx context.Context) error {
	if storeID, ok, err := e.prefs.LoadStoreID(ctx); err != nil {
		e.logger.Warn("failed to load locked store", "error", err)
	} else if ok {
		if err := e.lockStore(ctx, storeID); err != nil {
			e.logger.Warn("failed to restore locked store", "store_id", storeID, "error", err)
		}
	}

	if err := e.carts.Restore(ctx); err != nil {
		e.logger.Warn("failed to restore persisted cart", "error", err)
	}

	if err := e.sessions.Check(); err != nil && !errs.Is(err, errs.ErrNoSession) {
		return err
	}
	return nil
}

// Stores lists the accessible stores with their currency metadata.
func (e *Engine) Stores(ctx context.Context) ([]StoreInfo, error) {
	stores, err := e.gateway.Stores(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load store directory")
	}
	return stores, nil
}

// SelectStore locks the terminal to a store: fetches its auto rules
// and currency and persists the choice across reloads.
func (e *Engine) SelectStore(ctx context.Context, storeID string) error {
	if err := e.lockStore(ctx, storeID); err != nil {
		return err
	}
	if err := e.prefs.SaveStoreID(ctx, storeID); err != nil {
		e.logger.Warn("failed to persist locked store", "error", err)
	}
	e.sync()
	return nil
}

func (e *Engine) lockStore(ctx context.Context, storeID string) error {
	stores, err := e.gateway.Stores(ctx)
	if err != nil {
		return errs.Wrap(err, "load store directory")
	}

	var info *StoreInfo
	for i := range stores {
		if stores[i].ID == storeID {
			info = &stores[i]
			break
		}
	}
	if info == nil {
		return errs.Newf("store %s is not accessible", storeID)
	}

	rules, err := e.gateway.ActiveRules(ctx, storeID)
	if err != nil {
		// Degrade to no auto discounts rather than refusing the store.
		e.logger.Warn("failed to load discount rules", "store_id", storeID, "error", err)
		rules = nil
	}

	e.mu.Lock()
	e.storeID = storeID
	e.currency = info.Currency
	e.autoRules = rules
	e.mu.Unlock()
	return nil
}

func (e *Engine) StoreID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.storeID
}

func (e *Engine) Currency() money.Currency {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currency
}

// Search queries the catalog for the locked store.
func (e *Engine) Search(ctx context.Context, query string) ([]catalog.Item, error) {
	storeID := e.StoreID()
	if storeID == "" {
		return nil, errs.ErrStoreNotSelected
	}
	return e.gateway.Search(ctx, storeID, query)
}

// LookupBarcode resolves a scanned barcode; nil means no match, which
// is a normal outcome surfaced as a message, not an error.
func (e *Engine) LookupBarcode(ctx context.Context, barcode string) (*catalog.Item, error) {
	storeID := e.StoreID()
	if storeID == "" {
		return nil, errs.ErrStoreNotSelected
	}
	return e.gateway.LookupBarcode(ctx, storeID, barcode)
}

// StockByStore is the cross-store availability lookup for an item.
func (e *Engine) StockByStore(ctx context.Context, variantID string) ([]catalog.StockLevel, error) {
	return e.gateway.StockByStore(ctx, variantID)
}

// Cart operations delegate to the store; the onChange hook keeps the
// reconciler input current.

func (e *Engine) AddItem(ctx context.Context, item catalog.Item) error {
	return e.carts.Add(ctx, item)
}

func (e *Engine) ChangeQuantity(ctx context.Context, itemID string, delta int) (Notice, error) {
	return e.carts.ChangeQuantity(ctx, itemID, delta)
}

func (e *Engine) SetQuantity(ctx context.Context, itemID string, n int) (Notice, error) {
	return e.carts.SetQuantity(ctx, itemID, n)
}

func (e *Engine) RemoveLine(ctx context.Context, itemID string) {
	e.carts.Remove(ctx, itemID)
}

func (e *Engine) ClearCart(ctx context.Context) {
	e.coupons.Reset()
	e.carts.Clear(ctx)
}

func (e *Engine) Cart() *CartStore {
	return e.carts
}

func (e *Engine) Coupons() *CouponManager {
	return e.coupons
}

func (e *Engine) Sessions() *SessionGuard {
	return e.sessions
}

func (e *Engine) Quote() QuoteView {
	view := e.reconciler.View()
	if view.Quote == nil {
		view.Currency = e.Currency()
	}
	return view
}

// BadgesFor renders the discount badges for an item from the cached
// auto rules plus the applied coupons' rules.
func (e *Engine) BadgesFor(item catalog.Item) []discount.Badge {
	auto, couponRules := e.ruleSets()
	return discount.BadgesFor(item, auto, couponRules)
}

// PreviewFor is the optimistic local unit-price estimate for an item.
func (e *Engine) PreviewFor(item catalog.Item) *discount.Preview {
	auto, couponRules := e.ruleSets()
	return discount.PreviewFor(item, auto, couponRules)
}

// ApplyCoupon validates against the authoritative subtotal when one is
// settled, the local estimate otherwise.
func (e *Engine) ApplyCoupon(ctx context.Context, code string) error {
	subtotal := e.carts.Subtotal()
	if q, _, ok := e.reconciler.SettledQuote(); ok {
		subtotal = q.Subtotal
	}
	return e.coupons.Apply(ctx, code, subtotal)
}

func (e *Engine) RemoveCoupon(code string) {
	e.coupons.Remove(code)
}

// Login opens the register session; a session-critical checkpoint.
func (e *Engine) Login(ctx context.Context, req RegisterLoginRequest) error {
	if _, err := e.sessions.Login(ctx, req); err != nil {
		return err
	}
	return nil
}

// EndSession is the explicit end action: best-effort remote call, then
// unconditional local teardown of session, cart and persisted state.
func (e *Engine) EndSession(ctx context.Context) {
	e.sessions.End(ctx)
	e.coupons.Reset()
	e.carts.Clear(ctx)
	if err := e.prefs.DeleteStoreID(ctx); err != nil {
		e.logger.Warn("failed to clear persisted store", "error", err)
	}
}

// SearchView preference, persisted per terminal.

func (e *Engine) SearchView(ctx context.Context) string {
	view, ok, err := e.prefs.LoadSearchView(ctx)
	if err != nil || !ok {
		return "grid"
	}
	return view
}

func (e *Engine) SetSearchView(ctx context.Context, view string) {
	if err := e.prefs.SaveSearchView(ctx, view); err != nil {
		e.logger.Warn("failed to persist search view", "error", err)
	}
}

// sync pushes the current cart projection and coupon set into the
// reconciler, restarting its debounce window.
func (e *Engine) sync() {
	e.reconciler.SetInput(e.StoreID(), e.carts.Projection(), e.coupons.Codes())
}

func (e *Engine) ruleSets() (auto, couponRules []discount.Rule) {
	e.mu.Lock()
	auto = append([]discount.Rule(nil), e.autoRules...)
	e.mu.Unlock()
	return auto, e.coupons.Rules()
}
