package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/cart"
	"pos-pricing-engine/internal/domain/catalog"
	"pos-pricing-engine/internal/domain/quote"
)

// Notice is a non-fatal condition raised by a cart mutation. The
// mutation still happened (possibly clamped); the operator just needs
// to see a message.
type Notice string

const (
	NoticeNone       Notice = ""
	NoticeStockLimit Notice = "STOCK_LIMIT_REACHED"
)

// CartStore owns the in-progress sale. All reads are snapshots, all
// writes go through named methods, and every mutation synchronously
// persists the full cart to the durable cache before returning.
type CartStore struct {
	mu       sync.Mutex
	cart     *cart.Cart
	cache    CartCache
	logger   *slog.Logger
	onChange func()
}

func NewCartStore(cache CartCache, logger *slog.Logger) *CartStore {
	return &CartStore{
		cart:     cart.New(),
		cache:    cache,
		logger:   logger,
		onChange: func() {},
	}
}

// SetOnChange registers the engine hook run after every mutation.
func (s *CartStore) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Restore loads the persisted sale back into memory after a reload.
func (s *CartStore) Restore(ctx context.Context) error {
	lines, ok, err := s.cache.LoadCart(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.cart = cart.Restore(lines)
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *CartStore) Add(ctx context.Context, item catalog.Item) error {
	s.mu.Lock()
	if err := s.cart.Add(item); err != nil {
		s.mu.Unlock()
		return err
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *CartStore) ChangeQuantity(ctx context.Context, itemID string, delta int) (Notice, error) {
	return s.mutateQuantity(ctx, itemID, func(c *cart.Cart) (bool, error) {
		return c.ChangeQuantity(itemID, delta)
	})
}

func (s *CartStore) SetQuantity(ctx context.Context, itemID string, n int) (Notice, error) {
	return s.mutateQuantity(ctx, itemID, func(c *cart.Cart) (bool, error) {
		return c.SetQuantity(itemID, n)
	})
}

func (s *CartStore) Remove(ctx context.Context, itemID string) {
	s.mu.Lock()
	s.cart.Remove(itemID)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
}

// Clear empties the sale and removes the persisted cache entry.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.cart.Clear()
	if err := s.cache.DeleteCart(ctx); err != nil {
		s.logger.Warn("failed to delete persisted cart", "error", err)
	}
	s.mu.Unlock()

	s.notify()
}

func (s *CartStore) Lines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *CartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

func (s *CartStore) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

// Projection is the line shape sent to the pricing service.
func (s *CartStore) Projection() []quote.LineInput {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Lines()
	out := make([]quote.LineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, quote.LineInput{
			VariantID: l.Item.ID,
			Quantity:  l.Quantity,
			UnitPrice: l.Item.Price,
		})
	}
	return out
}

func (s *CartStore) mutateQuantity(ctx context.Context, _ string, op func(*cart.Cart) (bool, error)) (Notice, error) {
	s.mu.Lock()
	clamped, err := op(s.cart)
	if err != nil {
		s.mu.Unlock()
		return NoticeNone, err
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
	if clamped {
		return NoticeStockLimit, nil
	}
	return NoticeNone, nil
}

// persistLocked writes the full cart contents through on every
// mutation path. A cache failure only costs reload resilience, so it
// is logged rather than failing the sale.
func (s *CartStore) persistLocked(ctx context.Context) {
	if err := s.cache.SaveCart(ctx, s.cart.Lines()); err != nil {
		s.logger.Warn("failed to persist cart", "error", err)
	}
}

func (s *CartStore) notify() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	fn()
}
