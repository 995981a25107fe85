package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/discount"
	"pos-pricing-engine/internal/pkg/errs"
)

// AppliedCoupon is one entry of the ordered, code-deduplicated applied set.
type AppliedCoupon struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// CouponManager validates, applies and removes coupon codes, feeding
// their rules to the preview calculator and their codes to the
// reconciler.
type CouponManager struct {
	mu      sync.Mutex
	gateway CouponGateway
	applied []AppliedCoupon
	rules   map[string][]discount.Rule
	status  string
	// onChange runs after the applied set changes; the engine uses it
	// to reconcile immediately with the full updated coupon set.
	onChange func()
}

func NewCouponManager(gateway CouponGateway) *CouponManager {
	return &CouponManager{
		gateway:  gateway,
		rules:    map[string][]discount.Rule{},
		onChange: func() {},
	}
}

func (m *CouponManager) SetOnChange(fn func()) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// NormalizeCode is the canonical coupon code form: trimmed, upper-cased.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Apply validates the code against the current subtotal and appends it
// to the applied set. Applying a code already present is a no-op.
func (m *CouponManager) Apply(ctx context.Context, code string, subtotal decimal.Decimal) error {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return errs.ErrInvalidCoupon
	}

	m.mu.Lock()
	if m.hasLocked(normalized) {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	result, err := m.gateway.ValidateCoupon(ctx, normalized, subtotal)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidCoupon)
	}

	m.mu.Lock()
	if !m.hasLocked(normalized) {
		m.applied = append(m.applied, AppliedCoupon{Code: normalized, Name: result.Name})
		m.rules[normalized] = result.Rules
		m.status = fmt.Sprintf("Coupon %s applied", normalized)
	}
	fn := m.onChange
	m.mu.Unlock()

	fn()
	return nil
}

// Remove drops the code and its rules. Removing the last coupon clears
// the applied status message.
func (m *CouponManager) Remove(code string) {
	normalized := NormalizeCode(code)

	m.mu.Lock()
	removed := false
	for i, c := range m.applied {
		if c.Code == normalized {
			m.applied = append(m.applied[:i], m.applied[i+1:]...)
			delete(m.rules, normalized)
			removed = true
			break
		}
	}
	if len(m.applied) == 0 {
		m.status = ""
	}
	fn := m.onChange
	m.mu.Unlock()

	if removed {
		fn()
	}
}

// Reset drops everything without triggering a reconcile; used after a
// successful checkout and on explicit cart clear.
func (m *CouponManager) Reset() {
	m.mu.Lock()
	m.applied = nil
	m.rules = map[string][]discount.Rule{}
	m.status = ""
	m.mu.Unlock()
}

// Codes is the applied set in application order.
func (m *CouponManager) Codes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.applied))
	for _, c := range m.applied {
		out = append(out, c.Code)
	}
	return out
}

func (m *CouponManager) Applied() []AppliedCoupon {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]AppliedCoupon(nil), m.applied...)
}

// Rules flattens the rule payloads of all applied coupons in
// application order, for badge and preview computation.
func (m *CouponManager) Rules() []discount.Rule {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []discount.Rule
	for _, c := range m.applied {
		out = append(out, m.rules[c.Code]...)
	}
	return out
}

func (m *CouponManager) Status() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *CouponManager) hasLocked(code string) bool {
	for _, c := range m.applied {
		if c.Code == code {
			return true
		}
	}
	return false
}
