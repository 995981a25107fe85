package cache

import (
	"context"
	"sync"

	"pos-pricing-engine/internal/domain/cart"
)

// MemoryLocalState is the in-process fallback used in tests and when
// no Redis is configured. Same contract as RedisLocalState, nothing
// survives a restart.
type MemoryLocalState struct {
	mu       sync.Mutex
	lines    []cart.Line
	hasCart  bool
	storeID  *string
	viewPref *string
}

func NewMemoryLocalState() *MemoryLocalState {
	return &MemoryLocalState{}
}

func (s *MemoryLocalState) SaveCart(_ context.Context, lines []cart.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append([]cart.Line(nil), lines...)
	s.hasCart = true
	return nil
}

func (s *MemoryLocalState) LoadCart(_ context.Context) ([]cart.Line, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCart {
		return nil, false, nil
	}
	return append([]cart.Line(nil), s.lines...), true, nil
}

func (s *MemoryLocalState) DeleteCart(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.hasCart = false
	return nil
}

func (s *MemoryLocalState) SaveStoreID(_ context.Context, storeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeID = &storeID
	return nil
}

func (s *MemoryLocalState) LoadStoreID(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.storeID == nil {
		return "", false, nil
	}
	return *s.storeID, true, nil
}

func (s *MemoryLocalState) DeleteStoreID(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeID = nil
	return nil
}

func (s *MemoryLocalState) SaveSearchView(_ context.Context, view string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewPref = &view
	return nil
}

func (s *MemoryLocalState) LoadSearchView(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.viewPref == nil {
		return "", false, nil
	}
	return *s.viewPref, true, nil
}
