package cart

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

// Store owns the cart mutations. There is no long-lived in-memory cart: every
// operation reads the full persisted list, modifies it, and writes it back, so
// each mutation is effectively atomic from the process's own perspective.
// Writers in other processes are not coordinated with; last write wins.
//
// Subscribers registered via Subscribe are notified with the fresh list after
// every successful mutation, so each presentation surface re-derives from the
// single source of truth instead of being re-rendered by hand at every call
// site.
type Store struct {
	slot *SlotStore

	mu   sync.Mutex
	subs []func(items []domain.CartItem)
}

// NewStore creates a cart store over the given slot storage.
func NewStore(slot *SlotStore) *Store {
	return &Store{slot: slot}
}

// Subscribe registers an observer called with the current cart list after
// every successful mutation.
func (s *Store) Subscribe(fn func(items []domain.CartItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Items returns the currently persisted cart list.
func (s *Store) Items(ctx context.Context) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slot.Load(ctx)
}

// Add appends an item to the end of the persisted list.
func (s *Store) Add(ctx context.Context, item domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := append(s.slot.Load(ctx), item)
	if err := s.slot.Save(ctx, items); err != nil {
		return err
	}
	s.notify(items)
	return nil
}

// RemoveAt splices exactly one item out of the persisted list by its current
// positional index. An out-of-range index is a no-op, not an error; the
// persisted list is left untouched.
func (s *Store) RemoveAt(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.slot.Load(ctx)
	if index < 0 || index >= len(items) {
		return nil
	}
	items = append(items[:index], items[index+1:]...)
	if err := s.slot.Save(ctx, items); err != nil {
		return err
	}
	s.notify(items)
	return nil
}

// Clear replaces the persisted list with an empty one.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []domain.CartItem{}
	if err := s.slot.Save(ctx, items); err != nil {
		return err
	}
	s.notify(items)
	return nil
}

func (s *Store) notify(items []domain.CartItem) {
	for _, fn := range s.subs {
		fn(items)
	}
}

// Total sums the line item prices.
func Total(items []domain.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}
