package cart

import (
	"sync"

	"github.com/floraverde/storefront/internal/model"
)

// Service applies cart mutations, persisting the cart after each one and
// notifying the subscriber with a snapshot
type Service struct {
	store   Store
	catalog ProductLookup

	mu       sync.Mutex
	items    model.Cart
	onUpdate func(model.Cart) // callback for UI updates
}

// NewService creates a cart service and loads the persisted cart
func NewService(store Store, catalog ProductLookup) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		items:   store.Load(),
	}
}

// SetUpdateCallback sets the callback invoked after every mutation
func (s *Service) SetUpdateCallback(callback func(model.Cart)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// AddToCart adds one unit of the product. Unknown products are ignored and
// false is returned.
func (s *Service) AddToCart(productID int) bool {
	product, ok := s.catalog.Lookup(productID)
	if !ok {
		return false
	}

	s.mu.Lock()
	if idx := s.items.IndexOf(productID); idx >= 0 {
		s.items[idx].Quantity++
	} else {
		s.items = append(s.items, model.CartItem{Product: product, Quantity: 1})
	}
	s.commitLocked()
	return true
}

// RemoveFromCart drops the line for the product. It returns false when the
// product is not in the cart.
func (s *Service) RemoveFromCart(productID int) bool {
	s.mu.Lock()
	idx := s.items.IndexOf(productID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	s.commitLocked()
	return true
}

// UpdateQuantity changes the quantity of a line by delta. A resulting
// quantity of zero or less removes the line.
func (s *Service) UpdateQuantity(productID, delta int) bool {
	s.mu.Lock()
	idx := s.items.IndexOf(productID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	quantity := s.items[idx].Quantity + delta
	if quantity <= 0 {
		s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	} else {
		s.items[idx].Quantity = quantity
	}
	s.commitLocked()
	return true
}

// Clear empties the cart
func (s *Service) Clear() {
	s.mu.Lock()
	s.items = model.Cart{}
	s.commitLocked()
}

// Total returns the cart total, computed from the current lines
func (s *Service) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotal(s.items)
}

// Count returns the number of units in the cart
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Count()
}

// Snapshot returns a copy of the cart
func (s *Service) Snapshot() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Clone()
}

// ComputeTotal sums price times quantity over all lines
func ComputeTotal(cart model.Cart) int {
	return cart.Total()
}

// commitLocked persists and publishes the cart. It must be called with the
// mutex held and releases it before running the callback.
func (s *Service) commitLocked() {
	snapshot := s.items.Clone()
	s.store.Save(snapshot)
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
