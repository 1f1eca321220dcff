package cart

import (
	"sync"

	"arena-store/internal/model"

	"github.com/google/uuid"
)

// Store holds per-user carts in process memory. Carts are transient session
// state: they are never persisted and are flattened into order items at
// checkout.
type Store struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]model.CartItem
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{
		carts: make(map[uuid.UUID][]model.CartItem),
	}
}

// Items returns a copy of the user's cart lines.
func (s *Store) Items(userID uuid.UUID) []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.CartItem, len(s.carts[userID]))
	copy(items, s.carts[userID])
	return items
}

// Add puts an item into the user's cart. Adding an existing product+size
// combination increments its quantity instead of creating a second line.
func (s *Store) Add(userID uuid.UUID, item model.CartItem) error {
	if item.Quantity < 1 {
		return model.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.carts[userID] {
		if existing.ProductID == item.ProductID && existing.Size == item.Size {
			s.carts[userID][i].Quantity += item.Quantity
			return nil
		}
	}

	s.carts[userID] = append(s.carts[userID], item)
	return nil
}

// SetQuantity changes a line's quantity. A quantity below one removes the
// line, keeping the invariant that every cart line has quantity >= 1.
func (s *Store) SetQuantity(userID uuid.UUID, productID, size string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i, existing := range items {
		if existing.ProductID == productID && existing.Size == size {
			if quantity < 1 {
				s.carts[userID] = append(items[:i], items[i+1:]...)
			} else {
				s.carts[userID][i].Quantity = quantity
			}
			return nil
		}
	}

	return model.ErrProductNotFound
}

// Remove deletes a line from the user's cart.
func (s *Store) Remove(userID uuid.UUID, productID, size string) error {
	return s.SetQuantity(userID, productID, size, 0)
}

// Clear empties the user's cart. Called on checkout success.
func (s *Store) Clear(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}
