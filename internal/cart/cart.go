package cart

import (
	"log"
	"sync"
)

// Item is one line in the cart. Price is the unit price captured when the
// product was first added.
type Item struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Store owns the cart contents for a session. All reads and writes go through
// it; handlers never touch the item slice directly. Every mutation writes the
// full item list to the backing storage, and storage failures are logged and
// swallowed so a broken disk never breaks the in-memory cart.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
	logger  *log.Logger
}

// NewStore builds a store hydrated from storage. A missing or unreadable
// saved cart yields an empty one.
func NewStore(storage Storage, logger *log.Logger) *Store {
	s := &Store{storage: storage, logger: logger}

	items, err := storage.Load()
	if err != nil {
		logger.Printf("cart load failed, starting empty: %v", err)
		return s
	}
	s.items = items
	return s
}

// Add merges the product into the cart: an existing line with the same
// product id gets its quantity increased, otherwise a new line is appended.
// The quantity is taken as given, callers are expected to pass >= 1.
func (s *Store) Add(item Item, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += quantity
			s.persist()
			return
		}
	}

	item.Quantity = quantity
	s.items = append(s.items, item)
	s.persist()
}

// Remove deletes the line with the given product id, no-op if absent.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// SetQuantity sets the line's quantity, clamped so it never drops below 1.
// No-op if the product is not in the cart.
func (s *Store) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart and persists the empty list.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the sum of all line quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price * quantity over all lines, recomputed on
// every call.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// persist writes the current item list; callers must hold the lock.
func (s *Store) persist() {
	if err := s.storage.Save(s.items); err != nil {
		s.logger.Printf("cart save failed: %v", err)
	}
}
