package cart

import (
	"context"
	"log"
)

// DefaultKey is the well-known storage key a browser-less session falls back
// to, mirroring the single localStorage slot the storefront UI uses.
const DefaultKey = "cart"

// Item is one cart line. Identity is (ProductID, Size); Quantity is always >= 1,
// an item adjusted down to zero is removed rather than stored.
type Item struct {
	ProductID string  `json:"id"`
	Size      string  `json:"size,omitempty"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Store holds the authoritative item list for one shopping session. It is an
// explicit object injected where needed; there is no package-level cart state.
// A Store has exactly one writer (the owning session), so it does no locking.
//
// Every mutation rewrites the whole serialized list through the persister.
// Mutations themselves cannot fail: persistence errors are logged and dropped,
// the in-memory list stays authoritative.
type Store struct {
	key       string
	items     []Item
	persister Persister
}

// NewStore builds a Store hydrated from whatever the persister holds under key.
// An empty key selects DefaultKey. Absent or unreadable saved state starts the
// cart empty.
func NewStore(ctx context.Context, key string, p Persister) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{key: key, persister: p}
	items, err := p.Load(ctx, key)
	if err != nil {
		log.Printf("cart %s: load failed, starting empty: %v", key, err)
		return s
	}
	s.items = items
	return s
}

// Add merges the incoming item into an existing line with the same identity,
// summing quantities, or appends it. No upper bound is enforced on quantity.
func (s *Store) Add(ctx context.Context, item Item) {
	for i := range s.items {
		if s.items[i].ProductID == item.ProductID && s.items[i].Size == item.Size {
			s.items[i].Quantity += item.Quantity
			s.persist(ctx)
			return
		}
	}
	s.items = append(s.items, item)
	s.persist(ctx)
}

// IncreaseQty bumps the matching line by one. Unknown identities are no-ops.
func (s *Store) IncreaseQty(ctx context.Context, productID, size string) {
	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].Size == size {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}
}

// DecreaseQty lowers the matching line by one. A line reaching zero is removed
// outright; there is no floor at quantity 1.
func (s *Store) DecreaseQty(ctx context.Context, productID, size string) {
	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].Size == size {
			s.items[i].Quantity--
			if s.items[i].Quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			}
			s.persist(ctx)
			return
		}
	}
}

// Remove deletes the matching line outright. Unknown identities are no-ops.
func (s *Store) Remove(ctx context.Context, productID, size string) {
	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].Size == size {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// Total is the derived sum of UnitPrice*Quantity over all lines. It is
// recomputed on every call and never stored, so it cannot drift.
func (s *Store) Total() float64 {
	var total float64
	for _, it := range s.items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.key, s.items); err != nil {
		log.Printf("cart %s: save failed: %v", s.key, err)
	}
}
