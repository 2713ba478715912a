package service

import (
	"fmt"
	"sync"

	"tableside/frontdesk-svc/internal/domain"
)

type CartLine struct {
	Item      domain.ItemRef `json:"item"`
	Name      string         `json:"name"`
	UnitPrice float64        `json:"unitPrice"`
	Quantity  int            `json:"quantity"`
}

// Cart is a point-in-time snapshot. Mutating a snapshot never changes what
// the store holds.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) Total() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	return sum
}

// CartStore owns every session's cart. It is passed explicitly to whatever
// needs cart access; all operations hand back fresh snapshots.
type CartStore struct {
	mu    sync.Mutex
	carts map[string][]CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]CartLine)}
}

func (s *CartStore) snapshot(session string) Cart {
	lines := make([]CartLine, len(s.carts[session]))
	copy(lines, s.carts[session])
	return Cart{Lines: lines}
}

func (s *CartStore) Get(session string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(session)
}

// Add puts a line in the cart, merging quantities when the same dish or set
// meal is already there.
func (s *CartStore) Add(session string, line CartLine) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	for i := range lines {
		if lines[i].Item == line.Item {
			lines[i].Quantity += line.Quantity
			return s.snapshot(session)
		}
	}
	s.carts[session] = append(lines, line)
	return s.snapshot(session)
}

func (s *CartStore) UpdateQuantity(session string, idx, quantity int) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	if idx < 0 || idx >= len(lines) {
		return s.snapshot(session), fmt.Errorf("no cart line %d", idx)
	}
	if quantity < 1 {
		return s.snapshot(session), fmt.Errorf("quantity must be at least 1")
	}
	lines[idx].Quantity = quantity
	return s.snapshot(session), nil
}

func (s *CartStore) Remove(session string, idx int) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	if idx < 0 || idx >= len(lines) {
		return s.snapshot(session), fmt.Errorf("no cart line %d", idx)
	}
	s.carts[session] = append(lines[:idx], lines[idx+1:]...)
	return s.snapshot(session), nil
}

func (s *CartStore) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}
