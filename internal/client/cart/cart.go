// Package cart owns the local cart state: an ordered collection of line
// items with derived totals, exposed to the UI as observable state.
//
// Two line items are the same cart line iff their item id and their exact
// ordered sequence of customization ids match. Adding the same combination
// again increments quantity; a different combination for the same base id
// appends a distinct line.
package cart

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/foodcourt/internal/moneyx"
)

// Customization is a selected add-on frozen into a line item.
type Customization struct {
	ID    string
	Name  string
	Price moneyx.Cents
}

// Item is one cart line. Price is the unit price, already inclusive of the
// selected customizations at insertion time; later catalog price changes do
// not affect it.
type Item struct {
	ID             string
	Name           string
	Price          moneyx.Cents
	ImageURL       string
	Customizations []Customization
	Quantity       int
}

// lineKey identifies a cart line: item id plus the ordered customization
// ids. Each id is length-prefixed so ids containing the separator cannot
// collide with a different combination.
func lineKey(id string, customizations []Customization) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%s", len(id), id)
	for _, c := range customizations {
		fmt.Fprintf(&b, "|%d:%s", len(c.ID), c.ID)
	}
	return b.String()
}

// Store is the cart engine. It exclusively owns the items; callers get
// copies. Mutations never fail: unknown ids are silent no-ops. Every
// mutation notifies subscribers so views can re-render.
type Store struct {
	mu      sync.Mutex
	items   []Item
	subs    map[int]func()
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func())}
}

// Subscribe registers fn to run after every mutation and returns a cancel
// function. fn is called outside the store lock.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notifyLocked() []func() {
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}

func runAll(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

// AddItem merges candidate into an existing line with the same id and
// customization sequence, or appends it with quantity one.
func (s *Store) AddItem(candidate Item) {
	s.mu.Lock()
	key := lineKey(candidate.ID, candidate.Customizations)
	merged := false
	for i := range s.items {
		if lineKey(s.items[i].ID, s.items[i].Customizations) == key {
			s.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		candidate.Quantity = 1
		candidate.Customizations = append([]Customization(nil), candidate.Customizations...)
		s.items = append(s.items, candidate)
	}
	fns := s.notifyLocked()
	s.mu.Unlock()
	runAll(fns)
}

// RemoveItem removes every line matching id, across all customization
// variants.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	fns := s.notifyLocked()
	s.mu.Unlock()
	runAll(fns)
}

// IncreaseQty increments the quantity of the first line matching id.
func (s *Store) IncreaseQty(id string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity++
			break
		}
	}
	fns := s.notifyLocked()
	s.mu.Unlock()
	runAll(fns)
}

// DecreaseQty decrements the quantity of the first line matching id,
// removing the line entirely when it would reach zero.
func (s *Store) DecreaseQty(id string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Quantity <= 1 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity--
			}
			break
		}
	}
	fns := s.notifyLocked()
	s.mu.Unlock()
	runAll(fns)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	fns := s.notifyLocked()
	s.mu.Unlock()
	runAll(fns)
}

// Items returns a copy of the current lines in order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	for i := range out {
		out[i].Customizations = append([]Customization(nil), out[i].Customizations...)
	}
	return out
}

// TotalItems is the sum of quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the exact sum of unit price times quantity across all lines.
func (s *Store) TotalPrice() moneyx.Cents {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total moneyx.Cents
	for _, it := range s.items {
		total += it.Price.Mul(it.Quantity)
	}
	return total
}
