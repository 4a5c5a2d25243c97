package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fjod/go_storefront/internal/cart/repository"
	"github.com/fjod/go_storefront/internal/domain"
)

// Store owns the cart aggregate. All reads go through it and all
// mutations are applied under its lock, persisted through the repository,
// and only then announced to subscribers; totals observed by a subscriber
// always reflect the post-mutation state. A mutation that fails to persist
// is rolled back, so memory never disagrees with storage.
type Store struct {
	mu        sync.Mutex
	items     []domain.CartItem
	repo      repository.CartRepository
	listeners []func(Event)
	log       *logrus.Logger
}

// NewStore builds a store primed with whatever the repository has
// persisted. A missing or unparsable record comes back from the
// repository as an empty cart; only real storage failures are returned.
func NewStore(ctx context.Context, repo repository.CartRepository, log *logrus.Logger) (*Store, error) {
	items, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Store{
		items: items,
		repo:  repo,
		log:   log,
	}, nil
}

// Subscribe registers a listener for cart events. Listeners are invoked
// synchronously after the mutation has persisted, in registration order.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Add puts the product into the cart. A product already present gets its
// quantity bumped by exactly one; anything new goes to the end of the
// sequence with quantity one.
func (s *Store) Add(ctx context.Context, p domain.Product) error {
	s.mu.Lock()
	prev := s.snapshotItemsLocked()

	kind := EventAdded
	found := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			kind = EventUpdated
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, domain.CartItem{Product: p, Quantity: 1})
	}

	if err := s.persistLocked(ctx); err != nil {
		s.items = prev
		s.mu.Unlock()
		return err
	}
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	notify(listeners, Event{Kind: kind, ProductID: p.ID, Title: p.Title})
	return nil
}

// UpdateQuantity sets the quantity of an existing line. Zero removes the
// line. An id that is not in the cart is silently ignored; a line is never
// created here.
func (s *Store) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	if quantity == 0 {
		return s.Remove(ctx, id)
	}
	if quantity < 0 {
		return nil
	}

	s.mu.Lock()
	prev := s.snapshotItemsLocked()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return nil
	}

	err := s.persistLocked(ctx)
	if err != nil {
		s.items = prev
	}
	s.mu.Unlock()
	return err
}

// Remove deletes the line with the given id. Removal is always
// acknowledged with a "removed" event, present or not.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	prev := s.snapshotItemsLocked()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}

	if err := s.persistLocked(ctx); err != nil {
		s.items = prev
		s.mu.Unlock()
		return err
	}
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	notify(listeners, Event{Kind: EventRemoved, ProductID: id})
	return nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	prev := s.snapshotItemsLocked()
	s.items = nil

	if err := s.persistLocked(ctx); err != nil {
		s.items = prev
		s.mu.Unlock()
		return err
	}
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	notify(listeners, Event{Kind: EventCleared})
	return nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Cart returns the aggregate as a value.
func (s *Store) Cart() domain.Cart {
	return domain.Cart{Items: s.Items()}
}

// TotalItems returns the current sum of quantities.
func (s *Store) TotalItems() int {
	return s.Cart().TotalItems()
}

// TotalPrice returns the current sum of price*quantity.
func (s *Store) TotalPrice() decimal.Decimal {
	return s.Cart().TotalPrice()
}

func (s *Store) persistLocked(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.log.WithError(err).Error("failed to persist cart")
		return err
	}
	return nil
}

func (s *Store) snapshotItemsLocked() []domain.CartItem {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) snapshotListenersLocked() []func(Event) {
	listeners := make([]func(Event), len(s.listeners))
	copy(listeners, s.listeners)
	return listeners
}

func notify(listeners []func(Event), e Event) {
	for _, fn := range listeners {
		fn(e)
	}
}
