package memstore

import (
	"context"

	"github.com/phrazzld/orders-api/internal/domain"
	"github.com/phrazzld/orders-api/internal/store"
)

// OrderStore is an in-memory store.OrderStore.
type OrderStore struct {
	orders *table[domain.Order]
}

var _ store.OrderStore = (*OrderStore)(nil)

// NewOrderStore creates an OrderStore pre-populated with the given seed
// orders. Seed records keep the IDs they carry; referential consistency
// of the seed data is the caller's concern.
func NewOrderStore(seed ...domain.Order) *OrderStore {
	s := &OrderStore{orders: newTable[domain.Order]()}
	for _, o := range seed {
		s.orders.seed(o.ID, o)
	}
	return s
}

// Create assigns the next free ID to order.ID and stores the order.
func (s *OrderStore) Create(_ context.Context, order *domain.Order) error {
	order.ID = s.orders.insert(func(id int) domain.Order {
		o := *order
		o.ID = id
		return o
	})
	return nil
}

// GetByID retrieves an order by ID.
func (s *OrderStore) GetByID(_ context.Context, id int) (*domain.Order, error) {
	o, ok := s.orders.get(id)
	if !ok {
		return nil, store.ErrOrderNotFound
	}
	return &o, nil
}

// List returns all orders in insertion order.
func (s *OrderStore) List(_ context.Context) ([]domain.Order, error) {
	return s.orders.list(), nil
}

// ListByUser returns the orders whose UserID matches, in insertion
// order. The user's own existence is not checked here.
func (s *OrderStore) ListByUser(_ context.Context, userID int) ([]domain.Order, error) {
	all := s.orders.list()
	out := make([]domain.Order, 0)
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Replace overwrites every field of the order identified by order.ID.
func (s *OrderStore) Replace(_ context.Context, order *domain.Order) error {
	if !s.orders.replace(order.ID, *order) {
		return store.ErrOrderNotFound
	}
	return nil
}

// Delete removes an order by ID.
func (s *OrderStore) Delete(_ context.Context, id int) error {
	if !s.orders.remove(id) {
		return store.ErrOrderNotFound
	}
	return nil
}
