package store

import (
	"context"

	"github.com/phrazzld/orders-api/internal/domain"
)

// OrderStore defines the interface for order data persistence.
type OrderStore interface {
	// Create saves a new order to the store, assigning the next free ID
	// to order.ID. The caller is responsible for checking that
	// order.UserID references an existing user first.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its unique ID.
	// Returns ErrOrderNotFound if the order does not exist.
	GetByID(ctx context.Context, id int) (*domain.Order, error)

	// List returns all orders in insertion order.
	List(ctx context.Context) ([]domain.Order, error)

	// ListByUser returns all orders placed by the given user, in
	// insertion order. The result may be empty; the existence of the
	// user itself is not checked here.
	ListByUser(ctx context.Context, userID int) ([]domain.Order, error)

	// Replace overwrites every field of an existing order. The record
	// keeps its position in the listing order.
	// Returns ErrOrderNotFound if order.ID does not exist.
	Replace(ctx context.Context, order *domain.Order) error

	// Delete removes an order from the store by its ID.
	// Returns ErrOrderNotFound if the order does not exist.
	Delete(ctx context.Context, id int) error
}
