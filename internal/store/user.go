package store

import (
	"context"

	"github.com/phrazzld/orders-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store, assigning the next free ID
	// to user.ID. Allocation and insertion happen as a single atomic
	// step so concurrent creates can never share an ID.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int) (*domain.User, error)

	// List returns all users in insertion order.
	List(ctx context.Context) ([]domain.User, error)

	// Replace overwrites every field of an existing user. The record
	// keeps its position in the listing order.
	// Returns ErrUserNotFound if user.ID does not exist.
	Replace(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// Orders referencing the user are NOT touched; orphans are allowed.
	Delete(ctx context.Context, id int) error
}
