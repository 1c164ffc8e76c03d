package memstore

import (
	"context"

	"github.com/phrazzld/orders-api/internal/domain"
	"github.com/phrazzld/orders-api/internal/store"
)

// UserStore is an in-memory store.UserStore.
type UserStore struct {
	users *table[domain.User]
}

// Statically verify interface compliance.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore pre-populated with the given seed
// users. Seed records keep the IDs they carry.
func NewUserStore(seed ...domain.User) *UserStore {
	s := &UserStore{users: newTable[domain.User]()}
	for _, u := range seed {
		s.users.seed(u.ID, u)
	}
	return s
}

// Create assigns the next free ID to user.ID and stores the user.
func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	user.ID = s.users.insert(func(id int) domain.User {
		u := *user
		u.ID = id
		return u
	})
	return nil
}

// GetByID retrieves a user by ID.
func (s *UserStore) GetByID(_ context.Context, id int) (*domain.User, error) {
	u, ok := s.users.get(id)
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// List returns all users in insertion order.
func (s *UserStore) List(_ context.Context) ([]domain.User, error) {
	return s.users.list(), nil
}

// Replace overwrites every field of the user identified by user.ID.
func (s *UserStore) Replace(_ context.Context, user *domain.User) error {
	if !s.users.replace(user.ID, *user) {
		return store.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID. Orders referencing the user are left
// untouched.
func (s *UserStore) Delete(_ context.Context, id int) error {
	if !s.users.remove(id) {
		return store.ErrUserNotFound
	}
	return nil
}
