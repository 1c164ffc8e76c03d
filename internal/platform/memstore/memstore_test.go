package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/orders-api/internal/domain"
	"github.com/phrazzld/orders-api/internal/store"
)

func seedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Alice Rahman", Email: "alice@example.com", Age: 28},
		{ID: 2, Name: "Bob Hossain", Email: "bob@example.com", Age: 34},
		{ID: 3, Name: "Charlie Dev", Email: "charlie@example.com", Age: 22},
	}
}

func TestUserStoreCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store starts at 1", func(t *testing.T) {
		s := NewUserStore()
		u := domain.User{Name: "Dana", Email: "dana@example.com", Age: 40}
		require.NoError(t, s.Create(ctx, &u))
		assert.Equal(t, 1, u.ID)
	})

	t.Run("seeded store continues from max", func(t *testing.T) {
		s := NewUserStore(seedUsers()...)
		u := domain.User{Name: "Dana", Email: "dana@example.com", Age: 40}
		require.NoError(t, s.Create(ctx, &u))
		assert.Equal(t, 4, u.ID)
	})

	t.Run("deleting a non-max ID does not free it", func(t *testing.T) {
		s := NewUserStore(seedUsers()...)
		require.NoError(t, s.Delete(ctx, 2))
		u := domain.User{Name: "Dana", Email: "dana@example.com", Age: 40}
		require.NoError(t, s.Create(ctx, &u))
		assert.Equal(t, 4, u.ID)
	})

	t.Run("deleting the max ID frees it", func(t *testing.T) {
		s := NewUserStore(seedUsers()...)
		require.NoError(t, s.Delete(ctx, 3))
		u := domain.User{Name: "Dana", Email: "dana@example.com", Age: 40}
		require.NoError(t, s.Create(ctx, &u))
		assert.Equal(t, 3, u.ID)
	})
}

func TestUserStoreGetByID(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore(seedUsers()...)

	u, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Bob Hossain", u.Name)

	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestUserStoreCreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()
	in := domain.User{Name: "Dana", Email: "dana@example.com", Age: 40}
	require.NoError(t, s.Create(ctx, &in))

	got, err := s.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in, *got)
}

func TestUserStoreListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore(seedUsers()...)

	// Replacing keeps the record's position.
	require.NoError(t, s.Replace(ctx, &domain.User{ID: 1, Name: "Alice R.", Email: "alice@example.com", Age: 29}))

	// Deleting then re-creating appends at the end.
	require.NoError(t, s.Delete(ctx, 2))
	u := domain.User{Name: "Dana", Email: "dana@example.com", Age: 40}
	require.NoError(t, s.Create(ctx, &u))

	list, err := s.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, u := range list {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{"Alice R.", "Charlie Dev", "Dana"}, names)
}

func TestUserStoreReplaceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore(seedUsers()...)
	repl := domain.User{ID: 1, Name: "Alice R.", Email: "alice.r@example.com", Age: 29}

	require.NoError(t, s.Replace(ctx, &repl))
	once, err := s.GetByID(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, s.Replace(ctx, &repl))
	twice, err := s.GetByID(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestUserStoreReplaceAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	err := s.Replace(ctx, &domain.User{ID: 7, Name: "Nobody", Email: "n@example.com", Age: 30})
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	assert.ErrorIs(t, s.Delete(ctx, 7), store.ErrUserNotFound)
}

func TestUserStoreConcurrentCreateUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	const n = 50
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := domain.User{Name: "Concurrent", Email: "c@example.com", Age: 30}
			if err := s.Create(ctx, &u); err == nil {
				ids <- u.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestOrderStoreListByUser(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore(
		domain.Order{ID: 1, UserID: 1, Item: "Laptop", Quantity: 1, Total: 999.99},
		domain.Order{ID: 2, UserID: 1, Item: "Mouse", Quantity: 2, Total: 49.98},
		domain.Order{ID: 3, UserID: 2, Item: "Keyboard", Quantity: 1, Total: 89.99},
	)

	mine, err := s.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Laptop", mine[0].Item)
	assert.Equal(t, "Mouse", mine[1].Item)

	none, err := s.ListByUser(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestOrderStoreNotFoundErrors(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	_, err := s.GetByID(ctx, 1)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)

	err = s.Replace(ctx, &domain.Order{ID: 1, UserID: 1, Item: "Pen", Quantity: 1, Total: 1.5})
	assert.ErrorIs(t, err, store.ErrOrderNotFound)

	assert.ErrorIs(t, s.Delete(ctx, 1), store.ErrOrderNotFound)
}
