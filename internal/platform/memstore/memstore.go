// Package memstore provides in-memory implementations of the store
// interfaces. Records live in plain maps guarded by a mutex; nothing is
// persisted across process restarts. The listing order is the insertion
// order, and IDs are allocated as max(existing)+1 inside the same
// critical section as the insert so concurrent creates cannot collide.
package memstore

import "sync"

// table is the shared map-plus-order core behind the typed stores.
// All exported store methods delegate here; every method takes the
// mutex, so individual operations are atomic.
type table[T any] struct {
	mu      sync.RWMutex
	records map[int]T
	order   []int
}

func newTable[T any]() *table[T] {
	return &table[T]{records: make(map[int]T)}
}

// seed inserts a record under a caller-chosen ID, appending it to the
// listing order. Meant for fixture data at construction time; IDs are
// assumed unique.
func (t *table[T]) seed(id int, rec T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records[id] = rec
	t.order = append(t.order, id)
}

func (t *table[T]) get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.records[id]
	return rec, ok
}

// list returns a copy of all records in insertion order. The copy keeps
// callers from observing later mutations through a shared slice.
func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.records[id])
	}
	return out
}

// insert allocates the next free ID and stores the record built by
// assign in one atomic step. assign receives the new ID so the caller
// can stamp it onto the record before it is stored.
func (t *table[T]) insert(assign func(id int) T) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextIDLocked()
	t.records[id] = assign(id)
	t.order = append(t.order, id)
	return id
}

// nextIDLocked returns max(existing IDs)+1, or 1 for an empty table.
// Purely derived from current state, so there is no counter to drift.
// Callers must hold t.mu.
func (t *table[T]) nextIDLocked() int {
	max := 0
	for id := range t.records {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// replace overwrites the record under id, keeping its listing position.
// Reports whether the id existed.
func (t *table[T]) replace(id int, rec T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.records[id]; !ok {
		return false
	}
	t.records[id] = rec
	return true
}

// remove deletes the record under id. Reports whether the id existed.
func (t *table[T]) remove(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.records[id]; !ok {
		return false
	}
	delete(t.records, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}
