// Package memory implements an in-memory concert repository.
package memory

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"concertflow/pkg/concert"
)

// Repository provides an in-memory implementation of concert.Repository.
type Repository struct {
	mu       sync.RWMutex
	concerts map[int64]concert.Concert
	lastID   atomic.Int64
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{concerts: make(map[int64]concert.Concert)}
}

// Create assigns the next ID and stores the concert.
func (r *Repository) Create(ctx context.Context, c concert.Concert) (concert.Concert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := concert.Concert{
		ID:    r.lastID.Add(1),
		Title: c.Title,
		Date:  c.Date,
	}
	r.concerts[stored.ID] = stored
	return stored, nil
}

// Get retrieves a concert by ID.
func (r *Repository) Get(ctx context.Context, id int64) (concert.Concert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.concerts[id]
	if !ok {
		return concert.Concert{}, concert.ErrNotFound
	}
	return c, nil
}

// Range returns up to size concerts with ID >= start, in ascending ID order.
func (r *Repository) Range(ctx context.Context, start int64, size int) (concert.Concerts, error) {
	out := concert.Concerts{}
	if size <= 0 {
		return out, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.concerts))
	for id := range r.concerts {
		if id >= start {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	if len(ids) > size {
		ids = ids[:size]
	}
	for _, id := range ids {
		out = append(out, r.concerts[id])
	}
	return out, nil
}

// DeleteAll removes every concert. The ID counter keeps its value.
func (r *Repository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.concerts = make(map[int64]concert.Concert)
	return nil
}

// LastID returns the most recently issued ID, or 0 if none was issued.
func (r *Repository) LastID() int64 {
	return r.lastID.Load()
}

// Len reports how many concerts are stored.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.concerts)
}
