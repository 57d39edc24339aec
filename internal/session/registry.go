// Package session keeps per-client engine instances for the network surfaces.
// Each entry is guarded by its own mutex so one client's events are handled
// one at a time, in order, as the engines expect.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

type entry[T any] struct {
	mu       sync.Mutex
	value    T
	lastUsed time.Time
}

// Registry maps session IDs to values of type T.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[T]
	now     func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*entry[T]),
		now:     time.Now,
	}
}

// Create stores v under a new random ID and returns the ID.
func (r *Registry[T]) Create(v T) string {
	id := uuid.New().String()
	r.mu.Lock()
	r.entries[id] = &entry[T]{value: v, lastUsed: r.now()}
	r.mu.Unlock()
	return id
}

// With runs fn with the session value while holding the session's lock.
func (r *Registry[T]) With(id string, fn func(T) error) error {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = r.now()
	return fn(e.value)
}

// Delete removes a session. It reports whether the session existed.
func (r *Registry[T]) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// Len returns the number of live sessions.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Prune drops sessions idle for longer than ttl and returns how many were
// removed.
func (r *Registry[T]) Prune(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.entries {
		e.mu.Lock()
		idle := e.lastUsed.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}
