// Package memstore is the ordered in-memory record store behind every entity
// repository. Records go in and come out as copies, so callers never share
// memory with the store.
package memstore

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound    = errors.New("memstore: record not found")
	ErrDuplicateID = errors.New("memstore: duplicate id")
)

// Store keeps records keyed by id while remembering insertion order.
type Store[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
	idOf  func(T) string
	clone func(T) T
}

// New builds an empty store. idOf extracts a record's id; clone must return a
// deep copy (slices, maps and pointers included).
func New[T any](idOf func(T) string, clone func(T) T) *Store[T] {
	return &Store[T]{
		items: make(map[string]T),
		idOf:  idOf,
		clone: clone,
	}
}

// Seed appends fixture records in order. It stops at the first duplicate id.
func (s *Store[T]) Seed(records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range records {
		if err := s.insertLocked(rec); err != nil {
			return fmt.Errorf("seed record %d: %w", i, err)
		}
	}
	return nil
}

func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.clone(s.items[id]))
	}
	return out
}

func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return s.clone(rec), nil
}

func (s *Store[T]) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[id]
	return ok
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Insert appends rec. The id must be unseen.
func (s *Store[T]) Insert(rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertLocked(rec)
}

// Update applies mutate to a copy of the record with id and stores the
// result in place, all under one write lock. mutate must not change the id.
// The returned record is a copy.
func (s *Store[T]) Update(id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	current, ok := s.items[id]
	if !ok {
		return zero, ErrNotFound
	}

	rec := s.clone(current)
	mutate(&rec)
	if got := s.idOf(rec); got != id {
		return zero, fmt.Errorf("memstore: update changed id %q to %q", id, got)
	}

	s.items[id] = s.clone(rec)
	return rec, nil
}

func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store[T]) insertLocked(rec T) error {
	id := s.idOf(rec)
	if _, ok := s.items[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	s.items[id] = s.clone(rec)
	s.order = append(s.order, id)
	return nil
}
