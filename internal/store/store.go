// Package store provides the insertion-ordered collections backing the
// pipeline registries. Iteration order is the order keys were added, which
// keeps rendered definitions deterministic and diffable across runs.
package store

import (
	"github.com/pkg/errors"
)

// ErrDuplicateKey is returned when a key is added twice to the same store.
var ErrDuplicateKey = errors.New("duplicate key")

// Ordered is a map that remembers insertion order. It performs no locking:
// a store belongs to a single pipeline build and mutations must be
// serialized by the caller.
type Ordered[K comparable, T any] struct {
	keys  []K
	items map[K]T
}

// NewOrdered creates an empty ordered store.
func NewOrdered[K comparable, T any]() *Ordered[K, T] {
	return &Ordered[K, T]{
		items: make(map[K]T),
	}
}

// Add inserts a new entry. Adding a key that is already present fails with
// ErrDuplicateKey and leaves the store unchanged.
func (s *Ordered[K, T]) Add(key K, item T) error {
	if _, ok := s.items[key]; ok {
		return errors.Wrapf(ErrDuplicateKey, "%v", key)
	}

	s.keys = append(s.keys, key)
	s.items[key] = item

	return nil
}

// Get returns the entry for key and whether it exists.
func (s *Ordered[K, T]) Get(key K) (T, bool) {
	item, ok := s.items[key]

	return item, ok
}

// Has reports whether key is present.
func (s *Ordered[K, T]) Has(key K) bool {
	_, ok := s.items[key]

	return ok
}

// Len returns the number of entries.
func (s *Ordered[K, T]) Len() int {
	return len(s.items)
}

// Keys returns all keys in insertion order. The returned slice is a copy.
func (s *Ordered[K, T]) Keys() []K {
	keys := make([]K, len(s.keys))
	copy(keys, s.keys)

	return keys
}

// Values returns all entries in insertion order.
func (s *Ordered[K, T]) Values() []T {
	values := make([]T, 0, len(s.keys))
	for _, key := range s.keys {
		values = append(values, s.items[key])
	}

	return values
}
