package safemap

import (
	"slices"
)

// Mutable is a keyed map mutated in place; mutating methods return the same
// reference so calls chain fluently. It has no internal synchronization:
// mutating it from more than one goroutine needs external locking.
type Mutable[K comparable, V any] struct {
	assoc[K, V]
}

// NewMutable builds a Mutable map seeded with entries in the given order.
// Duplicate keys keep the first insertion position and the last value.
func NewMutable[K comparable, V any](entries ...Entry[K, V]) *Mutable[K, V] {
	return &Mutable[K, V]{assoc: seeded(entries)}
}

// Set binds k to v in place and returns m. An existing key keeps its
// insertion position; a new key goes to the end.
func (m *Mutable[K, V]) Set(k K, v V) *Mutable[K, V] {
	if m.items == nil {
		m.items = make(map[K]V)
	}
	if _, exists := m.items[k]; !exists {
		m.keys = append(m.keys, k)
	}
	m.items[k] = v
	return m
}

// Delete removes k in place and returns m. Deleting an absent key is a
// no-op.
func (m *Mutable[K, V]) Delete(k K) *Mutable[K, V] {
	if _, exists := m.items[k]; exists {
		delete(m.items, k)
		m.keys = slices.DeleteFunc(m.keys, func(key K) bool { return key == k })
	}
	return m
}

// Clear removes every entry in place and returns m.
func (m *Mutable[K, V]) Clear() *Mutable[K, V] {
	m.keys = m.keys[:0]
	clear(m.items)
	return m
}

// Persistent snapshots m into the copy-on-write variant. Later mutations of
// m do not affect the snapshot.
func (m *Mutable[K, V]) Persistent() Persistent[K, V] {
	return Persistent[K, V]{assoc: m.clone(0)}
}
