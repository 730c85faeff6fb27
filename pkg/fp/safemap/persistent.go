package safemap

// Persistent is a keyed map whose mutating operations return a new instance
// and leave the receiver untouched, so any number of versions can coexist
// and be read concurrently. The zero value is an empty map. Every mutation
// copies the full association; cost is proportional to map size.
type Persistent[K comparable, V any] struct {
	assoc[K, V]
}

// NewPersistent builds a Persistent map seeded with entries in the given
// order. Duplicate keys keep the first insertion position and the last
// value.
func NewPersistent[K comparable, V any](entries ...Entry[K, V]) Persistent[K, V] {
	return Persistent[K, V]{assoc: seeded(entries)}
}

// Set returns a copy of m with k bound to v. An existing key keeps its
// insertion position; a new key goes to the end.
func (m Persistent[K, V]) Set(k K, v V) Persistent[K, V] {
	out := Persistent[K, V]{assoc: m.clone(1)}
	if _, exists := out.items[k]; !exists {
		out.keys = append(out.keys, k)
	}
	out.items[k] = v
	return out
}

// Delete returns a copy of m without k. Deleting an absent key returns the
// receiver as is.
func (m Persistent[K, V]) Delete(k K) Persistent[K, V] {
	if _, exists := m.items[k]; !exists {
		return m
	}
	out := Persistent[K, V]{assoc: assoc[K, V]{
		keys:  make([]K, 0, len(m.keys)-1),
		items: make(map[K]V, len(m.items)-1),
	}}
	for _, key := range m.keys {
		if key == k {
			continue
		}
		out.keys = append(out.keys, key)
		out.items[key] = m.items[key]
	}
	return out
}

// Clear returns an empty map.
func (Persistent[K, V]) Clear() Persistent[K, V] {
	return Persistent[K, V]{}
}

// Mutable copies m into the in-place variant, to be used as a builder for
// a burst of mutations.
func (m Persistent[K, V]) Mutable() *Mutable[K, V] {
	return &Mutable[K, V]{assoc: m.clone(0)}
}
