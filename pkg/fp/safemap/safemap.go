package safemap

import (
	"iter"
	"maps"

	"github.com/ib-77/fp3/pkg/fp/option"
)

// Entry is one key/value pair, used to seed maps and to collect iteration
// output.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// assoc is the shared insertion-ordered association both variants wrap.
// Keys are unique; an existing key keeps its insertion position when its
// value is replaced. The read surface lives here and is promoted onto both
// Persistent and Mutable.
type assoc[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

// Get looks k up and wraps the outcome: Some with the value, or None.
func (a assoc[K, V]) Get(k K) option.Option[V] {
	if v, ok := a.items[k]; ok {
		return option.Some(v)
	}
	return option.None[V]()
}

// Has reports whether k is present.
func (a assoc[K, V]) Has(k K) bool {
	_, ok := a.items[k]
	return ok
}

// Len returns the number of entries.
func (a assoc[K, V]) Len() int {
	return len(a.keys)
}

// Entries iterates key/value pairs in insertion order. The sequence is
// restartable.
func (a assoc[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range a.keys {
			if !yield(k, a.items[k]) {
				return
			}
		}
	}
}

// Keys iterates keys in insertion order.
func (a assoc[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range a.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates values in insertion order.
func (a assoc[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range a.keys {
			if !yield(a.items[k]) {
				return
			}
		}
	}
}

// ForEach eagerly visits every entry in insertion order.
func (a assoc[K, V]) ForEach(f func(K, V)) {
	for _, k := range a.keys {
		f(k, a.items[k])
	}
}

// clone full-copies the association with room for extra new keys.
func (a assoc[K, V]) clone(extra int) assoc[K, V] {
	out := assoc[K, V]{
		keys:  make([]K, len(a.keys), len(a.keys)+extra),
		items: make(map[K]V, len(a.items)+extra),
	}
	copy(out.keys, a.keys)
	maps.Copy(out.items, a.items)
	return out
}

func seeded[K comparable, V any](entries []Entry[K, V]) assoc[K, V] {
	a := assoc[K, V]{
		keys:  make([]K, 0, len(entries)),
		items: make(map[K]V, len(entries)),
	}
	for _, e := range entries {
		if _, exists := a.items[e.Key]; !exists {
			a.keys = append(a.keys, e.Key)
		}
		a.items[e.Key] = e.Value
	}
	return a
}
