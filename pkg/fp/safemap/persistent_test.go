package safemap

import (
	"testing"
)

func TestPersistentZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var m Persistent[string, int]
	if m.Len() != 0 || m.Has("a") {
		t.Fatalf("zero value must be an empty map")
	}
	if !m.Get("a").IsNone() {
		t.Fatalf("expected None for a missing key")
	}
}

func TestPersistentSetIsolation(t *testing.T) {
	t.Parallel()

	m1 := NewPersistent[string, int]()
	m2 := m1.Set("a", 1)

	if m1.Has("a") {
		t.Fatalf("Set must not touch the receiver")
	}
	if v := m2.Get("a").Unwrap(); v != 1 {
		t.Fatalf("expected 1 in the new instance, got %d", v)
	}
}

func TestPersistentBranchesDoNotAlias(t *testing.T) {
	t.Parallel()

	base := NewPersistent(Entry[string, int]{"a", 1})
	left := base.Set("b", 2)
	right := base.Set("b", 99).Set("c", 3)

	if v := left.Get("b").Unwrap(); v != 2 {
		t.Fatalf("left branch corrupted: b=%d", v)
	}
	if v := right.Get("b").Unwrap(); v != 99 {
		t.Fatalf("right branch corrupted: b=%d", v)
	}
	if left.Has("c") || base.Has("b") {
		t.Fatalf("mutation leaked across versions")
	}
}

func TestPersistentSetKeepsInsertionPosition(t *testing.T) {
	t.Parallel()

	m := NewPersistent[string, int]().
		Set("a", 1).
		Set("b", 2).
		Set("a", 10)

	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("updating a key must keep its position, got %v", keys)
	}
	if v := m.Get("a").Unwrap(); v != 10 {
		t.Fatalf("expected updated value 10, got %d", v)
	}
}

func TestPersistentDelete(t *testing.T) {
	t.Parallel()

	m1 := NewPersistent(
		Entry[string, int]{"a", 1},
		Entry[string, int]{"b", 2},
		Entry[string, int]{"c", 3},
	)
	m2 := m1.Delete("b")

	if !m1.Has("b") {
		t.Fatalf("Delete must not touch the receiver")
	}
	if m2.Has("b") || m2.Len() != 2 {
		t.Fatalf("expected b removed from the new instance")
	}

	var keys []string
	for k := range m2.Keys() {
		keys = append(keys, k)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Fatalf("expected remaining order a, c; got %v", keys)
	}

	if m3 := m2.Delete("missing"); m3.Len() != 2 {
		t.Fatalf("deleting an absent key must be a no-op")
	}
}

func TestPersistentClear(t *testing.T) {
	t.Parallel()

	m1 := NewPersistent(Entry[string, int]{"a", 1})
	m2 := m1.Clear()

	if m2.Len() != 0 {
		t.Fatalf("expected an empty map from Clear")
	}
	if !m1.Has("a") {
		t.Fatalf("Clear must not touch the receiver")
	}
}

func TestPersistentSeedDuplicates(t *testing.T) {
	t.Parallel()

	m := NewPersistent(
		Entry[string, int]{"a", 1},
		Entry[string, int]{"b", 2},
		Entry[string, int]{"a", 3},
	)

	if m.Len() != 2 {
		t.Fatalf("duplicate seed keys must collapse, len=%d", m.Len())
	}
	if v := m.Get("a").Unwrap(); v != 3 {
		t.Fatalf("last seed value must win, got %d", v)
	}

	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	if keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("first insertion position must win, got %v", keys)
	}
}

func TestPersistentEntriesRestartable(t *testing.T) {
	t.Parallel()

	m := NewPersistent(
		Entry[string, int]{"a", 1},
		Entry[string, int]{"b", 2},
	)

	seq := m.Entries()
	for range 2 {
		var got []Entry[string, int]
		for k, v := range seq {
			got = append(got, Entry[string, int]{k, v})
		}
		if len(got) != 2 || got[0].Key != "a" || got[1].Key != "b" {
			t.Fatalf("expected restartable in-order iteration, got %v", got)
		}
	}
}

func TestPersistentEntriesEarlyStop(t *testing.T) {
	t.Parallel()

	m := NewPersistent(
		Entry[string, int]{"a", 1},
		Entry[string, int]{"b", 2},
		Entry[string, int]{"c", 3},
	)

	count := 0
	for range m.Entries() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected iteration to stop on break, count=%d", count)
	}
}

func TestPersistentForEach(t *testing.T) {
	t.Parallel()

	m := NewPersistent(
		Entry[string, int]{"a", 1},
		Entry[string, int]{"b", 2},
	)

	sum := 0
	var order []string
	m.ForEach(func(k string, v int) {
		order = append(order, k)
		sum += v
	})
	if sum != 3 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected eager in-order traversal, sum=%d order=%v", sum, order)
	}
}

func TestPersistentValues(t *testing.T) {
	t.Parallel()

	m := NewPersistent(
		Entry[string, int]{"a", 1},
		Entry[string, int]{"b", 2},
	)

	var vals []int
	for v := range m.Values() {
		vals = append(vals, v)
	}
	if len(vals) != 2 || vals[0] != 1 || vals[1] != 2 {
		t.Fatalf("expected values in insertion order, got %v", vals)
	}
}

func TestPersistentToMutable(t *testing.T) {
	t.Parallel()

	p := NewPersistent(Entry[string, int]{"a", 1})
	b := p.Mutable()
	b.Set("b", 2)

	if p.Has("b") {
		t.Fatalf("builder mutations must not reach the persistent source")
	}
	if !b.Has("a") || !b.Has("b") {
		t.Fatalf("builder must start from the persistent contents")
	}
}
