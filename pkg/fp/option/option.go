package option

import (
	"github.com/ib-77/fp3/pkg/fp"
)

// Option represents an optional value: Some carries a value, None carries
// nothing. The variant never changes after construction.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v in a present Option, even when v is nil or a zero value.
// Presence is a statement of intent, not a property of v; use FromNillable
// when nil should mean absence.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNillable converts a possibly-nil value into an Option: nil pointers,
// interfaces, maps, slices, funcs and channels become None, everything else
// becomes Some. Zero values such as 0, "" and false are present values.
// This is the one place raw platform results enter the algebra.
func FromNillable[T any](v T) Option[T] {
	if fp.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr dereferences p into Some, or returns None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value. It panics with fp.UnwrapOnNone when
// called on a None; call it only on an Option already proven to be Some.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(fp.UnwrapOnNone)
	}
	return o.value
}

// UnwrapOr returns the contained value, or def when None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// Inspect calls f with the contained value when Some and returns the
// receiver unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.some {
		f(o.value)
	}
	return o
}

// OrElse returns the receiver when Some; otherwise it returns f().
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Match is the canonical elimination form: exactly one of onSome and onNone
// runs, selected by the variant.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Map applies f to the contained value of a Some; a None passes through
// retyped to Option[U].
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	return Match(o,
		func(v T) Option[U] { return Some(f(v)) },
		None[U])
}

// AndThen chains f over a Some; a None short-circuits.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	return Match(o, f, None[U])
}
