package result

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/fp3/pkg/fp"
)

// Result represents the outcome of a computation: Ok with a value or Err
// with an error. The variant never changes after construction.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

// Ok constructs a successful Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err constructs a failed Result. A nil err is replaced with a placeholder
// so a failure can never look clean.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromTuple converts Go's (value, error) pair into a Result.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// errFrom retypes a failed Result, keeping its id and timestamp so the
// failure stays traceable across type-changing combinators.
func errFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsOk returns true if the operation was successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the operation failed.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the successful value; the zero value on Err.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error if the operation failed, nil otherwise.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the contained value and whether the Result is Ok.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Id returns the identifier stamped at construction.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Unwrap returns the successful value. It panics with fp.UnwrapOnErr when
// called on an Err; call it only on a Result already proven to be Ok.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(fp.UnwrapOnErr)
	}
	return r.value
}

// UnwrapOr returns the successful value, or def when Err.
func (r Result[T]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapErr returns the error. It panics with fp.UnwrapOnOk when called on
// an Ok; call it only on a Result already proven to be Err.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic(fp.UnwrapOnOk)
	}
	return r.err
}

// Inspect calls f with the successful value when Ok and returns the
// receiver unchanged.
func (r Result[T]) Inspect(f func(T)) Result[T] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the error when Err and returns the receiver
// unchanged.
func (r Result[T]) InspectErr(f func(error)) Result[T] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// MapErr applies f to the error of an Err; an Ok passes through unchanged.
// The id and timestamp carry over: it is the same failure reshaped.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.ok {
		return r
	}
	out := r
	out.err = f(r.err)
	if out.err == nil {
		out.err = errors.New("result: nil error")
	}
	return out
}

// OrElse returns the receiver when Ok; otherwise it returns f(err).
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return f(r.err)
}

// Match is the canonical elimination form: exactly one of onOk and onErr
// runs, selected by the variant.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Map applies f to the successful value of an Ok; an Err passes through
// retyped to Result[U] with its trace metadata intact.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.ok {
		return Ok(f(r.value))
	}
	return errFrom[T, U](r)
}

// AndThen chains f over an Ok; an Err short-circuits.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.ok {
		return f(r.value)
	}
	return errFrom[T, U](r)
}
